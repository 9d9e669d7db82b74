package config

import "fmt"

// ModelConfig defines the year grid and economic parameters the engine
// runs with. All of these are deployment choices, not engine policy.
type ModelConfig struct {
	// Years is the ordered list of modeled years.
	Years []int `json:"years"`
	// BaseYear anchors drift compounding and discounting.
	BaseYear int `json:"base_year"`
	// DiscountRatePct is the discount rate applied to cashflows. A nil
	// value means unset and takes the default; an explicit 0 is a valid
	// zero-percent rate.
	DiscountRatePct *float64 `json:"discount_rate_pct"`
	// CarbonPrice is the current carbon price per tCO2 in base currency.
	CarbonPrice float64 `json:"carbon_price"`
	// UnitScale converts stack units into base currency, e.g. 1e7 when
	// monetary inputs are entered in crore.
	UnitScale float64 `json:"unit_scale"`
}

// SetDefaults applies the standard 2025-2050 five-year grid.
func (c *ModelConfig) SetDefaults() {
	if len(c.Years) == 0 {
		c.Years = []int{2025, 2030, 2035, 2040, 2045, 2050}
	}
	if c.BaseYear == 0 {
		c.BaseYear = c.Years[0]
	}
	if c.DiscountRatePct == nil {
		rate := 10.0
		c.DiscountRatePct = &rate
	}
	if c.UnitScale == 0 {
		c.UnitScale = 1e7
	}
}

// DiscountRate returns the configured discount rate in percent.
func (c ModelConfig) DiscountRate() float64 {
	if c.DiscountRatePct == nil {
		return 0
	}
	return *c.DiscountRatePct
}

// Validate checks the year grid is usable.
func (c ModelConfig) Validate() error {
	if len(c.Years) == 0 {
		return fmt.Errorf("years must not be empty")
	}
	for i := 1; i < len(c.Years); i++ {
		if c.Years[i] <= c.Years[i-1] {
			return fmt.Errorf("years must be strictly increasing")
		}
	}
	if c.UnitScale < 0 {
		return fmt.Errorf("unit_scale must not be negative")
	}
	return nil
}
