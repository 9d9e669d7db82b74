package measure

// DriverLine is one fuel, raw-material, transport or waste row of a
// draft. Delta holds the signed physical-quantity change versus business
// as usual for each modeled year; nil means not yet entered, which is
// distinct from zero.
type DriverLine struct {
	ID            string     `json:"id"`
	CatalogKey    string     `json:"catalog_key"`
	PriceOverride *float64   `json:"price_override"`
	EFOverride    *float64   `json:"ef_override"`
	PriceDriftPct float64    `json:"price_drift_pct_per_year"`
	EFDriftPct    float64    `json:"ef_drift_pct_per_year"`
	Delta         []*float64 `json:"delta"`
}

// ElectricityLine is the grid-electricity variant of DriverLine. It is
// keyed by state, expresses its delta in MWh and may pin the emission
// factor for individual years; a per-year value beats the drift-based
// resolution for that year.
type ElectricityLine struct {
	ID                string     `json:"id"`
	State             string     `json:"state"`
	PriceOverride     *float64   `json:"price_override"`
	EFOverride        *float64   `json:"ef_override"`
	PriceDriftPct     float64    `json:"price_drift_pct_per_year"`
	EFDriftPct        float64    `json:"ef_drift_pct_per_year"`
	DeltaMWh          []*float64 `json:"delta_mwh"`
	EFOverridePerYear []*float64 `json:"ef_override_per_year"`
}

// CostStack carries the per-year monetary series of a draft, expressed
// in the engine's large currency unit (UnitScale base-currency units).
type CostStack struct {
	Opex            []float64 `json:"opex"`
	Savings         []float64 `json:"savings"`
	OtherRecurring  []float64 `json:"other_recurring"`
	CapexUpfront    []float64 `json:"capex_upfront"`
	CapexFinanced   []float64 `json:"capex_financed"`
	FinancingTenure []int     `json:"financing_tenure_years"`
	InterestRatePct []float64 `json:"interest_rate_pct"`
}

// Draft is the mutable working state of a measure while it is being
// edited. Saving freezes it into a Measure; editing a saved measure
// reconstructs a Draft from the record.
type Draft struct {
	Name        string            `json:"name"`
	Sector      string            `json:"sector"`
	Fuel        []DriverLine      `json:"fuel"`
	Raw         []DriverLine      `json:"raw"`
	Transport   []DriverLine      `json:"transport"`
	Waste       []DriverLine      `json:"waste"`
	Electricity []ElectricityLine `json:"electricity"`
	Adoption    []float64         `json:"adoption"`
	OtherDirect []*float64        `json:"other_direct_reduction"`
	Stack       CostStack         `json:"stack"`
}

// NewDraft returns an empty draft sized to a year grid of n entries,
// with one blank line per category as the editor starts from.
func NewDraft(n int) Draft {
	line := func() DriverLine { return DriverLine{Delta: make([]*float64, n)} }
	return Draft{
		Fuel:        []DriverLine{line()},
		Raw:         []DriverLine{line()},
		Transport:   []DriverLine{line()},
		Waste:       []DriverLine{line()},
		Electricity: []ElectricityLine{{DeltaMWh: make([]*float64, n), EFOverridePerYear: make([]*float64, n)}},
		Adoption:    make([]float64, n),
		OtherDirect: make([]*float64, n),
		Stack: CostStack{
			Opex:            make([]float64, n),
			Savings:         make([]float64, n),
			OtherRecurring:  make([]float64, n),
			CapexUpfront:    make([]float64, n),
			CapexFinanced:   make([]float64, n),
			FinancingTenure: make([]int, n),
			InterestRatePct: make([]float64, n),
		},
	}
}
