package measure

import "github.com/google/uuid"

// Measure modes stored in Details.Mode.
const (
	ModeTemplate = "template"
	ModeQuick    = "quick"
)

// YearResult is one modeled year of a computed measure. Monetary fields
// NetCost, DriverCost and FinancedAnnual are in stack units; the cashflow
// fields are in base currency.
type YearResult struct {
	Year             int     `json:"year"`
	Adoption         float64 `json:"adoption"`
	DirectTons       float64 `json:"direct_tons"`
	DriverCost       float64 `json:"driver_cost"`
	FinancedAnnual   float64 `json:"financed_annual"`
	NetCost          float64 `json:"net_cost"`
	CashflowNoCP     float64 `json:"cashflow_no_cp"`
	CashflowWithCP   float64 `json:"cashflow_with_cp"`
	CostPerTonNoCP   float64 `json:"cost_per_ton_no_cp"`
	CostPerTonWithCP float64 `json:"cost_per_ton_with_cp"`
}

// FinanceSummary aggregates the two cashflow series of a computation.
// IRR fields are nil when the cashflows do not bracket a root.
type FinanceSummary struct {
	NPVNoCP             float64  `json:"npv_no_cp"`
	NPVWithCP           float64  `json:"npv_with_cp"`
	IRRNoCP             *float64 `json:"irr_no_cp"`
	IRRWithCP           *float64 `json:"irr_with_cp"`
	AvgCostPerTonNoCP   float64  `json:"avg_cost_per_ton_no_cp"`
	AvgCostPerTonWithCP float64  `json:"avg_cost_per_ton_with_cp"`
}

// Computation is the engine output for one draft.
type Computation struct {
	PerYear             []YearResult   `json:"per_year"`
	RepresentativeIndex int            `json:"representative_index"`
	Finance             FinanceSummary `json:"finance"`
}

// Details preserves how a measure was produced so it can be redisplayed
// and, for template measures, re-opened for editing.
type Details struct {
	Mode                         string         `json:"mode"`
	PerYear                      []YearResult   `json:"per_year,omitempty"`
	RepresentativeIndex          int            `json:"representative_index,omitempty"`
	Finance                      FinanceSummary `json:"finance,omitempty"`
	SavedCostIncludesCarbonPrice bool           `json:"saved_cost_includes_carbon_price"`
	CarbonPriceAtSave            float64        `json:"carbon_price_at_save"`
	Drivers                      *Draft         `json:"drivers,omitempty"`
}

// Measure is the immutable record persisted after save. AbatementTCO2
// and CostPerTCO2 are the representative-year figures of the computation
// the measure was frozen from.
type Measure struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Sector        string  `json:"sector"`
	AbatementTCO2 float64 `json:"abatement_tco2"`
	CostPerTCO2   float64 `json:"cost_per_tco2"`
	Selected      bool    `json:"selected"`
	Details       Details `json:"details"`
}

// Freeze collapses a draft and its computation into a Measure. The
// headline abatement and cost come from the representative year;
// includeCarbonPrice selects which implied cost is stored and is recorded
// together with the carbon price so ranking can undo it later.
func Freeze(d Draft, comp Computation, includeCarbonPrice bool, carbonPrice float64) Measure {
	var rep YearResult
	if comp.RepresentativeIndex >= 0 && comp.RepresentativeIndex < len(comp.PerYear) {
		rep = comp.PerYear[comp.RepresentativeIndex]
	}
	cost := rep.CostPerTonNoCP
	if includeCarbonPrice {
		cost = rep.CostPerTonWithCP
	}
	drivers := d
	return Measure{
		ID:            uuid.NewString(),
		Name:          d.Name,
		Sector:        d.Sector,
		AbatementTCO2: rep.DirectTons,
		CostPerTCO2:   cost,
		Selected:      true,
		Details: Details{
			Mode:                         ModeTemplate,
			PerYear:                      comp.PerYear,
			RepresentativeIndex:          comp.RepresentativeIndex,
			Finance:                      comp.Finance,
			SavedCostIncludesCarbonPrice: includeCarbonPrice,
			CarbonPriceAtSave:            carbonPrice,
			Drivers:                      &drivers,
		},
	}
}

// Quick returns a measure whose abatement and cost were entered directly
// rather than derived from driver lines.
func Quick(name, sector string, abatementTons, costPerTon float64) Measure {
	return Measure{
		ID:            uuid.NewString(),
		Name:          name,
		Sector:        sector,
		AbatementTCO2: abatementTons,
		CostPerTCO2:   costPerTon,
		Selected:      true,
		Details:       Details{Mode: ModeQuick},
	}
}

// Reconstruct returns the editable draft a template measure was saved
// from. ok is false for quick measures and for records saved without
// their driver definitions.
func (m Measure) Reconstruct() (Draft, bool) {
	if m.Details.Mode != ModeTemplate || m.Details.Drivers == nil {
		return Draft{}, false
	}
	return *m.Details.Drivers, true
}

// Store persists saved measures.
type Store interface {
	Save(Measure) error
	Get(id string) (Measure, bool, error)
	List() ([]Measure, error)
	Delete(id string) error
	Close() error
}
