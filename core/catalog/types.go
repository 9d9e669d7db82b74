package catalog

import "strings"

// Category identifies one of the non-electric driver catalogs.
type Category string

const (
	Fuel      Category = "fuel"
	Raw       Category = "raw"
	Transport Category = "transport"
	Waste     Category = "waste"
)

// Categories lists the non-electric catalogs in display order.
var Categories = []Category{Fuel, Raw, Transport, Waste}

// Row describes one fuel, raw material, transport or waste item.
// Rows are keyed by Name, compared case-insensitively.
type Row struct {
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	PricePerUnit float64 `json:"price_per_unit"`
	EFPerUnit    float64 `json:"emission_factor_per_unit"`
}

// ElectricityRow describes grid electricity for one state, keyed by State.
type ElectricityRow struct {
	State       string  `json:"state"`
	PricePerMWh float64 `json:"price_per_mwh"`
	EFPerMWh    float64 `json:"emission_factor_per_mwh"`
}

// Set groups the five catalogs a firm models against.
type Set struct {
	Fuel        []Row            `json:"fuel"`
	Raw         []Row            `json:"raw"`
	Transport   []Row            `json:"transport"`
	Waste       []Row            `json:"waste"`
	Electricity []ElectricityRow `json:"electricity"`
}

// Rows returns the catalog for a non-electric category.
func (s Set) Rows(c Category) []Row {
	switch c {
	case Fuel:
		return s.Fuel
	case Raw:
		return s.Raw
	case Transport:
		return s.Transport
	case Waste:
		return s.Waste
	}
	return nil
}

// Resolved is a Set indexed for the case-insensitive lookups the
// computation engine performs per driver line.
type Resolved struct {
	Set
	byName  map[Category]map[string]Row
	byState map[string]ElectricityRow
}

// Index builds the lookup tables consumed by the engine.
func (s Set) Index() Resolved {
	r := Resolved{Set: s, byName: map[Category]map[string]Row{}, byState: map[string]ElectricityRow{}}
	for _, c := range Categories {
		m := map[string]Row{}
		for _, row := range s.Rows(c) {
			m[strings.ToLower(row.Name)] = row
		}
		r.byName[c] = m
	}
	for _, row := range s.Electricity {
		r.byState[strings.ToLower(row.State)] = row
	}
	return r
}

// Lookup returns the row for key in category c. Unknown keys report
// ok=false; the engine then treats price and emission factor as zero.
func (r Resolved) Lookup(c Category, key string) (Row, bool) {
	row, ok := r.byName[c][strings.ToLower(key)]
	return row, ok
}

// ElectricityFor returns the electricity row for the given state.
func (r Resolved) ElectricityFor(state string) (ElectricityRow, bool) {
	row, ok := r.byState[strings.ToLower(state)]
	return row, ok
}
