package catalog

import "strings"

// Mode selects which catalog source feeds the engine.
type Mode string

const (
	ModeSample Mode = "sample"
	ModeCustom Mode = "custom"
	ModeMerged Mode = "merged"
)

// Resolve combines sample and custom catalogs according to mode.
// Sample and custom modes return their source verbatim. Merged mode
// overlays custom rows on sample rows sharing the same key
// (case-insensitive), preserving sample order and appending custom-only
// keys. Missing or empty catalogs behave as empty lists.
func Resolve(sample, custom Set, mode Mode) Set {
	switch mode {
	case ModeCustom:
		return custom
	case ModeMerged:
		return Set{
			Fuel:        mergeRows(sample.Fuel, custom.Fuel),
			Raw:         mergeRows(sample.Raw, custom.Raw),
			Transport:   mergeRows(sample.Transport, custom.Transport),
			Waste:       mergeRows(sample.Waste, custom.Waste),
			Electricity: mergeElectricity(sample.Electricity, custom.Electricity),
		}
	default:
		return sample
	}
}

func mergeRows(sample, custom []Row) []Row {
	idx := make(map[string]int, len(sample))
	out := make([]Row, 0, len(sample)+len(custom))
	for _, r := range sample {
		idx[strings.ToLower(r.Name)] = len(out)
		out = append(out, r)
	}
	for _, r := range custom {
		k := strings.ToLower(r.Name)
		if i, ok := idx[k]; ok {
			out[i] = r
			continue
		}
		idx[k] = len(out)
		out = append(out, r)
	}
	return out
}

func mergeElectricity(sample, custom []ElectricityRow) []ElectricityRow {
	idx := make(map[string]int, len(sample))
	out := make([]ElectricityRow, 0, len(sample)+len(custom))
	for _, r := range sample {
		idx[strings.ToLower(r.State)] = len(out)
		out = append(out, r)
	}
	for _, r := range custom {
		k := strings.ToLower(r.State)
		if i, ok := idx[k]; ok {
			out[i] = r
			continue
		}
		idx[k] = len(out)
		out = append(out, r)
	}
	return out
}
