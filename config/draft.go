package config

import (
	"fmt"

	"github.com/kilianp07/macc/core/measure"
)

// LoadDraft reads a measure draft document (JSON or YAML). Blank series
// entries are expressed as nulls and stay distinct from zero.
func LoadDraft(path string) (measure.Draft, error) {
	var d measure.Draft
	if err := unmarshalFile(path, &d); err != nil {
		return measure.Draft{}, fmt.Errorf("draft %s: %w", path, err)
	}
	return d, nil
}
