package config

import (
	"fmt"

	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/macc/core/catalog"
)

// CatalogConfig selects the catalog source and the documents backing it.
// Catalog files are JSON or YAML documents holding the five catalogs in
// their post-parse shape.
type CatalogConfig struct {
	// Mode selects sample, custom or merged resolution.
	Mode string `json:"mode"`
	// SamplePath points at the sample catalog document.
	SamplePath string `json:"sample_path"`
	// CustomPath points at the firm's custom catalog document, if any.
	CustomPath string `json:"custom_path"`
}

// SetDefaults applies sane defaults.
func (c *CatalogConfig) SetDefaults() {
	if c.Mode == "" {
		c.Mode = string(catalog.ModeSample)
	}
}

// Validate checks the mode is one of the known resolution modes.
func (c CatalogConfig) Validate() error {
	switch catalog.Mode(c.Mode) {
	case catalog.ModeSample, catalog.ModeCustom, catalog.ModeMerged:
		return nil
	}
	return fmt.Errorf("unknown catalog mode %s", c.Mode)
}

// LoadCatalogs reads and resolves the configured catalog documents.
// A missing custom path behaves as an empty custom catalog.
func (c CatalogConfig) LoadCatalogs() (catalog.Set, error) {
	sample, err := loadSet(c.SamplePath)
	if err != nil {
		return catalog.Set{}, fmt.Errorf("sample catalogs: %w", err)
	}
	var custom catalog.Set
	if c.CustomPath != "" {
		if custom, err = loadSet(c.CustomPath); err != nil {
			return catalog.Set{}, fmt.Errorf("custom catalogs: %w", err)
		}
	}
	return catalog.Resolve(sample, custom, catalog.Mode(c.Mode)), nil
}

func loadSet(path string) (catalog.Set, error) {
	if path == "" {
		return catalog.Set{}, nil
	}
	var set catalog.Set
	if err := unmarshalFile(path, &set); err != nil {
		return catalog.Set{}, err
	}
	return set, nil
}

func unmarshalFile(path string, out any) error {
	k := koanf.New(".")
	parser, err := parserFor(path)
	if err != nil {
		return err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return err
	}
	return k.UnmarshalWithConf("", out, koanf.UnmarshalConf{Tag: "json"})
}
