package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/macc/app"
	"github.com/kilianp07/macc/config"
	"github.com/kilianp07/macc/core/measure"
)

var (
	draftPath   string
	includeCP   bool
	computeSave bool
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Evaluate a measure draft and print the result",
	RunE:  runCompute,
}

func init() {
	computeCmd.Flags().StringVar(&draftPath, "draft", "", "measure draft file (json or yaml)")
	computeCmd.Flags().BoolVar(&includeCP, "include-carbon-price", false, "store the carbon-price-adjusted cost")
	computeCmd.Flags().BoolVar(&computeSave, "save", true, "persist the frozen measure")
	_ = computeCmd.MarkFlagRequired("draft")
	rootCmd.AddCommand(computeCmd)
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	draft, err := config.LoadDraft(draftPath)
	if err != nil {
		return err
	}
	comp := svc.Engine.Compute(draft, svc.Catalogs, cfg.Model.DiscountRate(), cfg.Model.CarbonPrice)
	m := measure.Freeze(draft, comp, includeCP, cfg.Model.CarbonPrice)
	if computeSave {
		if err := svc.Store.Save(m); err != nil {
			return fmt.Errorf("save measure: %w", err)
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Measure     measure.Measure     `json:"measure"`
		Computation measure.Computation `json:"computation"`
	}{m, comp})
}
