package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/macc/app"
	"github.com/kilianp07/macc/config"
	"github.com/kilianp07/macc/core/curve"
	"github.com/kilianp07/macc/core/numeric"
)

var (
	curveMode     string
	curveSector   string
	curveBaseline float64
	curveTarget   float64
	curveTrend    bool
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Build the abatement cost curve from saved measures",
	RunE:  runCurve,
}

func init() {
	curveCmd.Flags().StringVar(&curveMode, "mode", string(curve.Capacity), "x axis: capacity or intensity")
	curveCmd.Flags().StringVar(&curveSector, "sector", "", "sector filter (empty for all)")
	curveCmd.Flags().Float64Var(&curveBaseline, "baseline", 0, "baseline emissions in tCO2")
	curveCmd.Flags().Float64Var(&curveTarget, "target-pct", 0, "intensity target for the budget walk")
	curveCmd.Flags().BoolVar(&curveTrend, "trend", false, "fit a quadratic cost trend")
	rootCmd.AddCommand(curveCmd)
}

func runCurve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	ms, err := svc.Store.List()
	if err != nil {
		return fmt.Errorf("list measures: %w", err)
	}
	ranked := curve.Rank(ms, curveSector, cfg.Model.CarbonPrice)
	c := curve.Build(ranked, curve.Mode(curveMode), curveBaseline)

	out := struct {
		Curve  curve.Curve            `json:"curve"`
		Trend  *numeric.QuadFitResult `json:"trend,omitempty"`
		Budget *curve.BudgetResult    `json:"budget,omitempty"`
	}{Curve: c}
	if curveTrend {
		trend := curve.FitTrend(c.Segments)
		out.Trend = &trend
	}
	if curveTarget > 0 {
		budget := curve.BudgetToTarget(ranked, curveBaseline, curveTarget)
		out.Budget = &budget
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
