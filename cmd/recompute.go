package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/macc/app"
	"github.com/kilianp07/macc/config"
	"github.com/kilianp07/macc/jobs/recompute"
)

var recomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Re-evaluate stored measures against current catalogs",
	RunE:  runRecompute,
}

func init() {
	rootCmd.AddCommand(recomputeCmd)
}

func runRecompute(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	res, err := recompute.Run(svc.Store, svc.Engine, svc.Catalogs, cfg.Model.DiscountRate(), cfg.Model.CarbonPrice)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "recomputed %d measures, skipped %d\n", res.Recomputed, res.Skipped)
	return err
}
