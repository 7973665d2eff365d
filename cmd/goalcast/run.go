package main

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sartorproj/goalcast/goal"
	"github.com/sartorproj/goalcast/internal/config"
	"github.com/sartorproj/goalcast/internal/export"
	"github.com/sartorproj/goalcast/internal/logger"
	"github.com/sartorproj/goalcast/internal/source"
	"github.com/sartorproj/goalcast/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a plan and print the projected charts",
	Long: `Run reads every dataset of the plan in order, applies its transforms and
goals, and writes one chart per dataset to stdout.

Dataset files are resolved against --data-dir, or the plan's directory when
it is not set. Files ending in .gz or .zst are decompressed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cfg, cmd.OutOrStdout())
	},
}

func init() {
	runCmd.Flags().StringP("plan", "p", "goalcast.plan.toml", "Plan file")
	runCmd.Flags().StringP("format", "f", "table", "Output format: json, yaml, csv, table")
	runCmd.Flags().String("data-dir", "", "Directory holding dataset files")
}

func runPlan(cfg *config.Config, w io.Writer) error {
	log := logger.ComponentLogger("cli")

	plan, err := pipeline.LoadPlan(cfg.Plan)
	if err != nil {
		return err
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = filepath.Dir(cfg.Plan)
	}
	log.Debugw("Running plan",
		logger.FieldFile, cfg.Plan,
		"data_dir", dataDir,
		logger.FieldCount, len(plan.Datasets))

	report, err := pipeline.Run(plan, source.Dir{Root: dataDir})
	if err != nil {
		return err
	}

	tables := make([]export.Table, 0, len(report.Charts))
	for _, chart := range report.Charts {
		tables = append(tables, export.FromGroup(chart.Name, chart.Title, chart.Group))
	}
	if err := export.Write(w, cfg.Output.Format, tables); err != nil {
		return err
	}

	if cfg.Output.Format == "table" {
		for _, chart := range report.Charts {
			printEstimates(w, chart.Estimates)
		}
	}
	return nil
}

func printEstimates(w io.Writer, estimates map[string]goal.Estimate) {
	titles := make([]string, 0, len(estimates))
	for title := range estimates {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	for _, title := range titles {
		fmt.Fprintln(w, describe(title, estimates[title]))
	}
}

func describe(title string, est goal.Estimate) string {
	switch {
	case est.Met:
		return fmt.Sprintf("%s: already met (%d of %d)", title, est.Current, est.Goal)
	case est.Unreachable:
		return fmt.Sprintf("%s: not reachable at %d per day", title, est.Speed)
	default:
		return fmt.Sprintf("%s: %d reached around %s at %d per day", title, est.Goal, est.EndDate, est.Speed)
	}
}
