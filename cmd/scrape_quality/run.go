package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/scrape-quality/internal/cleaning"
	"github.com/jonathan/scrape-quality/internal/dataset"
	"github.com/jonathan/scrape-quality/internal/observability"
	"github.com/jonathan/scrape-quality/internal/validation"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run both pipeline stages",
	Long:  "Cleans a raw dataset and validates the result in one invocation, writing cleaned.json and quality_report.txt into the output directory.",
	RunE:  runPipeline,
}

var (
	runInput      string
	runOutDir     string
	runConfigPath string
	runVerbose    bool
)

func init() {
	runCmd.Flags().StringVarP(&runInput, "in", "i", "", "Path to raw JSON input (array of records, required)")
	runCmd.Flags().StringVarP(&runOutDir, "out", "o", "", "Output directory (required)")
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "Path to JSON config file (optional)")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print per-stage summaries")

	if err := runCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := runCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(runCmd)
}

func runPipeline(_ *cobra.Command, _ []string) error {
	cfg, err := loadRunConfig(runConfigPath, runVerbose)
	if err != nil {
		return err
	}

	records, err := dataset.LoadRaw(runInput)
	if err != nil {
		return fmt.Errorf("clean: %w", err)
	}

	cleaned, stats := cleaning.CleanDataset(records)
	report := validation.BuildReport(cleaned, cfg.MinContentLength)

	cleanedPath := filepath.Join(runOutDir, "cleaned.json")
	reportPath := filepath.Join(runOutDir, "quality_report.txt")

	if err := dataset.WriteRecords(cleanedPath, cleaned, cfg.Indent); err != nil {
		return fmt.Errorf("clean: %w", err)
	}
	if err := dataset.WriteText(reportPath, validation.RenderReport(report)); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintCleaningStats(stats)
		printer.PrintReportSummary(report)
	}
	fmt.Fprintf(os.Stdout, "Cleaned records: %s\n", cleanedPath)
	fmt.Fprintf(os.Stdout, "Quality report: %s\n", reportPath)

	return nil
}
