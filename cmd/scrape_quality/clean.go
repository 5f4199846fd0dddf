package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/scrape-quality/internal/cleaning"
	"github.com/jonathan/scrape-quality/internal/dataset"
	"github.com/jonathan/scrape-quality/internal/observability"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean raw scraped records",
	Long:  "Reads a JSON array of raw scraped records, normalizes each one into the fixed seven-field shape, and writes the cleaned array. Unparseable fields degrade to null; a malformed top-level structure aborts the run.",
	RunE:  runClean,
}

var (
	cleanInput      string
	cleanOutput     string
	cleanConfigPath string
	cleanVerbose    bool
)

func init() {
	cleanCmd.Flags().StringVarP(&cleanInput, "in", "i", "", "Path to raw JSON input (array of records, required)")
	cleanCmd.Flags().StringVarP(&cleanOutput, "out", "o", "", "Path to write cleaned JSON output (required)")
	cleanCmd.Flags().StringVarP(&cleanConfigPath, "config", "c", "", "Path to JSON config file (optional)")
	cleanCmd.Flags().BoolVarP(&cleanVerbose, "verbose", "v", false, "Print a cleaning summary")

	if err := cleanCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := cleanCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(cleanCmd)
}

func runClean(_ *cobra.Command, _ []string) error {
	cfg, err := loadRunConfig(cleanConfigPath, cleanVerbose)
	if err != nil {
		return err
	}

	records, err := dataset.LoadRaw(cleanInput)
	if err != nil {
		return fmt.Errorf("clean: %w", err)
	}

	cleaned, stats := cleaning.CleanDataset(records)

	if err := dataset.WriteRecords(cleanOutput, cleaned, cfg.Indent); err != nil {
		return fmt.Errorf("clean: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintCleaningStats(stats)
	}
	fmt.Fprintf(os.Stdout, "Cleaned %d records: %s\n", len(cleaned), cleanOutput)

	return nil
}
