package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/scrape-quality/internal/dataset"
	"github.com/jonathan/scrape-quality/internal/observability"
	"github.com/jonathan/scrape-quality/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate cleaned records and write a quality report",
	Long:  "Reads a JSON array of cleaned records, checks each one against the fixed rule set, and writes an aggregated plain-text quality report.",
	RunE:  runValidate,
}

var (
	validateInput      string
	validateOutput     string
	validateConfigPath string
	validateVerbose    bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to cleaned JSON input (array of records, required)")
	validateCmd.Flags().StringVarP(&validateOutput, "out", "o", "", "Path to write the quality report text file (required)")
	validateCmd.Flags().StringVarP(&validateConfigPath, "config", "c", "", "Path to JSON config file (optional)")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print a report summary")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	cfg, err := loadRunConfig(validateConfigPath, validateVerbose)
	if err != nil {
		return err
	}

	records, err := dataset.LoadCleaned(validateInput)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	report := validation.BuildReport(records, cfg.MinContentLength)

	if err := dataset.WriteText(validateOutput, validation.RenderReport(report)); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintReportSummary(report)
	}
	fmt.Fprintf(os.Stdout, "Validated %d records (%d invalid): %s\n",
		report.TotalRecords, report.InvalidRecords, validateOutput)

	return nil
}
