// Package main implements the scrape_quality CLI for cleaning scraped
// records and reporting on their data quality.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/scrape-quality/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "scrape_quality",
	Short: "Scraped-record cleaning and quality reporting",
	Long:  "scrape_quality normalizes noisy scraped JSON records into a fixed seven-field shape and validates the cleaned output, producing a human-readable data quality report.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadRunConfig resolves the effective configuration for one command
// invocation: the defaults, an optional config file, and the --verbose
// flag which always wins.
func loadRunConfig(path string, verbose bool) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
