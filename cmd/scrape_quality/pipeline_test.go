package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRaw = `[
	{
		"title": "  Great Deal!  ",
		"description": "This is a fairly long product description text.",
		"price": "$19.99",
		"url": " http://example.com/x "
	},
	{
		"title": "",
		"price": -5,
		"url": "ftp://bad"
	}
]`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "raw.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunClean_WritesCleanedArray(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "cleaned.json")
	cleanInput = writeInput(t, sampleRaw)
	cleanOutput = outPath
	cleanConfigPath = ""
	cleanVerbose = false

	require.NoError(t, runClean(nil, nil))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title": "Great Deal!"`)
	assert.Contains(t, string(data), `"currency": "USD"`)
	assert.Contains(t, string(data), `"scraped_at": null`)
}

func TestRunClean_StructuralErrorWritesNothing(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "cleaned.json")
	cleanInput = writeInput(t, `{"not": "an array"}`)
	cleanOutput = outPath
	cleanConfigPath = ""
	cleanVerbose = false

	err := runClean(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clean:")
	assert.Contains(t, err.Error(), "input shape error")

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "no output file on fatal failure")
}

func TestRunValidate_WritesReport(t *testing.T) {
	dir := t.TempDir()
	cleanInput = writeInput(t, sampleRaw)
	cleanOutput = filepath.Join(dir, "cleaned.json")
	cleanConfigPath = ""
	cleanVerbose = false
	require.NoError(t, runClean(nil, nil))

	validateInput = cleanOutput
	validateOutput = filepath.Join(dir, "quality_report.txt")
	validateConfigPath = ""
	validateVerbose = false
	require.NoError(t, runValidate(nil, nil))

	data, err := os.ReadFile(validateOutput)
	require.NoError(t, err)
	report := string(data)
	assert.Contains(t, report, "Total records: 2")
	assert.Contains(t, report, "Valid records: 1")
	assert.Contains(t, report, "Invalid records: 1")
	assert.Contains(t, report, "- MISSING_TITLE: 1 occurrences")
	assert.Contains(t, report, "- INVALID_PRICE: 1 occurrences")
}

func TestRunPipeline_WritesBothArtifacts(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	runInput = writeInput(t, sampleRaw)
	runOutDir = outDir
	runConfigPath = ""
	runVerbose = false

	require.NoError(t, runPipeline(nil, nil))

	_, err := os.Stat(filepath.Join(outDir, "cleaned.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "quality_report.txt"))
	assert.NoError(t, err)
}

func TestRunPipeline_EmptyDataset(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	runInput = writeInput(t, `[]`)
	runOutDir = outDir
	runConfigPath = ""
	runVerbose = false

	require.NoError(t, runPipeline(nil, nil))

	data, err := os.ReadFile(filepath.Join(outDir, "quality_report.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Total records: 0")
	assert.Contains(t, string(data), "No validation failures.")
}
