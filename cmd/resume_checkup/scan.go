package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mateo/resume-checkup/internal/catalog"
	"github.com/mateo/resume-checkup/internal/logging"
	"github.com/mateo/resume-checkup/internal/observability"
	"github.com/mateo/resume-checkup/internal/pipeline"
	"github.com/mateo/resume-checkup/internal/skills"
)

var (
	scanCatalogPath    string
	scanVocabularyPath string
	scanTop            int
	scanPro            bool
	scanFormat         string
)

var scanCmd = &cobra.Command{
	Use:   "scan <resume-file>",
	Short: "Scan a resume file from the command line",
	Long:  `Run one full scan over a local resume file (.pdf, .docx or .txt) and print the report.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanCatalogPath, "catalog", "data/catalog.json", "Path to the job catalog JSON")
	scanCmd.Flags().StringVar(&scanVocabularyPath, "vocabulary", "", "Path to a vocabulary JSON (built-in default when empty)")
	scanCmd.Flags().IntVar(&scanTop, "top", 5, "Number of ranked matches to show")
	scanCmd.Flags().BoolVar(&scanPro, "pro", false, "Run with Pro features (all suggestions and rewrites)")
	scanCmd.Flags().StringVar(&scanFormat, "format", "text", "Output format: text or json")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	if scanFormat != "text" && scanFormat != "json" {
		return fmt.Errorf("invalid format: %s (want text or json)", scanFormat)
	}

	vocab := skills.Default()
	if scanVocabularyPath != "" {
		loaded, err := skills.Load(scanVocabularyPath)
		if err != nil {
			return fmt.Errorf("failed to load vocabulary: %w", err)
		}
		vocab = loaded
	}

	jobs, err := catalog.Load(scanCatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load job catalog: %w", err)
	}

	resumePath := args[0]
	data, err := os.ReadFile(resumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	runner := pipeline.NewRunner(vocab, jobs, logging.NewNop())
	report, err := runner.Scan(cmd.Context(), pipeline.Input{
		Filename: resumePath,
		Data:     data,
		TopN:     scanTop,
		Pro:      scanPro,
	})
	if err != nil {
		return err
	}

	if scanFormat == "json" {
		report.ResumeText = ""
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintReport(report)
	return nil
}
