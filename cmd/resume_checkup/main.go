// Package main provides the entry point for the Resume Checkup HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_checkup",
	Short: "Resume Checkup HTTP API Server",
	Long:  "Resume Checkup scans uploaded resumes for recognized skills, ranks them against a job catalog, and flags weak bullet points with suggested rewrites.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
