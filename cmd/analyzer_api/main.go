// Package main provides the entry point for the Resume Analyzer HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "analyzer_api",
	Short: "Resume Analyzer HTTP API Server",
	Long:  "Resume Analyzer extracts structured job descriptions and resumes, scores their match, and tailors resume content via REST API backed by an LLM completion endpoint.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
