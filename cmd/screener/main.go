// Package main provides the entry point for the resume screener CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "Resume screening CLI",
	Long:  "Screener extracts structured facts from candidate resumes (PDF/DOCX) and ranks them against a job description using semantic-similarity plus keyword-overlap scoring.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
