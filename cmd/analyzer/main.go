// Package main provides the resume analyzer command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "analyzer",
	Short: "ATS resume scoring and analysis",
	Long:  "Analyzer scores resumes the way applicant tracking systems do: deterministic section extraction, weighted category scoring, strength and weakness analysis, and role matching, with optional AI-generated insights.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
