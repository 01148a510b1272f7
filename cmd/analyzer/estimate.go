package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"resume-analyzer/internal/extract"
	"resume-analyzer/internal/llm"
)

var estimateCommand = &cobra.Command{
	Use:   "estimate <resume-file>",
	Short: "Estimate AI analysis token usage and cost without calling the API",
	Args:  cobra.ExactArgs(1),
	RunE:  runEstimateCmd,
}

var estimateRole string

func init() {
	estimateCommand.Flags().StringVarP(&estimateRole, "role", "r", "", "Target role (adds the role-specific analysis pass)")

	rootCmd.AddCommand(estimateCommand)
}

func runEstimateCmd(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	text, err := extract.Text(cmd.Context(), data, args[0])
	if err != nil {
		return err
	}

	est := llm.EstimateCost(text, estimateRole)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Analyses:         %s\n", strings.Join(est.AnalysisTypes, ", "))
	fmt.Fprintf(out, "Estimated tokens: %d (%d in, %d out)\n", est.EstimatedTokens, est.InputTokens, est.OutputTokens)
	fmt.Fprintf(out, "Estimated cost:   $%.4f\n", est.EstimatedCostUSD)
	return nil
}
