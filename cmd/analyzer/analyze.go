package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resume-analyzer/internal/analyses"
	"resume-analyzer/internal/extract"
	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/llm/openai"
	"resume-analyzer/internal/report"
	"resume-analyzer/internal/shared/config"
	"resume-analyzer/internal/shared/telemetry"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Analyze a resume file (PDF, DOCX, or plain text)",
	Long: `Runs the full analysis pipeline on a resume document: text extraction,
content validation, ATS scoring, strength/weakness analysis, and role
matching. With OPENAI_API_KEY configured, AI-generated analysis and
improvement recommendations are included; without it those sections degrade
gracefully and everything else still runs.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyzeCmd,
}

var (
	analyzeRole     string
	analyzeTopRoles int
	analyzeNoAI     bool
)

func init() {
	analyzeCommand.Flags().StringVarP(&analyzeRole, "role", "r", "", "Target role to score against (see 'analyzer roles')")
	analyzeCommand.Flags().IntVar(&analyzeTopRoles, "top", 5, "How many role matches to show")
	analyzeCommand.Flags().BoolVar(&analyzeNoAI, "no-ai", false, "Skip the AI analysis passes even when a key is configured")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) > extract.MaxDocumentBytes {
		return fmt.Errorf("%s is larger than the %dMB document limit", path, extract.MaxDocumentBytes/(1<<20))
	}

	cfg := config.Load()
	svc, err := buildService(cfg)
	if err != nil {
		return err
	}

	result, err := svc.Run(cmd.Context(), analyses.Request{
		Document:   data,
		FileName:   filepath.Base(path),
		TargetRole: analyzeRole,
		IncludeAI:  !analyzeNoAI,
	})
	if err != nil {
		return err
	}

	telemetry.Info("analysis complete", map[string]any{
		"request_id":   result.ID,
		"duration_ms":  result.Duration.Milliseconds(),
		"total_score":  result.Score.TotalScore,
		"stage_errors": len(result.StageErrors),
	})

	opts := report.DefaultOptions()
	opts.TopRoles = analyzeTopRoles
	opts.ShowAI = !analyzeNoAI
	return report.Render(cmd.OutOrStdout(), result, opts)
}

func buildService(cfg config.Config) (*analyses.Service, error) {
	svc := &analyses.Service{}
	if !cfg.HasCredential() {
		return svc, nil
	}
	client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.LLMTimeout)
	if err != nil {
		return nil, err
	}
	svc.Advisor = llm.Advisor{Client: client}
	return svc, nil
}
