// Package analyses runs the resume analysis pipeline: extraction, content
// validation, profile parsing, scoring, strength/weakness analysis, role
// matching, cost estimation, and the optional AI passes. Stages run
// sequentially; a failing stage is recorded on the report and never takes
// down the rest of the run.
package analyses

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"resume-analyzer/internal/catalog"
	"resume-analyzer/internal/extract"
	"resume-analyzer/internal/insights"
	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/matcher"
	"resume-analyzer/internal/parser"
	"resume-analyzer/internal/scoring"
	"resume-analyzer/internal/shared/metrics"
	"resume-analyzer/internal/shared/telemetry"
)

// ErrNoInput is returned when a request carries neither a document nor text.
var ErrNoInput = errors.New("request must carry a document or text")

// Service contains the analysis pipeline. The zero value works: with no
// Advisor client the AI sections degrade to their fixed messages.
type Service struct {
	Advisor llm.Advisor
}

// Run executes the full pipeline for one request. The returned error is
// non-nil only for unusable requests; stage failures are recorded on the
// report instead.
func (s *Service) Run(ctx context.Context, req Request) (Report, error) {
	if len(req.Document) == 0 && req.Text == "" {
		return Report{}, ErrNoInput
	}

	report := Report{
		ID:         uuid.NewString(),
		TargetRole: req.TargetRole,
		CreatedAt:  time.Now().UTC(),
	}
	ctx = WithRequestID(ctx, report.ID)
	metrics.IncAnalysisStarted()
	started := time.Now()
	defer func() {
		report.Duration = time.Since(started)
		metrics.ObserveAnalysisDurationMs(float64(report.Duration.Milliseconds()))
		metrics.IncAnalysisCompleted()
	}()

	report.Text = req.Text
	if len(req.Document) > 0 {
		s.runStage(ctx, &report, StageExtract, func() error {
			text, err := extract.Text(ctx, req.Document, req.FileName)
			if err != nil {
				return err
			}
			report.Text = text
			return nil
		})
		if report.Failed(StageExtract) {
			return report, nil
		}
	}

	s.runStage(ctx, &report, StageValidate, func() error {
		report.Warnings = validateContent(report.Text)
		return nil
	})

	s.runStage(ctx, &report, StageParse, func() error {
		report.Profile = parser.Parse(report.Text)
		return nil
	})

	s.runStage(ctx, &report, StageScore, func() error {
		report.Score = scoring.Score(report.Profile, req.TargetRole)
		return nil
	})

	s.runStage(ctx, &report, StageInsights, func() error {
		report.Strengths, report.Weaknesses = insights.Analyze(report.Text, report.Profile, req.TargetRole)
		return nil
	})

	s.runStage(ctx, &report, StageMatch, func() error {
		report.Jobs = matcher.Match(report.Text, report.Profile, req.TargetRole)
		return nil
	})

	s.runStage(ctx, &report, StageCostEstimate, func() error {
		report.Cost = llm.EstimateCost(report.Text, req.TargetRole)
		return nil
	})

	if req.IncludeAI {
		s.runAI(ctx, &report, req)
	}

	return report, nil
}

func (s *Service) runAI(ctx context.Context, report *Report, req Request) {
	s.runStage(ctx, report, StageAIAnalysis, func() error {
		out := s.Advisor.ComprehensiveAnalysis(ctx, report.Text, req.TargetRole)
		report.Analysis = AISection{Content: out, Degraded: llm.Degraded(out)}
		return nil
	})

	if role, ok := catalog.Lookup(req.TargetRole); ok {
		s.runStage(ctx, report, StageAIRole, func() error {
			out := s.Advisor.RoleAnalysis(ctx, report.Text, llm.RoleContext{
				Name:       role.Name,
				CoreSkills: role.CoreSkills,
				Frameworks: role.Frameworks,
				DailyTasks: role.DailyTasks,
				TechStack:  role.TechStack,
			})
			report.RoleAnalysis = AISection{Content: out, Degraded: llm.Degraded(out)}
			return nil
		})
	}

	s.runStage(ctx, report, StageAIImprove, func() error {
		out := s.Advisor.ImprovementRecommendations(ctx, report.Text, weaknessSummaries(report.Weaknesses))
		report.Improvement = AISection{Content: out, Degraded: llm.Degraded(out)}
		return nil
	})
}

// runStage executes one pipeline stage, converting errors and panics into a
// StageError on the report.
func (s *Service) runStage(ctx context.Context, report *Report, stage string, fn func() error) {
	defer func() {
		if rec := recover(); rec != nil {
			telemetry.Error("stage panic", map[string]any{
				"request_id": requestIDFromContext(ctx),
				"stage":      stage,
				"error":      fmt.Sprint(rec),
				"stack":      string(debug.Stack()),
			})
			report.StageErrors = append(report.StageErrors, StageError{
				Stage: stage,
				Err:   fmt.Sprintf("panic: %v", rec),
			})
			metrics.IncStageFailed()
		}
	}()
	if err := fn(); err != nil {
		telemetry.Warn("stage failed", map[string]any{
			"request_id": requestIDFromContext(ctx),
			"stage":      stage,
			"error":      err.Error(),
		})
		report.StageErrors = append(report.StageErrors, StageError{Stage: stage, Err: err.Error()})
		metrics.IncStageFailed()
	}
}

func weaknessSummaries(weaknesses []insights.Weakness) []llm.WeaknessSummary {
	out := make([]llm.WeaknessSummary, 0, len(weaknesses))
	for _, w := range weaknesses {
		out = append(out, llm.WeaknessSummary{
			Description:    w.Weakness,
			WhyProblematic: w.WhyProblematic,
		})
	}
	return out
}
