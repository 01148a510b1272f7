package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-analyzer/internal/analyses"
	"resume-analyzer/internal/insights"
	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/matcher"
	"resume-analyzer/internal/parser"
	"resume-analyzer/internal/scoring"
)

func sampleReport() analyses.Report {
	return analyses.Report{
		ID:         "req-123",
		TargetRole: "Backend Developer",
		Profile: parser.Profile{
			ExperienceLevel:        parser.LevelSenior,
			SkillCount:             10,
			QuantifiedAchievements: 3,
			ProjectCount:           2,
			WordCount:              450,
			HasEmail:               true,
		},
		Score: scoring.Breakdown{
			Categories: []scoring.Category{
				{Name: "Contact Information", Score: 15, Max: 15, Details: []scoring.Finding{
					{Tag: scoring.TagPass, Text: "Email address present"},
				}},
			},
			TotalScore: 82,
			TotalMax:   100,
			Assessment: scoring.AssessmentForPercent(82),
		},
		Strengths: []insights.Strength{
			{Strength: "Complete contact information", WhyItsStrong: "Recruiters can reach you", ATSBenefit: "Passes contact checks"},
		},
		Weaknesses: []insights.Weakness{
			{Weakness: "No education section", WhyProblematic: "Some filters require it", SpecificFix: "Add an education section", Timeline: "1 week", Priority: insights.PriorityMedium},
		},
		Jobs: matcher.JobAnalysis{
			OverallReadiness: matcher.Readiness{ReadinessScore: 78.3, ReadinessLevel: matcher.FitStrong, OverallRecommendation: "Apply now"},
			RoleSuggestions: []matcher.RoleMatch{
				{Role: "Backend Developer", CompatibilityScore: 85.7, FitLevel: matcher.FitStrong, FitExplanation: "Strong overlap",
					MarketInsights: matcher.MarketInsights{SalaryRange: "$90k-$160k"},
					TechnicalAlignment: matcher.Alignment{Gaps: matcher.SkillGaps{Critical: []string{"sql"}}},
					DevelopmentPlan:    matcher.DevelopmentPlan{ImmediateActions: []string{"Learn sql fundamentals"}}},
				{Role: "Software Engineer", CompatibilityScore: 71.4, FitLevel: matcher.FitStrong},
			},
			CareerRoadmap: matcher.Roadmap{Days30: "Close critical gaps", Days90: "Ship a project", Months6: "Target interviews", Months12: "Level up scope"},
		},
		Cost: llm.CostEstimate{EstimatedTokens: 3500, EstimatedCostUSD: 0.0105, AnalysisTypes: []string{"Comprehensive Analysis", "Role-Specific Analysis"}},
		Analysis: analyses.AISection{Content: llm.MsgAnalysisRequiresKey, Degraded: true},
		Improvement: analyses.AISection{Content: llm.MsgImprovementRequiresKey, Degraded: true},
	}
}

func TestRenderIncludesAllSections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(), DefaultOptions()))
	out := buf.String()

	for _, want := range []string{
		"Resume Analysis Report",
		"Report ID: req-123",
		"Target Role: Backend Developer",
		"Total: 82/100 (82.0%)",
		"Contact Information",
		"[pass] Email address present",
		"Experience level: Senior",
		"Strengths (1)",
		"- Complete contact information",
		"Weaknesses (1)",
		"[MEDIUM] No education section",
		"1. Backend Developer - 85.7%",
		"Critical gaps: sql",
		"Career Roadmap",
		"30 days: Close critical gaps",
		llm.MsgAnalysisRequiresKey,
		"$0.0105 (3500 tokens",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderTopRolesCap(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.TopRoles = 1
	require.NoError(t, Render(&buf, sampleReport(), opts))

	out := buf.String()
	assert.Contains(t, out, "1. Backend Developer")
	assert.NotContains(t, out, "2. Software Engineer")
}

func TestRenderHidesAIAndRoadmapWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{TopRoles: 5}
	require.NoError(t, Render(&buf, sampleReport(), opts))

	out := buf.String()
	assert.NotContains(t, out, "AI Analysis")
	assert.NotContains(t, out, "Career Roadmap")
}

func TestRenderStageErrors(t *testing.T) {
	r := sampleReport()
	r.StageErrors = []analyses.StageError{{Stage: "extract", Err: "document exceeds size limit"}}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, DefaultOptions()))
	assert.Contains(t, buf.String(), "- extract: document exceeds size limit")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestRenderPropagatesWriteError(t *testing.T) {
	err := Render(failingWriter{}, sampleReport(), DefaultOptions())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "pipe closed"))
}
