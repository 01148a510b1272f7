package analyses

import (
	"time"

	"resume-analyzer/internal/insights"
	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/matcher"
	"resume-analyzer/internal/parser"
	"resume-analyzer/internal/scoring"
)

// Pipeline stage names used in stage errors and telemetry.
const (
	StageExtract      = "extract"
	StageValidate     = "validate"
	StageParse        = "parse"
	StageScore        = "score"
	StageInsights     = "insights"
	StageMatch        = "match"
	StageCostEstimate = "cost_estimate"
	StageAIAnalysis   = "ai_analysis"
	StageAIRole       = "ai_role_analysis"
	StageAIImprove    = "ai_improvement"
)

// Request describes one analysis run. Either Document+FileName or Text must
// be set; when both are present the document is extracted and Text is
// ignored.
type Request struct {
	Document   []byte
	FileName   string
	Text       string
	TargetRole string
	IncludeAI  bool
}

// StageError records a pipeline stage that failed. The rest of the report is
// still populated.
type StageError struct {
	Stage string `json:"stage"`
	Err   string `json:"error"`
}

// AISection carries the generated prose for one AI pass, or its degraded
// message.
type AISection struct {
	Content  string `json:"content"`
	Degraded bool   `json:"degraded"`
}

// Report is the complete output of one analysis run.
type Report struct {
	ID         string        `json:"id"`
	TargetRole string        `json:"targetRole,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	Duration   time.Duration `json:"duration"`

	Text       string               `json:"-"`
	Warnings   []string             `json:"warnings,omitempty"`
	Profile    parser.Profile       `json:"profile"`
	Score      scoring.Breakdown    `json:"score"`
	Strengths  []insights.Strength  `json:"strengths"`
	Weaknesses []insights.Weakness  `json:"weaknesses"`
	Jobs       matcher.JobAnalysis  `json:"jobs"`
	Cost       llm.CostEstimate     `json:"cost"`

	Analysis     AISection `json:"analysis"`
	RoleAnalysis AISection `json:"roleAnalysis,omitempty"`
	Improvement  AISection `json:"improvement"`

	StageErrors []StageError `json:"stageErrors,omitempty"`
}

// Failed reports whether the named stage recorded an error.
func (r Report) Failed(stage string) bool {
	for _, se := range r.StageErrors {
		if se.Stage == stage {
			return true
		}
	}
	return false
}
