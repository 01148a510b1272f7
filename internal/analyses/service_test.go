package analyses

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/shared/telemetry"
)

func TestMain(m *testing.M) {
	telemetry.SetOutput(io.Discard)
	m.Run()
}

const serviceResume = `Jane Doe
jane.doe@example.com
(555) 123-4567

Summary
Senior software engineer with 8 years of experience building backend platforms.

Experience
Senior Software Engineer, Acme Corp
- Led a team of 5 engineers and reduced API latency by 40%
- Designed microservices handling 2 million requests per day
- Implemented CI/CD pipelines and automated deployment workflows

Education
B.S. Computer Science, State University

Skills
Python, Go, SQL, Docker, Kubernetes, AWS, Git, Linux, REST APIs, PostgreSQL

Projects
- Built an open source monitoring tool used by 300 users
- Developed a technical documentation site for internal development teams
`

type fixedClient struct{ out string }

func (f fixedClient) Generate(context.Context, llm.Request) (string, error) {
	return f.out, nil
}

func TestRunRequiresInput(t *testing.T) {
	var s Service
	if _, err := s.Run(context.Background(), Request{}); !errors.Is(err, ErrNoInput) {
		t.Fatalf("err = %v, want ErrNoInput", err)
	}
}

func TestRunTextCompletesAllSections(t *testing.T) {
	var s Service
	report, err := s.Run(context.Background(), Request{Text: serviceResume, TargetRole: "Backend Developer", IncludeAI: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.ID == "" {
		t.Fatal("missing report ID")
	}
	if len(report.StageErrors) != 0 {
		t.Fatalf("stage errors = %v", report.StageErrors)
	}
	if !report.Profile.HasEmail {
		t.Fatal("profile missing email")
	}
	if report.Score.TotalScore <= 0 || report.Score.TotalMax != 100 {
		t.Fatalf("score = %d/%d", report.Score.TotalScore, report.Score.TotalMax)
	}
	if len(report.Strengths) == 0 {
		t.Fatal("no strengths")
	}
	if len(report.Jobs.RoleSuggestions) == 0 {
		t.Fatal("no role suggestions")
	}
	if report.Cost.EstimatedTokens == 0 {
		t.Fatal("no cost estimate")
	}
}

func TestRunWithoutCredentialDegradesAISections(t *testing.T) {
	var s Service
	report, err := s.Run(context.Background(), Request{Text: serviceResume, TargetRole: "DevOps Engineer", IncludeAI: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !report.Analysis.Degraded || report.Analysis.Content != llm.MsgAnalysisRequiresKey {
		t.Fatalf("analysis = %+v", report.Analysis)
	}
	if !report.RoleAnalysis.Degraded {
		t.Fatalf("role analysis = %+v", report.RoleAnalysis)
	}
	if !report.Improvement.Degraded || report.Improvement.Content != llm.MsgImprovementRequiresKey {
		t.Fatalf("improvement = %+v", report.Improvement)
	}
	// Deterministic sections are still fully populated.
	if report.Score.TotalScore <= 0 || len(report.Jobs.RoleSuggestions) == 0 {
		t.Fatal("deterministic sections missing")
	}
}

func TestRunWithClientPopulatesAISections(t *testing.T) {
	s := Service{Advisor: llm.Advisor{Client: fixedClient{out: "generated insight"}}}
	report, err := s.Run(context.Background(), Request{Text: serviceResume, TargetRole: "Backend Developer", IncludeAI: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for name, section := range map[string]AISection{
		"analysis":    report.Analysis,
		"role":        report.RoleAnalysis,
		"improvement": report.Improvement,
	} {
		if section.Degraded || section.Content != "generated insight" {
			t.Fatalf("%s section = %+v", name, section)
		}
	}
}

func TestRunSkipsAIWhenNotRequested(t *testing.T) {
	s := Service{Advisor: llm.Advisor{Client: fixedClient{out: "generated"}}}
	report, err := s.Run(context.Background(), Request{Text: serviceResume})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Analysis.Content != "" || report.Improvement.Content != "" {
		t.Fatalf("AI sections should be empty: %+v", report.Analysis)
	}
}

func TestRunUnknownRoleSkipsRoleAnalysis(t *testing.T) {
	s := Service{Advisor: llm.Advisor{Client: fixedClient{out: "generated"}}}
	report, err := s.Run(context.Background(), Request{Text: serviceResume, TargetRole: "Underwater Basket Weaver", IncludeAI: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.RoleAnalysis.Content != "" {
		t.Fatalf("role analysis should be skipped: %+v", report.RoleAnalysis)
	}
	if report.Analysis.Content != "generated" {
		t.Fatalf("analysis = %+v", report.Analysis)
	}
}

func TestRunTooShortTextStillProducesProfile(t *testing.T) {
	var s Service
	report, err := s.Run(context.Background(), Request{Text: "jane@example.com"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(report.Warnings) == 0 {
		t.Fatal("expected validation warning")
	}
	if !strings.Contains(report.Warnings[0], "too short") {
		t.Fatalf("warning = %q", report.Warnings[0])
	}
	if !report.Profile.HasEmail {
		t.Fatal("profile should still be parsed")
	}
	if report.Score.TotalMax != 100 {
		t.Fatal("score should still be computed")
	}
}

func TestRunCorruptDocumentRecordsExtractError(t *testing.T) {
	var s Service
	report, err := s.Run(context.Background(), Request{Document: []byte("not a pdf"), FileName: "resume.pdf"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !report.Failed(StageExtract) {
		t.Fatalf("expected extract stage error, got %v", report.StageErrors)
	}
	if report.Score.TotalScore != 0 {
		t.Fatal("pipeline should stop after failed extraction")
	}
}

func TestRunPlainTextDocument(t *testing.T) {
	var s Service
	report, err := s.Run(context.Background(), Request{Document: []byte(serviceResume), FileName: "resume.txt"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Failed(StageExtract) {
		t.Fatalf("stage errors = %v", report.StageErrors)
	}
	if !report.Profile.HasEmail || !report.Profile.HasPhone {
		t.Fatal("extracted document should parse contact details")
	}
}

func TestRunAssignsUniqueIDs(t *testing.T) {
	var s Service
	a, _ := s.Run(context.Background(), Request{Text: serviceResume})
	b, _ := s.Run(context.Background(), Request{Text: serviceResume})
	if a.ID == b.ID || a.ID == "" {
		t.Fatalf("ids = %q, %q", a.ID, b.ID)
	}
}
