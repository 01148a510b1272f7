// Package report renders an analysis report as plain text for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"resume-analyzer/internal/analyses"
	"resume-analyzer/internal/insights"
	"resume-analyzer/internal/matcher"
	"resume-analyzer/internal/scoring"
)

// Options controls which sections are rendered.
type Options struct {
	TopRoles    int
	ShowAI      bool
	ShowRoadmap bool
}

// DefaultOptions renders everything with the matcher's suggestion cap.
func DefaultOptions() Options {
	return Options{TopRoles: 5, ShowAI: true, ShowRoadmap: true}
}

// Render writes the full report to w.
func Render(w io.Writer, r analyses.Report, opts Options) error {
	p := printer{w: w}

	p.heading("Resume Analysis Report")
	p.field("Report ID", r.ID)
	if r.TargetRole != "" {
		p.field("Target Role", r.TargetRole)
	}
	p.blank()

	if len(r.Warnings) > 0 {
		p.heading("Warnings")
		for _, warning := range r.Warnings {
			p.bullet(warning)
		}
		p.blank()
	}

	renderScore(&p, r.Score)
	renderProfile(&p, r)
	renderStrengths(&p, r.Strengths)
	renderWeaknesses(&p, r.Weaknesses)
	renderJobs(&p, r.Jobs, opts)

	if opts.ShowAI && (r.Analysis.Content != "" || r.Improvement.Content != "") {
		p.heading("AI Analysis")
		p.line(r.Analysis.Content)
		p.blank()
		if r.RoleAnalysis.Content != "" {
			p.heading("Role-Specific AI Analysis")
			p.line(r.RoleAnalysis.Content)
			p.blank()
		}
		p.heading("AI Improvement Recommendations")
		p.line(r.Improvement.Content)
		p.blank()
	}

	if len(r.StageErrors) > 0 {
		p.heading("Stage Errors")
		for _, se := range r.StageErrors {
			p.bullet(fmt.Sprintf("%s: %s", se.Stage, se.Err))
		}
		p.blank()
	}

	p.field("Estimated AI cost", fmt.Sprintf("$%.4f (%d tokens: %s)",
		r.Cost.EstimatedCostUSD, r.Cost.EstimatedTokens, strings.Join(r.Cost.AnalysisTypes, ", ")))

	return p.err
}

func renderScore(p *printer, score scoring.Breakdown) {
	p.heading("ATS Score")
	pct := 0.0
	if score.TotalMax > 0 {
		pct = float64(score.TotalScore) / float64(score.TotalMax) * 100
	}
	p.field("Total", fmt.Sprintf("%d/%d (%.1f%%)", score.TotalScore, score.TotalMax, pct))
	p.field("Assessment", fmt.Sprintf("%s - %s", score.Assessment.Level, score.Assessment.Description))
	p.field("Recommendation", score.Assessment.Recommendation)
	p.blank()

	for _, cat := range score.Categories {
		p.line(fmt.Sprintf("  %-24s %d/%d", cat.Name, cat.Score, cat.Max))
		for _, f := range cat.Details {
			p.line(fmt.Sprintf("    [%s] %s", f.Tag, f.Text))
		}
	}
	p.blank()
}

func renderProfile(p *printer, r analyses.Report) {
	p.heading("Profile Summary")
	p.field("Experience level", string(r.Profile.ExperienceLevel))
	p.field("Skills detected", fmt.Sprintf("%d", r.Profile.SkillCount))
	p.field("Quantified achievements", fmt.Sprintf("%d", r.Profile.QuantifiedAchievements))
	p.field("Projects", fmt.Sprintf("%d", r.Profile.ProjectCount))
	p.field("Resume length", fmt.Sprintf("%d words", r.Profile.WordCount))
	p.blank()
}

func renderStrengths(p *printer, strengths []insights.Strength) {
	p.heading(fmt.Sprintf("Strengths (%d)", len(strengths)))
	for _, s := range strengths {
		p.bullet(s.Strength)
		p.sub("Why", s.WhyItsStrong)
		p.sub("ATS benefit", s.ATSBenefit)
		if s.Evidence != "" {
			p.sub("Evidence", s.Evidence)
		}
	}
	p.blank()
}

func renderWeaknesses(p *printer, weaknesses []insights.Weakness) {
	p.heading(fmt.Sprintf("Weaknesses (%d)", len(weaknesses)))
	for _, w := range weaknesses {
		p.bullet(fmt.Sprintf("[%s] %s", w.Priority, w.Weakness))
		p.sub("Why it hurts", w.WhyProblematic)
		p.sub("Fix", w.SpecificFix)
		p.sub("Timeline", w.Timeline)
	}
	p.blank()
}

func renderJobs(p *printer, jobs matcher.JobAnalysis, opts Options) {
	p.heading("Role Matches")
	p.field("Overall readiness", fmt.Sprintf("%.1f%% (%s)", jobs.OverallReadiness.ReadinessScore, jobs.OverallReadiness.ReadinessLevel))
	p.field("Recommendation", jobs.OverallReadiness.OverallRecommendation)
	p.blank()

	suggestions := jobs.RoleSuggestions
	if opts.TopRoles > 0 && len(suggestions) > opts.TopRoles {
		suggestions = suggestions[:opts.TopRoles]
	}
	for i, match := range suggestions {
		p.line(fmt.Sprintf("%d. %s - %.1f%% (%s)", i+1, match.Role, match.CompatibilityScore, match.FitLevel))
		p.sub("Fit", match.FitExplanation)
		p.sub("Timeline", match.ReadinessTimeline)
		p.sub("Salary", match.MarketInsights.SalaryRange)
		if len(match.TechnicalAlignment.Gaps.Critical) > 0 {
			p.sub("Critical gaps", strings.Join(match.TechnicalAlignment.Gaps.Critical, ", "))
		}
		if len(match.DevelopmentPlan.ImmediateActions) > 0 {
			p.sub("Next step", match.DevelopmentPlan.ImmediateActions[0])
		}
	}
	p.blank()

	if opts.ShowRoadmap {
		p.heading("Career Roadmap")
		p.field("30 days", jobs.CareerRoadmap.Days30)
		p.field("90 days", jobs.CareerRoadmap.Days90)
		p.field("6 months", jobs.CareerRoadmap.Months6)
		p.field("12 months", jobs.CareerRoadmap.Months12)
		p.blank()
	}
}

// printer accumulates the first write error so callers check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) heading(s string) {
	p.write(s + "\n" + strings.Repeat("=", len(s)) + "\n")
}

func (p *printer) line(s string) { p.write(s + "\n") }

func (p *printer) blank() { p.write("\n") }

func (p *printer) field(name, value string) {
	p.write(fmt.Sprintf("%s: %s\n", name, value))
}

func (p *printer) bullet(s string) { p.write("- " + s + "\n") }

func (p *printer) sub(name, value string) {
	if value == "" {
		return
	}
	p.write(fmt.Sprintf("    %s: %s\n", name, value))
}
