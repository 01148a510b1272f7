// Package matcher ranks catalog roles by compatibility with a parsed profile
// and builds a development roadmap for the gaps. Compatibility bands are
// deliberately independent of the scoring package's assessment bands; the two
// signals may disagree for the same resume.
package matcher

import (
	"fmt"
	"sort"
	"strings"

	"resume-analyzer/internal/catalog"
	"resume-analyzer/internal/parser"
)

// FitLevel bands a compatibility percentage.
type FitLevel string

const (
	FitStrong FitLevel = "Strong"
	FitGood   FitLevel = "Good"
	FitFair   FitLevel = "Fair"
	FitPoor   FitLevel = "Poor"
)

// Fit band thresholds, in percent.
const (
	strongThreshold = 70
	goodThreshold   = 50
	fairThreshold   = 30
)

// Weight split between core skills and frameworks. A role without frameworks
// puts the full weight on core skills.
const (
	coreWeight      = 70.0
	frameworkWeight = 30.0
)

// maxSuggestions caps the ranked role list; a requested target role is always
// included even when it ranks below the cap.
const maxSuggestions = 5

// readinessTopN is how many top matches feed the overall readiness score.
const readinessTopN = 3

// SkillGaps splits missing role skills by severity: critical gaps are absent
// core skills, secondary gaps are absent frameworks.
type SkillGaps struct {
	Critical  []string
	Secondary []string
}

// Alignment describes the technical overlap between profile and role.
type Alignment struct {
	CoreSkillsMatched []string
	FrameworksMatched []string
	Gaps              SkillGaps
}

// MarketInsights carries the catalog's market metadata for a matched role.
type MarketInsights struct {
	SalaryRange   string
	GrowthOutlook string
	TechStack     string
	KeyEmployers  []string
}

// DevelopmentPlan lists templated actions by horizon. Critical gaps feed the
// immediate actions, secondary gaps the medium term.
type DevelopmentPlan struct {
	ImmediateActions []string
	MediumTerm       []string
	LongTerm         []string
}

// RoleMatch is one scored role recommendation.
type RoleMatch struct {
	Role               string
	CompatibilityScore float64
	FitLevel           FitLevel
	FitExplanation     string
	ReadinessTimeline  string
	TechnicalAlignment Alignment
	MarketInsights     MarketInsights
	DevelopmentPlan    DevelopmentPlan
}

// Readiness aggregates the top matches into one readiness verdict.
type Readiness struct {
	ReadinessScore        float64
	ReadinessLevel        FitLevel
	OverallRecommendation string
}

// Roadmap is a templated career development timeline.
type Roadmap struct {
	Days30   string
	Days90   string
	Months6  string
	Months12 string
}

// JobAnalysis is the full matcher output for one profile.
type JobAnalysis struct {
	OverallReadiness Readiness
	RoleSuggestions  []RoleMatch
	CareerRoadmap    Roadmap
}

// Match scores every catalog role against the profile and returns the ranked
// analysis. targetRole may be empty; a known target role is always present in
// the suggestions. Output is computed fresh per call and never cached.
func Match(text string, p parser.Profile, targetRole string) JobAnalysis {
	_ = text // reserved for future text-level signals; matching is profile-driven

	matches := make([]RoleMatch, 0, len(catalog.Roles()))
	for _, role := range catalog.Roles() {
		matches = append(matches, matchRole(p, role))
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].CompatibilityScore != matches[j].CompatibilityScore {
			return matches[i].CompatibilityScore > matches[j].CompatibilityScore
		}
		return matches[i].Role < matches[j].Role
	})

	readiness := overallReadiness(matches)
	suggestions := capSuggestions(matches, targetRole)

	return JobAnalysis{
		OverallReadiness: readiness,
		RoleSuggestions:  suggestions,
		CareerRoadmap:    roadmapFor(readiness.ReadinessLevel),
	}
}

func matchRole(p parser.Profile, role catalog.Role) RoleMatch {
	coreMatched, coreMissing := partitionSkills(p, role.CoreSkills)
	fwMatched, fwMissing := partitionSkills(p, role.Frameworks)

	score := compatibilityScore(len(coreMatched), len(role.CoreSkills), len(fwMatched), len(role.Frameworks))
	level := FitLevelForPercent(score)

	return RoleMatch{
		Role:               role.Name,
		CompatibilityScore: score,
		FitLevel:           level,
		FitExplanation:     explainFit(role, level, coreMatched, coreMissing),
		ReadinessTimeline:  readinessTimeline(level),
		TechnicalAlignment: Alignment{
			CoreSkillsMatched: coreMatched,
			FrameworksMatched: fwMatched,
			Gaps: SkillGaps{
				Critical:  coreMissing,
				Secondary: fwMissing,
			},
		},
		MarketInsights: MarketInsights{
			SalaryRange:   role.SalaryRange,
			GrowthOutlook: role.GrowthOutlook,
			TechStack:     role.TechStack,
			KeyEmployers:  append([]string(nil), role.KeyEmployers...),
		},
		DevelopmentPlan: developmentPlan(role, coreMissing, fwMissing),
	}
}

// compatibilityScore weights core-skill overlap at 70% and framework overlap
// at 30%, rounded to one decimal. A profile holding a role's full skill set
// scores exactly 100.
func compatibilityScore(coreMatched, coreTotal, fwMatched, fwTotal int) float64 {
	coreShare := coreWeight
	fwShare := frameworkWeight
	if fwTotal == 0 {
		coreShare = coreWeight + frameworkWeight
		fwShare = 0
	}
	if coreTotal == 0 {
		fwShare += coreShare
		coreShare = 0
	}

	score := 0.0
	if coreTotal > 0 {
		score += coreShare * float64(coreMatched) / float64(coreTotal)
	}
	if fwTotal > 0 {
		score += fwShare * float64(fwMatched) / float64(fwTotal)
	}
	return roundOneDecimal(score)
}

// FitLevelForPercent maps a compatibility percentage onto the fixed fit bands.
func FitLevelForPercent(pct float64) FitLevel {
	switch {
	case pct >= strongThreshold:
		return FitStrong
	case pct >= goodThreshold:
		return FitGood
	case pct >= fairThreshold:
		return FitFair
	default:
		return FitPoor
	}
}

func partitionSkills(p parser.Profile, skills []string) (matched, missing []string) {
	matched = make([]string, 0, len(skills))
	missing = make([]string, 0, len(skills))
	for _, s := range skills {
		if p.HasSkill(s) {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	return matched, missing
}

func explainFit(role catalog.Role, level FitLevel, matched, missing []string) string {
	switch level {
	case FitStrong:
		return fmt.Sprintf("Your skills cover most of what %s roles require (%s).", role.Name, strings.Join(matched, ", "))
	case FitGood:
		return fmt.Sprintf("Solid foundation for %s; closing a few gaps (%s) would make you competitive.", role.Name, strings.Join(missing, ", "))
	case FitFair:
		return fmt.Sprintf("Partial overlap with %s requirements; a focused learning plan is needed.", role.Name)
	default:
		return fmt.Sprintf("Limited overlap with %s requirements today; treat this as a longer-term direction.", role.Name)
	}
}

func readinessTimeline(level FitLevel) string {
	switch level {
	case FitStrong:
		return "Ready now"
	case FitGood:
		return "1-3 months of focused preparation"
	case FitFair:
		return "3-6 months of skill building"
	default:
		return "6-12 months of foundational work"
	}
}

func developmentPlan(role catalog.Role, critical, secondary []string) DevelopmentPlan {
	plan := DevelopmentPlan{
		ImmediateActions: make([]string, 0, len(critical)),
		MediumTerm:       make([]string, 0, len(secondary)),
	}
	for _, skill := range critical {
		plan.ImmediateActions = append(plan.ImmediateActions, fmt.Sprintf("Learn %s and add evidence of it to your resume", skill))
	}
	for _, skill := range secondary {
		plan.MediumTerm = append(plan.MediumTerm, fmt.Sprintf("Build a project using %s", skill))
	}
	plan.LongTerm = append(plan.LongTerm,
		fmt.Sprintf("Target the %s stack in your next role: %s", role.Name, role.TechStack),
		fmt.Sprintf("Follow hiring activity at: %s", strings.Join(role.KeyEmployers, ", ")),
	)
	return plan
}

// overallReadiness averages the top-N compatibility scores and reuses the fit
// band thresholds for the readiness level.
func overallReadiness(ranked []RoleMatch) Readiness {
	n := readinessTopN
	if len(ranked) < n {
		n = len(ranked)
	}
	if n == 0 {
		return Readiness{ReadinessLevel: FitPoor, OverallRecommendation: "No roles available to match against."}
	}
	sum := 0.0
	for _, m := range ranked[:n] {
		sum += m.CompatibilityScore
	}
	score := roundOneDecimal(sum / float64(n))
	level := FitLevelForPercent(score)
	return Readiness{
		ReadinessScore:        score,
		ReadinessLevel:        level,
		OverallRecommendation: readinessRecommendation(level),
	}
}

func readinessRecommendation(level FitLevel) string {
	switch level {
	case FitStrong:
		return "Start applying; your profile is competitive for your best-fit roles."
	case FitGood:
		return "Apply selectively while closing the highest-impact skill gaps."
	case FitFair:
		return "Prioritize skill development before wide application rounds."
	default:
		return "Build foundational skills and projects before targeting these roles."
	}
}

func capSuggestions(ranked []RoleMatch, targetRole string) []RoleMatch {
	out := make([]RoleMatch, 0, maxSuggestions)
	for _, m := range ranked {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m)
	}

	want := catalog.NormalizeRoleName(targetRole)
	if want == "" {
		return out
	}
	for _, m := range out {
		if catalog.NormalizeRoleName(m.Role) == want {
			return out
		}
	}
	for _, m := range ranked {
		if catalog.NormalizeRoleName(m.Role) == want {
			out = append(out, m)
			break
		}
	}
	return out
}

func roadmapFor(level FitLevel) Roadmap {
	switch level {
	case FitStrong:
		return Roadmap{
			Days30:   "Tailor your resume per application and start interviewing",
			Days90:   "Convert interviews into offers; benchmark compensation",
			Months6:  "Establish yourself in the new role and document early wins",
			Months12: "Grow scope toward the next seniority level",
		}
	case FitGood:
		return Roadmap{
			Days30:   "Close the top critical skill gap with a focused course or project",
			Days90:   "Apply to best-fit roles while finishing medium-term gaps",
			Months6:  "Build one substantial portfolio project in your target stack",
			Months12: "Land the target role and consolidate the new skills",
		}
	case FitFair:
		return Roadmap{
			Days30:   "Pick one target role and map its full skill list",
			Days90:   "Complete structured learning for the critical gaps",
			Months6:  "Ship two portfolio projects demonstrating the new skills",
			Months12: "Apply broadly with a rebuilt, evidence-backed resume",
		}
	default:
		return Roadmap{
			Days30:   "Assess your transferable skills and choose a direction",
			Days90:   "Finish a foundational course in your chosen field",
			Months6:  "Build first projects and join communities in the field",
			Months12: "Target entry-level or transitional roles with your new portfolio",
		}
	}
}

func roundOneDecimal(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
