package matcher

import (
	"reflect"
	"testing"

	"resume-analyzer/internal/catalog"
	"resume-analyzer/internal/parser"
)

func profileWithSkills(skills ...string) parser.Profile {
	return parser.Profile{Skills: skills, SkillCount: len(skills)}
}

func TestMatchRankingIsTotalOrder(t *testing.T) {
	analysis := Match("", profileWithSkills("python", "sql", "docker"), "")
	s := analysis.RoleSuggestions
	if len(s) == 0 {
		t.Fatalf("expected suggestions")
	}
	for i := 1; i < len(s); i++ {
		prev, cur := s[i-1], s[i]
		if cur.CompatibilityScore > prev.CompatibilityScore {
			t.Fatalf("ranking violated: %s (%.1f) after %s (%.1f)", cur.Role, cur.CompatibilityScore, prev.Role, prev.CompatibilityScore)
		}
		if cur.CompatibilityScore == prev.CompatibilityScore && cur.Role < prev.Role {
			t.Fatalf("tie not broken alphabetically: %s after %s", cur.Role, prev.Role)
		}
	}
}

func TestExactSkillSetScoresMaximum(t *testing.T) {
	role, ok := catalog.Lookup("DevOps Engineer")
	if !ok {
		t.Fatalf("catalog missing DevOps Engineer")
	}
	skills := append(append([]string{}, role.CoreSkills...), role.Frameworks...)
	analysis := Match("", profileWithSkills(skills...), "DevOps Engineer")

	var match *RoleMatch
	for i := range analysis.RoleSuggestions {
		if analysis.RoleSuggestions[i].Role == "DevOps Engineer" {
			match = &analysis.RoleSuggestions[i]
		}
	}
	if match == nil {
		t.Fatalf("expected DevOps Engineer in suggestions")
	}
	if match.CompatibilityScore != 100 {
		t.Fatalf("expected maximum compatibility, got %.1f", match.CompatibilityScore)
	}
	if len(match.TechnicalAlignment.Gaps.Critical) != 0 {
		t.Fatalf("expected no critical gaps, got %v", match.TechnicalAlignment.Gaps.Critical)
	}
	if match.FitLevel != FitStrong {
		t.Fatalf("expected Strong fit, got %s", match.FitLevel)
	}
}

func TestSkillGapsAreSetDifferences(t *testing.T) {
	role, _ := catalog.Lookup("DevOps Engineer")
	base := profileWithSkills("linux", "docker")
	more := profileWithSkills("linux", "docker", "kubernetes")

	gapsOf := func(p parser.Profile) SkillGaps {
		for _, m := range Match("", p, "DevOps Engineer").RoleSuggestions {
			if m.Role == role.Name {
				return m.TechnicalAlignment.Gaps
			}
		}
		t.Fatalf("role not found in suggestions")
		return SkillGaps{}
	}

	baseGaps := gapsOf(base)
	moreGaps := gapsOf(more)
	if len(moreGaps.Critical) >= len(baseGaps.Critical) {
		t.Fatalf("adding a skill must shrink critical gaps: %d -> %d", len(baseGaps.Critical), len(moreGaps.Critical))
	}
	for _, missing := range baseGaps.Critical {
		if missing == "linux" || missing == "docker" {
			t.Fatalf("held skill reported as gap: %s", missing)
		}
	}
}

func TestDevelopmentPlanTemplatedFromGaps(t *testing.T) {
	analysis := Match("", profileWithSkills("linux", "docker"), "DevOps Engineer")
	var m *RoleMatch
	for i := range analysis.RoleSuggestions {
		if analysis.RoleSuggestions[i].Role == "DevOps Engineer" {
			m = &analysis.RoleSuggestions[i]
		}
	}
	if m == nil {
		t.Fatalf("expected target role in suggestions")
	}
	if len(m.DevelopmentPlan.ImmediateActions) != len(m.TechnicalAlignment.Gaps.Critical) {
		t.Fatalf("immediate actions should mirror critical gaps")
	}
	if len(m.DevelopmentPlan.MediumTerm) != len(m.TechnicalAlignment.Gaps.Secondary) {
		t.Fatalf("medium-term actions should mirror secondary gaps")
	}
	if len(m.DevelopmentPlan.LongTerm) == 0 {
		t.Fatalf("expected long-term plan entries")
	}
}

func TestFitLevelBands(t *testing.T) {
	cases := []struct {
		pct  float64
		want FitLevel
	}{
		{100, FitStrong},
		{70, FitStrong},
		{69.9, FitGood},
		{50, FitGood},
		{49.9, FitFair},
		{30, FitFair},
		{29.9, FitPoor},
		{0, FitPoor},
	}
	for _, tc := range cases {
		if got := FitLevelForPercent(tc.pct); got != tc.want {
			t.Fatalf("pct %.1f: expected %s, got %s", tc.pct, tc.want, got)
		}
	}
}

func TestOverallReadinessUsesFitBands(t *testing.T) {
	analysis := Match("", profileWithSkills(), "")
	r := analysis.OverallReadiness
	if r.ReadinessLevel != FitLevelForPercent(r.ReadinessScore) {
		t.Fatalf("readiness level %s inconsistent with score %.1f", r.ReadinessLevel, r.ReadinessScore)
	}
	if r.OverallRecommendation == "" {
		t.Fatalf("expected a readiness recommendation")
	}
	if analysis.CareerRoadmap.Days30 == "" || analysis.CareerRoadmap.Months12 == "" {
		t.Fatalf("expected populated roadmap")
	}
}

func TestTargetRoleAlwaysIncluded(t *testing.T) {
	// A frontend-heavy profile should rank Data Analyst low, but requesting it
	// as target must keep it in the suggestions.
	p := profileWithSkills("javascript", "typescript", "html", "css", "react", "next.js", "vue", "tailwind", "webpack", "jest", "responsive design")
	analysis := Match("", p, "Data Analyst")
	found := false
	for _, m := range analysis.RoleSuggestions {
		if m.Role == "Data Analyst" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected target role in suggestions: %+v", analysis.RoleSuggestions)
	}
}

func TestMatchDeterministic(t *testing.T) {
	p := profileWithSkills("python", "sql", "machine learning")
	first := Match("", p, "Data Scientist")
	second := Match("", p, "Data Scientist")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical analyses for identical inputs")
	}
}
