// Package insights evaluates a parsed profile against an ordered battery of
// independent rules and emits ranked strength and weakness records with
// remediation guidance. Each rule inspects the profile (and raw text where a
// field alone is not enough), checks its own preconditions, and either emits
// one record or stays silent; no rule ever fails on missing data.
package insights

import (
	"resume-analyzer/internal/catalog"
	"resume-analyzer/internal/parser"
)

// Priority orders weakness fixes. Higher values sort first.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "CRITICAL"
	case PriorityHigh:
		return "HIGH"
	case PriorityMedium:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// Strength is one positive finding with its ATS and competitive framing.
type Strength struct {
	Strength             string
	WhyItsStrong         string
	ATSBenefit           string
	CompetitiveAdvantage string
	Evidence             string
}

// Weakness is one negative finding with remediation guidance. Priority is the
// ordered tier; Rationale carries the free-text tier justification separately.
type Weakness struct {
	Weakness       string
	WhyProblematic string
	ATSImpact      string
	HowItHurts     string
	SpecificFix    string
	Timeline       string
	Priority       Priority
	Rationale      string
}

// Input is what each rule sees: the raw text, the immutable profile, and the
// target role's catalog entry when one is set (nil otherwise).
type Input struct {
	Text    string
	Profile parser.Profile
	Role    *catalog.Role
}

// StrengthRule emits at most one strength record for an input.
type StrengthRule interface {
	Name() string
	Evaluate(Input) (Strength, bool)
}

// WeaknessRule emits at most one weakness record for an input.
type WeaknessRule interface {
	Name() string
	Evaluate(Input) (Weakness, bool)
}

// Analyze runs the full rule batteries in their fixed order. Weaknesses are
// grouped by priority tier (critical first); within a tier the battery's
// insertion order is preserved, never recomputed. targetRole may be empty or
// unknown, in which case role-aware rules fall back to generic checks.
func Analyze(text string, p parser.Profile, targetRole string) ([]Strength, []Weakness) {
	input := Input{Text: text, Profile: p}
	if role, ok := catalog.Lookup(targetRole); ok {
		input.Role = &role
	}

	strengths := make([]Strength, 0, len(strengthRules))
	for _, rule := range strengthRules {
		if s, ok := rule.Evaluate(input); ok {
			strengths = append(strengths, s)
		}
	}

	weaknesses := make([]Weakness, 0, len(weaknessRules))
	for _, rule := range weaknessRules {
		if w, ok := rule.Evaluate(input); ok {
			weaknesses = append(weaknesses, w)
		}
	}
	groupByTier(weaknesses)

	return strengths, weaknesses
}

// groupByTier stable-partitions weaknesses so higher tiers come first while
// insertion order survives within each tier.
func groupByTier(items []Weakness) {
	ordered := make([]Weakness, 0, len(items))
	for tier := PriorityCritical; tier >= PriorityLow; tier-- {
		for _, w := range items {
			if w.Priority == tier {
				ordered = append(ordered, w)
			}
		}
	}
	copy(items, ordered)
}
