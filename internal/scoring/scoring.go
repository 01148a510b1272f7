// Package scoring computes the weighted ATS score breakdown for a parsed
// resume profile. Every sub-scorer is a pure function of the profile (and the
// target role's catalog entry when one is set), so identical inputs always
// produce identical output.
package scoring

import (
	"fmt"

	"resume-analyzer/internal/catalog"
	"resume-analyzer/internal/parser"
)

// Tag marks the severity of a single finding for downstream rendering.
type Tag string

const (
	TagPass Tag = "pass"
	TagFail Tag = "fail"
	TagWarn Tag = "warn"
)

// Finding is one human-readable scoring observation.
type Finding struct {
	Tag  Tag
	Text string
}

// Category is the scored result of one sub-scorer.
type Category struct {
	Name    string
	Score   int
	Max     int
	Details []Finding
}

// Assessment is the synthetic overall verdict derived from the total score.
type Assessment struct {
	Level          string
	Description    string
	Recommendation string
}

// Breakdown is the full scoring result. TotalScore is always the exact sum of
// the category scores and is never reported without TotalMax.
type Breakdown struct {
	Categories []Category
	TotalScore int
	TotalMax   int
	Assessment Assessment
}

// Category weights. They must sum to totalMax.
const (
	maxContact      = 15
	maxTechnical    = 30
	maxExperience   = 25
	maxQuantified   = 20
	maxOptimization = 10
	totalMax        = 100
)

// Score computes the weighted breakdown. targetRole may be empty; an unknown
// or empty role scores Technical Skills against the generic keyword catalog.
func Score(p parser.Profile, targetRole string) Breakdown {
	var role *catalog.Role
	if r, ok := catalog.Lookup(targetRole); ok {
		role = &r
	}

	categories := []Category{
		scoreContact(p),
		scoreTechnical(p, role),
		scoreExperience(p),
		scoreQuantified(p),
		scoreOptimization(p),
	}

	total := 0
	for i := range categories {
		categories[i].Score = clamp(categories[i].Score, 0, categories[i].Max)
		total += categories[i].Score
	}

	return Breakdown{
		Categories: categories,
		TotalScore: total,
		TotalMax:   totalMax,
		Assessment: AssessmentForPercent(percent(total, totalMax)),
	}
}

func scoreContact(p parser.Profile) Category {
	c := Category{Name: "Contact Information", Max: maxContact}
	if p.HasEmail {
		c.Score += 8
		c.add(TagPass, "Email address present")
	} else {
		c.add(TagFail, "No email address found - recruiters cannot reach you")
	}
	if p.HasPhone {
		c.Score += 7
		c.add(TagPass, "Phone number present")
	} else {
		c.add(TagFail, "No phone number found")
	}
	return c
}

func scoreTechnical(p parser.Profile, role *catalog.Role) Category {
	c := Category{Name: "Technical Skills", Max: maxTechnical}
	if role != nil {
		return scoreTechnicalForRole(c, p, *role)
	}

	c.Score = p.SkillCount * 2
	if c.Score > 24 {
		c.Score = 24
	}
	switch {
	case p.SkillCount >= 10:
		c.add(TagPass, fmt.Sprintf("Broad skill portfolio: %d recognized skills", p.SkillCount))
	case p.SkillCount >= 5:
		c.add(TagWarn, fmt.Sprintf("Moderate skill coverage: %d recognized skills", p.SkillCount))
	case p.SkillCount > 0:
		c.add(TagFail, fmt.Sprintf("Only %d recognized skills - expand your skills section", p.SkillCount))
	default:
		c.add(TagFail, "No recognized technical skills found")
	}
	switch p.Sophistication {
	case parser.SophisticationAdvanced:
		c.Score += 6
		c.add(TagPass, "Advanced technical depth signaled")
	case parser.SophisticationIntermediate:
		c.Score += 3
		c.add(TagWarn, "Intermediate technical depth - add architecture or scale context")
	default:
		c.add(TagWarn, "Little technical depth beyond tool names")
	}
	return c
}

func scoreTechnicalForRole(c Category, p parser.Profile, role catalog.Role) Category {
	coreMatched := matchedCount(p, role.CoreSkills)
	fwMatched := matchedCount(p, role.Frameworks)

	corePoints := proRata(coreMatched, len(role.CoreSkills), 20)
	fwPoints := proRata(fwMatched, len(role.Frameworks), 10)
	c.Score = corePoints + fwPoints

	if coreMatched == len(role.CoreSkills) && len(role.CoreSkills) > 0 {
		c.add(TagPass, fmt.Sprintf("All %d core skills for %s covered", coreMatched, role.Name))
	} else if coreMatched > 0 {
		c.add(TagWarn, fmt.Sprintf("%d of %d core skills for %s covered", coreMatched, len(role.CoreSkills), role.Name))
	} else {
		c.add(TagFail, fmt.Sprintf("No core skills for %s found", role.Name))
	}
	if fwMatched > 0 {
		c.add(TagPass, fmt.Sprintf("%d of %d relevant frameworks covered", fwMatched, len(role.Frameworks)))
	} else {
		c.add(TagWarn, fmt.Sprintf("No %s frameworks found - add tooling you have used", role.Name))
	}
	return c
}

func scoreExperience(p parser.Profile) Category {
	c := Category{Name: "Experience Quality", Max: maxExperience}
	if len(p.Sections.Experience) > 0 {
		c.Score += 8
		c.add(TagPass, "Dedicated experience section present")
	} else {
		c.add(TagFail, "No experience section found")
	}
	switch p.ExperienceLevel {
	case parser.LevelSenior:
		c.Score += 10
		c.add(TagPass, "Senior-level experience signals")
	case parser.LevelMid:
		c.Score += 7
		c.add(TagPass, "Mid-level experience signals")
	case parser.LevelEntry:
		c.Score += 4
		c.add(TagWarn, "Entry-level experience signals")
	default:
		c.add(TagWarn, "Experience level could not be determined")
	}
	switch {
	case p.ActionVerbCount >= 8:
		c.Score += 7
		c.add(TagPass, fmt.Sprintf("Strong action verb usage (%d)", p.ActionVerbCount))
	case p.ActionVerbCount >= 4:
		c.Score += 4
		c.add(TagWarn, fmt.Sprintf("Moderate action verb usage (%d)", p.ActionVerbCount))
	case p.ActionVerbCount >= 1:
		c.Score += 2
		c.add(TagWarn, fmt.Sprintf("Weak action verb usage (%d)", p.ActionVerbCount))
	default:
		c.add(TagFail, "No strong action verbs found")
	}
	return c
}

func scoreQuantified(p parser.Profile) Category {
	c := Category{Name: "Quantified Achievements", Max: maxQuantified}
	switch {
	case p.QuantifiedAchievements >= 5:
		c.Score = 20
		c.add(TagPass, fmt.Sprintf("%d quantified achievements - excellent impact evidence", p.QuantifiedAchievements))
	case p.QuantifiedAchievements >= 3:
		c.Score = 15
		c.add(TagPass, fmt.Sprintf("%d quantified achievements", p.QuantifiedAchievements))
	case p.QuantifiedAchievements >= 1:
		c.Score = 8
		c.add(TagWarn, fmt.Sprintf("Only %d quantified achievement(s) - add metrics to more bullets", p.QuantifiedAchievements))
	default:
		c.add(TagFail, "No quantified achievements - add numbers, percentages, or dollar impact")
	}
	return c
}

func scoreOptimization(p parser.Profile) Category {
	c := Category{Name: "Content Optimization", Max: maxOptimization}
	switch {
	case p.WordCount >= 300 && p.WordCount <= 1000:
		c.Score += 6
		c.add(TagPass, fmt.Sprintf("Resume length is ATS-friendly (%d words)", p.WordCount))
	case (p.WordCount >= 200 && p.WordCount < 300) || (p.WordCount > 1000 && p.WordCount <= 2000):
		c.Score += 3
		c.add(TagWarn, fmt.Sprintf("Resume length is workable but not ideal (%d words)", p.WordCount))
	default:
		c.add(TagFail, fmt.Sprintf("Resume length hurts ATS parsing (%d words)", p.WordCount))
	}
	if p.HasEducation {
		c.Score += 2
		c.add(TagPass, "Education documented")
	} else {
		c.add(TagWarn, "No education section found")
	}
	if len(p.Sections.Summary) > 0 {
		c.Score += 2
		c.add(TagPass, "Professional summary present")
	} else {
		c.add(TagWarn, "No summary section - add a short professional summary")
	}
	return c
}

// AssessmentForPercent maps a total-score percentage onto the fixed verdict
// bands. The thresholds and wording are stable contract outputs.
func AssessmentForPercent(pct float64) Assessment {
	switch {
	case pct >= 80:
		return Assessment{
			Level:          "Excellent",
			Description:    "Well-positioned for job applications",
			Recommendation: "Ready for applications",
		}
	case pct >= 70:
		return Assessment{
			Level:          "Very Good",
			Description:    "Strong profile with small gaps",
			Recommendation: "Minor improvements beneficial",
		}
	case pct >= 60:
		return Assessment{
			Level:          "Good",
			Description:    "Solid foundation with improvement opportunities",
			Recommendation: "Some improvements needed",
		}
	case pct >= 45:
		return Assessment{
			Level:          "Fair",
			Description:    "Noticeable gaps reduce recruiter interest",
			Recommendation: "Significant improvements required",
		}
	default:
		return Assessment{
			Level:          "Needs Work",
			Description:    "Requires significant enhancements",
			Recommendation: "Major overhaul required",
		}
	}
}

func (c *Category) add(tag Tag, text string) {
	c.Details = append(c.Details, Finding{Tag: tag, Text: text})
}

func matchedCount(p parser.Profile, skills []string) int {
	n := 0
	for _, s := range skills {
		if p.HasSkill(s) {
			n++
		}
	}
	return n
}

func proRata(matched, total, points int) int {
	if total <= 0 {
		return 0
	}
	// Round half up to keep a full match worth exactly the category points.
	return (matched*points + total/2) / total
}

func percent(score, max int) float64 {
	if max <= 0 {
		return 0
	}
	return float64(score) * 100 / float64(max)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
