// Package parser turns cleaned resume text into a structured Profile. It never
// fails: malformed or sparse input yields zeroed fields and Unknown
// classifications so downstream analysis can still run.
package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"resume-analyzer/internal/catalog"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s().\-]{5,}\d`)
	yearsPattern = regexp.MustCompile(`(\d{1,2})\s*\+?\s*(?:years?|yrs?)`)
	quantPattern = regexp.MustCompile(`(?i)(?:\$\s?\d|\d+(?:\.\d+)?\s*(?:%|percent|k\b|m\b|million|billion|users?|customers?|clients?|requests?|hours?|x\b))`)
)

var seniorKeywords = []string{"senior", "lead", "principal", "staff engineer", "architect", "head of"}

var juniorKeywords = []string{"intern", "internship", "junior", "entry level", "entry-level", "graduate", "trainee"}

var educationKeywords = []string{"bachelor", "master", "phd", "b.s.", "m.s.", "b.sc", "m.sc", "university", "college", "degree"}

// Parse extracts a Profile from cleaned resume text.
func Parse(text string) Profile {
	lower := strings.ToLower(text)
	sections := splitSections(text)
	skills := extractSkills(lower)

	p := Profile{
		HasEmail:               emailPattern.MatchString(text),
		HasPhone:               hasPhone(text),
		Skills:                 skills,
		SkillCount:             len(skills),
		WordCount:              len(strings.Fields(text)),
		ActionVerbCount:        countActionVerbs(lower),
		Sections:               sections,
		ProjectCount:           countProjects(sections.Projects),
		QuantifiedAchievements: countQuantified(sections.Experience, sections.Projects),
		Sophistication:         classifySophistication(lower),
		HasEducation:           hasEducation(lower, sections),
	}
	p.ExperienceLevel = classifyExperience(lower, sections)
	return p
}

func hasPhone(text string) bool {
	for _, candidate := range phonePattern.FindAllString(text, -1) {
		digits := 0
		for _, r := range candidate {
			if unicode.IsDigit(r) {
				digits++
			}
		}
		if digits >= 7 {
			return true
		}
	}
	return false
}

type sectionKind int

const (
	sectionNone sectionKind = iota
	sectionSummary
	sectionExperience
	sectionEducation
	sectionSkills
	sectionProjects
)

var headingKeywords = []struct {
	kind  sectionKind
	terms []string
}{
	{sectionExperience, []string{"experience", "employment", "work history", "professional background"}},
	{sectionEducation, []string{"education", "academic"}},
	{sectionSkills, []string{"skills", "technologies", "competencies"}},
	{sectionProjects, []string{"projects", "portfolio"}},
	{sectionSummary, []string{"summary", "objective", "profile", "about me"}},
}

// splitSections segments text into named blocks at recognized headings. Lines
// before the first heading are discarded; later unmatched lines attach to the
// preceding section.
func splitSections(text string) Sections {
	var out Sections
	current := sectionNone
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if kind, ok := classifyHeading(trimmed); ok {
			current = kind
			continue
		}
		switch current {
		case sectionSummary:
			out.Summary = append(out.Summary, trimmed)
		case sectionExperience:
			out.Experience = append(out.Experience, trimmed)
		case sectionEducation:
			out.Education = append(out.Education, trimmed)
		case sectionSkills:
			out.Skills = append(out.Skills, trimmed)
		case sectionProjects:
			out.Projects = append(out.Projects, trimmed)
		}
	}
	return out
}

func classifyHeading(line string) (sectionKind, bool) {
	normalized := strings.ToLower(strings.Trim(line, " :-–*#"))
	if normalized == "" || len(strings.Fields(normalized)) > 4 {
		return sectionNone, false
	}
	for _, group := range headingKeywords {
		for _, term := range group.terms {
			if strings.Contains(normalized, term) {
				return group.kind, true
			}
		}
	}
	return sectionNone, false
}

// extractSkills matches the catalog vocabulary against the whole document and
// dedupes by normalized lowercase form.
func extractSkills(lower string) []string {
	found := make(map[string]bool)
	for _, term := range catalog.SkillVocabulary() {
		if containsTerm(lower, term) {
			found[term] = true
		}
	}
	out := make([]string, 0, len(found))
	for skill := range found {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

func normalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// containsTerm reports whether term occurs in haystack at a word boundary.
// Both inputs must already be lowercase. Boundaries are non-alphanumeric runes,
// which keeps "go" from matching inside "django" while still matching terms
// with punctuation such as "c++" or "node.js".
func containsTerm(haystack, term string) bool {
	if term == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(haystack[start:], term)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(term)
		beforeOK := idx == 0 || !isWordRune(rune(haystack[idx-1]))
		afterOK := end == len(haystack) || !isWordRune(rune(haystack[end]))
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func countActionVerbs(lower string) int {
	verbs := make(map[string]bool)
	for _, v := range catalog.ActionVerbs() {
		verbs[v] = true
	}
	count := 0
	for _, tok := range tokenizeWords(lower) {
		if verbs[tok] {
			count++
		}
	}
	return count
}

func tokenizeWords(lower string) []string {
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// countQuantified counts bullet-like lines in the experience and project
// sections that carry a numeral with a percent, currency, or unit marker.
func countQuantified(sections ...[]string) int {
	count := 0
	for _, lines := range sections {
		for _, line := range lines {
			if quantPattern.MatchString(line) {
				count++
			}
		}
	}
	return count
}

func countProjects(lines []string) int {
	if len(lines) == 0 {
		return 0
	}
	count := 0
	for _, line := range lines {
		if isBulletLine(line) {
			count++
		}
	}
	if count == 0 {
		return 1
	}
	return count
}

func isBulletLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	switch trimmed[0] {
	case '-', '*', '+':
		return true
	}
	if r := []rune(trimmed)[0]; r == '•' || r == '‣' || r == '▪' {
		return true
	}
	return false
}

// classifyExperience derives a seniority tier from years mentioned, seniority
// keywords, and the size of the experience section. Conflicting or absent
// signals fall back to Unknown rather than failing.
func classifyExperience(lower string, sections Sections) ExperienceLevel {
	maxYears := maxYearsMentioned(lower)
	seniorHits := countTermHits(lower, seniorKeywords)
	juniorHits := countTermHits(lower, juniorKeywords)
	expLines := len(sections.Experience)

	if maxYears == 0 && seniorHits == 0 && juniorHits == 0 && expLines == 0 {
		return LevelUnknown
	}
	if seniorHits > 0 && juniorHits > 0 && maxYears == 0 {
		return LevelUnknown
	}
	switch {
	case maxYears >= 6, seniorHits > 0 && maxYears >= 3, seniorHits >= 2:
		return LevelSenior
	case maxYears >= 3, expLines >= 10 && juniorHits == 0:
		return LevelMid
	case juniorHits > 0, maxYears >= 1, expLines > 0:
		return LevelEntry
	default:
		return LevelUnknown
	}
}

func maxYearsMentioned(lower string) int {
	max := 0
	for _, m := range yearsPattern.FindAllStringSubmatch(lower, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > max && n < 60 {
			max = n
		}
	}
	return max
}

func countTermHits(lower string, terms []string) int {
	hits := 0
	for _, term := range terms {
		if containsTerm(lower, term) {
			hits++
		}
	}
	return hits
}

func classifySophistication(lower string) Sophistication {
	hits := countTermHits(lower, catalog.AdvancedKeywords())
	switch {
	case hits >= 5:
		return SophisticationAdvanced
	case hits >= 2:
		return SophisticationIntermediate
	default:
		return SophisticationBasic
	}
}

func hasEducation(lower string, sections Sections) bool {
	if len(sections.Education) > 0 {
		return true
	}
	return countTermHits(lower, educationKeywords) > 0
}
