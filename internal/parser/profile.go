package parser

// ExperienceLevel classifies overall seniority signals found in a resume.
type ExperienceLevel string

const (
	LevelEntry   ExperienceLevel = "Entry"
	LevelMid     ExperienceLevel = "Mid"
	LevelSenior  ExperienceLevel = "Senior"
	LevelUnknown ExperienceLevel = "Unknown"
)

// Sophistication tiers the technical depth signaled by the resume content.
type Sophistication string

const (
	SophisticationBasic        Sophistication = "Basic"
	SophisticationIntermediate Sophistication = "Intermediate"
	SophisticationAdvanced     Sophistication = "Advanced"
)

// Sections holds the raw extracted lines per recognized section, in document
// order. A missing section is an empty slice, never an error.
type Sections struct {
	Summary    []string
	Experience []string
	Education  []string
	Skills     []string
	Projects   []string
}

// Profile is the structured view of one resume document. It is built once by
// Parse and treated as immutable by every downstream component.
type Profile struct {
	HasEmail               bool
	HasPhone               bool
	ExperienceLevel        ExperienceLevel
	Skills                 []string // normalized lowercase, deduplicated, sorted
	SkillCount             int
	ProjectCount           int
	QuantifiedAchievements int
	Sophistication         Sophistication
	WordCount              int
	ActionVerbCount        int
	HasEducation           bool
	Sections               Sections
}

// HasSkill reports whether the normalized skill is present on the profile.
func (p Profile) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if s == normalizeSkill(skill) {
			return true
		}
	}
	return false
}
