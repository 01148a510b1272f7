package parser

import (
	"reflect"
	"strings"
	"testing"
)

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567 | Portland, OR

Summary
Senior backend engineer with 8 years of experience building distributed systems.

Experience
Senior Software Engineer, Acme Corp (2018 - present)
- Designed microservices architecture serving 2M users
- Reduced API latency by 40% through query optimization
- Led a team of 5 engineers and improved deploy frequency 3x
Software Engineer, Widget Inc (2015 - 2018)
- Built CI/CD pipelines with Jenkins and Docker
- Implemented REST API endpoints in Python and Django

Education
B.S. Computer Science, State University, 2015

Skills
Python, Go, SQL, Docker, Kubernetes, Terraform, PostgreSQL, Redis, Git

Projects
- Open source contributor to a Kubernetes operator
- Built a personal finance tracker in React`

func TestParseContactDetection(t *testing.T) {
	p := Parse(sampleResume)
	if !p.HasEmail {
		t.Fatalf("expected email to be detected")
	}
	if !p.HasPhone {
		t.Fatalf("expected phone to be detected")
	}
}

func TestParseMissingContact(t *testing.T) {
	p := Parse("Skills\nPython, SQL")
	if p.HasEmail || p.HasPhone {
		t.Fatalf("expected no contact flags, got email=%v phone=%v", p.HasEmail, p.HasPhone)
	}
}

func TestParseSectionSegmentation(t *testing.T) {
	p := Parse(sampleResume)
	if len(p.Sections.Summary) == 0 {
		t.Fatalf("expected summary lines")
	}
	if len(p.Sections.Experience) < 5 {
		t.Fatalf("expected experience lines, got %d", len(p.Sections.Experience))
	}
	if len(p.Sections.Education) != 1 {
		t.Fatalf("expected 1 education line, got %d", len(p.Sections.Education))
	}
	if len(p.Sections.Skills) != 1 {
		t.Fatalf("expected 1 skills line, got %d", len(p.Sections.Skills))
	}
	if len(p.Sections.Projects) != 2 {
		t.Fatalf("expected 2 project lines, got %d", len(p.Sections.Projects))
	}
}

func TestParseLeadingTextDiscarded(t *testing.T) {
	p := Parse("Random preamble line\nAnother stray line\nSkills\nPython")
	if len(p.Sections.Summary) != 0 {
		t.Fatalf("expected preamble to be discarded, got %v", p.Sections.Summary)
	}
	if !reflect.DeepEqual(p.Sections.Skills, []string{"Python"}) {
		t.Fatalf("unexpected skills section: %v", p.Sections.Skills)
	}
}

func TestParseSkillsDeduplicatedSorted(t *testing.T) {
	p := Parse(sampleResume)
	if p.SkillCount != len(p.Skills) {
		t.Fatalf("skill count %d does not match skills %d", p.SkillCount, len(p.Skills))
	}
	seen := make(map[string]bool)
	last := ""
	for _, s := range p.Skills {
		if s != strings.ToLower(s) {
			t.Fatalf("expected lowercase skill, got %q", s)
		}
		if seen[s] {
			t.Fatalf("duplicate skill %q", s)
		}
		if s < last {
			t.Fatalf("skills not sorted: %q after %q", s, last)
		}
		seen[s] = true
		last = s
	}
	for _, want := range []string{"python", "docker", "kubernetes", "ci/cd"} {
		if !p.HasSkill(want) {
			t.Fatalf("expected skill %q, have %v", want, p.Skills)
		}
	}
}

func TestSkillWordBoundaries(t *testing.T) {
	p := Parse("Skills\nI enjoy Django development")
	if p.HasSkill("go") {
		t.Fatalf("expected 'go' not to match inside 'Django'")
	}
	if !p.HasSkill("django") {
		t.Fatalf("expected 'django' to match")
	}
}

func TestParseExperienceLevel(t *testing.T) {
	cases := []struct {
		name string
		text string
		want ExperienceLevel
	}{
		{"senior by years and title", sampleResume, LevelSenior},
		{"mid by years", "Experience\n4 years of backend development work", LevelMid},
		{"entry by intern keyword", "Experience\nSoftware engineering intern at a startup", LevelEntry},
		{"unknown when empty", "Skills\nPython", LevelUnknown},
		{"unknown on conflict", "Summary\nSenior intern", LevelUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Parse(tc.text).ExperienceLevel; got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestParseQuantifiedAchievements(t *testing.T) {
	p := Parse(sampleResume)
	// 2M users, 40%, 3x in experience; none in projects.
	if p.QuantifiedAchievements != 3 {
		t.Fatalf("expected 3 quantified achievements, got %d", p.QuantifiedAchievements)
	}
}

func TestParseWordCountMatchesTokens(t *testing.T) {
	p := Parse(sampleResume)
	if p.WordCount != len(strings.Fields(sampleResume)) {
		t.Fatalf("word count %d does not match token count %d", p.WordCount, len(strings.Fields(sampleResume)))
	}
}

func TestParseEducationAndProjects(t *testing.T) {
	p := Parse(sampleResume)
	if !p.HasEducation {
		t.Fatalf("expected education flag")
	}
	if p.ProjectCount != 2 {
		t.Fatalf("expected 2 projects, got %d", p.ProjectCount)
	}
}

func TestParseSparseInputDefaults(t *testing.T) {
	p := Parse("")
	if p.WordCount != 0 || p.SkillCount != 0 || p.QuantifiedAchievements != 0 || p.ProjectCount != 0 {
		t.Fatalf("expected zeroed counts, got %+v", p)
	}
	if p.ExperienceLevel != LevelUnknown {
		t.Fatalf("expected Unknown level, got %s", p.ExperienceLevel)
	}
	if p.Sophistication != SophisticationBasic {
		t.Fatalf("expected Basic sophistication, got %s", p.Sophistication)
	}
	if p.HasEmail || p.HasPhone || p.HasEducation {
		t.Fatalf("expected false flags on empty input")
	}
}

func TestParseDeterministic(t *testing.T) {
	first := Parse(sampleResume)
	second := Parse(sampleResume)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected deterministic parse output")
	}
}
