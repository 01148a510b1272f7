package insights

import (
	"fmt"
	"strings"

	"resume-analyzer/internal/catalog"
)

var weakPhraseList = catalog.WeakPhrases()

type strengthRule struct {
	name string
	eval func(Input) (Strength, bool)
}

func (r strengthRule) Name() string                     { return r.name }
func (r strengthRule) Evaluate(in Input) (Strength, bool) { return r.eval(in) }

type weaknessRule struct {
	name string
	eval func(Input) (Weakness, bool)
}

func (r weaknessRule) Name() string                     { return r.name }
func (r weaknessRule) Evaluate(in Input) (Weakness, bool) { return r.eval(in) }

// strengthRules is the fixed-order battery. Order is part of the contract:
// records are emitted in this sequence.
var strengthRules = []StrengthRule{
	strengthRule{name: "complete-contact", eval: func(in Input) (Strength, bool) {
		if !in.Profile.HasEmail || !in.Profile.HasPhone {
			return Strength{}, false
		}
		return Strength{
			Strength:             "Complete contact information",
			WhyItsStrong:         "Recruiters can reach you through both email and phone without hunting.",
			ATSBenefit:           "ATS parsers reliably file the application under your identity.",
			CompetitiveAdvantage: "Avoids the instant rejection that incomplete contact blocks trigger.",
		}, true
	}},
	strengthRule{name: "skill-portfolio", eval: func(in Input) (Strength, bool) {
		if in.Role != nil {
			matched := matchedSkills(in, in.Role.CoreSkills)
			if len(in.Role.CoreSkills) == 0 || len(matched)*100 < len(in.Role.CoreSkills)*60 {
				return Strength{}, false
			}
			return Strength{
				Strength:             fmt.Sprintf("Strong skill alignment with %s", in.Role.Name),
				WhyItsStrong:         fmt.Sprintf("You already cover most core skills %s roles screen for.", in.Role.Name),
				ATSBenefit:           "Role-specific keywords match the job description vocabulary directly.",
				CompetitiveAdvantage: "Positions you ahead of candidates who need significant reskilling.",
				Evidence:             "Matched: " + strings.Join(matched, ", "),
			}, true
		}
		if in.Profile.SkillCount < 10 {
			return Strength{}, false
		}
		return Strength{
			Strength:             "Broad technical skill portfolio",
			WhyItsStrong:         "A wide skill set signals adaptability across stacks and teams.",
			ATSBenefit:           "More keyword surface area improves match rates across postings.",
			CompetitiveAdvantage: "Qualifies you for a wider band of openings than narrow specialists.",
			Evidence:             fmt.Sprintf("%d recognized skills", in.Profile.SkillCount),
		}, true
	}},
	strengthRule{name: "quantified-achiever", eval: func(in Input) (Strength, bool) {
		if in.Profile.QuantifiedAchievements < 3 {
			return Strength{}, false
		}
		return Strength{
			Strength:             "Quantified impact throughout experience",
			WhyItsStrong:         "Numbers turn claims into evidence recruiters can verify and compare.",
			ATSBenefit:           "Metric-bearing bullets survive keyword screens and rank higher in reviews.",
			CompetitiveAdvantage: "Most resumes list duties; yours proves outcomes.",
			Evidence:             fmt.Sprintf("%d quantified achievements", in.Profile.QuantifiedAchievements),
		}, true
	}},
	strengthRule{name: "senior-signals", eval: func(in Input) (Strength, bool) {
		if in.Profile.ExperienceLevel != "Senior" {
			return Strength{}, false
		}
		return Strength{
			Strength:             "Senior-level experience profile",
			WhyItsStrong:         "Years and leadership signals support senior and staff-level applications.",
			ATSBenefit:           "Seniority keywords clear experience filters on senior postings.",
			CompetitiveAdvantage: "Opens higher-compensation bands closed to mid-level candidates.",
		}, true
	}},
	strengthRule{name: "technical-depth", eval: func(in Input) (Strength, bool) {
		if in.Profile.Sophistication != "Advanced" {
			return Strength{}, false
		}
		return Strength{
			Strength:             "Advanced technical sophistication",
			WhyItsStrong:         "Architecture and scale vocabulary shows depth beyond tool familiarity.",
			ATSBenefit:           "Matches the systems-design keywords senior job descriptions use.",
			CompetitiveAdvantage: "Distinguishes you from candidates who only list technologies.",
		}, true
	}},
	strengthRule{name: "action-verbs", eval: func(in Input) (Strength, bool) {
		if in.Profile.ActionVerbCount < 8 {
			return Strength{}, false
		}
		return Strength{
			Strength:             "Strong action-oriented language",
			WhyItsStrong:         "Ownership verbs communicate initiative instead of passive participation.",
			ATSBenefit:           "Action verbs are weighted positively by recruiter screening heuristics.",
			CompetitiveAdvantage: "Reads as a driver of results rather than a task executor.",
			Evidence:             fmt.Sprintf("%d strong action verbs", in.Profile.ActionVerbCount),
		}, true
	}},
	strengthRule{name: "education", eval: func(in Input) (Strength, bool) {
		if !in.Profile.HasEducation {
			return Strength{}, false
		}
		return Strength{
			Strength:             "Education credentials documented",
			WhyItsStrong:         "Formal credentials satisfy degree requirements many postings still carry.",
			ATSBenefit:           "Degree keywords pass education filters automatically.",
			CompetitiveAdvantage: "Keeps you eligible for employers with hard degree requirements.",
		}, true
	}},
	strengthRule{name: "project-portfolio", eval: func(in Input) (Strength, bool) {
		if in.Profile.ProjectCount < 2 {
			return Strength{}, false
		}
		return Strength{
			Strength:             "Demonstrated project portfolio",
			WhyItsStrong:         "Projects show initiative and applied skill beyond employed work.",
			ATSBenefit:           "Project descriptions add relevant keywords in natural context.",
			CompetitiveAdvantage: "Gives interviewers concrete material to dig into.",
			Evidence:             fmt.Sprintf("%d projects documented", in.Profile.ProjectCount),
		}, true
	}},
}

// weaknessRules is the fixed-order battery. Each rule hard-codes its own
// priority tier; the engine never re-ranks across rules.
var weaknessRules = []WeaknessRule{
	weaknessRule{name: "missing-email", eval: func(in Input) (Weakness, bool) {
		if in.Profile.HasEmail {
			return Weakness{}, false
		}
		return Weakness{
			Weakness:       "No email address on the resume",
			WhyProblematic: "Recruiters have no reliable way to contact you.",
			ATSImpact:      "Many ATS pipelines auto-reject applications without a parseable email.",
			HowItHurts:     "Even a perfect profile dies in the pipeline if nobody can respond to it.",
			SpecificFix:    "Add a professional email address to the header, plain text, not an image.",
			Timeline:       "Today",
			Priority:       PriorityCritical,
			Rationale:      "Contact information is a hard gate, not a scoring factor.",
		}, true
	}},
	weaknessRule{name: "missing-phone", eval: func(in Input) (Weakness, bool) {
		if in.Profile.HasPhone {
			return Weakness{}, false
		}
		return Weakness{
			Weakness:       "No phone number on the resume",
			WhyProblematic: "Phone screens are the default first step for most recruiters.",
			ATSImpact:      "Missing phone fields leave required ATS columns blank.",
			HowItHurts:     "Recruiters skip candidates they cannot schedule quickly.",
			SpecificFix:    "Add a phone number with country code next to your email.",
			Timeline:       "Today",
			Priority:       PriorityCritical,
			Rationale:      "Contact information is a hard gate, not a scoring factor.",
		}, true
	}},
	weaknessRule{name: "no-experience-section", eval: func(in Input) (Weakness, bool) {
		if len(in.Profile.Sections.Experience) > 0 {
			return Weakness{}, false
		}
		return Weakness{
			Weakness:       "No recognizable work experience section",
			WhyProblematic: "Experience is the first section recruiters look for.",
			ATSImpact:      "ATS section parsers cannot map your history to the job's requirements.",
			HowItHurts:     "The resume reads as unstructured text and gets skimmed past.",
			SpecificFix:    "Add an 'Experience' heading with role, company, dates, and bullets per position.",
			Timeline:       "1-2 weeks",
			Priority:       PriorityHigh,
			Rationale:      "Structure problems suppress every downstream signal.",
		}, true
	}},
	weaknessRule{name: "no-quantified-achievements", eval: func(in Input) (Weakness, bool) {
		if in.Profile.QuantifiedAchievements > 0 {
			return Weakness{}, false
		}
		return Weakness{
			Weakness:       "No quantified achievements",
			WhyProblematic: "Bullets without numbers read as duties, not results.",
			ATSImpact:      "Achievement metrics are a common recruiter search and ranking signal.",
			HowItHurts:     "Competing resumes with metrics look objectively stronger for the same work.",
			SpecificFix:    "Rewrite your top bullets with a number each: percentages, users, dollars, or time saved.",
			Timeline:       "1-2 weeks",
			Priority:       PriorityHigh,
			Rationale:      "High-leverage rewrite of existing content, no new experience needed.",
		}, true
	}},
	weaknessRule{name: "skill-gaps", eval: func(in Input) (Weakness, bool) {
		if in.Role != nil {
			missing := missingSkills(in, in.Role.CoreSkills)
			if len(missing) == 0 {
				return Weakness{}, false
			}
			return Weakness{
				Weakness:       fmt.Sprintf("Missing core skills for %s", in.Role.Name),
				WhyProblematic: fmt.Sprintf("%s screens assume these skills; absence reads as unqualified.", in.Role.Name),
				ATSImpact:      "Core-skill keywords are the primary ATS match criteria for the role.",
				HowItHurts:     "Ranked below candidates who list the full expected stack.",
				SpecificFix:    "Gain or surface evidence for: " + strings.Join(missing, ", "),
				Timeline:       "1-3 months",
				Priority:       PriorityHigh,
				Rationale:      "Role-targeted keyword gaps directly reduce match scores.",
			}, true
		}
		if in.Profile.SkillCount >= 5 {
			return Weakness{}, false
		}
		return Weakness{
			Weakness:       "Thin technical skill coverage",
			WhyProblematic: "Few recognized skills give screens little to match on.",
			ATSImpact:      "Low keyword density lowers ranking against every posting.",
			HowItHurts:     "You disappear from recruiter keyword searches entirely.",
			SpecificFix:    "List every technology you have used professionally in a dedicated skills section.",
			Timeline:       "2-4 weeks",
			Priority:       PriorityHigh,
			Rationale:      "Often an articulation gap rather than a real skill gap.",
		}, true
	}},
	weaknessRule{name: "too-short", eval: func(in Input) (Weakness, bool) {
		if in.Profile.WordCount >= 200 {
			return Weakness{}, false
		}
		return Weakness{
			Weakness:       fmt.Sprintf("Resume is too short (%d words)", in.Profile.WordCount),
			WhyProblematic: "Professional resumes typically run 300-1000 words; this reads as incomplete.",
			ATSImpact:      "Sparse text gives the ATS too few signals to score.",
			HowItHurts:     "Recruiters assume missing experience rather than concise writing.",
			SpecificFix:    "Expand each role with 2-4 outcome-focused bullets and add a skills section.",
			Timeline:       "1-2 weeks",
			Priority:       PriorityHigh,
			Rationale:      "Length below the floor suppresses every other signal.",
		}, true
	}},
	weaknessRule{name: "weak-language", eval: func(in Input) (Weakness, bool) {
		found := weakPhrasesIn(in.Text)
		if len(found) == 0 {
			return Weakness{}, false
		}
		return Weakness{
			Weakness:       "Weak, passive experience language",
			WhyProblematic: "Phrases like '" + found[0] + "' describe proximity to work, not ownership of it.",
			ATSImpact:      "Passive constructions lack the action keywords screens reward.",
			HowItHurts:     "Reads as a supporting player next to candidates who claim their impact.",
			SpecificFix:    "Replace passive openers with strong verbs: built, led, reduced, shipped.",
			Timeline:       "1-2 weeks",
			Priority:       PriorityMedium,
			Rationale:      "Phrasing change only; the underlying experience already exists.",
		}, true
	}},
	weaknessRule{name: "no-education", eval: func(in Input) (Weakness, bool) {
		if in.Profile.HasEducation {
			return Weakness{}, false
		}
		return Weakness{
			Weakness:       "No education section found",
			WhyProblematic: "Many employers still filter on minimum education credentials.",
			ATSImpact:      "Blank education fields fail hard requirements automatically.",
			HowItHurts:     "Silently excluded from postings with degree requirements.",
			SpecificFix:    "Add an education section; include certifications or coursework if you lack a degree.",
			Timeline:       "Today",
			Priority:       PriorityMedium,
			Rationale:      "Cheap to fix; impact depends on the employer's filters.",
		}, true
	}},
	weaknessRule{name: "no-summary", eval: func(in Input) (Weakness, bool) {
		if len(in.Profile.Sections.Summary) > 0 {
			return Weakness{}, false
		}
		return Weakness{
			Weakness:       "No professional summary",
			WhyProblematic: "Recruiters spend seconds on a first pass; a summary frames that pass.",
			ATSImpact:      "The summary is prime keyword real estate near the top of the document.",
			HowItHurts:     "Readers form their own, often wrong, narrative of your profile.",
			SpecificFix:    "Add 2-3 lines stating your level, specialty, and headline achievement.",
			Timeline:       "This week",
			Priority:       PriorityLow,
			Rationale:      "Polish item once structural issues are fixed.",
		}, true
	}},
	weaknessRule{name: "too-long", eval: func(in Input) (Weakness, bool) {
		if in.Profile.WordCount <= 2000 {
			return Weakness{}, false
		}
		return Weakness{
			Weakness:       fmt.Sprintf("Resume is very long (%d words)", in.Profile.WordCount),
			WhyProblematic: "Length dilutes your strongest material and tires reviewers.",
			ATSImpact:      "Key terms get buried below the fold of parsed output.",
			HowItHurts:     "Reviewers skim and miss the bullets that would have sold you.",
			SpecificFix:    "Cut to the most recent and relevant decade; condense older roles to one line.",
			Timeline:       "2-4 weeks",
			Priority:       PriorityLow,
			Rationale:      "Worth fixing, but rarely the reason for a rejection on its own.",
		}, true
	}},
}

func matchedSkills(in Input, skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if in.Profile.HasSkill(s) {
			out = append(out, s)
		}
	}
	return out
}

func missingSkills(in Input, skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if !in.Profile.HasSkill(s) {
			out = append(out, s)
		}
	}
	return out
}

func weakPhrasesIn(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, phrase := range weakPhraseList {
		if strings.Contains(lower, phrase) {
			found = append(found, phrase)
		}
	}
	return found
}
