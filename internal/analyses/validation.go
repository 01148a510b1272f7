package analyses

import (
	"fmt"
	"strings"
)

// Textual signals that the document is a resume rather than arbitrary prose.
var resumeIndicators = []string{
	"experience", "education", "skills", "work", "employment",
	"university", "college", "degree", "project", "internship",
	"software", "technical", "programming", "development",
}

const (
	minResumeChars      = 100
	minResumeIndicators = 3
	minResumeWords      = 200
	maxResumeWords      = 2000
)

// validateContent checks that the text looks like a usable resume. Findings
// are advisory: analysis always proceeds, the warnings surface in the report.
func validateContent(text string) []string {
	var warnings []string

	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minResumeChars {
		warnings = append(warnings, "Document too short to be a comprehensive resume")
		return warnings
	}

	lower := strings.ToLower(text)
	found := 0
	for _, indicator := range resumeIndicators {
		if strings.Contains(lower, indicator) {
			found++
		}
	}
	if found < minResumeIndicators {
		warnings = append(warnings, fmt.Sprintf("Content may not be a resume. Found only %d resume indicators.", found))
	}

	wordCount := len(strings.Fields(text))
	if wordCount < minResumeWords {
		warnings = append(warnings, fmt.Sprintf("Resume too short (%d words). Professional resumes typically contain 300-1000 words.", wordCount))
	} else if wordCount > maxResumeWords {
		warnings = append(warnings, fmt.Sprintf("Resume is quite long (%d words). Consider condensing for better ATS performance.", wordCount))
	}

	return warnings
}
