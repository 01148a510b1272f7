package llm

import (
	"fmt"
	"strings"
)

// Per-call character budgets for the resume text embedded in prompts.
const (
	comprehensiveTextBudget = 4000
	roleTextBudget          = 3500
	improvementTextBudget   = 3000
)

// maxWeaknessesInPrompt caps how many weakness records the improvement prompt
// summarizes.
const maxWeaknessesInPrompt = 5

const improvementSystemPrompt = "You are an expert career coach specializing in resume optimization and professional development. Provide specific, actionable improvement recommendations."

func comprehensiveSystemPrompt(targetRole string) string {
	if targetRole == "" {
		return "You are a senior technical recruiter and career consultant with 15+ years of experience in resume optimization, ATS systems, and technical hiring. Provide detailed, specific, and actionable feedback. Avoid generic advice."
	}
	return roleSystemPrompt(targetRole)
}

func roleSystemPrompt(targetRole string) string {
	return fmt.Sprintf("You are a specialized technical hiring manager for %[1]s positions with deep knowledge of %[1]s industry requirements, current technology stacks, market demand, and career progression paths. Be specific about technical gaps and market positioning.", targetRole)
}

func comprehensivePrompt(resumeText, targetRole string) string {
	var b strings.Builder
	b.WriteString("Analyze this resume comprehensively and provide detailed, actionable insights.\n\n")
	b.WriteString("RESUME CONTENT:\n")
	b.WriteString(truncate(resumeText, comprehensiveTextBudget))
	if targetRole != "" {
		b.WriteString("\nTARGET ROLE: " + targetRole)
	}
	b.WriteString(`

Provide detailed analysis in the following structure:

## EXECUTIVE SUMMARY
## TECHNICAL COMPETENCY ANALYSIS
## PROFESSIONAL PRESENTATION ASSESSMENT
## ATS OPTIMIZATION EVALUATION
## COMPETITIVE POSITIONING ANALYSIS
## PRIORITY ACTION PLAN

Be specific, direct, and actionable. Provide concrete examples and avoid generic advice.`)
	return b.String()
}

func rolePrompt(resumeText string, role RoleContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this resume specifically for %s positions with deep technical expertise.\n\n", role.Name)
	b.WriteString("RESUME CONTENT:\n")
	b.WriteString(truncate(resumeText, roleTextBudget))
	fmt.Fprintf(&b, "\n\n%s ROLE REQUIREMENTS:\n", strings.ToUpper(role.Name))
	fmt.Fprintf(&b, "- Core Technical Skills: %s\n", strings.Join(role.CoreSkills, ", "))
	fmt.Fprintf(&b, "- Key Frameworks/Tools: %s\n", strings.Join(role.Frameworks, ", "))
	fmt.Fprintf(&b, "- Daily Responsibilities: %s\n", strings.Join(role.DailyTasks, ", "))
	fmt.Fprintf(&b, "- Typical Tech Stack: %s\n", role.TechStack)
	b.WriteString(`
Provide detailed technical analysis:

## ROLE COMPATIBILITY ASSESSMENT
## CRITICAL SKILL GAP ANALYSIS
## EXPERIENCE REPOSITIONING STRATEGY
## MARKET POSITIONING
## INTERVIEW PREPARATION

Focus on what separates strong candidates from average ones for this role.`)
	return b.String()
}

func improvementPrompt(resumeText string, weaknesses []WeaknessSummary) string {
	if len(weaknesses) > maxWeaknessesInPrompt {
		weaknesses = weaknesses[:maxWeaknessesInPrompt]
	}
	lines := make([]string, 0, len(weaknesses))
	for _, w := range weaknesses {
		why := w.WhyProblematic
		if why == "" {
			why = "Impacts job prospects"
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", w.Description, why))
	}

	var b strings.Builder
	b.WriteString("Based on this resume and identified weaknesses, provide a comprehensive improvement action plan.\n\n")
	b.WriteString("RESUME CONTENT:\n")
	b.WriteString(truncate(resumeText, improvementTextBudget))
	b.WriteString("\n\nKEY WEAKNESSES IDENTIFIED:\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString(`

Provide detailed improvement recommendations grouped as:

## IMMEDIATE CRITICAL FIXES (Next 1-2 weeks)
## CONTENT ENHANCEMENT STRATEGY (Next 1-2 months)
## LONG-TERM PROFESSIONAL DEVELOPMENT (3-6 months)
## SPECIFIC LANGUAGE IMPROVEMENTS

For each recommendation state why it matters, how to implement it, and what impact it will have. Be extremely specific and actionable.`)
	return b.String()
}

func truncate(text string, budget int) string {
	if budget <= 0 || len(text) <= budget {
		return text
	}
	return text[:budget]
}
