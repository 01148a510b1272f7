// Package llm is the narrow boundary to the optional text-generation service.
// The Advisor wraps a provider Client and converts every failure into a
// user-facing degraded message so nothing past this boundary can abort an
// analysis: a missing credential, auth failure, rate limit, or transport error
// all degrade to fixed prose.
package llm

import (
	"context"
	"errors"
	"strings"
)

// Client abstracts text-generation providers.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Request carries one generation call.
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// Failure categories surfaced by provider clients. The Advisor maps these to
// distinct degraded messages; anything else is the generic category.
var (
	ErrAuthentication = errors.New("authentication failed")
	ErrRateLimited    = errors.New("rate limit exceeded")
)

// WeaknessSummary is the short form of a weakness record passed into the
// improvement prompt. Keeping it local avoids coupling providers to the rule
// engine's full record type.
type WeaknessSummary struct {
	Description    string
	WhyProblematic string
}

// Fixed degraded messages returned when no credential is configured.
const (
	MsgAnalysisRequiresKey    = "AI analysis requires OpenAI API key. Please configure your API key to access detailed AI insights."
	MsgImprovementRequiresKey = "AI improvement recommendations require OpenAI API key."
)

// Advisor runs the resume-analysis generation calls on top of a Client. A nil
// Client means no credential is configured and every method returns its fixed
// requires-key message.
type Advisor struct {
	Client Client
}

// ComprehensiveAnalysis returns the full AI assessment of a resume, or a
// degraded message.
func (a Advisor) ComprehensiveAnalysis(ctx context.Context, resumeText, targetRole string) string {
	if a.Client == nil {
		return MsgAnalysisRequiresKey
	}
	out, err := a.Client.Generate(ctx, Request{
		System:      comprehensiveSystemPrompt(targetRole),
		Prompt:      comprehensivePrompt(resumeText, targetRole),
		MaxTokens:   1200,
		Temperature: 0.4,
	})
	if err != nil {
		return degradedMessage("AI analysis", err)
	}
	return out
}

// RoleAnalysis returns a role-targeted assessment using the catalog entry's
// requirements, or a degraded message.
func (a Advisor) RoleAnalysis(ctx context.Context, resumeText string, role RoleContext) string {
	if a.Client == nil {
		return MsgAnalysisRequiresKey
	}
	out, err := a.Client.Generate(ctx, Request{
		System:      roleSystemPrompt(role.Name),
		Prompt:      rolePrompt(resumeText, role),
		MaxTokens:   1200,
		Temperature: 0.4,
	})
	if err != nil {
		return degradedMessage("Role-specific AI analysis", err)
	}
	return out
}

// ImprovementRecommendations turns identified weaknesses into prose guidance,
// or a degraded message. At most five weaknesses are summarized into the
// prompt.
func (a Advisor) ImprovementRecommendations(ctx context.Context, resumeText string, weaknesses []WeaknessSummary) string {
	if a.Client == nil {
		return MsgImprovementRequiresKey
	}
	out, err := a.Client.Generate(ctx, Request{
		System:      improvementSystemPrompt,
		Prompt:      improvementPrompt(resumeText, weaknesses),
		MaxTokens:   1000,
		Temperature: 0.3,
	})
	if err != nil {
		return degradedMessage("AI improvement recommendations", err)
	}
	return out
}

// RoleContext is the catalog-derived role information fed into the targeted
// prompt.
type RoleContext struct {
	Name       string
	CoreSkills []string
	Frameworks []string
	DailyTasks []string
	TechStack  string
}

// Degraded reports whether msg is one of the advisor's fallback outputs
// rather than generated text.
func Degraded(msg string) bool {
	if msg == MsgAnalysisRequiresKey || msg == MsgImprovementRequiresKey {
		return true
	}
	return strings.Contains(msg, " unavailable: ")
}

func degradedMessage(what string, err error) string {
	switch {
	case errors.Is(err, ErrAuthentication):
		return what + " unavailable: invalid API key - please check your OpenAI API key."
	case errors.Is(err, ErrRateLimited):
		return what + " unavailable: API rate limit exceeded - please try again later."
	default:
		return what + " unavailable: " + err.Error()
	}
}
