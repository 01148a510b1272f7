package llm

// Token and pricing constants for the cost estimate. These are coarse
// approximations: one token per four characters of resume text, flat prompt
// and response allowances, and the provider's per-1k-token price.
const (
	charsPerToken       = 4
	promptTokenOverhead = 1000
	responseTokenBudget = 1500
	costPer1kTokensUSD  = 0.002
	targetedMultiplier  = 1.5
)

// CostEstimate summarizes expected token usage and cost for one analysis run.
type CostEstimate struct {
	EstimatedTokens  int
	EstimatedCostUSD float64
	AnalysisTypes    []string
	InputTokens      int
	OutputTokens     int
}

// EstimateCost predicts token usage and cost for analyzing the given resume
// text. A non-empty target role adds the role-targeted analysis pass.
func EstimateCost(resumeText, targetRole string) CostEstimate {
	resumeTokens := len(resumeText) / charsPerToken
	input := resumeTokens + promptTokenOverhead
	total := input + responseTokenBudget

	cost := float64(total) / 1000 * costPer1kTokensUSD
	types := []string{"Comprehensive Analysis"}
	if targetRole != "" {
		types = append(types, "Role-Specific Analysis")
		cost *= targetedMultiplier
	}

	return CostEstimate{
		EstimatedTokens:  total,
		EstimatedCostUSD: roundFourDecimals(cost),
		AnalysisTypes:    types,
		InputTokens:      input,
		OutputTokens:     responseTokenBudget,
	}
}

func roundFourDecimals(v float64) float64 {
	return float64(int(v*10000+0.5)) / 10000
}
