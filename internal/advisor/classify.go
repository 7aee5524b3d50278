package advisor

import "strings"

// Category is a finance-topic tag attached to every answered question.
type Category string

// The five fixed categories.
const (
	CategoryPersonalFinance   Category = "personal_finance"
	CategoryInvestments       Category = "investments"
	CategoryFinancialPlanning Category = "financial_planning"
	CategoryFinancialLiteracy Category = "financial_literacy"
	CategoryMarketTrends      Category = "market_trends"
)

// keywordGroup pairs a category with its trigger keywords.
type keywordGroup struct {
	category Category
	keywords []string
}

// categoryGroups are checked in declaration order; the first group with any
// keyword match wins. A question matching several groups always resolves to
// the earliest one, even when a later match is arguably more specific. That
// ordering is deliberate and pinned by tests.
var categoryGroups = []keywordGroup{
	{CategoryPersonalFinance, []string{
		"budget", "budgeting", "saving", "savings", "debt", "income",
		"expense", "expenses", "spending", "credit card", "emergency fund",
	}},
	{CategoryInvestments, investmentKeywords},
	{CategoryFinancialPlanning, []string{
		"financial plan", "planning", "college fund", "estate", "insurance",
		"mortgage", "retirement plan", "goal",
	}},
	{CategoryFinancialLiteracy, []string{
		"compound interest", "apr", "apy", "interest rate", "credit score",
		"inflation", "what is", "explain", "how does",
	}},
	{CategoryMarketTrends, []string{
		"market trend", "bull market", "bear market", "recession", "economy",
		"outlook", "forecast",
	}},
}

// Classify tags a question with one of the five categories. It is a pure
// function of its input: the lowercased text is tested against the groups in
// order, falling back to the investment keyword list and finally to
// personal_finance.
func Classify(question string) Category {
	q := strings.ToLower(question)

	for _, g := range categoryGroups {
		for _, kw := range g.keywords {
			if strings.Contains(q, kw) {
				return g.category
			}
		}
	}

	// Legacy fallback: investment keywords get a second chance before the
	// default. Redundant with the group pass above, kept for parity.
	for _, kw := range investmentKeywords {
		if strings.Contains(q, kw) {
			return CategoryInvestments
		}
	}

	return CategoryPersonalFinance
}
