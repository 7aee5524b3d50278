package advisor

import "strings"

// disclaimerText is appended to investment-related answers that lack one.
const disclaimerText = "Disclaimer: This is for informational purposes only and not professional financial advice. Consult a certified financial planner or tax professional for personalized guidance."

// Substrings that together mark a disclaimer as already present.
const (
	disclaimerMarkPurpose = "informational purposes only"
	disclaimerMarkAdvice  = "not professional financial advice"
)

// investmentKeywords flag text as investment-related. Shared with the
// classifier's investments group.
var investmentKeywords = []string{
	"stock", "stocks", "bond", "bonds", "mutual fund", "etf", "portfolio",
	"asset allocation", "diversification", "brokerage", "retirement",
	"401(k)", "roth", "ira", "market", "equity", "securities", "dividend",
}

// investmentRelated reports whether text mentions any investment keyword,
// case-insensitively.
func investmentRelated(text string) bool {
	t := strings.ToLower(text)
	for _, kw := range investmentKeywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

// containsDisclaimer reports whether text already carries both required
// disclaimer substrings.
func containsDisclaimer(text string) bool {
	t := strings.ToLower(text)
	return strings.Contains(t, disclaimerMarkPurpose) && strings.Contains(t, disclaimerMarkAdvice)
}

// EnsureDisclaimer appends the standard disclaimer to investment-related
// text that lacks one. The returned flag reports whether a disclaimer is now
// present, pre-existing or newly added. Idempotent.
func EnsureDisclaimer(text string) (string, bool) {
	if containsDisclaimer(text) {
		return text, true
	}
	if !investmentRelated(text) {
		return text, false
	}
	return text + "\n" + disclaimerText, true
}
