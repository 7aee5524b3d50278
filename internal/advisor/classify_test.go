package advisor_test

import (
	"testing"

	"github.com/claubot/clau/internal/advisor"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Categories(t *testing.T) {
	tests := []struct {
		question string
		want     advisor.Category
	}{
		{"How should I budget?", advisor.CategoryPersonalFinance},
		{"Help me pay off my credit card debt", advisor.CategoryPersonalFinance},
		{"Which stocks should I buy?", advisor.CategoryInvestments},
		{"Is an ETF better than a mutual fund?", advisor.CategoryInvestments},
		{"Do I need life insurance?", advisor.CategoryFinancialPlanning},
		{"Explain compound interest to me", advisor.CategoryFinancialLiteracy},
		{"Is a recession coming?", advisor.CategoryMarketTrends},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, advisor.Classify(tt.question), "question %q", tt.question)
	}
}

func TestClassify_PriorityOrderIsFixed(t *testing.T) {
	// Matches both personal_finance ("budget") and investments ("stocks");
	// the earlier group wins by declaration order.
	got := advisor.Classify("Should my budget include stocks?")
	assert.Equal(t, advisor.CategoryPersonalFinance, got)
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, advisor.CategoryInvestments, advisor.Classify("TELL ME ABOUT STOCKS"))
}

func TestClassify_DefaultsToPersonalFinance(t *testing.T) {
	assert.Equal(t, advisor.CategoryPersonalFinance, advisor.Classify("hello"))
	assert.Equal(t, advisor.CategoryPersonalFinance, advisor.Classify(""))
}

func TestClassify_Deterministic(t *testing.T) {
	questions := []string{
		"How should I budget?", "stocks vs bonds", "", "weather tomorrow",
		"401(k) rollover", "explain apr",
	}
	valid := map[advisor.Category]bool{
		advisor.CategoryPersonalFinance:   true,
		advisor.CategoryInvestments:       true,
		advisor.CategoryFinancialPlanning: true,
		advisor.CategoryFinancialLiteracy: true,
		advisor.CategoryMarketTrends:      true,
	}
	for _, q := range questions {
		first := advisor.Classify(q)
		assert.True(t, valid[first], "category %q for %q", first, q)
		assert.Equal(t, first, advisor.Classify(q), "question %q", q)
	}
}
