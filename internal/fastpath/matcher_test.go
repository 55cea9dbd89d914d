package fastpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizsakhi/sakhi/internal/model"
)

func newDefault(t *testing.T) *Matcher {
	t.Helper()
	m, err := NewDefaultMatcher()
	require.NoError(t, err)
	return m
}

func TestNewMatcherRejectsInvalidRegex(t *testing.T) {
	_, err := NewMatcher([]Pattern{{Name: "bad", Kind: model.IntentIncome, Regex: `[unclosed`}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compile pattern")
}

func TestMatchIncome(t *testing.T) {
	m := newDefault(t)

	tests := []struct {
		name       string
		text       string
		wantAmount float64
	}{
		{name: "plain income", text: "income 500", wantAmount: 500},
		{name: "income is", text: "income is 500", wantAmount: 500},
		{name: "with rupee symbol", text: "income ₹500", wantAmount: 500},
		{name: "with rs prefix", text: "earned rs. 2500", wantAmount: 2500},
		{name: "thousands separator", text: "received 1,200.50", wantAmount: 1200.50},
		{name: "hindi income", text: "आय 500", wantAmount: 500},
		{name: "tamil income", text: "வருமானம் 750", wantAmount: 750},
		{name: "trailing keyword", text: "500 income", wantAmount: 500},
		{name: "mixed case", text: "Income 500", wantAmount: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, ok := m.Match(tt.text)
			require.True(t, ok)
			assert.Equal(t, model.IntentIncome, intent.Kind)
			assert.InDelta(t, tt.wantAmount, intent.Amount, 0.001)
			assert.Equal(t, "General", intent.Category)
			assert.NotEmpty(t, intent.Description)
		})
	}
}

func TestMatchExpense(t *testing.T) {
	m := newDefault(t)

	tests := []struct {
		name       string
		text       string
		wantAmount float64
	}{
		{name: "plain expense", text: "expense 200", wantAmount: 200},
		{name: "spent", text: "spent 340", wantAmount: 340},
		{name: "paid for supplies", text: "paid 200 for supplies", wantAmount: 200},
		{name: "hindi kharch", text: "खर्च 200", wantAmount: 200},
		{name: "hindi kharcha", text: "खर्चा 250", wantAmount: 250},
		{name: "bought statement", text: "bought for 1,500", wantAmount: 1500},
		{name: "trailing keyword", text: "200 expense", wantAmount: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, ok := m.Match(tt.text)
			require.True(t, ok)
			assert.Equal(t, model.IntentExpense, intent.Kind)
			assert.InDelta(t, tt.wantAmount, intent.Amount, 0.001)
		})
	}
}

func TestMatchPriorityOrder(t *testing.T) {
	m := newDefault(t)

	// Income keywords outrank expense keywords when both could fire.
	intent, ok := m.Match("received 500 spent 200")
	require.True(t, ok)
	assert.Equal(t, model.IntentIncome, intent.Kind)
	assert.InDelta(t, 500, intent.Amount, 0.001)
}

func TestMatchRejectsQuestions(t *testing.T) {
	m := newDefault(t)

	for _, text := range []string{
		"what is my income 500",
		"how much did I spend on 200 supplies?",
		"calculate profit on income 500",
		"income 500?",
		"tell me about expense 200",
		"if income is 500 what happens",
	} {
		_, ok := m.Match(text)
		assert.False(t, ok, "expected no match for %q", text)
	}
}

func TestMatchRejectsNonPositiveAndNoise(t *testing.T) {
	m := newDefault(t)

	for _, text := range []string{
		"income 0",
		"hello there",
		"expense",
		"income rs",
	} {
		_, ok := m.Match(text)
		assert.False(t, ok, "expected no match for %q", text)
	}
}
