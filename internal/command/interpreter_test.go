package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizsakhi/sakhi/internal/model"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    AdminCommand
		matched bool
	}{
		{name: "clear expenses", text: "please clear expenses now", want: ClearExpenses, matched: true},
		{name: "delete expense", text: "Delete Expense", want: ClearExpenses, matched: true},
		{name: "hindi clear expenses", text: "खर्च साफ करो", want: ClearExpenses, matched: true},
		{name: "clear income", text: "clear income", want: ClearIncome, matched: true},
		{name: "income to zero", text: "set my income to 0", want: ClearIncome, matched: true},
		{name: "clear chat", text: "clear chat please", want: ClearChat, matched: true},
		{name: "clear history", text: "delete history", want: ClearChat, matched: true},
		{name: "clear all", text: "clear all", want: ClearAll, matched: true},
		{name: "hindi clear all", text: "सब कुछ साफ कर दो", want: ClearAll, matched: true},
		{name: "no command", text: "income 500", matched: false},
		{name: "plain conversation", text: "how is my business doing", matched: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Match(tt.text)
			assert.Equal(t, tt.matched, ok)
			if tt.matched {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMatchPriorityNarrowestFirst(t *testing.T) {
	// "clear expense" appears alongside "clear all"; the narrower detector
	// fires because it is checked first.
	got, ok := Match("clear expense and then clear all")
	require.True(t, ok)
	assert.Equal(t, ClearExpenses, got)
}

func TestConfirmationLocalized(t *testing.T) {
	en := Confirmation(ClearExpenses, model.LangEnglish)
	hi := Confirmation(ClearExpenses, model.LangHindi)
	assert.Contains(t, en, "expenses cleared")
	assert.NotEqual(t, en, hi)

	// Unsupported languages degrade to the English table entry.
	bn := Confirmation(ClearAll, model.LangBengali)
	assert.Equal(t, Confirmation(ClearAll, model.LangEnglish), bn)
}
