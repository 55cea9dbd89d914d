package fastpath

import "github.com/bizsakhi/sakhi/internal/model"

// amount matches a rupee amount with optional currency prefix and optional
// thousands separators, capturing the numeric part.
const amount = `(?:rs\.?\s*|₹\s*)?(\d+(?:,\d{3})*(?:\.\d{1,2})?)`

// DefaultPatterns returns the built-in pattern table. Priority bands keep
// the required ordering explicit: income keywords (300) before expense
// keywords (200) before trailing-keyword variants (100).
func DefaultPatterns() []Pattern {
	return []Pattern{
		// Income, keyword first.
		{Name: "income is", Kind: model.IntentIncome, Priority: 300, Regex: `income\s+(?:is\s+)?` + amount},
		{Name: "earned", Kind: model.IntentIncome, Priority: 300, Regex: `earned\s+` + amount},
		{Name: "received", Kind: model.IntentIncome, Priority: 300, Regex: `received\s+` + amount},
		{Name: "got", Kind: model.IntentIncome, Priority: 300, Regex: `got\s+` + amount},
		{Name: "made", Kind: model.IntentIncome, Priority: 300, Regex: `made\s+` + amount},
		{Name: "aay (hi)", Kind: model.IntentIncome, Priority: 300, Regex: `आय\s+` + amount},
		{Name: "kamaai (hi)", Kind: model.IntentIncome, Priority: 300, Regex: `कमाई\s+` + amount},
		{Name: "mila (hi)", Kind: model.IntentIncome, Priority: 300, Regex: `मिला\s+` + amount},
		{Name: "varumaanam (ta)", Kind: model.IntentIncome, Priority: 300, Regex: `வருமானம்\s+` + amount},
		{Name: "varumaanam (ml)", Kind: model.IntentIncome, Priority: 300, Regex: `വരുമാനം\s+` + amount},

		// Expense, keyword first.
		{Name: "expense is", Kind: model.IntentExpense, Priority: 200, Regex: `expense\s+(?:is\s+)?` + amount},
		{Name: "spent", Kind: model.IntentExpense, Priority: 200, Regex: `spent\s+` + amount},
		{Name: "paid", Kind: model.IntentExpense, Priority: 200, Regex: `paid\s+` + amount},
		{Name: "cost", Kind: model.IntentExpense, Priority: 200, Regex: `cost\s+` + amount},
		{Name: "bought", Kind: model.IntentExpense, Priority: 200, Regex: `^(?:i\s+)?bought\s+(?:for\s+)?` + amount + `(?:\s|$)`},
		{Name: "kharch (hi)", Kind: model.IntentExpense, Priority: 200, Regex: `खर्चा?\s+` + amount},
		{Name: "diya (hi)", Kind: model.IntentExpense, Priority: 200, Regex: `दिया\s+` + amount},
		{Name: "laga (hi)", Kind: model.IntentExpense, Priority: 200, Regex: `लगा\s+` + amount},
		{Name: "selavu (ta)", Kind: model.IntentExpense, Priority: 200, Regex: `செலவு\s+` + amount},
		{Name: "chelavu (ml)", Kind: model.IntentExpense, Priority: 200, Regex: `ചെലവ്\s+` + amount},

		// Trailing-keyword variants, lowest band.
		{Name: "amount income", Kind: model.IntentIncome, Priority: 100, Regex: amount + `\s+(?:income|आय|कमाई|வருமானம்|വരുമാനം)`},
		{Name: "amount earned", Kind: model.IntentIncome, Priority: 100, Regex: amount + `\s+(?:earned|कमाया)`},
		{Name: "amount expense", Kind: model.IntentExpense, Priority: 100, Regex: amount + `\s+(?:expense|खर्चा?|செலவு|ചെലവ്)`},
		{Name: "amount spent", Kind: model.IntentExpense, Priority: 100, Regex: amount + `\s+(?:spent|खर्च किया)`},
	}
}
