// Package command detects administrative phrases (clear expenses, income,
// chat, or all data) and maps them to ledger clear operations. Detection is
// deterministic and bypasses the classifier entirely.
package command

import (
	"strings"

	"github.com/bizsakhi/sakhi/internal/model"
	"github.com/bizsakhi/sakhi/internal/render"
)

// AdminCommand identifies one administrative clear operation.
type AdminCommand string

// Admin commands.
const (
	ClearExpenses AdminCommand = "expense_clear"
	ClearIncome   AdminCommand = "income_clear"
	ClearChat     AdminCommand = "chat_clear"
	ClearAll      AdminCommand = "all_clear"
)

// phraseSet is one ordered detector: the first set whose phrase appears in
// the message wins. Ordered narrowest to broadest so "clear all" is never
// swallowed by a narrower detector.
type phraseSet struct {
	command AdminCommand
	phrases []string
}

var phraseSets = []phraseSet{
	{
		command: ClearExpenses,
		phrases: []string{
			"clear expense", "delete expense", "remove expense", "reset expense",
			"make expense 0", "expense to 0",
			"खर्च साफ", "खर्च हटा", "खर्च शून्य",
		},
	},
	{
		command: ClearIncome,
		phrases: []string{
			"clear income", "delete income", "remove income", "reset income",
			"make income 0", "income to 0",
			"आय साफ", "आय हटा", "आय शून्य",
		},
	},
	{
		command: ClearChat,
		phrases: []string{
			"clear chat", "delete chat", "remove chat", "reset chat",
			"clear history", "delete history",
			"चैट साफ", "चैट हटा", "इतिहास साफ",
		},
	},
	{
		command: ClearAll,
		phrases: []string{
			"clear all", "delete all", "reset all",
			"clear everything", "reset everything",
			"सब साफ", "सब हटा", "सब कुछ साफ",
		},
	},
}

// Match scans the message for an administrative phrase, case-insensitively,
// and returns the matched command. The boolean reports whether any phrase
// set fired.
func Match(text string) (AdminCommand, bool) {
	lowered := strings.ToLower(text)
	for _, set := range phraseSets {
		for _, phrase := range set.phrases {
			if strings.Contains(lowered, phrase) {
				return set.command, true
			}
		}
	}
	return "", false
}

// Confirmation returns the localized confirmation text for an executed
// command, from a fixed per-language table.
func Confirmation(cmd AdminCommand, lang model.Language) string {
	switch cmd {
	case ClearExpenses:
		return render.Render(render.KeyExpensesCleared, lang, nil)
	case ClearIncome:
		return render.Render(render.KeyIncomeCleared, lang, nil)
	case ClearChat:
		return render.Render(render.KeyChatCleared, lang, nil)
	case ClearAll:
		return render.Render(render.KeyAllCleared, lang, nil)
	default:
		return render.Render(render.KeyGenericHelp, lang, nil)
	}
}
