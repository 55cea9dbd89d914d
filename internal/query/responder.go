// Package query answers read-only questions about the ledger: totals,
// today's figures, and profit or loss. The topic is re-derived from the raw
// message text with a fixed keyword table; the classifier's stated topic is
// a hint, never the authority.
package query

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/bizsakhi/sakhi/internal/common"
	"github.com/bizsakhi/sakhi/internal/model"
	"github.com/bizsakhi/sakhi/internal/render"
	"github.com/bizsakhi/sakhi/internal/service"
)

// Keyword tables, one per topic. Detection priority is profit/loss first,
// then income, then expense, so "did I make a profit on my expenses" reads
// as a profit question.
var (
	profitLossKeywords = []string{
		"profit", "loss", "margin", "earning", "नफा", "लाभ", "हानि", "नुकसान", "फायदा", "घाटा",
		"இலாபம்", "லாபம்", "நஷ்டம்", "இழப்பு", "ലാഭം", "നഷ്ടം",
	}
	incomeKeywords = []string{
		"income", "revenue", "sales", "earned", "आय", "कमाई", "आमदनी",
		"வருமானம்", "வருவாய்", "വരുമാനം",
	}
	expenseKeywords = []string{
		"expense", "expenses", "spend", "spending", "spent", "cost", "खर्च", "खर्चा",
		"செலவு", "செலவுகள்", "ചെലവ്", "ചെലവുകൾ",
	}
	todayKeywords = []string{"today", "आज", "இன்று", "ഇന്ന്"}
)

// Responder resolves ledger questions into localized answers.
type Responder struct {
	ledger service.Ledger
}

// New creates a responder over the given ledger.
func New(ledger service.Ledger) *Responder {
	return &Responder{ledger: ledger}
}

// DetectTopic derives the question topic and scope from the raw text.
// Returns TopicNone when no financial keyword is present.
func DetectTopic(text string) (model.QueryTopic, model.AggregateScope) {
	lowered := strings.ToLower(text)

	scope := model.ScopeAllTime
	if containsAny(lowered, todayKeywords) {
		scope = model.ScopeToday
	}

	switch {
	case containsAny(lowered, profitLossKeywords):
		return model.TopicProfitLoss, scope
	case containsAny(lowered, incomeKeywords):
		return model.TopicIncome, scope
	case containsAny(lowered, expenseKeywords):
		return model.TopicExpense, scope
	default:
		return model.TopicNone, scope
	}
}

// Answer resolves the question against the ledger. classifierText is the
// provider's suggested reply, used only when no topic can be derived from
// the text itself. Answer never fails: aggregate errors degrade to the
// localized unavailable notice.
func (r *Responder) Answer(ctx context.Context, userID, text string, lang model.Language, classifierText string) string {
	topic, scope := DetectTopic(text)
	if topic == model.TopicNone {
		if classifierText != "" {
			return classifierText
		}
		return render.Render(render.KeyGenericHelp, lang, nil)
	}

	agg, err := r.ledger.Aggregate(ctx, userID, scope)
	if err != nil {
		common.LogError(err, "ledger aggregate failed", common.Fields{"topic": string(topic)})
		return render.Render(render.KeyAggregateUnavailable, lang, nil)
	}

	switch topic {
	case model.TopicProfitLoss:
		return profitLossAnswer(agg, lang)
	case model.TopicIncome:
		return incomeAnswer(agg, scope, lang)
	default:
		return expenseAnswer(agg, scope, lang)
	}
}

func profitLossAnswer(agg model.LedgerAggregate, lang model.Language) string {
	values := render.Values{
		"income":   render.Currency(agg.TotalIncome),
		"expenses": render.Currency(agg.TotalExpenses),
		"net":      render.Currency(math.Abs(agg.NetProfit())),
		"margin":   render.Percent(math.Abs(agg.ProfitMarginPct())),
	}

	switch agg.Status() {
	case model.StatusProfit:
		return render.Render(render.KeyProfitSummary, lang, values)
	case model.StatusLoss:
		return render.Render(render.KeyLossSummary, lang, values)
	default:
		return render.Render(render.KeyBreakEvenSummary, lang, values)
	}
}

func incomeAnswer(agg model.LedgerAggregate, scope model.AggregateScope, lang model.Language) string {
	totalKey, noneKey := render.KeyIncomeTotal, render.KeyIncomeNone
	if scope == model.ScopeToday {
		totalKey, noneKey = render.KeyTodayIncomeTotal, render.KeyTodayIncomeNone
	}
	if agg.IncomeCount == 0 {
		return render.Render(noneKey, lang, nil)
	}
	return render.Render(totalKey, lang, render.Values{
		"total": render.Currency(agg.TotalIncome),
		"count": strconv.Itoa(agg.IncomeCount),
	})
}

func expenseAnswer(agg model.LedgerAggregate, scope model.AggregateScope, lang model.Language) string {
	totalKey, noneKey := render.KeyExpenseTotal, render.KeyExpenseNone
	if scope == model.ScopeToday {
		totalKey, noneKey = render.KeyTodayExpenseTotal, render.KeyTodayExpenseNone
	}
	if agg.ExpenseCount == 0 {
		return render.Render(noneKey, lang, nil)
	}
	return render.Render(totalKey, lang, render.Values{
		"total": render.Currency(agg.TotalExpenses),
		"count": strconv.Itoa(agg.ExpenseCount),
	})
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
