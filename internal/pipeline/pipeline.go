// Package pipeline resolves incoming messages end to end: fast pattern
// matching and admin commands first, then the bounded classifier, then the
// handler for whichever result variant came back. Every path ends in a
// non-empty localized response.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/bizsakhi/sakhi/internal/classifier"
	"github.com/bizsakhi/sakhi/internal/command"
	"github.com/bizsakhi/sakhi/internal/fastpath"
	"github.com/bizsakhi/sakhi/internal/model"
	"github.com/bizsakhi/sakhi/internal/query"
	"github.com/bizsakhi/sakhi/internal/reconciler"
	"github.com/bizsakhi/sakhi/internal/render"
	"github.com/bizsakhi/sakhi/internal/service"
)

// Resolution is the outcome of one message: what the user sees plus the
// structured record of what was applied.
type Resolution struct {
	ResponseText       string                     `json:"response"`
	Intent             string                     `json:"intent"`
	Outcomes           []model.ApplicationOutcome `json:"outcomes,omitempty"`
	Candidates         []model.ClarificationItem  `json:"items,omitempty"`
	Confidence         float64                    `json:"confidence"`
	Success            bool                       `json:"success"`
	NeedsClarification bool                       `json:"needs_clarification"`
	FallbackUsed       bool                       `json:"fallback_used"`
	FastDetection      bool                       `json:"fast_detection"`
}

// Pipeline wires the resolution stages together.
type Pipeline struct {
	matcher    *fastpath.Matcher
	gateway    *classifier.Gateway
	reconciler *reconciler.Reconciler
	queries    *query.Responder
	ledger     service.Ledger
	history    service.HistorySink
}

// New creates a pipeline. The history sink may be nil, in which case chat
// history is not recorded.
func New(matcher *fastpath.Matcher, gateway *classifier.Gateway, rec *reconciler.Reconciler, queries *query.Responder, ledger service.Ledger, history service.HistorySink) *Pipeline {
	return &Pipeline{
		matcher:    matcher,
		gateway:    gateway,
		reconciler: rec,
		queries:    queries,
		ledger:     ledger,
		history:    history,
	}
}

// Resolve runs the full resolution order for one message: fast patterns,
// admin commands, then the classifier. General mode skips the first two
// stages so casual conversation never books transactions.
func (p *Pipeline) Resolve(ctx context.Context, userID string, msg model.Message) Resolution {
	var resolution Resolution
	if msg.Mode == model.ModeBusiness {
		if res, ok := p.resolveFast(ctx, userID, msg); ok {
			resolution = res
		} else if res, ok := p.resolveCommand(ctx, userID, msg); ok {
			resolution = res
		} else {
			resolution = p.resolveClassified(ctx, userID, msg)
		}
	} else {
		resolution = p.resolveClassified(ctx, userID, msg)
	}

	p.recordHistory(userID, msg, resolution)
	return resolution
}

// resolveFast applies a single regex-detected transaction directly to the
// ledger, skipping both the classifier and the batch reconciler.
func (p *Pipeline) resolveFast(ctx context.Context, userID string, msg model.Message) (Resolution, bool) {
	intent, ok := p.matcher.Match(msg.Text)
	if !ok {
		return Resolution{}, false
	}

	var (
		recordID string
		err      error
		key      render.Key
	)
	switch intent.Kind {
	case model.IntentIncome:
		recordID, err = p.ledger.CreditIncome(ctx, userID, intent, "fast_pattern")
		key = render.KeyIncomeRecorded
	default:
		recordID, err = p.ledger.DebitExpense(ctx, userID, intent, "fast_pattern")
		key = render.KeyExpenseRecorded
	}
	if err != nil {
		// Let the classifier have a try; the message clearly carried a
		// transaction, so a canned apology would waste it.
		slog.Warn("fast pattern ledger write failed, deferring to classifier", "kind", intent.Kind, "error", err)
		return Resolution{}, false
	}

	slog.Debug("fast pattern applied", "kind", intent.Kind, "record_id", recordID)
	return Resolution{
		ResponseText:  render.Render(key, msg.Language, render.Values{"amount": render.Amount(intent.Amount)}),
		Intent:        string(intent.Kind),
		Confidence:    fastpath.Confidence,
		Success:       true,
		FastDetection: true,
		Outcomes: []model.ApplicationOutcome{{
			RecordID: recordID,
			Kind:     intent.Kind,
			Success:  true,
		}},
	}, true
}

// resolveCommand executes admin clear phrases against the ledger.
func (p *Pipeline) resolveCommand(ctx context.Context, userID string, msg model.Message) (Resolution, bool) {
	cmd, ok := command.Match(msg.Text)
	if !ok {
		return Resolution{}, false
	}

	var err error
	switch cmd {
	case command.ClearExpenses:
		_, err = p.ledger.ClearExpenses(ctx, userID)
	case command.ClearIncome:
		_, err = p.ledger.ClearIncome(ctx, userID)
	case command.ClearChat:
		_, err = p.ledger.ClearChat(ctx, userID)
	case command.ClearAll:
		_, err = p.ledger.ClearAll(ctx, userID)
	}
	if err != nil {
		slog.Error("admin clear failed", "command", cmd, "error", err)
		return Resolution{
			ResponseText: render.Render(render.KeyApology, msg.Language, nil),
			Intent:       string(cmd),
		}, true
	}

	return Resolution{
		ResponseText: command.Confirmation(cmd, msg.Language),
		Intent:       string(cmd),
		Confidence:   1.0,
		Success:      true,
	}, true
}

// resolveClassified sends the message through the bounded classifier and
// dispatches on the result variant.
func (p *Pipeline) resolveClassified(ctx context.Context, userID string, msg model.Message) Resolution {
	result := p.gateway.Classify(ctx, msg)

	switch result.Kind {
	case model.ResultTransactions:
		outcomes := p.reconciler.Apply(ctx, userID, result.Items, "chat", msg.Language)
		return Resolution{
			ResponseText: p.reconciler.Summarize(outcomes, result.ResponseText, msg.Language),
			Intent:       string(result.Kind),
			Outcomes:     outcomes,
			Confidence:   result.Confidence,
			Success:      model.SuccessCount(outcomes) > 0,
			FallbackUsed: result.FallbackUsed,
		}

	case model.ResultClarification:
		text := result.ResponseText
		if text == "" {
			text = render.Render(render.KeyGenericHelp, msg.Language, nil)
		}
		return Resolution{
			ResponseText:       text,
			Intent:             string(result.Kind),
			Candidates:         result.Candidates,
			Confidence:         result.Confidence,
			Success:            true,
			NeedsClarification: true,
		}

	case model.ResultQuery:
		return Resolution{
			ResponseText: p.queries.Answer(ctx, userID, msg.Text, msg.Language, result.ResponseText),
			Intent:       string(result.Kind),
			Confidence:   result.Confidence,
			Success:      true,
			FallbackUsed: result.FallbackUsed,
		}

	case model.ResultConversational:
		text := result.ResponseText
		if text == "" {
			text = render.Render(render.KeyGenericHelp, msg.Language, nil)
		}
		return Resolution{
			ResponseText: text,
			Intent:       string(result.Kind),
			Confidence:   result.Confidence,
			Success:      true,
			FallbackUsed: result.FallbackUsed,
		}

	default:
		// An intent we don't recognize still gets the keyword re-detection
		// pass, so "what is my profit" is answered with real figures even
		// when the classifier labels it something off-prompt. Answer falls
		// back to the classifier's own text when no keyword matches.
		return Resolution{
			ResponseText: p.queries.Answer(ctx, userID, msg.Text, msg.Language, result.ResponseText),
			Intent:       string(result.Kind),
			Confidence:   result.Confidence,
			Success:      true,
			FallbackUsed: result.FallbackUsed,
		}
	}
}

// ConfirmItems applies user-approved clarification items.
func (p *Pipeline) ConfirmItems(ctx context.Context, userID string, items []model.ClarificationItem, lang model.Language) Resolution {
	outcomes, summary := p.reconciler.ConfirmItems(ctx, userID, items, lang)

	resolution := Resolution{
		ResponseText: summary,
		Intent:       "confirmation",
		Outcomes:     outcomes,
		Confidence:   1.0,
		Success:      model.SuccessCount(outcomes) > 0,
	}

	p.recordHistory(userID, model.Message{
		Text:     "item confirmation",
		Modality: model.ModalityConfirmation,
	}, resolution)
	return resolution
}

// recordHistory persists the exchange without blocking resolution. History
// failures are logged and dropped.
func (p *Pipeline) recordHistory(userID string, msg model.Message, res Resolution) {
	if p.history == nil {
		return
	}

	entry := service.ChatEntry{
		UserID:   userID,
		Message:  msg.Text,
		Response: res.ResponseText,
		Intent:   res.Intent,
		Modality: msg.Modality,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.history.RecordChat(ctx, entry); err != nil {
			slog.Warn("chat history record failed", "error", err)
		}
	}()
}
