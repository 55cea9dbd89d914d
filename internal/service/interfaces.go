// Package service defines the contracts between the pipeline and its
// collaborators. The pipeline consumes these interfaces; implementations
// live in their own packages (the ledger) or outside this repository
// entirely (speech, OCR, TTS).
package service

import (
	"context"

	"github.com/bizsakhi/sakhi/internal/model"
)

// Ledger is the persistent record store. Each operation is atomic for a
// single record; cross-call atomicity is not guaranteed and callers must
// tolerate partial failure across a batch.
type Ledger interface {
	// CreditIncome records one income entry and returns its record ID.
	CreditIncome(ctx context.Context, userID string, intent model.TransactionIntent, source string) (string, error)
	// DebitExpense records one expense entry and returns its record ID.
	DebitExpense(ctx context.Context, userID string, intent model.TransactionIntent, source string) (string, error)
	// AdjustInventory upserts an inventory item by product name: existing
	// products gain quantity and refresh cost per unit, new products insert.
	AdjustInventory(ctx context.Context, userID string, intent model.TransactionIntent) (string, error)

	ClearExpenses(ctx context.Context, userID string) (int64, error)
	ClearIncome(ctx context.Context, userID string) (int64, error)
	ClearChat(ctx context.Context, userID string) (int64, error)
	ClearAll(ctx context.Context, userID string) (int64, error)

	// Aggregate computes a read-only totals snapshot for the given scope.
	Aggregate(ctx context.Context, userID string, scope model.AggregateScope) (model.LedgerAggregate, error)
	// ListInventory returns the user's current stock, ordered by product name.
	ListInventory(ctx context.Context, userID string) ([]model.InventoryItem, error)
}

// ChatEntry is one (message, response) exchange recorded for history.
type ChatEntry struct {
	UserID   string
	Message  string
	Response string
	Intent   string
	Modality model.Modality
}

// HistorySink records chat exchanges. Calls are fire-and-forget: a sink
// failure must never fail the request that produced the exchange.
type HistorySink interface {
	RecordChat(ctx context.Context, entry ChatEntry) error
	ListChat(ctx context.Context, userID string, limit int) ([]ChatEntry, error)
}

// Transcript is the result of speech-to-text on one audio clip.
type Transcript struct {
	Text             string
	DetectedLanguage model.Language
	Confidence       float64
}

// Transcriber converts recorded speech to text. Implemented outside this
// repository.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, hint model.Language) (Transcript, error)
}

// ReceiptExtractor pulls candidate line items out of a bill or receipt
// image. Implemented outside this repository.
type ReceiptExtractor interface {
	Extract(ctx context.Context, image []byte) ([]model.ClarificationItem, error)
}

// Synthesizer renders response text to speech. Implemented outside this
// repository.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, language model.Language) ([]byte, error)
}
