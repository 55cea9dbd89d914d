package model

// ResultKind discriminates the classification result variants. Exactly one
// variant is active per result; the auxiliary fields for inactive variants
// are zero.
type ResultKind string

// Classification result kinds.
const (
	ResultConversational ResultKind = "conversational"
	ResultClarification  ResultKind = "item_clarification"
	ResultTransactions   ResultKind = "transactions"
	ResultQuery          ResultKind = "query"
	ResultUnknown        ResultKind = "unknown"
)

// QueryTopic is the classifier's stated read-only question topic. The query
// responder re-derives the topic from the raw text and does not trust this
// field alone.
type QueryTopic string

// Query topics.
const (
	TopicProfitLoss   QueryTopic = "profit_loss"
	TopicIncome       QueryTopic = "income"
	TopicExpense      QueryTopic = "expense"
	TopicTodayExpense QueryTopic = "today_expense"
	TopicNone         QueryTopic = ""
)

// ClarificationItem is one candidate line item awaiting user confirmation,
// typically extracted from a receipt or an item-purchase sentence.
type ClarificationItem struct {
	Name              string  `json:"name"`
	Unit              string  `json:"unit"`
	SuggestedCategory string  `json:"suggested_category"`
	Description       string  `json:"description"`
	Quantity          float64 `json:"quantity"`
	Amount            float64 `json:"amount"`
	CostPerUnit       float64 `json:"cost_per_unit"`
}

// ClassificationResult is the closed union produced at the classifier
// boundary. The provider's weakly-typed payload is decoded into this shape
// immediately and never passed downstream as a bag of optional fields.
type ClassificationResult struct {
	Kind              ResultKind
	ResponseText      string
	Topic             QueryTopic
	Items             []TransactionIntent
	Candidates        []ClarificationItem
	Confidence        float64
	IsBusinessRelated bool
	FallbackUsed      bool
	FastDetection     bool
}

// Conversational builds a conversational result.
func Conversational(text string, confidence float64) ClassificationResult {
	return ClassificationResult{
		Kind:              ResultConversational,
		ResponseText:      text,
		Confidence:        confidence,
		IsBusinessRelated: true,
	}
}

// TransactionBatch builds a batch result carrying structured intents.
func TransactionBatch(items []TransactionIntent, narrative string, confidence float64) ClassificationResult {
	return ClassificationResult{
		Kind:              ResultTransactions,
		Items:             items,
		ResponseText:      narrative,
		Confidence:        confidence,
		IsBusinessRelated: true,
	}
}
