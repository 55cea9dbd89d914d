package classifier

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/bizsakhi/sakhi/internal/common"
	"github.com/bizsakhi/sakhi/internal/model"
)

// flexFloat tolerates providers that quote numbers or include thousand
// separators ("1,200.50").
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", s, err)
	}
	*f = flexFloat(v)
	return nil
}

// wireItem is one candidate line item as the provider emits it.
type wireItem struct {
	Name              string    `json:"name"`
	Unit              string    `json:"unit"`
	SuggestedCategory string    `json:"suggested_category"`
	Description       string    `json:"description"`
	Quantity          flexFloat `json:"quantity"`
	Amount            flexFloat `json:"amount"`
	CostPerUnit       flexFloat `json:"cost_per_unit"`
}

// wireTransaction is one structured transaction as the provider emits it.
type wireTransaction struct {
	Intent      string    `json:"intent"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ProductName string    `json:"product_name"`
	Unit        string    `json:"unit"`
	Amount      flexFloat `json:"amount"`
	Quantity    flexFloat `json:"quantity"`
	CostPerUnit flexFloat `json:"cost_per_unit"`
}

// wirePayload is the provider's weakly-typed answer. It exists only inside
// this package; decodeResult converts it to the closed result union.
type wirePayload struct {
	Intent             string            `json:"intent"`
	Action             string            `json:"action"`
	Confidence         flexFloat         `json:"confidence"`
	Data               wireData          `json:"data"`
	Transactions       []wireTransaction `json:"transactions"`
	ResponseMessage    string            `json:"response_message"`
	IsBusinessRelated  *bool             `json:"is_business_related"`
	NeedsClarification bool              `json:"needs_clarification"`
}

type wireData struct {
	Description string     `json:"description"`
	Category    string     `json:"category"`
	ProductName string     `json:"product_name"`
	Unit        string     `json:"unit"`
	Items       []wireItem `json:"items"`
	Amount      flexFloat  `json:"amount"`
	Quantity    flexFloat  `json:"quantity"`
	CostPerUnit flexFloat  `json:"cost_per_unit"`
}

// cleanMarkdownWrapper strips a ```json fence and any prose around the JSON
// object, which smaller models add despite instructions.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx >= 0 {
			content = content[:idx]
		}
		content = strings.TrimSpace(content)
	}

	// Keep only the outermost object when the model wraps it in prose.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}

	return content
}

// decodeResult converts a raw provider completion into the classification
// result union. Payloads that cannot be decoded into a known variant fail
// with ErrMalformedClassifierPayload so the caller can fall back.
func decodeResult(content string) (model.ClassificationResult, error) {
	content = cleanMarkdownWrapper(content)

	var payload wirePayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return model.ClassificationResult{}, fmt.Errorf("%w: %v", common.ErrMalformedClassifierPayload, err)
	}

	confidence := clamp01(float64(payload.Confidence))
	business := payload.IsBusinessRelated == nil || *payload.IsBusinessRelated

	if payload.NeedsClarification || payload.Intent == "item_clarification" {
		return model.ClassificationResult{
			Kind:              model.ResultClarification,
			ResponseText:      payload.ResponseMessage,
			Candidates:        decodeItems(payload.Data.Items),
			Confidence:        confidence,
			IsBusinessRelated: true,
		}, nil
	}

	if len(payload.Transactions) > 0 {
		items := make([]model.TransactionIntent, 0, len(payload.Transactions))
		for _, tx := range payload.Transactions {
			items = append(items, decodeTransaction(tx))
		}
		return model.TransactionBatch(items, payload.ResponseMessage, confidence), nil
	}

	switch payload.Intent {
	case "income", "expense", "inventory":
		// Legacy single-transaction shape: data carries the one intent.
		tx := wireTransaction{
			Intent:      payload.Intent,
			Description: payload.Data.Description,
			Category:    payload.Data.Category,
			ProductName: payload.Data.ProductName,
			Unit:        payload.Data.Unit,
			Amount:      payload.Data.Amount,
			Quantity:    payload.Data.Quantity,
			CostPerUnit: payload.Data.CostPerUnit,
		}
		return model.TransactionBatch([]model.TransactionIntent{decodeTransaction(tx)}, payload.ResponseMessage, confidence), nil
	case "query":
		return model.ClassificationResult{
			Kind:              model.ResultQuery,
			ResponseText:      payload.ResponseMessage,
			Confidence:        confidence,
			IsBusinessRelated: true,
		}, nil
	case "conversational", "chat", "off_topic":
		result := model.Conversational(payload.ResponseMessage, confidence)
		result.IsBusinessRelated = business && payload.Intent != "off_topic"
		return result, nil
	}

	if payload.Action == "query" {
		return model.ClassificationResult{
			Kind:              model.ResultQuery,
			ResponseText:      payload.ResponseMessage,
			Confidence:        confidence,
			IsBusinessRelated: true,
		}, nil
	}

	if payload.ResponseMessage != "" {
		return model.ClassificationResult{
			Kind:              model.ResultUnknown,
			ResponseText:      payload.ResponseMessage,
			Confidence:        confidence,
			IsBusinessRelated: business,
		}, nil
	}

	return model.ClassificationResult{}, fmt.Errorf("%w: no recognizable variant in %q", common.ErrMalformedClassifierPayload, payload.Intent)
}

func decodeTransaction(tx wireTransaction) model.TransactionIntent {
	kind := tx.Intent
	if kind == "" {
		kind = tx.Type
	}
	if kind == "inventory" {
		return model.NewInventoryDelta(tx.ProductName, float64(tx.Quantity), tx.Unit, float64(tx.CostPerUnit))
	}

	intent := model.NewExpense(float64(tx.Amount), tx.Description, tx.Category)
	if kind == "income" {
		intent = model.NewIncome(float64(tx.Amount), tx.Description, tx.Category)
	}
	if intent.Category == "" {
		intent.Category = "General"
	}
	return intent
}

func decodeItems(items []wireItem) []model.ClarificationItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]model.ClarificationItem, 0, len(items))
	for _, it := range items {
		out = append(out, model.ClarificationItem{
			Name:              it.Name,
			Unit:              it.Unit,
			SuggestedCategory: it.SuggestedCategory,
			Description:       it.Description,
			Quantity:          float64(it.Quantity),
			Amount:            float64(it.Amount),
			CostPerUnit:       float64(it.CostPerUnit),
		})
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
