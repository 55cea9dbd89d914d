package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizsakhi/sakhi/internal/common"
	"github.com/bizsakhi/sakhi/internal/model"
)

func TestDecodeResultTransactionBatch(t *testing.T) {
	content := `{
		"intent": "expense",
		"action": "add",
		"confidence": 0.92,
		"transactions": [
			{"intent": "income", "amount": 500, "description": "Sold vegetables", "category": "Sales"},
			{"intent": "expense", "amount": "1,200.50", "description": "Bought stock", "category": "Supplies"},
			{"intent": "inventory", "product_name": "Rice", "quantity": 10, "unit": "kg", "cost_per_unit": 48}
		],
		"response_message": "Recorded your transactions.",
		"is_business_related": true
	}`

	got, err := decodeResult(content)
	require.NoError(t, err)
	assert.Equal(t, model.ResultTransactions, got.Kind)
	require.Len(t, got.Items, 3)

	assert.Equal(t, model.IntentIncome, got.Items[0].Kind)
	assert.InDelta(t, 500.0, got.Items[0].Amount, 0.001)
	assert.Equal(t, model.IntentExpense, got.Items[1].Kind)
	assert.InDelta(t, 1200.50, got.Items[1].Amount, 0.001)
	assert.Equal(t, model.IntentInventory, got.Items[2].Kind)
	assert.Equal(t, "Rice", got.Items[2].ProductName)
	assert.InDelta(t, 0.92, got.Confidence, 0.001)
	assert.Equal(t, "Recorded your transactions.", got.ResponseText)
}

func TestDecodeResultLegacySingleTransaction(t *testing.T) {
	content := `{
		"intent": "income",
		"action": "add",
		"confidence": 0.85,
		"data": {"amount": 750, "description": "Morning sales", "category": "Sales"},
		"response_message": "Income recorded."
	}`

	got, err := decodeResult(content)
	require.NoError(t, err)
	assert.Equal(t, model.ResultTransactions, got.Kind)
	require.Len(t, got.Items, 1)
	assert.Equal(t, model.IntentIncome, got.Items[0].Kind)
	assert.InDelta(t, 750.0, got.Items[0].Amount, 0.001)
}

func TestDecodeResultClarification(t *testing.T) {
	content := `{
		"intent": "item_clarification",
		"needs_clarification": true,
		"confidence": 0.8,
		"data": {
			"items": [
				{"name": "Rice", "quantity": 10, "unit": "kg", "amount": 480, "cost_per_unit": 48, "suggested_category": "inventory"},
				{"name": "Tea", "quantity": 2, "unit": "box", "amount": 120, "suggested_category": "expense"}
			]
		},
		"response_message": "I found 2 items. Should I record them?"
	}`

	got, err := decodeResult(content)
	require.NoError(t, err)
	assert.Equal(t, model.ResultClarification, got.Kind)
	require.Len(t, got.Candidates, 2)
	assert.Equal(t, "Rice", got.Candidates[0].Name)
	assert.InDelta(t, 48.0, got.Candidates[0].CostPerUnit, 0.001)
	assert.Equal(t, "expense", got.Candidates[1].SuggestedCategory)
}

func TestDecodeResultQuery(t *testing.T) {
	content := `{"intent": "query", "action": "query", "confidence": 0.9, "response_message": "Let me check your totals."}`

	got, err := decodeResult(content)
	require.NoError(t, err)
	assert.Equal(t, model.ResultQuery, got.Kind)
	assert.True(t, got.IsBusinessRelated)
}

func TestDecodeResultOffTopic(t *testing.T) {
	content := `{"intent": "off_topic", "confidence": 0.7, "is_business_related": false, "response_message": "I can only help with your business."}`

	got, err := decodeResult(content)
	require.NoError(t, err)
	assert.Equal(t, model.ResultConversational, got.Kind)
	assert.False(t, got.IsBusinessRelated)
}

func TestDecodeResultMarkdownWrapper(t *testing.T) {
	content := "Here is the classification:\n```json\n{\"intent\": \"conversational\", \"confidence\": 0.8, \"response_message\": \"Hello!\"}\n```\nLet me know if you need more."

	got, err := decodeResult(content)
	require.NoError(t, err)
	assert.Equal(t, model.ResultConversational, got.Kind)
	assert.Equal(t, "Hello!", got.ResponseText)
}

func TestDecodeResultMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "I think this is an expense of 500 rupees."},
		{name: "empty object", content: "{}"},
		{name: "unknown intent no message", content: `{"intent": "mystery", "confidence": 0.5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeResult(tt.content)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrMalformedClassifierPayload)
		})
	}
}

func TestDecodeResultConfidenceClamped(t *testing.T) {
	content := `{"intent": "conversational", "confidence": 1.4, "response_message": "hi"}`

	got, err := decodeResult(content)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got.Confidence, 0.001)
}
