package classifier

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizsakhi/sakhi/internal/fallback"
	"github.com/bizsakhi/sakhi/internal/model"
)

// mockClient returns a fixed completion after an optional delay.
type mockClient struct {
	err     error
	content string
	delay   time.Duration
	calls   atomic.Int64
}

func (m *mockClient) Complete(ctx context.Context, _ string) (string, error) {
	m.calls.Add(1)
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if m.err != nil {
		return "", m.err
	}
	return m.content, nil
}

func testMessage(text string) model.Message {
	return model.Message{
		Text:     text,
		Language: model.LangEnglish,
		Modality: model.ModalityText,
		Mode:     model.ModeBusiness,
	}
}

func TestClassifySuccess(t *testing.T) {
	client := &mockClient{
		content: `{"intent": "expense", "action": "add", "confidence": 0.9, "data": {"amount": 200, "description": "Supplies", "category": "General"}, "response_message": "Expense recorded."}`,
	}
	gateway := NewGatewayWithClient(client, Config{MaxRetries: 1})
	defer gateway.Close()

	got := gateway.Classify(context.Background(), testMessage("paid 200 for supplies"))

	assert.Equal(t, model.ResultTransactions, got.Kind)
	require.Len(t, got.Items, 1)
	assert.InDelta(t, 200.0, got.Items[0].Amount, 0.001)
	assert.False(t, got.FallbackUsed)
}

func TestClassifyTimeoutNeverBlocks(t *testing.T) {
	client := &mockClient{
		content: `{"intent": "conversational", "confidence": 0.9, "response_message": "slow hello"}`,
		delay:   500 * time.Millisecond,
	}
	gateway := NewGatewayWithClient(client, Config{Timeout: 50 * time.Millisecond, MaxRetries: 1})
	defer gateway.Close()

	start := time.Now()
	got := gateway.Classify(context.Background(), testMessage("hello"))
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 400*time.Millisecond, "gateway must return near the deadline")
	assert.Equal(t, model.ResultConversational, got.Kind)
	assert.True(t, got.FallbackUsed)
	assert.InDelta(t, fallback.Confidence, got.Confidence, 0.001)
	assert.NotEmpty(t, got.ResponseText)
}

func TestClassifyProviderErrorFallsBack(t *testing.T) {
	client := &mockClient{err: errors.New("upstream exploded")}
	gateway := NewGatewayWithClient(client, Config{MaxRetries: 1})
	defer gateway.Close()

	got := gateway.Classify(context.Background(), testMessage("income 500"))

	assert.True(t, got.FallbackUsed)
	assert.Equal(t, model.ResultConversational, got.Kind)
	assert.NotEmpty(t, got.ResponseText)
}

func TestClassifyMalformedPayloadFallsBack(t *testing.T) {
	client := &mockClient{content: "definitely not json"}
	gateway := NewGatewayWithClient(client, Config{MaxRetries: 1})
	defer gateway.Close()

	got := gateway.Classify(context.Background(), testMessage("hello"))

	assert.True(t, got.FallbackUsed)
	assert.NotEmpty(t, got.ResponseText)
}

func TestClassifyCachesSuccessfulResults(t *testing.T) {
	client := &mockClient{
		content: `{"intent": "conversational", "confidence": 0.9, "response_message": "hi there"}`,
	}
	gateway := NewGatewayWithClient(client, Config{MaxRetries: 1, CacheTTL: time.Minute})
	defer gateway.Close()

	first := gateway.Classify(context.Background(), testMessage("hello"))
	second := gateway.Classify(context.Background(), testMessage("hello"))

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), client.calls.Load(), "second call must hit the cache")
}

func TestClassifyFallbackNotCached(t *testing.T) {
	client := &mockClient{err: errors.New("down")}
	gateway := NewGatewayWithClient(client, Config{MaxRetries: 1, CacheTTL: time.Minute})
	defer gateway.Close()

	gateway.Classify(context.Background(), testMessage("hello"))
	gateway.Classify(context.Background(), testMessage("hello"))

	assert.Equal(t, int64(2), client.calls.Load(), "failures must not populate the cache")
}
