package classifier

import (
	"fmt"
	"strings"

	"github.com/bizsakhi/sakhi/internal/model"
)

// buildPrompt renders the classification instructions for one message. The
// provider must answer with the JSON payload decoded by decodeResult.
func buildPrompt(msg model.Message) string {
	var b strings.Builder

	b.WriteString("Classify the intent of a message sent to a small-business assistant.\n\n")
	fmt.Fprintf(&b, "Message: %q\n", msg.Text)
	fmt.Fprintf(&b, "Language: %s\n", msg.Language)
	fmt.Fprintf(&b, "Mode: %s\n\n", msg.Mode)

	b.WriteString(`Respond with a single JSON object:
{
  "intent": "income|expense|inventory|item_clarification|query|conversational|off_topic",
  "action": "add|clarify|query|respond|redirect",
  "confidence": 0.0-1.0,
  "data": {
    "amount": number,
    "description": "...",
    "category": "...",
    "product_name": "...",
    "quantity": number,
    "unit": "...",
    "cost_per_unit": number,
    "items": [{"name": "...", "quantity": number, "unit": "...", "amount": number, "cost_per_unit": number, "suggested_category": "income|expense|inventory", "description": "..."}]
  },
  "transactions": [{"intent": "income|expense|inventory", "amount": number, "description": "...", "category": "...", "product_name": "...", "quantity": number, "unit": "...", "cost_per_unit": number}],
  "response_message": "a short reply in the message's language",
  "is_business_related": true|false,
  "needs_clarification": true|false
}

Rules:
- A message describing money earned or spent is income or expense. Put every distinct transaction in "transactions", in the order mentioned.
- A message listing purchased items with quantities needs confirmation: set "needs_clarification" true and list the items in "data.items".
- A question about totals, profit, or loss is a query; do not invent figures.
- Anything unrelated to running a business is off_topic; gently redirect in "response_message".
- Amounts are in rupees. Never output a negative amount.
`)

	return b.String()
}
