package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/bizsakhi/sakhi/internal/model"
	"github.com/bizsakhi/sakhi/internal/pipeline"
	"github.com/bizsakhi/sakhi/internal/render"
)

// chatRequest is the body of POST /api/chat/message and /api/chat/voice.
type chatRequest struct {
	Message         string `json:"message"`
	TranscribedText string `json:"transcribed_text"`
	Language        string `json:"language"`
	Mode            string `json:"mode"`
	UserID          string `json:"user_id"`
}

func (req chatRequest) text() string {
	if req.Message != "" {
		return req.Message
	}
	return req.TranscribedText
}

func (req chatRequest) language() model.Language {
	return model.ParseLanguage(req.Language)
}

func (req chatRequest) mode() model.Mode {
	if req.Mode == string(model.ModeGeneral) {
		return model.ModeGeneral
	}
	return model.ModeBusiness
}

// confirmRequest is the body of POST /api/chat/confirm-items.
type confirmRequest struct {
	Items    []model.ClarificationItem `json:"items"`
	Language string                    `json:"language"`
	UserID   string                    `json:"user_id"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChatMessage(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, model.LangEnglish, "invalid json body")
		return
	}
	if req.text() == "" {
		writeFailure(w, http.StatusBadRequest, req.language(), "message is required")
		return
	}

	msg := model.Message{
		ReceivedAt: time.Now(),
		Text:       req.text(),
		Language:   req.language(),
		Modality:   model.ModalityText,
		Mode:       req.mode(),
	}

	resolution := s.pipeline.Resolve(r.Context(), s.resolver(r, req.UserID), msg)
	writeJSON(w, http.StatusOK, resolution)
}

// handleChatVoice resolves a pre-transcribed voice message. The transcript
// is echoed back so the client can show what was heard.
func (s *Server) handleChatVoice(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, model.LangEnglish, "invalid json body")
		return
	}
	if req.text() == "" {
		writeFailure(w, http.StatusBadRequest, req.language(), "transcribed_text is required")
		return
	}

	msg := model.Message{
		ReceivedAt: time.Now(),
		Text:       req.text(),
		Language:   req.language(),
		Modality:   model.ModalityVoice,
		Mode:       req.mode(),
	}

	resolution := s.pipeline.Resolve(r.Context(), s.resolver(r, req.UserID), msg)
	writeJSON(w, http.StatusOK, voiceResponse{Resolution: resolution, TranscribedText: req.text()})
}

// voiceResponse echoes the transcript alongside the resolution.
type voiceResponse struct {
	pipeline.Resolution
	TranscribedText string `json:"transcribed_text"`
}

func (s *Server) handleConfirmItems(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, model.LangEnglish, "invalid json body")
		return
	}
	if len(req.Items) == 0 {
		writeFailure(w, http.StatusBadRequest, model.ParseLanguage(req.Language), "items are required")
		return
	}

	resolution := s.pipeline.ConfirmItems(r.Context(), s.resolver(r, req.UserID), req.Items, model.ParseLanguage(req.Language))
	writeJSON(w, http.StatusOK, resolution)
}

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeFailure(w, http.StatusBadRequest, model.LangEnglish, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	entries, err := s.history.ListChat(r.Context(), s.resolver(r, ""), limit)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, model.LangEnglish, "history unavailable")
		return
	}

	history := make([]map[string]string, 0, len(entries))
	for _, e := range entries {
		history = append(history, map[string]string{
			"message":  e.Message,
			"response": e.Response,
			"intent":   e.Intent,
			"modality": string(e.Modality),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": history})
}

func (s *Server) handleIncomeSummary(w http.ResponseWriter, r *http.Request) {
	s.writeAggregate(w, r, func(agg model.LedgerAggregate) map[string]any {
		return map[string]any{
			"total_income": agg.TotalIncome,
			"count":        agg.IncomeCount,
		}
	})
}

func (s *Server) handleExpenseSummary(w http.ResponseWriter, r *http.Request) {
	s.writeAggregate(w, r, func(agg model.LedgerAggregate) map[string]any {
		return map[string]any{
			"total_expenses": agg.TotalExpenses,
			"count":          agg.ExpenseCount,
		}
	})
}

func (s *Server) handleProfitLoss(w http.ResponseWriter, r *http.Request) {
	s.writeAggregate(w, r, func(agg model.LedgerAggregate) map[string]any {
		return map[string]any{
			"total_income":      agg.TotalIncome,
			"total_expenses":    agg.TotalExpenses,
			"net_profit":        agg.NetProfit(),
			"profit_margin_pct": agg.ProfitMarginPct(),
			"status":            agg.Status(),
		}
	})
}

// handleInventorySummary lists current stock with the total value held.
func (s *Server) handleInventorySummary(w http.ResponseWriter, r *http.Request) {
	items, err := s.ledger.ListInventory(r.Context(), s.resolver(r, ""))
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, model.LangEnglish, "inventory unavailable")
		return
	}

	totalValue := 0.0
	for _, item := range items {
		totalValue += item.StockValue()
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items":       items,
		"count":       len(items),
		"total_value": totalValue,
	})
}

func (s *Server) writeAggregate(w http.ResponseWriter, r *http.Request, shape func(model.LedgerAggregate) map[string]any) {
	scope := model.ScopeAllTime
	if r.URL.Query().Get("period") == "today" {
		scope = model.ScopeToday
	}

	agg, err := s.ledger.Aggregate(r.Context(), s.resolver(r, ""), scope)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, model.LangEnglish, "aggregate unavailable")
		return
	}

	body := shape(agg)
	body["period"] = string(scope)
	writeJSON(w, http.StatusOK, body)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeFailure sends the structured error envelope. The response field is a
// localized apology the client can surface directly.
func writeFailure(w http.ResponseWriter, status int, lang model.Language, detail string) {
	writeJSON(w, status, map[string]any{
		"success":  false,
		"error":    detail,
		"response": render.Render(render.KeyApology, lang, nil),
	})
}
