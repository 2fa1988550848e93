package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ugaemi/chatnoir-server/internal/result"
	"github.com/ugaemi/chatnoir-server/internal/store"
)

// StatsHandler serves win counts over all recorded games, or the finished
// games of one session when the session query parameter is set.
type StatsHandler struct {
	results store.ResultStore
}

// NewStatsHandler creates a StatsHandler reading from results.
func NewStatsHandler(results store.ResultStore) *StatsHandler {
	return &StatsHandler{results: results}
}

type gameRecord struct {
	*result.Result
	DurationMS int64 `json:"duration_ms"`
}

type sessionHistoryResponse struct {
	SessionID string       `json:"session_id"`
	Games     []gameRecord `json:"games"`
}

func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if sessionID := r.URL.Query().Get("session"); sessionID != "" {
		h.serveSession(w, r, sessionID)
		return
	}

	st, err := h.results.Stats(r.Context())
	if err != nil {
		slog.Error("failed to load stats", "error", err)
		http.Error(w, "stats unavailable", http.StatusInternalServerError)
		return
	}
	writeJSON(w, st)
}

func (h *StatsHandler) serveSession(w http.ResponseWriter, r *http.Request, sessionID string) {
	found, err := h.results.FindBySession(r.Context(), sessionID)
	if err != nil {
		slog.Error("failed to load session results", "session", sessionID, "error", err)
		http.Error(w, "stats unavailable", http.StatusInternalServerError)
		return
	}

	resp := sessionHistoryResponse{SessionID: sessionID, Games: make([]gameRecord, 0, len(found))}
	for _, res := range found {
		resp.Games = append(resp.Games, gameRecord{Result: res, DurationMS: res.Duration().Milliseconds()})
	}
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
