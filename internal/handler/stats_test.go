package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/chatnoir-server/internal/result"
	"github.com/ugaemi/chatnoir-server/internal/store"
)

type failingStore struct {
	store.MemoryStore
}

func (*failingStore) Stats(context.Context) (store.Stats, error) {
	return store.Stats{}, errors.New("db down")
}

func (*failingStore) FindBySession(context.Context, string) ([]*result.Result, error) {
	return nil, errors.New("db down")
}

func seedResults(t *testing.T) *store.MemoryStore {
	t.Helper()
	ms := store.NewMemoryStore()
	ctx := context.Background()
	started := time.Now().Add(-90 * time.Second)

	require.NoError(t, ms.Save(ctx, result.NewResult("s1", "cat", 4, 3, started)))
	require.NoError(t, ms.Save(ctx, result.NewResult("s1", "owner", 7, 8, started)))
	require.NoError(t, ms.Save(ctx, result.NewResult("s2", "cat", 2, 1, started)))
	return ms
}

func getStats(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestStatsHandler_Totals(t *testing.T) {
	h := NewStatsHandler(seedResults(t))

	rec := getStats(t, h, "/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"games":3,"cat_wins":2,"owner_wins":1}`, rec.Body.String())
}

func TestStatsHandler_SessionHistory(t *testing.T) {
	h := NewStatsHandler(seedResults(t))

	rec := getStats(t, h, "/stats?session=s1")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		SessionID string `json:"session_id"`
		Games     []struct {
			SessionID  string `json:"session_id"`
			Winner     string `json:"winner"`
			CatMoves   int    `json:"cat_moves"`
			DurationMS int64  `json:"duration_ms"`
		} `json:"games"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "s1", resp.SessionID)
	require.Len(t, resp.Games, 2)
	assert.Equal(t, "cat", resp.Games[0].Winner)
	assert.Equal(t, "owner", resp.Games[1].Winner)
	assert.Equal(t, 7, resp.Games[1].CatMoves)
	for _, g := range resp.Games {
		assert.Equal(t, "s1", g.SessionID)
		assert.GreaterOrEqual(t, g.DurationMS, int64(90_000))
	}
}

func TestStatsHandler_UnknownSessionIsEmpty(t *testing.T) {
	h := NewStatsHandler(seedResults(t))

	rec := getStats(t, h, "/stats?session=nope")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"session_id":"nope","games":[]}`, rec.Body.String())
}

func TestStatsHandler_StoreErrors(t *testing.T) {
	h := NewStatsHandler(&failingStore{})

	assert.Equal(t, http.StatusInternalServerError, getStats(t, h, "/stats").Code)
	assert.Equal(t, http.StatusInternalServerError, getStats(t, h, "/stats?session=s1").Code)
}

func TestStatsHandler_MethodNotAllowed(t *testing.T) {
	h := NewStatsHandler(store.NewMemoryStore())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/stats", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
