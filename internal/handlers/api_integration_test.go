package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tsumitan/internal/config"
	"tsumitan/internal/dictionary"
	"tsumitan/internal/handlers"
	"tsumitan/internal/middleware"
	"tsumitan/internal/model"
	"tsumitan/internal/repository"
	"tsumitan/internal/service"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupAPI は SQLite と偽の辞書サーバーで全体を組み立てます
func setupAPI(t *testing.T) http.Handler {
	t.Helper()

	dict := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		meanings := map[string]string{"apple": "りんご", "banana": "バナナ"}
		meaning, ok := meanings[r.URL.Query().Get("word")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(meaning))
	}))
	t.Cleanup(dict.Close)

	db, err := repository.NewDB(config.DatabaseConfig{
		Driver: "sqlite",
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}, testLogger)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	reg := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(reg)
	dictClient := dictionary.NewClient(config.DictionaryConfig{
		BaseURL:     dict.URL,
		Timeout:     time.Second,
		CacheSizeMB: 1,
		CacheTTL:    time.Minute,
	}, dictionary.WithLookupObserver(metrics.ObserveDictionaryLookup))

	store := service.NewWordStore(db, repository.NewGormWordRepository(), nil)
	reviewService := service.NewReviewService(store, service.DefaultStatusPolicy())
	searchService := service.NewSearchService(store, dictClient)

	return handlers.NewRouter(handlers.RouterConfig{
		Logger:   testLogger,
		Metrics:  metrics,
		Gatherer: reg,
		DB:       sqlDB,
	},
		handlers.NewWordHandler(searchService, reviewService, testLogger),
		handlers.NewReviewHandler(reviewService, testLogger),
	)
}

func decodeJSON[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}

func TestAPI_SearchAndReviewFlow(t *testing.T) {
	api := setupAPI(t)

	// 2回検索すると検索回数2
	rr := doRequest(t, api, http.MethodGet, "/api/search?word=apple", testUserID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = doRequest(t, api, http.MethodGet, "/api/search?word=apple", testUserID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, model.SearchResult{Word: "apple", Meaning: "りんご", SearchCount: 2}, decodeJSON[model.SearchResult](t, rr.Body.Bytes()))

	// 辞書に無い単語も記録される
	rr = doRequest(t, api, http.MethodGet, "/api/search?word=qwzx", testUserID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, model.SearchResult{Word: "qwzx", SearchCount: 1}, decodeJSON[model.SearchResult](t, rr.Body.Bytes()))

	rr = doRequest(t, api, http.MethodGet, "/api/review/pending", testUserID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	pending := decodeJSON[[]model.PendingReview](t, rr.Body.Bytes())
	require.Len(t, pending, 2)
	assert.Equal(t, "apple", pending[0].Word)

	for _, outcome := range []model.Outcome{model.OutcomeWrong, model.OutcomeWrong, model.OutcomeCorrect} {
		rr = doRequest(t, api, http.MethodPatch, "/api/review", testUserID, model.SubmitReviewRequest{Word: "apple", Outcome: outcome})
		require.Equal(t, http.StatusNoContent, rr.Code, rr.Body.String())
	}

	rr = doRequest(t, api, http.MethodGet, "/api/words?status=wrong", testUserID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	wrong := decodeJSON[[]model.WordWithStatus](t, rr.Body.Bytes())
	require.Len(t, wrong, 1)
	assert.Equal(t, "apple", wrong[0].Word)
	assert.True(t, wrong[0].Weak)

	rr = doRequest(t, api, http.MethodGet, "/api/words/apple", testUserID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	apple := decodeJSON[model.WordWithStatus](t, rr.Body.Bytes())
	assert.Equal(t, 3, apple.ReviewCount)
	assert.Equal(t, 1, apple.CorrectCount)
	assert.Equal(t, 2, apple.WrongCount)

	rr = doRequest(t, api, http.MethodGet, "/api/review/stats", testUserID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	stats := decodeJSON[model.ReviewStats](t, rr.Body.Bytes())
	assert.Equal(t, 2, stats.TotalWords)
	assert.Equal(t, 1, stats.WeakWords)
	assert.Equal(t, 1, stats.PendingWords)

	// 別ユーザーからは見えない
	rr = doRequest(t, api, http.MethodGet, "/api/words/apple", "user_someone_else", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// 検索していない単語の復習は 404
	rr = doRequest(t, api, http.MethodPatch, "/api/review", testUserID, model.SubmitReviewRequest{Word: "banana", Outcome: model.OutcomeCorrect})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(t, api, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `tsumitan_dictionary_lookups_total{result="cache_hit"} 1`)
	assert.Regexp(t, `tsumitan_http_requests_total\{method="PATCH",route="[^"]*",status="204"\} 3`, rr.Body.String())

	rr = doRequest(t, api, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}
