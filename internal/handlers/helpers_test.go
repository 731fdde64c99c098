// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tsumitan/internal/config"
	"tsumitan/internal/handlers"
	"tsumitan/internal/model"
	"tsumitan/internal/service"

	"github.com/stretchr/testify/require"
)

const testUserID = "user_k3j9x0a1lm2b3c"

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil)) // ログ出力を抑制

// newTestRouter は本番と同じミドルウェア構成のルーターを返します
func newTestRouter(search service.SearchService, review service.ReviewService) http.Handler {
	return handlers.NewRouter(handlers.RouterConfig{
		Logger: testLogger,
		CORS: config.CORSConfig{
			AllowedOrigins: []string{config.ProductionOrigin},
			AllowedMethods: []string{"GET", "PATCH", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", model.UserIDHeader},
		},
	},
		handlers.NewWordHandler(search, review, testLogger),
		handlers.NewReviewHandler(review, testLogger),
	)
}

// doRequest はリクエストを組み立ててルーターに渡します。body が string ならそのまま送ります。
func doRequest(t *testing.T, h http.Handler, method, target, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			reqBody = strings.NewReader(s)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewReader(b)
		}
	}
	req := httptest.NewRequest(method, target, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(model.UserIDHeader, userID)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// decodeError はエラーレスポンスを読み取ります
func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return resp.Error
}
