package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tsumitan/internal/model"
	svc_mocks "tsumitan/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewHandler_SubmitReview(t *testing.T) {
	tests := []struct {
		name           string
		userID         string
		body           interface{}
		setupMock      func(m *svc_mocks.ReviewService)
		expectedStatus int
		expectedField  string
	}{
		{
			name:   "正常系: 正解を記録して204",
			userID: testUserID,
			body:   model.SubmitReviewRequest{Word: "apple", Outcome: model.OutcomeCorrect},
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("RecordAnswer", mock.Anything, testUserID, "apple", model.OutcomeCorrect).Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "正常系: 不正解を記録",
			userID: testUserID,
			body:   `{"word":"apple","outcome":"wrong"}`,
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("RecordAnswer", mock.Anything, testUserID, "apple", model.OutcomeWrong).Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "異常系: X-User-ID が無い",
			body:           model.SubmitReviewRequest{Word: "apple", Outcome: model.OutcomeCorrect},
			setupMock:      func(m *svc_mocks.ReviewService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: 壊れたJSON",
			userID:         testUserID,
			body:           `{"word":`,
			setupMock:      func(m *svc_mocks.ReviewService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: 単語が空",
			userID:         testUserID,
			body:           model.SubmitReviewRequest{Outcome: model.OutcomeCorrect},
			setupMock:      func(m *svc_mocks.ReviewService) {},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "word",
		},
		{
			name:           "異常系: 不正な回答結果",
			userID:         testUserID,
			body:           `{"word":"apple","outcome":"maybe"}`,
			setupMock:      func(m *svc_mocks.ReviewService) {},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "outcome",
		},
		{
			name:   "異常系: 検索していない単語",
			userID: testUserID,
			body:   model.SubmitReviewRequest{Word: "banana", Outcome: model.OutcomeWrong},
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("RecordAnswer", mock.Anything, testUserID, "banana", model.OutcomeWrong).Return(model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "異常系: ストレージエラー",
			userID: testUserID,
			body:   model.SubmitReviewRequest{Word: "apple", Outcome: model.OutcomeWrong},
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("RecordAnswer", mock.Anything, testUserID, "apple", model.OutcomeWrong).
					Return(fmt.Errorf("update: %w: %w", model.ErrStorage, errors.New("locked"))).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviewMock := svc_mocks.NewReviewService(t)
			tt.setupMock(reviewMock)
			router := newTestRouter(svc_mocks.NewSearchService(t), reviewMock)

			rr := doRequest(t, router, http.MethodPatch, "/api/review", tt.userID, tt.body)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusNoContent {
				assert.Empty(t, rr.Body.Bytes())
				return
			}
			detail := decodeError(t, rr)
			assert.NotEmpty(t, detail.Message)
			if tt.expectedField != "" {
				assert.Equal(t, tt.expectedField, detail.Field)
			}
		})
	}
}

func TestReviewHandler_Lists(t *testing.T) {
	reviewed := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		target        string
		setupMock     func(m *svc_mocks.ReviewService)
		expectedJSON  string
		expectedError error
	}{
		{
			name:   "復習待ち",
			target: "/api/review/pending",
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("GetPendingReviews", mock.Anything, testUserID).
					Return([]*model.PendingReview{{Word: "apple", Meaning: "りんご", SearchCount: 2}}, nil).Once()
			},
			expectedJSON: `[{"word":"apple","meaning":"りんご","search_count":2}]`,
		},
		{
			name:   "復習待ちが無い時は空配列",
			target: "/api/review/pending",
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("GetPendingReviews", mock.Anything, testUserID).Return(nil, nil).Once()
			},
			expectedJSON: `[]`,
		},
		{
			name:   "履歴",
			target: "/api/review/history",
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("GetReviewHistory", mock.Anything, testUserID).Return([]*model.ReviewHistory{{
					Word: "apple", Meaning: "りんご", SearchCount: 1, ReviewCount: 1, CorrectCount: 1, LastReviewed: reviewed,
				}}, nil).Once()
			},
			expectedJSON: `[{"word":"apple","meaning":"りんご","search_count":1,"review_count":1,"correct_count":1,"wrong_count":0,"last_reviewed":"2025-04-01T09:00:00Z"}]`,
		},
		{
			name:   "集計",
			target: "/api/review/stats",
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("GetStats", mock.Anything, testUserID).Return(&model.ReviewStats{
					TotalWords: 2, TotalSearches: 3, ReviewedWords: 1, PendingWords: 1, TotalReviews: 2, OverallAccuracy: 0.5,
				}, nil).Once()
			},
			expectedJSON: `{"total_words":2,"total_searches":3,"reviewed_words":1,"pending_words":1,"weak_words":0,"total_reviews":2,"overall_accuracy":0.5}`,
		},
		{
			name:   "異常系: 履歴の取得に失敗",
			target: "/api/review/history",
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("GetReviewHistory", mock.Anything, testUserID).Return(nil, model.ErrStorage).Once()
			},
			expectedError: model.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviewMock := svc_mocks.NewReviewService(t)
			tt.setupMock(reviewMock)
			router := newTestRouter(svc_mocks.NewSearchService(t), reviewMock)

			rr := doRequest(t, router, http.MethodGet, tt.target, testUserID, nil)

			if tt.expectedError != nil {
				assert.Equal(t, http.StatusInternalServerError, rr.Code)
				assert.Equal(t, "INTERNAL_SERVER_ERROR", decodeError(t, rr).Code)
				return
			}
			require.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tt.expectedJSON, rr.Body.String())
		})
	}
}

func TestReviewHandler_RequiresUserID(t *testing.T) {
	router := newTestRouter(svc_mocks.NewSearchService(t), svc_mocks.NewReviewService(t))

	for _, target := range []string{"/api/review/pending", "/api/review/history", "/api/review/stats", "/api/words"} {
		rr := doRequest(t, router, http.MethodGet, target, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, target)
	}
}

func TestRouter_HealthAndCORS(t *testing.T) {
	router := newTestRouter(svc_mocks.NewSearchService(t), svc_mocks.NewReviewService(t))

	rr := doRequest(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	tests := []struct {
		name           string
		origin         string
		requestHeaders string
		expectedOrigin string
	}{
		// ブラウザはリクエストヘッダー名を小文字で送る
		{name: "正常系: 許可したオリジンからのプリフライト", origin: "https://tsumitan.muhi111.com", requestHeaders: strings.ToLower(model.UserIDHeader), expectedOrigin: "https://tsumitan.muhi111.com"},
		{name: "正常系: ヘッダー指定なし", origin: "https://tsumitan.muhi111.com", expectedOrigin: "https://tsumitan.muhi111.com"},
		{name: "異常系: 大文字を含むヘッダー名は拒否", origin: "https://tsumitan.muhi111.com", requestHeaders: model.UserIDHeader, expectedOrigin: ""},
		{name: "異常系: 許可していないオリジン", origin: "https://evil.example.com", requestHeaders: strings.ToLower(model.UserIDHeader), expectedOrigin: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodOptions, "/api/review", nil)
			require.NoError(t, err)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
			if tt.requestHeaders != "" {
				req.Header.Set("Access-Control-Request-Headers", tt.requestHeaders)
			}
			pre := newRecorder(router, req)
			assert.Equal(t, tt.expectedOrigin, pre.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func newRecorder(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
