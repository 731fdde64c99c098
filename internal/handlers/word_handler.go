// internal/handlers/word_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"tsumitan/internal/middleware"
	"tsumitan/internal/model"
	"tsumitan/internal/service"
	"tsumitan/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type WordHandler struct {
	search service.SearchService
	review service.ReviewService
	logger *slog.Logger
}

func NewWordHandler(search service.SearchService, review service.ReviewService, logger *slog.Logger) *WordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{
		search: search,
		review: review,
		logger: logger,
	}
}

// requestLogger はリクエストスコープのロガーがあればそれを使います
func requestLogger(r *http.Request, fallback *slog.Logger, handler string) *slog.Logger {
	logger, ok := middleware.LoggerFromContext(r.Context())
	if !ok {
		logger = fallback
	}
	return logger.With(slog.String("handler", handler))
}

// Search は辞書で意味を引き、検索回数を記録します
func (h *WordHandler) Search(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "Search")

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	req := model.SearchRequest{Word: r.URL.Query().Get("word")}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("word", req.Word))

	result, err := h.search.Search(r.Context(), userID, req.Word)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			logger.Info("Invalid search request", slog.Any("error", err))
		} else {
			logger.Error("Error searching word in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word searched successfully", slog.Int("search_count", result.SearchCount))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// GetWords はステータスで絞り込んだ単語一覧を返します
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetWords")

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	status := model.Status(r.URL.Query().Get("status"))
	words, err := h.review.GetFilteredWords(r.Context(), userID, status)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			logger.Info("Unsupported status filter", slog.String("status", string(status)))
		} else {
			logger.Error("Error listing words in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	if words == nil {
		words = []*model.WordWithStatus{}
	}
	logger.Info("Words listed successfully", slog.Int("count", len(words)))
	webutil.RespondWithJSON(w, http.StatusOK, words, logger)
}

// GetWord は1単語をステータス付きで返します
func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetWord")

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	word, err := wordParam(r)
	if err != nil || word == "" {
		appErr := model.NewAppError("INVALID_URL_PARAM", "単語の形式が正しくありません。", "word", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("word", word))

	result, err := h.review.GetWord(r.Context(), userID, word)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Word not found in service")
		} else {
			logger.Error("Error getting word from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// wordParam はパスの {word} を返します。
// chi は RawPath があればエスケープされたままのパスでルーティングする。
func wordParam(r *http.Request) (string, error) {
	word := chi.URLParam(r, "word")
	if r.URL.RawPath == "" {
		return word, nil
	}
	return url.PathUnescape(word)
}
