// internal/handlers/review_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"tsumitan/internal/middleware"
	"tsumitan/internal/model"
	"tsumitan/internal/service"
	"tsumitan/internal/webutil"
)

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{service: s, logger: logger}
}

func (h *ReviewHandler) GetPendingReviews(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetPendingReviews")

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	pending, err := h.service.GetPendingReviews(r.Context(), userID)
	if err != nil {
		logger.Error("Error getting pending reviews", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if pending == nil {
		pending = []*model.PendingReview{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, pending, logger)
}

func (h *ReviewHandler) GetReviewHistory(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetReviewHistory")

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	history, err := h.service.GetReviewHistory(r.Context(), userID)
	if err != nil {
		logger.Error("Error getting review history", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if history == nil {
		history = []*model.ReviewHistory{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, history, logger)
}

func (h *ReviewHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetStats")

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	stats, err := h.service.GetStats(r.Context(), userID)
	if err != nil {
		logger.Error("Error getting review stats", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

// SubmitReview は復習の回答結果を記録します。成功時は 204 を返します。
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "SubmitReview")

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SubmitReviewRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("word", req.Word), slog.String("outcome", string(req.Outcome)))

	if err := h.service.RecordAnswer(r.Context(), userID, req.Word, req.Outcome); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Review submitted for unknown word")
		} else {
			logger.Error("Error recording review answer", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Review recorded successfully")
	w.WriteHeader(http.StatusNoContent)
}
