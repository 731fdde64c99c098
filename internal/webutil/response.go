// internal/webutil/response.go
package webutil

import (
	"errors"
	"log/slog"
	"net/http"

	"tsumitan/internal/dictionary"
	"tsumitan/internal/model"

	json "github.com/goccy/go-json"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError
	switch {
	case errors.As(err, &appErr):
		errResp = model.APIErrorResponse{Error: appErr.Detail()}
	case statusCode == http.StatusNotFound:
		errResp = newErrorResponse("NOT_FOUND", "単語が見つかりません。")
	case statusCode == http.StatusBadRequest:
		errResp = newErrorResponse("INVALID_INPUT", "入力内容が正しくありません。")
	case statusCode == http.StatusBadGateway:
		errResp = newErrorResponse("DICTIONARY_UNAVAILABLE", "辞書サービスに接続できません。時間をおいて再度お試しください。")
	default:
		// 詳細はログにだけ出し、クライアントには汎用メッセージを返す
		logger.Error("Unhandled error", slog.Any("error", err))
		errResp = newErrorResponse("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。")
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

func newErrorResponse(code, message string) model.APIErrorResponse {
	return model.APIErrorResponse{Error: model.ErrorDetail{Code: code, Message: message}}
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, dictionary.ErrUnavailable):
		return http.StatusBadGateway
	default:
		// ErrStorage を含め、それ以外は内部エラー
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"レスポンス生成中にエラーが発生しました。"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
