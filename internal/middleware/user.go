// internal/middleware/user.go
package middleware

import (
	"context"
	"net/http"

	"tsumitan/internal/identity"
	"tsumitan/internal/model"
	"tsumitan/internal/webutil"
)

// UserContextMiddleware は X-User-ID ヘッダーのユーザーIDを検査してコンテキストに設定します。
// 認証は行わず、端末で生成されたIDをそのまま信頼します。
func UserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		userID := r.Header.Get(model.UserIDHeader)
		if err := identity.Validate(userID); err != nil {
			logger.Warn("User identification failed", "error", err)
			webutil.HandleError(w, logger, err)
			return
		}

		ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
		ctx = WithLogger(ctx, logger.With("user_id", userID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext はミドルウェアが設定したユーザーIDを返します
func GetUserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(model.UserIDKey).(string)
	if !ok || userID == "" {
		// ミドルウェアが正しく設定されていない
		return "", model.NewAppError("UNAUTHORIZED", "ユーザー情報を取得できませんでした。", "", model.ErrUnauthorized)
	}
	return userID, nil
}
