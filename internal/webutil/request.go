// internal/webutil/request.go
package webutil

import (
	"errors"
	"net/http"

	"tsumitan/internal/model"

	json "github.com/goccy/go-json"
	"github.com/go-playground/validator/v10"
)

// リクエストボディの上限
const maxRequestBody = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします。未知のフィールドはエラーにします。
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディが必要です。", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", errors.Join(model.ErrInvalidInput, err))
	}
	return nil
}

// ValidateStruct はDTOを検証し、最初のエラーを日本語メッセージの AppError にして返します
func ValidateStruct(v interface{}) error {
	err := Validator.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// バリデーションライブラリ自体のエラー
		return err
	}
	first := validationErrors[0]
	return model.NewAppError(
		"VALIDATION_ERROR",
		first.Translate(Trans),
		first.Field(), // jsonタグ名
		model.ErrInvalidInput,
	)
}
