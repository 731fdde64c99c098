// internal/identity/identity.go
package identity

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"tsumitan/internal/model"

	"github.com/google/uuid"
)

const (
	idPrefix     = "user_"
	randomLength = 9
	maxIDLength  = 64
)

// Provider は現在のユーザー (端末) のIDを返します
type Provider interface {
	UserID() (string, error)
}

// Static は固定のIDを返す Provider です
type Static string

func (s Static) UserID() (string, error) {
	if err := Validate(string(s)); err != nil {
		return "", err
	}
	return string(s), nil
}

// FileProvider は初回に生成したIDをファイルに保存し、以降はそれを使い回します
type FileProvider struct {
	Path string
	Now  func() time.Time
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path, Now: time.Now}
}

func (p *FileProvider) UserID() (string, error) {
	b, err := os.ReadFile(p.Path)
	if err == nil {
		id := strings.TrimSpace(string(b))
		if Validate(id) == nil {
			return id, nil
		}
		// 壊れたファイルは作り直す
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("identity: read %s: %w: %w", p.Path, model.ErrStorage, err)
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	id := Generate(now())

	if dir := filepath.Dir(p.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", fmt.Errorf("identity: mkdir %s: %w: %w", dir, model.ErrStorage, err)
		}
	}
	if err := os.WriteFile(p.Path, []byte(id+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("identity: write %s: %w: %w", p.Path, model.ErrStorage, err)
	}
	return id, nil
}

// Generate は "user_" + ランダムな base36 9文字 + 生成時刻(ミリ秒)の base36 を返します
func Generate(at time.Time) string {
	u := uuid.New()
	random := new(big.Int).SetBytes(u[:]).Text(36)
	if len(random) < randomLength {
		random = strings.Repeat("0", randomLength-len(random)) + random
	}
	return idPrefix + random[:randomLength] + strconv.FormatInt(at.UnixMilli(), 36)
}

// Validate はヘッダーなどで受け取ったIDを検査します。
// 形式は問わず、空白や制御文字を含まない64文字以下の文字列を受け付けます。
func Validate(id string) error {
	if id == "" {
		return model.NewAppError("UNAUTHORIZED", "ユーザーIDが指定されていません。", "", model.ErrUnauthorized)
	}
	if len(id) > maxIDLength {
		return model.NewAppError("INVALID_USER_ID", "ユーザーIDが長すぎます。", "", model.ErrUnauthorized)
	}
	for _, r := range id {
		if r <= ' ' || r == 0x7f {
			return model.NewAppError("INVALID_USER_ID", "ユーザーIDに使用できない文字が含まれています。", "", model.ErrUnauthorized)
		}
	}
	return nil
}
