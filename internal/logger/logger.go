// internal/logger/logger.go
package logger

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel は設定ファイルのログレベル文字列を slog.Level に変換します。
// 不明な値の場合は Info と false を返します。
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New は APP_ENV に応じたハンドラでロガーを作ります。
// dev なら tint の色付き出力、それ以外は JSON です。
func New(w io.Writer, appEnv, level string) *slog.Logger {
	logLevel := new(slog.LevelVar)
	lv, ok := ParseLevel(level)
	logLevel.Set(lv)

	var handler slog.Handler
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}

	l := slog.New(handler)
	if !ok {
		l.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}
	return l
}
