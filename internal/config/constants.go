// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "tsumitan"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort            = ":8080"
	DefaultLogLevel              = "info"
	DefaultDatabaseDriver        = "sqlite"
	DefaultDatabaseURL           = "tsumitan.db"
	DefaultStatusScheme          = "weakness"
	DefaultWeakMinAttempts       = 2
	DefaultWeakAccuracyThreshold = 0.7
	DefaultLegacyThreshold       = 0.5
	DefaultDictionaryBaseURL     = "https://api.excelapi.org/dictionary/enja"
	DefaultDictionaryTimeout     = 5 * time.Second
	DefaultDictionaryCacheSizeMB = 16
	DefaultDictionaryCacheTTL    = 24 * time.Hour
	DefaultIdentityFile          = ".tsumitan-user-id"
)

// 本番フロントエンドのオリジン
const ProductionOrigin = "https://tsumitan.muhi111.com"
