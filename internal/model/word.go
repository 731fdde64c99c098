// internal/model/word.go
package model

import (
	"time"
)

// NeverReviewed は一度も復習されていない単語の LastReviewed に入る番兵値 (UNIX エポック)
var NeverReviewed = time.Unix(0, 0).UTC()

// WordRecord はユーザーごとの単語学習記録を表します
// (UserID, Word) の複合主キーで一意になります。
type WordRecord struct {
	UserID       string    `gorm:"primaryKey;type:varchar(64)" json:"-"`
	Word         string    `gorm:"primaryKey;type:varchar(255)" json:"word"` // 入力されたままの綴り (大文字小文字を区別)
	Meaning      string    `gorm:"not null;default:''" json:"meaning"`       // 辞書から取得した意味のキャッシュ
	SearchCount  int       `gorm:"not null;default:0;index:idx_words_search_count" json:"search_count"`
	ReviewCount  int       `gorm:"not null;default:0" json:"review_count"`
	CorrectCount int       `gorm:"not null;default:0" json:"correct_count"`
	WrongCount   int       `gorm:"not null;default:0" json:"wrong_count"`
	LastReviewed time.Time `gorm:"not null;index:idx_words_last_reviewed" json:"last_reviewed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (WordRecord) TableName() string {
	return "words"
}

// IsReviewed は一度でも復習で回答されたかどうか
func (r *WordRecord) IsReviewed() bool {
	return r.ReviewCount > 0
}

// NeedsReview は検索回数が復習回数を上回っているかどうか
func (r *WordRecord) NeedsReview() bool {
	return r.SearchCount > r.ReviewCount
}

// Attempts は正誤が記録された回答数
func (r *WordRecord) Attempts() int {
	return r.CorrectCount + r.WrongCount
}

// SearchResult は検索APIのレスポンスDTO
type SearchResult struct {
	Word        string `json:"word"`
	Meaning     string `json:"meaning"`
	SearchCount int    `json:"search_count"`
}

// SearchRequest は検索APIのクエリパラメータ
type SearchRequest struct {
	Word string `json:"word" validate:"required,max=255"`
}
