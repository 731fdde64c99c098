// internal/model/review.go
package model

import "time"

// Outcome は復習時の回答結果
type Outcome string

const (
	OutcomeCorrect Outcome = "correct"
	OutcomeWrong   Outcome = "wrong"
)

func (o Outcome) Valid() bool {
	return o == OutcomeCorrect || o == OutcomeWrong
}

// Status は単語の復習状態 (UIのフィルタに使う)
type Status string

const (
	StatusAll       Status = "all"
	StatusUnchecked Status = "unchecked"
	StatusReviewed  Status = "reviewed"
	StatusWrong     Status = "wrong"
	StatusCorrect   Status = "correct" // 旧3状態方式でのみ使用
)

// PendingReview は復習待ちの単語 (検索回数 > 復習回数)
type PendingReview struct {
	Word        string `json:"word"`
	Meaning     string `json:"meaning"`
	SearchCount int    `json:"search_count"`
}

// ReviewHistory は一度以上復習された単語の履歴
type ReviewHistory struct {
	Word         string    `json:"word"`
	Meaning      string    `json:"meaning"`
	SearchCount  int       `json:"search_count"`
	ReviewCount  int       `json:"review_count"`
	CorrectCount int       `json:"correct_count"`
	WrongCount   int       `json:"wrong_count"`
	LastReviewed time.Time `json:"last_reviewed"`
}

// WordWithStatus はステータス付きの単語 (フィルタ済み一覧の要素)
type WordWithStatus struct {
	Word         string     `json:"word"`
	Meaning      string     `json:"meaning"`
	SearchCount  int        `json:"search_count"`
	ReviewCount  int        `json:"review_count"`
	CorrectCount int        `json:"correct_count"`
	WrongCount   int        `json:"wrong_count"`
	LastReviewed *time.Time `json:"last_reviewed,omitempty"` // 未復習の場合は nil
	Status       Status     `json:"status"`
	Weak         bool       `json:"weak"` // 苦手判定 (正答率が閾値未満)
}

// ReviewStats はプロフィール画面向けの集計
type ReviewStats struct {
	TotalWords      int     `json:"total_words"`
	TotalSearches   int     `json:"total_searches"`
	ReviewedWords   int     `json:"reviewed_words"`
	PendingWords    int     `json:"pending_words"`
	WeakWords       int     `json:"weak_words"`
	TotalReviews    int     `json:"total_reviews"`
	OverallAccuracy float64 `json:"overall_accuracy"`
}

// SubmitReviewRequest は復習結果送信リクエストのDTO
type SubmitReviewRequest struct {
	Word    string  `json:"word" validate:"required,max=255"`
	Outcome Outcome `json:"outcome" validate:"required,oneof=correct wrong"`
}
