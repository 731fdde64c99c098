//go:generate mockery --name WordStore --output ./mocks --outpkg mocks --case=underscore
// internal/service/word_store.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tsumitan/internal/model"
	"tsumitan/internal/repository"

	"gorm.io/gorm"
)

// Clock は現在時刻を返す関数 (テストで差し替える)
type Clock func() time.Time

// WordStore はユーザーごとの単語学習記録を永続化します
type WordStore interface {
	Get(ctx context.Context, userID, word string) (*model.WordRecord, error)
	UpsertSearch(ctx context.Context, userID, word, meaning string) error
	RecordReviewOutcome(ctx context.Context, userID, word string, outcome model.Outcome) error
	ListByUser(ctx context.Context, userID string) ([]*model.WordRecord, error)
}

type wordStore struct {
	db       *gorm.DB
	wordRepo repository.WordRepository
	now      Clock
}

func NewWordStore(db *gorm.DB, wordRepo repository.WordRepository, clock Clock) WordStore {
	if clock == nil {
		clock = time.Now
	}
	return &wordStore{
		db:       db,
		wordRepo: wordRepo,
		now:      clock,
	}
}

// validateKey はストレージに触る前にキーを検証します
func validateKey(userID, word string) error {
	if strings.TrimSpace(userID) == "" {
		return model.NewAppError("VALIDATION_ERROR", "ユーザーIDは必須です。", "user_id", model.ErrInvalidInput)
	}
	if strings.TrimSpace(word) == "" {
		return model.NewAppError("VALIDATION_ERROR", "単語は必須です。", "word", model.ErrInvalidInput)
	}
	return nil
}

func (s *wordStore) Get(ctx context.Context, userID, word string) (*model.WordRecord, error) {
	if err := validateKey(userID, word); err != nil {
		return nil, err
	}
	return s.wordRepo.FindByKey(ctx, s.db, userID, word)
}

func (s *wordStore) UpsertSearch(ctx context.Context, userID, word, meaning string) error {
	if err := validateKey(userID, word); err != nil {
		return err
	}

	now := s.now().UTC()
	record := &model.WordRecord{
		UserID:       userID,
		Word:         word,
		Meaning:      meaning,
		SearchCount:  1,
		LastReviewed: model.NeverReviewed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.wordRepo.UpsertSearch(ctx, tx, record)
	})
}

// RecordReviewOutcome は復習結果を1件記録します。
// 検索されていない単語には記録せず ErrNotFound を返します。
func (s *wordStore) RecordReviewOutcome(ctx context.Context, userID, word string, outcome model.Outcome) error {
	if err := validateKey(userID, word); err != nil {
		return err
	}
	if !outcome.Valid() {
		return model.NewAppError("VALIDATION_ERROR", fmt.Sprintf("不明な回答結果です: %q", outcome), "outcome", model.ErrInvalidInput)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record, err := s.wordRepo.FindByKeyForUpdate(ctx, tx, userID, word)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		record.ReviewCount++
		switch outcome {
		case model.OutcomeCorrect:
			record.CorrectCount++
		case model.OutcomeWrong:
			record.WrongCount++
		}
		// 時計が巻き戻っても最終復習日時は減らさない
		if now.After(record.LastReviewed) {
			record.LastReviewed = now
		}
		record.UpdatedAt = now

		return s.wordRepo.UpdateReview(ctx, tx, record)
	})
}

func (s *wordStore) ListByUser(ctx context.Context, userID string) ([]*model.WordRecord, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "ユーザーIDは必須です。", "user_id", model.ErrInvalidInput)
	}
	return s.wordRepo.FindByUser(ctx, s.db, userID)
}
