//go:generate mockery --name ReviewService --output ./mocks --outpkg mocks --case=underscore
// internal/service/review_service.go
package service

import (
	"context"
	"fmt"
	"sort"

	"tsumitan/internal/model"
)

// ReviewService は WordStore の記録から復習キューや履歴を導出します。
// ストレージを書き換えるのは RecordAnswer だけです。
type ReviewService interface {
	GetPendingReviews(ctx context.Context, userID string) ([]*model.PendingReview, error)
	GetReviewHistory(ctx context.Context, userID string) ([]*model.ReviewHistory, error)
	GetFilteredWords(ctx context.Context, userID string, status model.Status) ([]*model.WordWithStatus, error)
	GetStats(ctx context.Context, userID string) (*model.ReviewStats, error)
	GetWord(ctx context.Context, userID, word string) (*model.WordWithStatus, error)
	RecordAnswer(ctx context.Context, userID, word string, outcome model.Outcome) error
	Classify(record *model.WordRecord) model.Status
}

type reviewService struct {
	store  WordStore
	policy StatusPolicy
}

func NewReviewService(store WordStore, policy StatusPolicy) ReviewService {
	return &reviewService{
		store:  store,
		policy: policy,
	}
}

func (s *reviewService) Classify(record *model.WordRecord) model.Status {
	return s.policy.Classify(record)
}

func (s *reviewService) GetPendingReviews(ctx context.Context, userID string) ([]*model.PendingReview, error) {
	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return pendingFrom(records), nil
}

func (s *reviewService) GetReviewHistory(ctx context.Context, userID string) ([]*model.ReviewHistory, error) {
	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return historyFrom(records), nil
}

// GetFilteredWords は復習待ちと履歴を単語をキーにマージしてからフィルタします。
// 両方にある単語は項目の多い履歴側を採用します。
func (s *reviewService) GetFilteredWords(ctx context.Context, userID string, status model.Status) ([]*model.WordWithStatus, error) {
	if status == "" {
		status = model.StatusAll
	}
	if !s.policy.supports(status) {
		return nil, model.NewAppError("VALIDATION_ERROR", fmt.Sprintf("このステータスでは絞り込めません: %q", status), "status", model.ErrInvalidInput)
	}

	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]*model.WordRecord, len(records))
	for _, p := range pendingFrom(records) {
		merged[p.Word] = &model.WordRecord{
			UserID:       userID,
			Word:         p.Word,
			Meaning:      p.Meaning,
			SearchCount:  p.SearchCount,
			LastReviewed: model.NeverReviewed,
		}
	}
	for _, h := range historyFrom(records) {
		merged[h.Word] = &model.WordRecord{
			UserID:       userID,
			Word:         h.Word,
			Meaning:      h.Meaning,
			SearchCount:  h.SearchCount,
			ReviewCount:  h.ReviewCount,
			CorrectCount: h.CorrectCount,
			WrongCount:   h.WrongCount,
			LastReviewed: h.LastReviewed,
		}
	}

	words := make([]*model.WordWithStatus, 0, len(merged))
	for _, r := range merged {
		if !s.policy.Matches(r, status) {
			continue
		}
		words = append(words, s.withStatus(r))
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].SearchCount != words[j].SearchCount {
			return words[i].SearchCount > words[j].SearchCount
		}
		return words[i].Word < words[j].Word
	})
	return words, nil
}

func (s *reviewService) GetStats(ctx context.Context, userID string) (*model.ReviewStats, error) {
	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &model.ReviewStats{TotalWords: len(records)}
	var correct, attempts int
	for _, r := range records {
		stats.TotalSearches += r.SearchCount
		stats.TotalReviews += r.ReviewCount
		if r.IsReviewed() {
			stats.ReviewedWords++
		}
		if r.NeedsReview() {
			stats.PendingWords++
		}
		if s.policy.IsWeak(r) {
			stats.WeakWords++
		}
		correct += r.CorrectCount
		attempts += r.Attempts()
	}
	if attempts > 0 {
		stats.OverallAccuracy = float64(correct) / float64(attempts)
	}
	return stats, nil
}

// GetWord は1単語をステータス付きで返します
func (s *reviewService) GetWord(ctx context.Context, userID, word string) (*model.WordWithStatus, error) {
	record, err := s.store.Get(ctx, userID, word)
	if err != nil {
		return nil, err
	}
	return s.withStatus(record), nil
}

// RecordAnswer は結果の記録を WordStore に委ねます。
// 呼び出し側は記録後に一覧を取り直してください。
func (s *reviewService) RecordAnswer(ctx context.Context, userID, word string, outcome model.Outcome) error {
	return s.store.RecordReviewOutcome(ctx, userID, word, outcome)
}

func (s *reviewService) withStatus(r *model.WordRecord) *model.WordWithStatus {
	w := &model.WordWithStatus{
		Word:         r.Word,
		Meaning:      r.Meaning,
		SearchCount:  r.SearchCount,
		ReviewCount:  r.ReviewCount,
		CorrectCount: r.CorrectCount,
		WrongCount:   r.WrongCount,
		Status:       s.policy.Classify(r),
		Weak:         s.policy.IsWeak(r),
	}
	if r.IsReviewed() {
		lastReviewed := r.LastReviewed
		w.LastReviewed = &lastReviewed
	}
	return w
}

// pendingFrom は検索回数が復習回数を上回る単語を、検索回数の多い順に返します
func pendingFrom(records []*model.WordRecord) []*model.PendingReview {
	pending := make([]*model.PendingReview, 0, len(records))
	for _, r := range records {
		if !r.NeedsReview() {
			continue
		}
		pending = append(pending, &model.PendingReview{
			Word:        r.Word,
			Meaning:     r.Meaning,
			SearchCount: r.SearchCount,
		})
	}
	sort.Slice(pending, func(i, j int) bool {
		if pending[i].SearchCount != pending[j].SearchCount {
			return pending[i].SearchCount > pending[j].SearchCount
		}
		return pending[i].Word < pending[j].Word
	})
	return pending
}

// historyFrom は復習済みの単語を最終復習日時の新しい順に返します
func historyFrom(records []*model.WordRecord) []*model.ReviewHistory {
	history := make([]*model.ReviewHistory, 0, len(records))
	for _, r := range records {
		if !r.IsReviewed() {
			continue
		}
		history = append(history, &model.ReviewHistory{
			Word:         r.Word,
			Meaning:      r.Meaning,
			SearchCount:  r.SearchCount,
			ReviewCount:  r.ReviewCount,
			CorrectCount: r.CorrectCount,
			WrongCount:   r.WrongCount,
			LastReviewed: r.LastReviewed,
		})
	}
	sort.Slice(history, func(i, j int) bool {
		if !history[i].LastReviewed.Equal(history[j].LastReviewed) {
			return history[i].LastReviewed.After(history[j].LastReviewed)
		}
		return history[i].Word < history[j].Word
	})
	return history
}
