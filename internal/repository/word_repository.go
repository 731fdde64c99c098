//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"tsumitan/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WordRepository は words テーブルへのアクセスを提供します。
// DB接続 (トランザクション) は呼び出し側から渡されます。
type WordRepository interface {
	FindByKey(ctx context.Context, db *gorm.DB, userID, word string) (*model.WordRecord, error)
	FindByKeyForUpdate(ctx context.Context, tx *gorm.DB, userID, word string) (*model.WordRecord, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID string) ([]*model.WordRecord, error)
	UpsertSearch(ctx context.Context, tx *gorm.DB, record *model.WordRecord) error
	UpdateReview(ctx context.Context, tx *gorm.DB, record *model.WordRecord) error
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) FindByKey(ctx context.Context, db *gorm.DB, userID, word string) (*model.WordRecord, error) {
	return r.findByKey(ctx, db, userID, word, "gormWordRepository.FindByKey")
}

// FindByKeyForUpdate は行ロック付きで取得します (SQLite ではロック句は出力されない)
func (r *gormWordRepository) FindByKeyForUpdate(ctx context.Context, tx *gorm.DB, userID, word string) (*model.WordRecord, error) {
	return r.findByKey(ctx, tx.Clauses(clause.Locking{Strength: "UPDATE"}), userID, word, "gormWordRepository.FindByKeyForUpdate")
}

func (r *gormWordRepository) findByKey(ctx context.Context, db *gorm.DB, userID, word, op string) (*model.WordRecord, error) {
	var record model.WordRecord
	result := db.WithContext(ctx).Where("user_id = ? AND word = ?", userID, word).Take(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrStorage, result.Error)
	}
	return &record, nil
}

func (r *gormWordRepository) FindByUser(ctx context.Context, db *gorm.DB, userID string) ([]*model.WordRecord, error) {
	var records []*model.WordRecord
	result := db.WithContext(ctx).Where("user_id = ?", userID).Find(&records)
	if result.Error != nil {
		return nil, fmt.Errorf("gormWordRepository.FindByUser: %w: %w", model.ErrStorage, result.Error)
	}
	return records, nil
}

// UpsertSearch は1文で「無ければ作成、あれば検索回数を+1」を行います。
// 意味は空でない値が渡された時だけ上書きします。
func (r *gormWordRepository) UpsertSearch(ctx context.Context, tx *gorm.DB, record *model.WordRecord) error {
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "word"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"search_count": gorm.Expr("words.search_count + 1"),
			"meaning":      gorm.Expr("CASE WHEN excluded.meaning <> '' THEN excluded.meaning ELSE words.meaning END"),
			"updated_at":   record.UpdatedAt,
		}),
	}).Create(record)
	if result.Error != nil {
		return fmt.Errorf("gormWordRepository.UpsertSearch: %w: %w", model.ErrStorage, result.Error)
	}
	return nil
}

// UpdateReview は復習関連のカウンタと日時だけを書き戻します
func (r *gormWordRepository) UpdateReview(ctx context.Context, tx *gorm.DB, record *model.WordRecord) error {
	result := tx.WithContext(ctx).Model(&model.WordRecord{}).
		Where("user_id = ? AND word = ?", record.UserID, record.Word).
		Updates(map[string]interface{}{
			"review_count":  record.ReviewCount,
			"correct_count": record.CorrectCount,
			"wrong_count":   record.WrongCount,
			"last_reviewed": record.LastReviewed,
			"updated_at":    record.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("gormWordRepository.UpdateReview: %w: %w", model.ErrStorage, result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
