//go:generate mockery --name "SearchService|Dictionary" --output ./mocks --outpkg mocks --case=underscore
// internal/service/search_service.go
package service

import (
	"context"
	"errors"

	"tsumitan/internal/dictionary"
	"tsumitan/internal/model"
)

// Dictionary は単語の意味を引く外部サービス
type Dictionary interface {
	Lookup(ctx context.Context, word string) (string, error)
}

// SearchService は辞書検索と検索回数の記録をまとめます
type SearchService interface {
	Search(ctx context.Context, userID, word string) (*model.SearchResult, error)
}

type searchService struct {
	store WordStore
	dict  Dictionary
}

func NewSearchService(store WordStore, dict Dictionary) SearchService {
	return &searchService{store: store, dict: dict}
}

// Search は意味を取得してから検索を記録します。
// 辞書に無い単語は意味を空のまま記録し、辞書が使えない時は何も記録せずにエラーを返します。
func (s *searchService) Search(ctx context.Context, userID, word string) (*model.SearchResult, error) {
	if err := validateKey(userID, word); err != nil {
		return nil, err
	}

	meaning, err := s.dict.Lookup(ctx, word)
	if err != nil && !errors.Is(err, dictionary.ErrNotFound) {
		return nil, err
	}

	if err := s.store.UpsertSearch(ctx, userID, word, meaning); err != nil {
		return nil, err
	}

	record, err := s.store.Get(ctx, userID, word)
	if err != nil {
		return nil, err
	}
	return &model.SearchResult{
		Word:        record.Word,
		Meaning:     record.Meaning,
		SearchCount: record.SearchCount,
	}, nil
}
