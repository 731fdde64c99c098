package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"tsumitan/internal/dictionary"
	"tsumitan/internal/identity"
	"tsumitan/internal/model"
	"tsumitan/internal/repository"
	"tsumitan/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testUserID = "user_cli0000001m8y9oyo0"

// fakeDictionary は登録された単語だけ意味を返します
type fakeDictionary map[string]string

func (d fakeDictionary) Lookup(_ context.Context, word string) (string, error) {
	if m, ok := d[word]; ok {
		return m, nil
	}
	return "", dictionary.ErrNotFound
}

func newTestBuilder(t *testing.T) Builder {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, repository.Migrate(db))

	store := service.NewWordStore(db, repository.NewGormWordRepository(), nil)
	deps := &Deps{
		Store:    store,
		Review:   service.NewReviewService(store, service.DefaultStatusPolicy()),
		Search:   service.NewSearchService(store, fakeDictionary{"apple": "りんご\n果物の一種"}),
		Identity: identity.Static(testUserID),
	}
	return func(string) (*Deps, error) { return deps, nil }
}

// run はコマンドを実行して標準出力を返します
func run(t *testing.T, build Builder, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(build)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLI_SearchAndReview(t *testing.T) {
	build := newTestBuilder(t)

	out, err := run(t, build, "search", "apple")
	require.NoError(t, err)
	assert.Equal(t, "apple (1回目)\n  りんご\n果物の一種\n", out)

	out, err = run(t, build, "search", "qwzx")
	require.NoError(t, err)
	assert.Contains(t, out, "辞書に見つかりませんでした")

	out, err = run(t, build, "search", "banana", "--meaning", "バナナ")
	require.NoError(t, err)
	assert.Equal(t, "banana (1回目)\n  バナナ\n", out)

	out, err = run(t, build, "pending")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "WORD"))
	assert.Contains(t, lines[1], "りんご 果物の一種", "複数行の意味は1行にまとめる")

	for _, outcome := range []string{"wrong", "wrong", "correct"} {
		_, err = run(t, build, "review", "apple", outcome)
		require.NoError(t, err)
	}

	out, err = run(t, build, "words", "--status", "wrong")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "apple"))
	assert.Contains(t, lines[1], "reviewed,weak")

	out, err = run(t, build, "show", "apple")
	require.NoError(t, err)
	assert.Contains(t, out, "reviews:  3 (correct 1 / wrong 2)")
	assert.Contains(t, out, "weak:     true")

	out, err = run(t, build, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "apple")

	out, err = run(t, build, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "33.3%")

	out, err = run(t, build, "whoami")
	require.NoError(t, err)
	assert.Equal(t, testUserID+"\n", out)
}

func TestCLI_Errors(t *testing.T) {
	build := newTestBuilder(t)

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "検索していない単語の復習", args: []string{"review", "apple", "correct"}, wantErr: model.ErrNotFound},
		{name: "不正な回答結果", args: []string{"review", "apple", "maybe"}, wantErr: model.ErrInvalidInput},
		{name: "未対応のステータス", args: []string{"words", "--status", "correct"}, wantErr: model.ErrInvalidInput},
		{name: "未登録の単語を表示", args: []string{"show", "apple"}, wantErr: model.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, build, tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := run(t, build, "search")
	assert.Error(t, err, "引数が足りない")
}

func TestCLI_BuildError(t *testing.T) {
	build := func(string) (*Deps, error) { return nil, fmt.Errorf("open: %w", model.ErrStorage) }
	_, err := run(t, build, "pending")
	assert.ErrorIs(t, err, model.ErrStorage)
}

func TestCLI_ClosesDeps(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "正常終了", args: []string{"whoami"}},
		{name: "コマンドが失敗", args: []string{"show", "apple"}, wantErr: model.ErrNotFound},
		{name: "コマンドが失敗: 不正な回答結果", args: []string{"review", "apple", "maybe"}, wantErr: model.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := newTestBuilder(t)
			closed := 0
			build := func(path string) (*Deps, error) {
				d, err := base(path)
				if err != nil {
					return nil, err
				}
				withClose := *d
				withClose.Close = func() error { closed++; return nil }
				return &withClose, nil
			}

			_, err := run(t, build, tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, closed, "成功でも失敗でも1回だけ閉じる")
		})
	}
}
