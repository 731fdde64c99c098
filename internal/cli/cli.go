// Package cli は端末から単語の検索と復習を行う cobra コマンドを提供します。
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"tsumitan/internal/config"
	"tsumitan/internal/dictionary"
	"tsumitan/internal/identity"
	"tsumitan/internal/logger"
	"tsumitan/internal/model"
	"tsumitan/internal/repository"
	"tsumitan/internal/service"

	"github.com/spf13/cobra"
)

// Deps はコマンドが使うサービス群
type Deps struct {
	Store    service.WordStore
	Review   service.ReviewService
	Search   service.SearchService
	Identity identity.Provider
	Close    func() error
}

// Builder は設定から Deps を組み立てる関数。テストでは差し替えます。
type Builder func(configPath string) (*Deps, error)

// NewRootCommand はサブコマンドを登録したルートコマンドを返します
func NewRootCommand(build Builder) *cobra.Command {
	if build == nil {
		build = BuildDeps
	}
	var (
		configPath string
		deps       *Deps
	)

	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "検索した英単語を記録して復習する",
		Version:       config.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			d, err := build(configPath)
			if err != nil {
				return err
			}
			deps = d
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "configs", "config.yaml を探すディレクトリ")

	get := func() *Deps { return deps }
	root.AddCommand(
		newSearchCommand(get),
		newReviewCommand(get),
		newPendingCommand(get),
		newHistoryCommand(get),
		newWordsCommand(get),
		newShowCommand(get),
		newStatsCommand(get),
		newWhoamiCommand(get),
	)

	// RunE が失敗しても依存は必ず閉じる
	for _, c := range root.Commands() {
		if c.RunE == nil {
			continue
		}
		run := c.RunE
		c.RunE = func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if deps != nil && deps.Close != nil {
					err = errors.Join(err, deps.Close())
				}
				deps = nil
			}()
			return run(cmd, args)
		}
	}
	return root
}

// BuildDeps は設定ファイルと環境変数から本番用の依存を組み立てます
func BuildDeps(configPath string) (*Deps, error) {
	// CLI では設定読み込みや SQL のログは警告以上だけ出す
	slog.SetDefault(logger.New(os.Stderr, os.Getenv("APP_ENV"), "warn"))
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	level := cfg.Log.Level
	if l, _ := logger.ParseLevel(level); l < slog.LevelWarn {
		level = "warn"
	}
	appLogger := logger.New(os.Stderr, os.Getenv("APP_ENV"), level)

	db, err := repository.NewDB(cfg.Database, appLogger)
	if err != nil {
		return nil, err
	}
	policy, err := service.NewStatusPolicy(cfg.App)
	if err != nil {
		repository.Close(db)
		return nil, err
	}

	store := service.NewWordStore(db, repository.NewGormWordRepository(), time.Now)
	return &Deps{
		Store:    store,
		Review:   service.NewReviewService(store, policy),
		Search:   service.NewSearchService(store, dictionary.NewClient(cfg.Dictionary)),
		Identity: identity.NewFileProvider(cfg.Identity.File),
		Close:    func() error { return repository.Close(db) },
	}, nil
}

func newSearchCommand(deps func() *Deps) *cobra.Command {
	var meaning string
	cmd := &cobra.Command{
		Use:   "search <word>",
		Short: "単語を検索して検索回数を記録する",
		Long:  "辞書で意味を引いて検索回数を1増やします。--meaning を付けると辞書を使わずにその意味で記録します。",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := deps()
			userID, err := d.Identity.UserID()
			if err != nil {
				return err
			}
			word := args[0]

			var result *model.SearchResult
			if meaning != "" {
				if err := d.Store.UpsertSearch(cmd.Context(), userID, word, meaning); err != nil {
					return err
				}
				rec, err := d.Store.Get(cmd.Context(), userID, word)
				if err != nil {
					return err
				}
				result = &model.SearchResult{Word: rec.Word, Meaning: rec.Meaning, SearchCount: rec.SearchCount}
			} else {
				result, err = d.Search.Search(cmd.Context(), userID, word)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%d回目)\n", result.Word, result.SearchCount)
			if result.Meaning == "" {
				fmt.Fprintln(out, "  辞書に見つかりませんでした")
			} else {
				fmt.Fprintf(out, "  %s\n", result.Meaning)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&meaning, "meaning", "", "辞書を使わずに記録する意味")
	return cmd
}

func newReviewCommand(deps func() *Deps) *cobra.Command {
	return &cobra.Command{
		Use:       "review <word> correct|wrong",
		Short:     "復習の回答結果を記録する",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(model.OutcomeCorrect), string(model.OutcomeWrong)},
		RunE: func(cmd *cobra.Command, args []string) error {
			d := deps()
			userID, err := d.Identity.UserID()
			if err != nil {
				return err
			}
			outcome := model.Outcome(args[1])
			if !outcome.Valid() {
				return model.NewAppError("VALIDATION_ERROR", fmt.Sprintf("回答結果は correct か wrong を指定してください: %q", args[1]), "outcome", model.ErrInvalidInput)
			}
			if err := d.Review.RecordAnswer(cmd.Context(), userID, args[0], outcome); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return fmt.Errorf("%q はまだ検索されていません: %w", args[0], err)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s を記録しました\n", args[0], outcome)
			return nil
		},
	}
}

func newPendingCommand(deps func() *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "復習待ちの単語を検索回数の多い順に表示する",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := deps()
			userID, err := d.Identity.UserID()
			if err != nil {
				return err
			}
			pending, err := d.Review.GetPendingReviews(cmd.Context(), userID)
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout(), "WORD", "SEARCHES", "MEANING")
			for _, p := range pending {
				row(tw, p.Word, p.SearchCount, oneLine(p.Meaning))
			}
			return tw.Flush()
		},
	}
}

func newHistoryCommand(deps func() *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "復習履歴を新しい順に表示する",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := deps()
			userID, err := d.Identity.UserID()
			if err != nil {
				return err
			}
			history, err := d.Review.GetReviewHistory(cmd.Context(), userID)
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout(), "WORD", "REVIEWS", "CORRECT", "WRONG", "LAST REVIEWED")
			for _, h := range history {
				row(tw, h.Word, h.ReviewCount, h.CorrectCount, h.WrongCount, h.LastReviewed.Local().Format(time.DateTime))
			}
			return tw.Flush()
		},
	}
}

func newWordsCommand(deps func() *Deps) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "words",
		Short: "単語一覧をステータスで絞り込んで表示する",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := deps()
			userID, err := d.Identity.UserID()
			if err != nil {
				return err
			}
			words, err := d.Review.GetFilteredWords(cmd.Context(), userID, model.Status(status))
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout(), "WORD", "STATUS", "SEARCHES", "REVIEWS", "MEANING")
			for _, w := range words {
				st := string(w.Status)
				if w.Weak && w.Status != model.StatusWrong {
					st += ",weak"
				}
				row(tw, w.Word, st, w.SearchCount, w.ReviewCount, oneLine(w.Meaning))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&status, "status", string(model.StatusAll), "all | unchecked | reviewed | wrong (legacy 方式では correct)")
	return cmd
}

func newShowCommand(deps func() *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "show <word>",
		Short: "1単語の記録を表示する",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := deps()
			userID, err := d.Identity.UserID()
			if err != nil {
				return err
			}
			w, err := d.Review.GetWord(cmd.Context(), userID, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "word:     %s\n", w.Word)
			fmt.Fprintf(out, "meaning:  %s\n", oneLine(w.Meaning))
			fmt.Fprintf(out, "status:   %s\n", w.Status)
			fmt.Fprintf(out, "weak:     %t\n", w.Weak)
			fmt.Fprintf(out, "searches: %d\n", w.SearchCount)
			fmt.Fprintf(out, "reviews:  %d (correct %d / wrong %d)\n", w.ReviewCount, w.CorrectCount, w.WrongCount)
			if w.LastReviewed != nil {
				fmt.Fprintf(out, "last:     %s\n", w.LastReviewed.Local().Format(time.DateTime))
			}
			return nil
		},
	}
}

func newStatsCommand(deps func() *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "学習状況の集計を表示する",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := deps()
			userID, err := d.Identity.UserID()
			if err != nil {
				return err
			}
			s, err := d.Review.GetStats(cmd.Context(), userID)
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout(), "WORDS", "SEARCHES", "REVIEWED", "PENDING", "WEAK", "REVIEWS", "ACCURACY")
			row(tw, s.TotalWords, s.TotalSearches, s.ReviewedWords, s.PendingWords, s.WeakWords, s.TotalReviews,
				fmt.Sprintf("%.1f%%", s.OverallAccuracy*100))
			return tw.Flush()
		},
	}
}

func newWhoamiCommand(deps func() *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "この端末のユーザーIDを表示する",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := deps().Identity.UserID()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), userID)
			return nil
		},
	}
}

func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cols ...interface{}) {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(tw, strings.Join(parts, "\t"))
}

// oneLine は辞書の複数行の意味を1行にまとめます
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
