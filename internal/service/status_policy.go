// internal/service/status_policy.go
package service

import (
	"fmt"

	"tsumitan/internal/config"
	"tsumitan/internal/model"
)

// StatusScheme はステータス判定の方式
type StatusScheme string

const (
	// SchemeWeakness は既定の4区分 (all / unchecked / reviewed / wrong)。
	// wrong は「回答2回以上かつ正答率70%未満」で、reviewed と重複し得る。
	SchemeWeakness StatusScheme = "weakness"
	// SchemeLegacy は旧3区分 (unchecked / correct / wrong)。正答率50%以上で correct。
	SchemeLegacy StatusScheme = "legacy"
)

// StatusPolicy は単語の復習ステータスの判定ルールです。
// 2つの方式は混ぜずに、どちらか一方を設定で選びます。
type StatusPolicy struct {
	Scheme            StatusScheme
	MinAttempts       int     // 苦手判定に必要な最小回答数 (weakness のみ)
	AccuracyThreshold float64 // この正答率未満を苦手 / wrong とみなす
}

func DefaultStatusPolicy() StatusPolicy {
	return StatusPolicy{
		Scheme:            SchemeWeakness,
		MinAttempts:       config.DefaultWeakMinAttempts,
		AccuracyThreshold: config.DefaultWeakAccuracyThreshold,
	}
}

func LegacyStatusPolicy() StatusPolicy {
	return StatusPolicy{
		Scheme:            SchemeLegacy,
		AccuracyThreshold: config.DefaultLegacyThreshold,
	}
}

// NewStatusPolicy は設定値からポリシーを組み立てます。
// weak_* の設定は weakness 方式にだけ効きます。
func NewStatusPolicy(cfg config.AppConfig) (StatusPolicy, error) {
	switch StatusScheme(cfg.StatusScheme) {
	case SchemeLegacy:
		return LegacyStatusPolicy(), nil
	case SchemeWeakness, "":
	default:
		return StatusPolicy{}, fmt.Errorf("unknown status scheme %q: %w", cfg.StatusScheme, model.ErrInvalidInput)
	}

	p := DefaultStatusPolicy()
	if cfg.WeakMinAttempts > 0 {
		p.MinAttempts = cfg.WeakMinAttempts
	}
	if cfg.WeakAccuracyThreshold > 0 {
		if cfg.WeakAccuracyThreshold > 1 {
			return StatusPolicy{}, fmt.Errorf("accuracy threshold %v out of range: %w", cfg.WeakAccuracyThreshold, model.ErrInvalidInput)
		}
		p.AccuracyThreshold = cfg.WeakAccuracyThreshold
	}
	return p, nil
}

// Accuracy は 正解数 / (正解数 + 不正解数)。回答が無ければ ok=false。
func Accuracy(r *model.WordRecord) (float64, bool) {
	attempts := r.Attempts()
	if attempts == 0 {
		return 0, false
	}
	return float64(r.CorrectCount) / float64(attempts), true
}

// IsWeak は苦手な単語かどうかを判定します
func (p StatusPolicy) IsWeak(r *model.WordRecord) bool {
	if p.Scheme == SchemeLegacy {
		return p.Classify(r) == model.StatusWrong
	}
	if r.Attempts() < p.MinAttempts {
		return false
	}
	acc, ok := Accuracy(r)
	return ok && acc < p.AccuracyThreshold
}

// Classify は単語の主ステータスを返します
func (p StatusPolicy) Classify(r *model.WordRecord) model.Status {
	if !r.IsReviewed() {
		return model.StatusUnchecked
	}
	if p.Scheme != SchemeLegacy {
		return model.StatusReviewed
	}
	acc, ok := Accuracy(r)
	if !ok {
		// 正誤を記録する前の復習データは復習済み (correct) 扱い
		return model.StatusCorrect
	}
	if acc >= p.AccuracyThreshold {
		return model.StatusCorrect
	}
	return model.StatusWrong
}

// Filters はこの方式で使えるフィルタ
func (p StatusPolicy) Filters() []model.Status {
	if p.Scheme == SchemeLegacy {
		return []model.Status{model.StatusAll, model.StatusUnchecked, model.StatusCorrect, model.StatusWrong}
	}
	return []model.Status{model.StatusAll, model.StatusUnchecked, model.StatusReviewed, model.StatusWrong}
}

func (p StatusPolicy) supports(status model.Status) bool {
	for _, s := range p.Filters() {
		if s == status {
			return true
		}
	}
	return false
}

// Matches はフィルタに一致するかどうか。wrong は主ステータスではなく苦手判定で見る。
func (p StatusPolicy) Matches(r *model.WordRecord, status model.Status) bool {
	switch status {
	case model.StatusAll:
		return true
	case model.StatusWrong:
		return p.IsWeak(r)
	default:
		return p.Classify(r) == status
	}
}
