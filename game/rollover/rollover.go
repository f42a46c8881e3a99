// Package rollover drives the day boundary: the engine's ResetDailyPeriod
// is pure, so an external clock has to sweep stored characters and apply
// it. The sweep is idempotent — applying it twice on the same day changes
// nothing — so the interval only affects how fresh the completed flags are.
package rollover

import (
	"context"
	"reflect"
	"time"

	"github.com/statforge/habitquest/game/task"
	"github.com/statforge/habitquest/model"
	"github.com/statforge/habitquest/store"
	"go.uber.org/zap"
)

// Service sweeps stored characters at each tick.
type Service struct {
	chars  *store.Characters
	logger *zap.Logger
}

// New creates a rollover Service.
func New(chars *store.Characters, logger *zap.Logger) *Service {
	return &Service{chars: chars, logger: logger}
}

// Run applies ResetDailyPeriod to every stored character, persisting only
// the ones that actually changed.
func (s *Service) Run(ctx context.Context, now time.Time) {
	var scanned, updated int
	err := s.chars.ForEach(ctx, func(accountID int64, ch model.Character) bool {
		scanned++
		next := task.ResetDailyPeriod(ch, now)
		if reflect.DeepEqual(next.Dailies, ch.Dailies) {
			return true
		}
		if err := s.chars.Set(ctx, accountID, next); err != nil {
			s.logger.Warn("rollover save failed",
				zap.Int64("account_id", accountID), zap.Error(err))
			return true
		}
		updated++
		return true
	})
	if err != nil {
		s.logger.Error("rollover scan failed", zap.Error(err))
		return
	}
	if updated > 0 {
		s.logger.Info("daily rollover",
			zap.Int("scanned", scanned), zap.Int("updated", updated))
	}
}
