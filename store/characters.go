// Package store is the persistence adapter: get/set of JSON-serializable
// records keyed by account. Semantics are last-write-wins — the engine is
// pure, callers do read-modify-write, and no locking is attempted.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/statforge/habitquest/cache"
	"github.com/statforge/habitquest/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Characters stores one character record per account with a write-through
// cache in front of the database.
type Characters struct {
	db     *gorm.DB
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCharacters creates a character store. ttl bounds how long a cached
// record may serve reads before falling back to the database.
func NewCharacters(db *gorm.DB, c cache.Cache, ttl time.Duration, logger *zap.Logger) *Characters {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Characters{db: db, cache: c, ttl: ttl, logger: logger}
}

func characterKey(accountID int64) string {
	return "char:" + strconv.FormatInt(accountID, 10)
}

// Get returns the account's character, or (nil, nil) when the account has
// not completed onboarding yet.
func (s *Characters) Get(ctx context.Context, accountID int64) (*model.Character, error) {
	key := characterKey(accountID)
	if raw, err := s.cache.Get(ctx, key); err == nil {
		var ch model.Character
		if err := json.Unmarshal([]byte(raw), &ch); err == nil {
			return &ch, nil
		}
		// Corrupt cache entry: drop it and fall through to the DB.
		_ = s.cache.Del(ctx, key)
	}

	var rec model.CharacterRecord
	err := s.db.WithContext(ctx).First(&rec, "account_id = ?", accountID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: load character: %w", err)
	}

	var ch model.Character
	if err := json.Unmarshal(rec.Data, &ch); err != nil {
		return nil, fmt.Errorf("store: decode character: %w", err)
	}
	s.fillCache(ctx, key, rec.Data)
	return &ch, nil
}

// Set persists the character and refreshes the cache. The in-memory value
// the caller computed is never altered, so a failed write leaves the
// caller free to retry or surface a "changes not saved" notice.
func (s *Characters) Set(ctx context.Context, accountID int64, ch model.Character) error {
	data, err := json.Marshal(ch)
	if err != nil {
		return fmt.Errorf("store: encode character: %w", err)
	}
	rec := model.CharacterRecord{AccountID: accountID, Data: data}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("store: save character: %w", err)
	}
	s.fillCache(ctx, characterKey(accountID), data)
	return nil
}

func (s *Characters) fillCache(ctx context.Context, key string, data []byte) {
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		s.logger.Warn("character cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// ForEach streams every stored character to fn; used by the day-rollover
// task. Returning false from fn stops the scan.
func (s *Characters) ForEach(ctx context.Context, fn func(accountID int64, ch model.Character) bool) error {
	var recs []model.CharacterRecord
	if err := s.db.WithContext(ctx).Find(&recs).Error; err != nil {
		return fmt.Errorf("store: scan characters: %w", err)
	}
	for _, rec := range recs {
		var ch model.Character
		if err := json.Unmarshal(rec.Data, &ch); err != nil {
			s.logger.Warn("skipping undecodable character record",
				zap.Int64("account_id", rec.AccountID), zap.Error(err))
			continue
		}
		if !fn(rec.AccountID, ch) {
			return nil
		}
	}
	return nil
}
