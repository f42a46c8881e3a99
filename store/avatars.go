package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/statforge/habitquest/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Avatars stores cosmetic avatar customization as a free-form JSON map.
// Saves merge into the existing record rather than replacing it.
type Avatars struct {
	db *gorm.DB
}

// NewAvatars creates an avatar store.
func NewAvatars(db *gorm.DB) *Avatars {
	return &Avatars{db: db}
}

// Get returns the stored customization map, or an empty map if none exists.
func (s *Avatars) Get(ctx context.Context, accountID int64) (map[string]interface{}, error) {
	var rec model.AvatarRecord
	err := s.db.WithContext(ctx).First(&rec, "account_id = ?", accountID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return map[string]interface{}{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: load avatar: %w", err)
	}
	out := map[string]interface{}{}
	if err := json.Unmarshal(rec.Data, &out); err != nil {
		return nil, fmt.Errorf("store: decode avatar: %w", err)
	}
	return out, nil
}

// Merge overlays changes onto the stored record, stamps lastUpdated, and
// returns the merged result.
func (s *Avatars) Merge(ctx context.Context, accountID int64, changes map[string]interface{}) (map[string]interface{}, error) {
	current, err := s.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	for k, v := range changes {
		current[k] = v
	}
	current["lastUpdated"] = time.Now().UTC().Format(time.RFC3339)

	data, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("store: encode avatar: %w", err)
	}
	rec := model.AvatarRecord{AccountID: accountID, Data: data}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return nil, fmt.Errorf("store: save avatar: %w", err)
	}
	return current, nil
}
