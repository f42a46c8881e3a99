package model

import (
	"time"

	"gorm.io/datatypes"
)

// CharacterRecord stores one account's character as a JSON blob.
// Writes are last-write-wins; there is no migration story beyond AutoMigrate.
type CharacterRecord struct {
	AccountID int64          `gorm:"primaryKey" json:"account_id"`
	Data      datatypes.JSON `json:"data"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// AvatarRecord stores one account's cosmetic avatar customization.
type AvatarRecord struct {
	AccountID int64          `gorm:"primaryKey" json:"account_id"`
	Data      datatypes.JSON `json:"data"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}
