package model

import "time"

// Account is a user account. Email is the login identifier.
type Account struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string     `gorm:"uniqueIndex;size:128;not null" json:"email"`
	Username     string     `gorm:"size:32;not null" json:"username"`
	PasswordHash string     `gorm:"size:64;not null" json:"-"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	LastLoginIP  string     `gorm:"size:45" json:"last_login_ip"`
}
