package models

import "time"

// Session maps an opaque token to its owning user. One active session per
// user: the row is keyed by user id and replaced wholesale on each login.
// Expired rows linger until the next login or an explicit logout; identity
// resolution treats them as absent rather than deleting them.
type Session struct {
	UserID       string    `gorm:"column:user_id;primaryKey" json:"user_id"`
	SessionToken string    `gorm:"column:session_token;not null;uniqueIndex" json:"session_token"`
	ExpiresAt    time.Time `gorm:"column:expires_at;not null" json:"expires_at"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
