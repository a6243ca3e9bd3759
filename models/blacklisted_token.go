package models

import "time"

// BlacklistedToken is a revoked session token, kept until its expiry passes.
// Stored in a separate sqlite database so revocation survives restarts even
// when the main store runs in-memory.
type BlacklistedToken struct {
	ID        uint      `gorm:"primarykey"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt int64     `gorm:"not null;index"`
	CreatedAt time.Time
}
