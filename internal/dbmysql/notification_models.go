package dbmysql

import (
	"time"

	"pawshare/internal/common"
)

// Notification is an append-only per-user notification row; only the
// read flag is ever mutated after insert.
type Notification struct {
	ID             uint                    `gorm:"primaryKey"`
	UserID         uint                    `gorm:"not null;index"`
	Type           common.NotificationType `gorm:"size:30;not null"`
	Title          string                  `gorm:"size:255;not null"`
	Message        string                  `gorm:"type:text"`
	RelatedUserID  *uint
	RelatedVideoID *uint
	Read           bool      `gorm:"not null;default:false;index"`
	CreatedAt      time.Time `gorm:"index"`
}

// PushSubscription is one registered push endpoint for a user. Rows are
// created by client registration and pruned by the fan-out engine when
// the transport reports a permanent delivery failure.
type PushSubscription struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index;uniqueIndex:idx_user_endpoint,priority:1"`
	Endpoint  string `gorm:"size:500;not null;uniqueIndex:idx_user_endpoint,priority:2"`
	P256dhKey string `gorm:"size:255"`
	AuthKey   string `gorm:"size:255"`
	CreatedAt time.Time
}

// SearchHistory records one executed search, written best-effort off the
// request path. UserID 0 marks an anonymous search.
type SearchHistory struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index"`
	Query       string `gorm:"size:255;not null"`
	ResultCount int
	CreatedAt   time.Time `gorm:"index"`
}
