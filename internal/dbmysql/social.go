package dbmysql

import "time"

// Follow is a directed edge in the follow graph.
type Follow struct {
	ID          uint `gorm:"primaryKey"`
	FollowerID  uint `gorm:"not null;index;uniqueIndex:idx_follower_following,priority:1"`
	FollowingID uint `gorm:"not null;index;uniqueIndex:idx_follower_following,priority:2"`
	CreatedAt   time.Time
}

// NotificationPreference is a per-relationship opt-out. Absence of a row
// means notifications are enabled.
type NotificationPreference struct {
	ID              uint `gorm:"primaryKey"`
	UserID          uint `gorm:"not null;index;uniqueIndex:idx_user_following,priority:1"`
	FollowingUserID uint `gorm:"not null;uniqueIndex:idx_user_following,priority:2"`
	Enabled         bool `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
