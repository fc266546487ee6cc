package dbmysql

import "time"

// Video is one shared or reposted video row.
//
// OriginalSharerUserID == nil marks an original share; non-nil marks a
// repost crediting that user. IsRepost mirrors that distinction so the
// composite unique index can enforce at most one original share and at
// most one repost per (external_video_id, sharer_user_id).
type Video struct {
	ID                   uint      `gorm:"primaryKey"`
	ExternalVideoID      string    `gorm:"size:20;not null;index;uniqueIndex:idx_external_sharer_kind,priority:1"`
	Title                string    `gorm:"size:500"`
	Description          string    `gorm:"type:text"`
	SharerUserID         uint      `gorm:"not null;index;uniqueIndex:idx_external_sharer_kind,priority:2"`
	OriginalSharerUserID *uint     `gorm:"index"`
	IsRepost             bool      `gorm:"not null;default:false;uniqueIndex:idx_external_sharer_kind,priority:3"`
	ViewCount            uint64    `gorm:"not null;default:0"`
	Tags                 []Tag     `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt            time.Time `gorm:"index"`
	UpdatedAt            time.Time
}

// Tag is a label owned by a single video row. Reposts carry their own
// copies of the source video's tags.
type Tag struct {
	ID        uint   `gorm:"primaryKey"`
	VideoID   uint   `gorm:"not null;index;uniqueIndex:idx_video_tag,priority:1"`
	Name      string `gorm:"size:50;not null;uniqueIndex:idx_video_tag,priority:2"`
	CreatedAt time.Time
}
