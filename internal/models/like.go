package models

import "time"

// Like records that one device liked one image. There is no unlike; rows are
// never removed. The (image_id, device_id) unique index is created in
// pkg/database so a racing double-insert fails at the store instead of
// silently violating the one-like-per-device invariant.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ImageID   string    `gorm:"not null;index" json:"image_id"`
	DeviceID  string    `gorm:"not null" json:"device_id"`
	CreatedAt time.Time `json:"created_at"`
}
