package model

import "time"

// SavedMood is a mood snapshot the user chose to keep, stored in MySQL.
// Videos holds the resolved playlist serialized as JSON, including the
// search cache ids so a later load can skip re-resolution.
type SavedMood struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string    `gorm:"size:64;index:idx_saved_moods_user" json:"user_id"`
	Mood        string    `gorm:"size:255" json:"mood"`
	Description string    `gorm:"type:text" json:"description"`
	Videos      string    `gorm:"type:json" json:"videos"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName keeps the table name stable regardless of gorm naming strategy.
func (SavedMood) TableName() string { return "saved_moods" }
