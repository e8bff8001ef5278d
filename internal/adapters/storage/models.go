package storage

import "time"

// RecentModel is the GORM model for recent_resources table
type RecentModel struct {
	CreatedAt   time.Time
	Editor      string            `gorm:"not null;index:idx_editor_opened,priority:1"`
	ID          string            `gorm:"primaryKey"`
	Label       string            `gorm:"not null;default:''"`
	Locators    map[string]string `gorm:"serializer:json;not null"`
	OpenedAt    time.Time         `gorm:"not null;index:idx_editor_opened,priority:2"`
	ResourceKey string            `gorm:"not null;uniqueIndex:idx_resource_key"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (RecentModel) TableName() string { return "recent_resources" }
