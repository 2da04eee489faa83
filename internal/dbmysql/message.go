package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

const (
	MessageTypeText    = "text"
	MessageTypeImage   = "image"
	MessageTypeVideo   = "video"
	MessageTypeSticker = "sticker"
)

type Message struct {
	MessageID   uint64 `gorm:"primaryKey;column:message_id;autoIncrement" json:"message_id"`
	ChatID      uint64 `gorm:"column:chat_id;not null;index" json:"chat_id"`
	UserID      uint64 `gorm:"column:user_id;not null;index" json:"user_id"`
	Content     string `gorm:"column:content;type:text" json:"content"`
	MessageType string `gorm:"column:message_type;size:20;not null;default:'text'" json:"message_type"`

	// MediaID references a GridFS object when the message carries media.
	MediaID string `gorm:"column:media_id;size:24" json:"media_id,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	// RemovedAt marks the message soft-deleted: excluded from reads and
	// summaries, row kept for audit (fetch with Unscoped).
	RemovedAt gorm.DeletedAt `gorm:"column:removed_at;index" json:"removed_at,omitempty"`

	// Author attributes joined at read time, never stored.
	Author *User `gorm:"-" json:"user,omitempty"`
}
