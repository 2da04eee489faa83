package dbmysql

import (
	"time"
)

type ChatMember struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ChatID uint64 `gorm:"column:chat_id;not null;index:idx_chat_user,unique" json:"chat_id"`
	UserID uint64 `gorm:"column:user_id;not null;index:idx_chat_user,unique" json:"user_id"`

	// UnreadCount is maintained incrementally: bumped when another member
	// appends a message, reset to zero when this member reads the chat.
	UnreadCount int `gorm:"column:unread_count;not null;default:0" json:"unread_count"`

	// LastReadMessageID is a monotonic high-water mark of the newest
	// message this member has seen.
	LastReadMessageID uint64 `gorm:"column:last_read_message_id;not null;default:0" json:"last_read_message_id"`

	JoinedAt  time.Time `gorm:"column:joined_at;autoCreateTime" json:"joined_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
