package dbmysql

import (
	"fmt"
	"time"
)

const (
	ChatTypePrivate = "private"
	ChatTypeGroup   = "group"
	ChatTypeChannel = "channel"
)

type Chat struct {
	ChatID      uint64  `gorm:"primaryKey;column:chat_id;autoIncrement" json:"chat_id"`
	Name        string  `gorm:"column:name;size:100;not null" json:"name"`
	Type        string  `gorm:"column:type;type:enum('private','group','channel');not null" json:"type"`
	Username    *string `gorm:"column:username;uniqueIndex;size:50" json:"username,omitempty"`
	Description string  `gorm:"column:description;type:text" json:"description"`
	AvatarURL   string  `gorm:"column:avatar_url;size:255" json:"avatar_url"`
	CreatedBy   uint64  `gorm:"column:created_by;not null;index" json:"created_by"`

	// PairKey is set only for private chats: "min:max" of the two member
	// ids. The unique index makes concurrent create-or-get for the same
	// pair collapse onto a single row.
	PairKey *string `gorm:"column:pair_key;uniqueIndex;size:64" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// PrivatePairKey builds the unordered pair key for a private chat.
func PrivatePairKey(a, b uint64) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}
