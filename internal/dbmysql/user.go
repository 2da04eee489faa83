package dbmysql

import (
	"time"
)

type User struct {
	UserID       uint64    `gorm:"primaryKey;column:user_id;autoIncrement" json:"user_id"`
	Username     string    `gorm:"column:username;uniqueIndex;size:50;not null" json:"username"`
	DisplayName  string    `gorm:"column:display_name;size:100;not null" json:"display_name"`
	AvatarColor  string    `gorm:"column:avatar_color;size:7" json:"avatar_color"`
	AvatarURL    string    `gorm:"column:avatar_url;size:255" json:"avatar_url"`
	Bio          string    `gorm:"column:bio;type:text" json:"bio"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	IsOnline     bool      `gorm:"column:is_online;default:false" json:"is_online"`
	LastSeen     time.Time `gorm:"column:last_seen" json:"last_seen"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
