package registry

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chatline/internal/dbmysql"
)

type ChatRepository interface {
	// CreateChatWithMembers inserts the chat and all memberships in a
	// single transaction.
	CreateChatWithMembers(ctx context.Context, chat *dbmysql.Chat, memberIDs []uint64) error
	GetChatByID(ctx context.Context, chatID uint64) (*dbmysql.Chat, error)
	GetChatByPairKey(ctx context.Context, pairKey string) (*dbmysql.Chat, error)
	ListMemberChats(ctx context.Context, userID uint64) ([]*dbmysql.Chat, error)
	SearchChats(ctx context.Context, query string, limit int) ([]*dbmysql.Chat, error)
	UpdateChatAvatar(ctx context.Context, chatID uint64, avatarURL string) error

	IsMember(ctx context.Context, chatID, userID uint64) (bool, error)
	GetMember(ctx context.Context, chatID, userID uint64) (*dbmysql.ChatMember, error)
	OtherPrivateMember(ctx context.Context, chatID, userID uint64) (*dbmysql.User, error)

	UserExists(ctx context.Context, userID uint64) (bool, error)
	// HandleTaken reports whether the handle is claimed by a chat or a
	// user (shared namespace).
	HandleTaken(ctx context.Context, username string) (bool, error)

	// Summary reads, consumed by the projector. Both ignore soft-deleted
	// messages and never mutate the ledger.
	LastMessage(ctx context.Context, chatID uint64) (*dbmysql.Message, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) CreateChatWithMembers(ctx context.Context, chat *dbmysql.Chat, memberIDs []uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Shared handle namespace: a locked re-check of the users table
		// closes the cross-table window the pre-flight HandleTaken check
		// leaves open. The chats unique index covers the same-table race.
		if chat.Username != nil {
			var claimed int64
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Model(&dbmysql.User{}).
				Where("username = ?", *chat.Username).
				Count(&claimed).Error
			if err != nil {
				return err
			}
			if claimed > 0 {
				return gorm.ErrDuplicatedKey
			}
		}

		if err := tx.Create(chat).Error; err != nil {
			return err
		}
		for _, userID := range memberIDs {
			member := &dbmysql.ChatMember{
				ChatID: chat.ChatID,
				UserID: userID,
			}
			if err := tx.Create(member).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *chatRepository) GetChatByID(ctx context.Context, chatID uint64) (*dbmysql.Chat, error) {
	var chat dbmysql.Chat
	err := r.db.WithContext(ctx).Where("chat_id = ?", chatID).First(&chat).Error
	if err != nil {
		return nil, err
	}

	return &chat, nil
}

func (r *chatRepository) GetChatByPairKey(ctx context.Context, pairKey string) (*dbmysql.Chat, error) {
	var chat dbmysql.Chat
	err := r.db.WithContext(ctx).Where("pair_key = ?", pairKey).First(&chat).Error
	if err != nil {
		return nil, err
	}

	return &chat, nil
}

func (r *chatRepository) ListMemberChats(ctx context.Context, userID uint64) ([]*dbmysql.Chat, error) {
	var chats []*dbmysql.Chat
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN chat_members cm ON cm.chat_id = chats.chat_id").
		Where("cm.user_id = ?", userID).
		Find(&chats).Error
	if err != nil {
		return nil, err
	}

	return chats, nil
}

func (r *chatRepository) SearchChats(ctx context.Context, query string, limit int) ([]*dbmysql.Chat, error) {
	var chats []*dbmysql.Chat
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.WithContext(ctx).
		Where("type IN ?", []string{dbmysql.ChatTypeGroup, dbmysql.ChatTypeChannel}).
		Where("LOWER(username) LIKE ? OR LOWER(name) LIKE ?", pattern, pattern).
		Limit(limit).
		Find(&chats).Error
	if err != nil {
		return nil, err
	}

	return chats, nil
}

func (r *chatRepository) UpdateChatAvatar(ctx context.Context, chatID uint64, avatarURL string) error {
	return r.db.WithContext(ctx).Model(&dbmysql.Chat{}).
		Where("chat_id = ?", chatID).
		Update("avatar_url", avatarURL).Error
}

func (r *chatRepository) IsMember(ctx context.Context, chatID, userID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.ChatMember{}).
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *chatRepository) GetMember(ctx context.Context, chatID, userID uint64) (*dbmysql.ChatMember, error) {
	var member dbmysql.ChatMember
	err := r.db.WithContext(ctx).
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		First(&member).Error
	if err != nil {
		return nil, err
	}

	return &member, nil
}

func (r *chatRepository) OtherPrivateMember(ctx context.Context, chatID, userID uint64) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN chat_members cm ON cm.user_id = users.user_id").
		Where("cm.chat_id = ? AND cm.user_id != ?", chatID, userID).
		First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *chatRepository) UserExists(ctx context.Context, userID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.User{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count > 0, err
}

func (r *chatRepository) HandleTaken(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.Chat{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	err = r.db.WithContext(ctx).Model(&dbmysql.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *chatRepository) LastMessage(ctx context.Context, chatID uint64) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at DESC, message_id DESC").
		First(&msg).Error
	if err != nil {
		return nil, err
	}

	return &msg, nil
}
