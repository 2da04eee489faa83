package ledger

import (
	"context"

	"gorm.io/gorm"

	"chatline/internal/dbmysql"
)

type MessageRepository interface {
	// Append inserts the message and bumps the unread counter of every
	// other member of the chat in one transaction.
	Append(ctx context.Context, msg *dbmysql.Message) error

	// ListByChat returns non-deleted messages in created_at order with
	// author attributes attached.
	ListByChat(ctx context.Context, chatID uint64) ([]*dbmysql.Message, error)

	// GetByID returns the message even when soft-deleted (audit path).
	GetByID(ctx context.Context, messageID uint64) (*dbmysql.Message, error)

	// SoftDelete marks the message removed if it exists and is authored
	// by requesterID; otherwise gorm.ErrRecordNotFound, with no
	// distinction between the two cases. Members who had not read the
	// message get their unread counter decremented back.
	SoftDelete(ctx context.Context, messageID, requesterID uint64) (*dbmysql.Message, error)

	// MarkRead resets the member's unread counter and advances the
	// last-read high-water mark.
	MarkRead(ctx context.Context, chatID, userID, lastMessageID uint64) error
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Append(ctx context.Context, msg *dbmysql.Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}

		return tx.Model(&dbmysql.ChatMember{}).
			Where("chat_id = ? AND user_id != ?", msg.ChatID, msg.UserID).
			Update("unread_count", gorm.Expr("unread_count + 1")).Error
	})
}

func (r *messageRepository) ListByChat(ctx context.Context, chatID uint64) ([]*dbmysql.Message, error) {
	var messages []*dbmysql.Message
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at ASC, message_id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	if err := r.attachAuthors(ctx, messages); err != nil {
		return nil, err
	}

	return messages, nil
}

// attachAuthors joins author display attributes at read time; they are
// never denormalized into message rows.
func (r *messageRepository) attachAuthors(ctx context.Context, messages []*dbmysql.Message) error {
	if len(messages) == 0 {
		return nil
	}

	idSet := make(map[uint64]struct{}, len(messages))
	ids := make([]uint64, 0, len(messages))
	for _, msg := range messages {
		if _, seen := idSet[msg.UserID]; !seen {
			idSet[msg.UserID] = struct{}{}
			ids = append(ids, msg.UserID)
		}
	}

	var users []*dbmysql.User
	if err := r.db.WithContext(ctx).Where("user_id IN ?", ids).Find(&users).Error; err != nil {
		return err
	}

	byID := make(map[uint64]*dbmysql.User, len(users))
	for _, user := range users {
		byID[user.UserID] = user
	}
	for _, msg := range messages {
		msg.Author = byID[msg.UserID]
	}

	return nil
}

func (r *messageRepository) GetByID(ctx context.Context, messageID uint64) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	err := r.db.WithContext(ctx).Unscoped().
		Where("message_id = ?", messageID).
		First(&msg).Error
	if err != nil {
		return nil, err
	}

	return &msg, nil
}

func (r *messageRepository) SoftDelete(ctx context.Context, messageID, requesterID uint64) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Ownership folded into the lookup so "not yours" and "does not
		// exist" are the same failure.
		err := tx.Where("message_id = ? AND user_id = ?", messageID, requesterID).
			First(&msg).Error
		if err != nil {
			return err
		}

		if err := tx.Delete(&msg).Error; err != nil {
			return err
		}

		// Undo the unread bump from Append for members who had not read
		// this message yet. last_read_message_id at or past the message
		// means it was already counted as read.
		return tx.Model(&dbmysql.ChatMember{}).
			Where("chat_id = ? AND user_id != ? AND last_read_message_id < ? AND unread_count > 0",
				msg.ChatID, msg.UserID, msg.MessageID).
			Update("unread_count", gorm.Expr("unread_count - 1")).Error
	})
	if err != nil {
		return nil, err
	}

	return &msg, nil
}

func (r *messageRepository) MarkRead(ctx context.Context, chatID, userID, lastMessageID uint64) error {
	return r.db.WithContext(ctx).Model(&dbmysql.ChatMember{}).
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Updates(map[string]interface{}{
			"unread_count":         0,
			"last_read_message_id": gorm.Expr("GREATEST(last_read_message_id, ?)", lastMessageID),
		}).Error
}
