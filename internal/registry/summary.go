package registry

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"chatline/internal/dbmysql"
)

// MessagePreview is the last-message summary attached to a chat listing.
type MessagePreview struct {
	Content     string    `json:"content"`
	MessageType string    `json:"message_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// ChatSummary is a chat annotated with per-member conversation state.
type ChatSummary struct {
	Chat        *dbmysql.Chat   `json:"chat"`
	LastMessage *MessagePreview `json:"last_message,omitempty"`
	UnreadCount int             `json:"unread_count"`

	// OtherMember is resolved for private chats only.
	OtherMember *dbmysql.User `json:"other_member,omitempty"`
}

// summaryProjector derives last-message previews and unread counts from
// the message ledger. It only reads; unread counters are maintained by
// the ledger's append/read paths.
type summaryProjector struct {
	repo ChatRepository
}

func newSummaryProjector(repo ChatRepository) *summaryProjector {
	return &summaryProjector{repo: repo}
}

func (p *summaryProjector) project(ctx context.Context, chat *dbmysql.Chat, userID uint64) (*ChatSummary, error) {
	summary := &ChatSummary{Chat: chat}

	last, err := p.repo.LastMessage(ctx, chat.ChatID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if last != nil {
		summary.LastMessage = &MessagePreview{
			Content:     last.Content,
			MessageType: last.MessageType,
			CreatedAt:   last.CreatedAt,
		}
	}

	member, err := p.repo.GetMember(ctx, chat.ChatID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if member != nil {
		summary.UnreadCount = member.UnreadCount
	}

	if chat.Type == dbmysql.ChatTypePrivate {
		other, err := p.repo.OtherPrivateMember(ctx, chat.ChatID, userID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		summary.OtherMember = other
	}

	return summary, nil
}
