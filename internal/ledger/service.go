package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"chatline/internal/common"
	"chatline/internal/dbmysql"
)

// MembershipChecker is the registry contract the ledger depends on: the
// ledger itself has no membership knowledge.
type MembershipChecker interface {
	IsMember(ctx context.Context, chatID, userID uint64) (bool, error)
}

type LedgerService interface {
	Append(ctx context.Context, chatID, authorID uint64, content, messageType, mediaID string) (*dbmysql.Message, error)
	List(ctx context.Context, chatID, readerID uint64) ([]*dbmysql.Message, error)
	SoftDelete(ctx context.Context, messageID, requesterID uint64) (*dbmysql.Message, error)
	GetByID(ctx context.Context, messageID uint64) (*dbmysql.Message, error)
}

type ledgerService struct {
	repo       MessageRepository
	membership MembershipChecker
}

func NewLedgerService(repo MessageRepository, membership MembershipChecker) LedgerService {
	return &ledgerService{repo: repo, membership: membership}
}

func (s *ledgerService) Append(ctx context.Context, chatID, authorID uint64, content, messageType, mediaID string) (*dbmysql.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" && mediaID == "" {
		return nil, fmt.Errorf("%w: message needs content or media", common.ErrInvalidArgument)
	}
	if messageType == "" {
		messageType = dbmysql.MessageTypeText
	}

	member, err := s.membership.IsMember(ctx, chatID, authorID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, fmt.Errorf("%w: user %d is not a member of chat %d", common.ErrForbidden, authorID, chatID)
	}

	msg := &dbmysql.Message{
		ChatID:      chatID,
		UserID:      authorID,
		Content:     content,
		MessageType: messageType,
		MediaID:     mediaID,
	}

	if err := s.repo.Append(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

// List returns the chat's visible messages oldest-first and resets the
// reader's unread state for that chat.
func (s *ledgerService) List(ctx context.Context, chatID, readerID uint64) ([]*dbmysql.Message, error) {
	member, err := s.membership.IsMember(ctx, chatID, readerID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, fmt.Errorf("%w: user %d is not a member of chat %d", common.ErrForbidden, readerID, chatID)
	}

	messages, err := s.repo.ListByChat(ctx, chatID)
	if err != nil {
		return nil, err
	}

	var lastID uint64
	if len(messages) > 0 {
		lastID = messages[len(messages)-1].MessageID
	}
	if err := s.repo.MarkRead(ctx, chatID, readerID, lastID); err != nil {
		return nil, err
	}

	return messages, nil
}

func (s *ledgerService) SoftDelete(ctx context.Context, messageID, requesterID uint64) (*dbmysql.Message, error) {
	msg, err := s.repo.SoftDelete(ctx, messageID, requesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: message %d", common.ErrNotFound, messageID)
		}
		return nil, err
	}

	return msg, nil
}

func (s *ledgerService) GetByID(ctx context.Context, messageID uint64) (*dbmysql.Message, error) {
	msg, err := s.repo.GetByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: message %d", common.ErrNotFound, messageID)
		}
		return nil, err
	}

	return msg, nil
}
