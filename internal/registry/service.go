package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"chatline/internal/common"
	"chatline/internal/dbmysql"
)

const searchLimitMax = 50

type RegistryService interface {
	ListChats(ctx context.Context, userID uint64) ([]*ChatSummary, error)
	CreateGroupOrChannel(ctx context.Context, creatorID uint64, name, chatType, username, description, avatarURL string) (*dbmysql.Chat, error)
	CreateOrGetPrivateChat(ctx context.Context, userID, otherUserID uint64) (*dbmysql.Chat, error)
	SearchDiscoverable(ctx context.Context, query string, limit int) ([]*dbmysql.Chat, error)
	UpdateChatAvatar(ctx context.Context, chatID, requesterID uint64, avatarURL string) error

	// IsMember is the membership contract consumed by the message ledger.
	IsMember(ctx context.Context, chatID, userID uint64) (bool, error)
}

type registryService struct {
	repo      ChatRepository
	projector *summaryProjector
}

func NewRegistryService(repo ChatRepository) RegistryService {
	return &registryService{
		repo:      repo,
		projector: newSummaryProjector(repo),
	}
}

// ListChats returns every chat the user belongs to, annotated with its
// summary, ordered by most-recent activity. Chats with no messages sort
// after all active ones, newest-created first.
func (s *registryService) ListChats(ctx context.Context, userID uint64) ([]*ChatSummary, error) {
	chats, err := s.repo.ListMemberChats(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*ChatSummary, 0, len(chats))
	for _, chat := range chats {
		summary, err := s.projector.project(ctx, chat, userID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		switch {
		case a.LastMessage != nil && b.LastMessage != nil:
			return a.LastMessage.CreatedAt.After(b.LastMessage.CreatedAt)
		case a.LastMessage != nil:
			return true
		case b.LastMessage != nil:
			return false
		default:
			return a.Chat.CreatedAt.After(b.Chat.CreatedAt)
		}
	})

	return summaries, nil
}

func (s *registryService) CreateGroupOrChannel(ctx context.Context, creatorID uint64, name, chatType, username, description, avatarURL string) (*dbmysql.Chat, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: chat name required", common.ErrInvalidArgument)
	}
	if chatType != dbmysql.ChatTypeGroup && chatType != dbmysql.ChatTypeChannel {
		return nil, fmt.Errorf("%w: chat type must be group or channel", common.ErrInvalidArgument)
	}

	chat := &dbmysql.Chat{
		Name:        name,
		Type:        chatType,
		Description: description,
		AvatarURL:   avatarURL,
		CreatedBy:   creatorID,
	}

	username = strings.TrimSpace(username)
	if username != "" {
		if err := common.ValidateUsername(username); err != nil {
			return nil, err
		}
		taken, err := s.repo.HandleTaken(ctx, username)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: handle %q already taken", common.ErrConflict, username)
		}
		chat.Username = &username
	}

	if err := s.repo.CreateChatWithMembers(ctx, chat, []uint64{creatorID}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: handle %q already taken", common.ErrConflict, username)
		}
		return nil, err
	}

	return chat, nil
}

// CreateOrGetPrivateChat is idempotent per unordered user pair. The
// pair_key unique index guarantees at most one chat even when both sides
// create concurrently; the loser of that race re-reads the winner's row.
func (s *registryService) CreateOrGetPrivateChat(ctx context.Context, userID, otherUserID uint64) (*dbmysql.Chat, error) {
	if userID == otherUserID {
		return nil, fmt.Errorf("%w: cannot open a private chat with yourself", common.ErrInvalidArgument)
	}

	exists, err := s.repo.UserExists(ctx, otherUserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: user %d", common.ErrNotFound, otherUserID)
	}

	pairKey := dbmysql.PrivatePairKey(userID, otherUserID)

	chat, err := s.repo.GetChatByPairKey(ctx, pairKey)
	if err == nil {
		return chat, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	chat = &dbmysql.Chat{
		Name:      "private",
		Type:      dbmysql.ChatTypePrivate,
		CreatedBy: userID,
		PairKey:   &pairKey,
	}

	err = s.repo.CreateChatWithMembers(ctx, chat, []uint64{userID, otherUserID})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.repo.GetChatByPairKey(ctx, pairKey)
		}
		return nil, err
	}

	return chat, nil
}

func (s *registryService) SearchDiscoverable(ctx context.Context, query string, limit int) ([]*dbmysql.Chat, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query required", common.ErrInvalidArgument)
	}

	if limit <= 0 || limit > searchLimitMax {
		limit = searchLimitMax
	}

	return s.repo.SearchChats(ctx, query, limit)
}

func (s *registryService) UpdateChatAvatar(ctx context.Context, chatID, requesterID uint64, avatarURL string) error {
	chat, err := s.repo.GetChatByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: chat %d", common.ErrNotFound, chatID)
		}
		return err
	}

	if chat.CreatedBy != requesterID {
		return fmt.Errorf("%w: only the chat creator can change the avatar", common.ErrForbidden)
	}

	return s.repo.UpdateChatAvatar(ctx, chatID, avatarURL)
}

func (s *registryService) IsMember(ctx context.Context, chatID, userID uint64) (bool, error) {
	return s.repo.IsMember(ctx, chatID, userID)
}
