package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"chatline/internal/common"
	"chatline/internal/dbmysql"
)

const (
	searchLimitDefault = 50
	searchLimitQuery   = 20
)

// ProfileUpdate carries partial profile changes. A nil field is left
// untouched; a non-nil field overwrites, so a pointer to "" clears.
type ProfileUpdate struct {
	DisplayName *string
	Bio         *string
	AvatarURL   *string
}

type IdentityService interface {
	Register(ctx context.Context, username, displayName, password string) (*dbmysql.User, string, error)
	Authenticate(ctx context.Context, username, password string) (*dbmysql.User, string, error)
	GetProfile(ctx context.Context, userID uint64) (*dbmysql.User, error)
	UpdateProfile(ctx context.Context, userID uint64, update ProfileUpdate) (*dbmysql.User, error)
	Search(ctx context.Context, query string, excludeUserID uint64) ([]*dbmysql.User, error)
	SetOffline(ctx context.Context, userID uint64) error
}

type identityService struct {
	userRepo UserRepository
}

func NewIdentityService(userRepo UserRepository) IdentityService {
	return &identityService{userRepo: userRepo}
}

func (s *identityService) Register(ctx context.Context, username, displayName, password string) (*dbmysql.User, string, error) {
	username = strings.TrimSpace(username)
	displayName = strings.TrimSpace(displayName)

	if err := common.ValidateUsername(username); err != nil {
		return nil, "", err
	}
	if err := common.ValidateDisplayName(displayName); err != nil {
		return nil, "", err
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, "", err
	}

	taken, err := s.userRepo.HandleTaken(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", fmt.Errorf("%w: username %q already taken", common.ErrConflict, username)
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &dbmysql.User{
		Username:     username,
		DisplayName:  displayName,
		AvatarColor:  common.PickAvatarColor(username),
		PasswordHash: hashed,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		// The unique index wins the race a HandleTaken check can lose.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", fmt.Errorf("%w: username %q already taken", common.ErrConflict, username)
		}
		return nil, "", err
	}

	token, err := common.GenerateToken(user.UserID, user.Username)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *identityService) Authenticate(ctx context.Context, username, password string) (*dbmysql.User, string, error) {
	if username == "" || password == "" {
		return nil, "", fmt.Errorf("%w: username and password required", common.ErrInvalidArgument)
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same result shape as a wrong password.
			return nil, "", common.ErrUnauthorized
		}
		return nil, "", err
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", common.ErrUnauthorized
	}

	if err := s.userRepo.SetPresence(ctx, user.UserID, true); err != nil {
		return nil, "", err
	}
	user.IsOnline = true

	token, err := common.GenerateToken(user.UserID, user.Username)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *identityService) GetProfile(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", common.ErrNotFound, userID)
		}
		return nil, err
	}
	return user, nil
}

func (s *identityService) UpdateProfile(ctx context.Context, userID uint64, update ProfileUpdate) (*dbmysql.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", common.ErrNotFound, userID)
		}
		return nil, err
	}

	if update.DisplayName != nil {
		if err := common.ValidateDisplayName(*update.DisplayName); err != nil {
			return nil, err
		}
		user.DisplayName = *update.DisplayName
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.AvatarURL != nil {
		user.AvatarURL = *update.AvatarURL
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *identityService) Search(ctx context.Context, query string, excludeUserID uint64) ([]*dbmysql.User, error) {
	query = strings.TrimSpace(query)

	limit := searchLimitDefault
	if query != "" {
		limit = searchLimitQuery
	}

	return s.userRepo.SearchUsers(ctx, query, excludeUserID, limit)
}

func (s *identityService) SetOffline(ctx context.Context, userID uint64) error {
	return s.userRepo.SetPresence(ctx, userID, false)
}
