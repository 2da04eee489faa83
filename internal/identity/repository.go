package identity

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chatline/internal/dbmysql"
)

// DefaultChatHandle is the well-known handle of the chat every new user
// is added to. Its absence is not an error.
const DefaultChatHandle = "general"

type UserRepository interface {
	CreateUser(ctx context.Context, user *dbmysql.User) error
	GetUserByID(ctx context.Context, userID uint64) (*dbmysql.User, error)
	GetUserByUsername(ctx context.Context, username string) (*dbmysql.User, error)
	UpdateUser(ctx context.Context, user *dbmysql.User) error
	SetPresence(ctx context.Context, userID uint64, online bool) error

	// HandleTaken reports whether the handle is claimed by a user or a
	// discoverable chat (shared namespace).
	HandleTaken(ctx context.Context, username string) (bool, error)
	SearchUsers(ctx context.Context, query string, excludeUserID uint64, limit int) ([]*dbmysql.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser inserts the user and joins the default chat, if one exists,
// in a single transaction. The handle namespace is shared with chats, so
// the transaction re-checks the chats table under a lock; the username
// unique index covers the same-table race.
func (r *userRepository) CreateUser(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		var claimed int64
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Model(&dbmysql.Chat{}).
			Where("username = ?", user.Username).
			Count(&claimed).Error
		if err != nil {
			return err
		}
		if claimed > 0 {
			return gorm.ErrDuplicatedKey
		}

		var defaultChat dbmysql.Chat
		err = tx.Where("username = ?", DefaultChatHandle).First(&defaultChat).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}

		member := &dbmysql.ChatMember{
			ChatID: defaultChat.ChatID,
			UserID: user.UserID,
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(member).Error
	})
}

func (r *userRepository) GetUserByID(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) SetPresence(ctx context.Context, userID uint64, online bool) error {
	return r.db.WithContext(ctx).Model(&dbmysql.User{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"is_online": online,
			"last_seen": time.Now(),
		}).Error
}

func (r *userRepository) HandleTaken(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	err = r.db.WithContext(ctx).Model(&dbmysql.Chat{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) SearchUsers(ctx context.Context, query string, excludeUserID uint64, limit int) ([]*dbmysql.User, error) {
	var users []*dbmysql.User
	tx := r.db.WithContext(ctx).Where("user_id != ?", excludeUserID)

	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		tx = tx.Where("LOWER(username) LIKE ? OR LOWER(display_name) LIKE ?", pattern, pattern)
	}

	err := tx.Order("is_online DESC, last_seen DESC").Limit(limit).Find(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}
