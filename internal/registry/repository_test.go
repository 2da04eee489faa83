package registry

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"chatline/internal/dbmysql"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return gormDB, mock, cleanup
}

func TestChatRepository_CreateChatWithMembers(t *testing.T) {
	tests := []struct {
		name        string
		memberIDs   []uint64
		mockSetup   func(sqlmock.Sqlmock)
		expectError bool
	}{
		{
			name:      "chat and both memberships in one transaction",
			memberIDs: []uint64{1, 2},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `chats`").
					WillReturnResult(sqlmock.NewResult(10, 1))
				mock.ExpectExec("INSERT INTO `chat_members`").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("INSERT INTO `chat_members`").
					WillReturnResult(sqlmock.NewResult(2, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:      "membership failure rolls back the chat",
			memberIDs: []uint64{1, 2},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `chats`").
					WillReturnResult(sqlmock.NewResult(10, 1))
				mock.ExpectExec("INSERT INTO `chat_members`").
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			tt.mockSetup(mock)

			pairKey := dbmysql.PrivatePairKey(1, 2)
			chat := &dbmysql.Chat{
				Name:      "private",
				Type:      dbmysql.ChatTypePrivate,
				CreatedBy: 1,
				PairKey:   &pairKey,
			}

			repo := NewChatRepository(db)
			err := repo.CreateChatWithMembers(context.Background(), chat, tt.memberIDs)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint64(10), chat.ChatID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// A discoverable handle is re-checked against the users table inside
// the creating transaction; a concurrent account registration surfaces
// as a duplicate key, same as losing the chats unique-index race.
func TestChatRepository_CreateChatWithMembers_HandleGuard(t *testing.T) {
	handle := "dailynews"

	t.Run("free handle creates", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users` WHERE username = \\? FOR UPDATE").
			WithArgs(handle).
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
		mock.ExpectExec("INSERT INTO `chats`").
			WillReturnResult(sqlmock.NewResult(3, 1))
		mock.ExpectExec("INSERT INTO `chat_members`").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		chat := &dbmysql.Chat{
			Name:      "Daily News",
			Type:      dbmysql.ChatTypeChannel,
			Username:  &handle,
			CreatedBy: 1,
		}

		repo := NewChatRepository(db)
		err := repo.CreateChatWithMembers(context.Background(), chat, []uint64{1})

		assert.NoError(t, err)
		assert.Equal(t, uint64(3), chat.ChatID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("handle claimed by a user rolls back", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users` WHERE username = \\? FOR UPDATE").
			WithArgs(handle).
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
		mock.ExpectRollback()

		chat := &dbmysql.Chat{
			Name:      "Daily News",
			Type:      dbmysql.ChatTypeChannel,
			Username:  &handle,
			CreatedBy: 1,
		}

		repo := NewChatRepository(db)
		err := repo.CreateChatWithMembers(context.Background(), chat, []uint64{1})

		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestChatRepository_ListMemberChats(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{
		"chat_id", "name", "type", "username", "description", "avatar_url", "created_by", "pair_key", "created_at", "updated_at",
	}).
		AddRow(1, "general", "channel", "general", "", "", 1, nil, time.Now(), time.Now()).
		AddRow(2, "private", "private", nil, "", "", 1, "1:2", time.Now(), time.Now())

	mock.ExpectQuery("INNER JOIN chat_members cm ON cm.chat_id = chats.chat_id").
		WithArgs(uint64(1)).
		WillReturnRows(rows)

	repo := NewChatRepository(db)
	chats, err := repo.ListMemberChats(context.Background(), 1)

	assert.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, "general", chats[0].Name)
	require.NotNil(t, chats[1].PairKey)
	assert.Equal(t, "1:2", *chats[1].PairKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_SearchChats_ExcludesPrivate(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{
		"chat_id", "name", "type", "username", "created_by", "created_at", "updated_at",
	}).AddRow(3, "Daily News", "channel", "dailynews", 1, time.Now(), time.Now())

	mock.ExpectQuery("SELECT \\* FROM `chats` WHERE type IN \\(\\?,\\?\\)").
		WithArgs(dbmysql.ChatTypeGroup, dbmysql.ChatTypeChannel, "%news%", "%news%", 20).
		WillReturnRows(rows)

	repo := NewChatRepository(db)
	chats, err := repo.SearchChats(context.Background(), "News", 20)

	assert.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, "Daily News", chats[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_IsMember(t *testing.T) {
	tests := []struct {
		name   string
		count  int64
		member bool
	}{
		{name: "member", count: 1, member: true},
		{name: "not a member", count: 0, member: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			mock.ExpectQuery("SELECT count\\(\\*\\) FROM `chat_members` WHERE chat_id = \\? AND user_id = \\?").
				WithArgs(uint64(5), uint64(1)).
				WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(tt.count))

			repo := NewChatRepository(db)
			ok, err := repo.IsMember(context.Background(), 5, 1)

			assert.NoError(t, err)
			assert.Equal(t, tt.member, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestChatRepository_HandleTaken(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(sqlmock.Sqlmock)
		taken     bool
	}{
		{
			name: "claimed by a chat",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT count\\(\\*\\) FROM `chats` WHERE username = \\?").
					WithArgs("general").
					WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
			},
			taken: true,
		},
		{
			name: "claimed by a user account",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT count\\(\\*\\) FROM `chats` WHERE username = \\?").
					WithArgs("general").
					WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
				mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users` WHERE username = \\?").
					WithArgs("general").
					WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
			},
			taken: true,
		},
		{
			name: "free in both tables",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT count\\(\\*\\) FROM `chats` WHERE username = \\?").
					WithArgs("general").
					WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
				mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users` WHERE username = \\?").
					WithArgs("general").
					WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
			},
			taken: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			tt.mockSetup(mock)

			repo := NewChatRepository(db)
			taken, err := repo.HandleTaken(context.Background(), "general")

			assert.NoError(t, err)
			assert.Equal(t, tt.taken, taken)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestChatRepository_LastMessage(t *testing.T) {
	t.Run("latest visible message", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{
			"message_id", "chat_id", "user_id", "content", "message_type", "media_id", "created_at", "removed_at",
		}).AddRow(7, 5, 2, "latest", "text", "", time.Now(), nil)

		// Soft-deleted messages never surface in the preview.
		mock.ExpectQuery("SELECT \\* FROM `messages` WHERE chat_id = \\? AND `messages`.`removed_at` IS NULL ORDER BY created_at DESC, message_id DESC").
			WithArgs(uint64(5), 1).
			WillReturnRows(rows)

		repo := NewChatRepository(db)
		msg, err := repo.LastMessage(context.Background(), 5)

		assert.NoError(t, err)
		require.NotNil(t, msg)
		assert.Equal(t, "latest", msg.Content)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty chat", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT \\* FROM `messages` WHERE chat_id = \\?").
			WithArgs(uint64(9), 1).
			WillReturnRows(sqlmock.NewRows([]string{"message_id"}))

		repo := NewChatRepository(db)
		msg, err := repo.LastMessage(context.Background(), 9)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Nil(t, msg)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestChatRepository_GetChatByPairKey(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	pairKey := dbmysql.PrivatePairKey(1, 2)
	rows := sqlmock.NewRows([]string{"chat_id", "name", "type", "pair_key"}).
		AddRow(10, "private", "private", pairKey)

	mock.ExpectQuery("SELECT \\* FROM `chats` WHERE pair_key = \\?").
		WithArgs(pairKey, 1).
		WillReturnRows(rows)

	repo := NewChatRepository(db)
	chat, err := repo.GetChatByPairKey(context.Background(), pairKey)

	assert.NoError(t, err)
	require.NotNil(t, chat)
	assert.Equal(t, uint64(10), chat.ChatID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_UpdateChatAvatar(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `chats` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewChatRepository(db)
	err := repo.UpdateChatAvatar(context.Background(), 5, "http://a/new.png")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
