package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sticky-board-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.Board{}, &domain.Note{}, &domain.Participant{}, &domain.Presence{}))
	return db
}

func seedBoard(t *testing.T, db *gorm.DB, code string, category domain.Category) *domain.Board {
	t.Helper()
	now := time.Now().UTC()
	board := &domain.Board{
		Code:            code,
		Name:            "board " + code,
		Category:        category,
		Creator:         "creator",
		BorderColor:     category.BorderPalette().Default,
		BackgroundColor: category.BackgroundPalette().Default,
		MaxUsers:        category.MaxUsers(),
		CreatedAt:       now,
		LastActivity:    now,
	}
	require.NoError(t, NewBoardRepository(db).CreateWithCreator(t.Context(), board, nil))
	return board
}
