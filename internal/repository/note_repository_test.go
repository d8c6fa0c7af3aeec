package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sticky-board-api/internal/domain"
)

func TestNoteRepository_CreateAndListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	seedBoard(t, db, "NOTES1", domain.CategoryFriends)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	base := time.Now().UTC()
	for i, content := range []string{"first", "second", "third"} {
		note := &domain.Note{
			BoardCode: "NOTES1", AuthorID: "u1", Content: content, Color: "#A8D8EA",
			PositionX: 50, PositionY: 50, CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.Create(ctx, note))
		assert.NotEmpty(t, note.ID, "id is assigned on create")
	}

	notes, err := repo.FindByBoard(ctx, "NOTES1")
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "third", notes[0].Content)
	assert.Equal(t, "first", notes[2].Content)

	empty, err := repo.FindByBoard(ctx, "OTHER1")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestNoteRepository_UpdatePosition(t *testing.T) {
	db := setupTestDB(t)
	seedBoard(t, db, "MOVE01", domain.CategoryFriends)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	note := &domain.Note{BoardCode: "MOVE01", AuthorID: "u1", Content: "c", Color: "#A8D8EA", PositionX: 50, PositionY: 50}
	require.NoError(t, repo.Create(ctx, note))

	moved, err := repo.UpdatePosition(ctx, note.ID, 10, 90)
	require.NoError(t, err)
	assert.Equal(t, 10, moved.PositionX)
	assert.Equal(t, 90, moved.PositionY)
	assert.Equal(t, "MOVE01", moved.BoardCode)

	_, err = repo.UpdatePosition(ctx, "missing", 1, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestNoteRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	seedBoard(t, db, "DEL001", domain.CategoryFriends)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	note := &domain.Note{BoardCode: "DEL001", AuthorID: "u1", Content: "c", Color: "#A8D8EA"}
	require.NoError(t, repo.Create(ctx, note))

	require.NoError(t, repo.Delete(ctx, note.ID))
	_, err := repo.FindByID(ctx, note.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, note.ID), gorm.ErrRecordNotFound)
}
