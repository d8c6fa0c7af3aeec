package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sticky-board-api/internal/config"
	"sticky-board-api/internal/domain"
)

type fakeSource struct {
	boards     map[string]*domain.Board
	notes      map[string][]domain.Note
	boardReads int
	noteReads  int
}

func (f *fakeSource) FindByCode(_ context.Context, code string) (*domain.Board, error) {
	f.boardReads++
	b, ok := f.boards[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeSource) FindByBoard(_ context.Context, code string) ([]domain.Note, error) {
	f.noteReads++
	return append([]domain.Note{}, f.notes[code]...), nil
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}
func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}
func (failingStore) Del(context.Context, ...string) error { return errors.New("connection refused") }

type countingRecorder struct {
	hits, misses, errs int
}

func (r *countingRecorder) RecordCacheHit(string)   { r.hits++ }
func (r *countingRecorder) RecordCacheMiss(string)  { r.misses++ }
func (r *countingRecorder) RecordCacheError(string) { r.errs++ }

func newSource() *fakeSource {
	hash := "$2a$10$secret"
	return &fakeSource{
		boards: map[string]*domain.Board{
			"ABC123": {Code: "ABC123", Name: "b", Category: domain.CategoryFriends, PasswordHash: &hash},
		},
		notes: map[string][]domain.Note{
			"ABC123": {{ID: "n1", BoardCode: "ABC123", Content: "hello"}},
		},
	}
}

var testCfg = config.CacheConfig{BoardTTL: time.Hour, NotesTTL: 5 * time.Minute}

func TestBoardCache_ReadThrough(t *testing.T) {
	src := newSource()
	rec := &countingRecorder{}
	c := NewBoardCache(NewMemoryStore(), src, src, testCfg, rec, zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		notes, err := c.GetNotes(ctx, "ABC123")
		require.NoError(t, err)
		require.Len(t, notes, 1)
	}
	assert.Equal(t, 1, src.noteReads)
	assert.Equal(t, 1, rec.misses)
	assert.Equal(t, 2, rec.hits)

	c.InvalidateNotes(ctx, "ABC123")
	src.notes["ABC123"] = append(src.notes["ABC123"], domain.Note{ID: "n2"})

	notes, err := c.GetNotes(ctx, "ABC123")
	require.NoError(t, err)
	assert.Len(t, notes, 2, "read after invalidation reflects the store")
	assert.Equal(t, 2, src.noteReads)
}

func TestBoardCache_BoardEntryNeverCarriesHash(t *testing.T) {
	src := newSource()
	store := NewMemoryStore()
	c := NewBoardCache(store, src, src, testCfg, nil, zap.NewNop())
	ctx := context.Background()

	board, err := c.GetBoard(ctx, "ABC123")
	require.NoError(t, err)
	assert.Nil(t, board.PasswordHash)

	raw, ok, err := store.Get(ctx, BoardKey("ABC123"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, string(raw), "secret")

	cached, err := c.GetBoard(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, "b", cached.Name)
	assert.Equal(t, 1, src.boardReads)
}

func TestBoardCache_PutBoardPrimes(t *testing.T) {
	src := newSource()
	c := NewBoardCache(NewMemoryStore(), src, src, testCfg, nil, zap.NewNop())
	ctx := context.Background()

	hash := "$2a$10$other"
	c.PutBoard(ctx, &domain.Board{Code: "NEW001", Name: "fresh", PasswordHash: &hash})

	board, err := c.GetBoard(ctx, "NEW001")
	require.NoError(t, err)
	assert.Equal(t, "fresh", board.Name)
	assert.Equal(t, 0, src.boardReads)
}

func TestBoardCache_StoreFailureFallsThrough(t *testing.T) {
	src := newSource()
	rec := &countingRecorder{}
	c := NewBoardCache(failingStore{}, src, src, testCfg, rec, zap.NewNop())
	ctx := context.Background()

	board, err := c.GetBoard(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, "ABC123", board.Code)

	notes, err := c.GetNotes(ctx, "ABC123")
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	c.InvalidateNotes(ctx, "ABC123")
	assert.Positive(t, rec.errs)
}

func TestBoardCache_NotFoundIsNotCached(t *testing.T) {
	src := newSource()
	c := NewBoardCache(NewMemoryStore(), src, src, testCfg, nil, zap.NewNop())

	_, err := c.GetBoard(context.Background(), "NONE00")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = c.GetBoard(context.Background(), "NONE00")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Equal(t, 2, src.boardReads)
}

func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemoryStore()
	now := time.Now()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", string(v))

	now = now.Add(time.Minute)
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
