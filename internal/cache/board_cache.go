package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"sticky-board-api/internal/config"
	"sticky-board-api/internal/domain"
)

const (
	kindBoard = "board"
	kindNotes = "notes"
)

// BoardSource reads board metadata from the durable store.
type BoardSource interface {
	FindByCode(ctx context.Context, code string) (*domain.Board, error)
}

// NoteSource reads a board's notes, newest first, from the durable store.
type NoteSource interface {
	FindByBoard(ctx context.Context, boardCode string) ([]domain.Note, error)
}

// Recorder receives cache outcomes; implemented by metrics.Metrics.
type Recorder interface {
	RecordCacheHit(kind string)
	RecordCacheMiss(kind string)
	RecordCacheError(operation string)
}

// BoardCache is a read-through cache of board metadata and note lists.
// Store failures are logged and the durable store answers instead.
type BoardCache struct {
	store    Store
	boards   BoardSource
	notes    NoteSource
	cfg      config.CacheConfig
	recorder Recorder
	logger   *zap.Logger
}

func NewBoardCache(store Store, boards BoardSource, notes NoteSource, cfg config.CacheConfig, recorder Recorder, logger *zap.Logger) *BoardCache {
	return &BoardCache{
		store:    store,
		boards:   boards,
		notes:    notes,
		cfg:      cfg,
		recorder: recorder,
		logger:   logger,
	}
}

func BoardKey(code string) string { return "board:" + code }
func NotesKey(code string) string { return "notes:" + code }

// GetBoard returns the board without its password hash.
func (c *BoardCache) GetBoard(ctx context.Context, code string) (*domain.Board, error) {
	var board domain.Board
	if c.lookup(ctx, kindBoard, BoardKey(code), &board) {
		return &board, nil
	}

	stored, err := c.boards.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	public := stored.Public()
	c.fill(ctx, BoardKey(code), public, c.cfg.BoardTTL)
	return &public, nil
}

func (c *BoardCache) GetNotes(ctx context.Context, code string) ([]domain.Note, error) {
	var notes []domain.Note
	if c.lookup(ctx, kindNotes, NotesKey(code), &notes) {
		if notes == nil {
			notes = []domain.Note{}
		}
		return notes, nil
	}

	notes, err := c.notes.FindByBoard(ctx, code)
	if err != nil {
		return nil, err
	}
	c.fill(ctx, NotesKey(code), notes, c.cfg.NotesTTL)
	return notes, nil
}

// PutBoard primes the board entry, typically right after creation.
func (c *BoardCache) PutBoard(ctx context.Context, board *domain.Board) {
	c.fill(ctx, BoardKey(board.Code), board.Public(), c.cfg.BoardTTL)
}

// InvalidateNotes drops the cached note list so the next read hits the store.
func (c *BoardCache) InvalidateNotes(ctx context.Context, code string) {
	if err := c.store.Del(ctx, NotesKey(code)); err != nil {
		c.recordError("del")
		c.logger.Warn("Failed to invalidate notes cache", zap.String("board_code", code), zap.Error(err))
	}
}

func (c *BoardCache) lookup(ctx context.Context, kind, key string, dst interface{}) bool {
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.recordError("get")
		c.logger.Warn("Cache read failed, falling back to store", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		c.recordMiss(kind)
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.recordError("decode")
		c.logger.Warn("Discarding undecodable cache entry", zap.String("key", key), zap.Error(err))
		_ = c.store.Del(ctx, key)
		return false
	}
	c.recordHit(kind)
	return true
}

func (c *BoardCache) fill(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.recordError("encode")
		c.logger.Error("Failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.Set(ctx, key, raw, ttl); err != nil {
		c.recordError("set")
		c.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *BoardCache) recordHit(kind string) {
	if c.recorder != nil {
		c.recorder.RecordCacheHit(kind)
	}
}

func (c *BoardCache) recordMiss(kind string) {
	if c.recorder != nil {
		c.recorder.RecordCacheMiss(kind)
	}
}

func (c *BoardCache) recordError(op string) {
	if c.recorder != nil {
		c.recorder.RecordCacheError(op)
	}
}
