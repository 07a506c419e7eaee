package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-solver/internal/engine"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

var ErrMoveNotFound = errors.New("move not found")

// MoveBook stores the move the engine chose for a position.
type MoveBook interface {
	Get(ctx context.Context, key string) (entity.Move, error)
	Save(ctx context.Context, key string, move entity.Move) error
}

// MoveBookKey - the position as seen by the side to move.
func MoveBookKey(computerMark entity.Mark, board entity.Board) string {
	return fmt.Sprintf("%s:%s", computerMark, board.Key())
}

// redisKey - entries written by another engine version are never read back.
func redisKey(key string) string {
	return fmt.Sprintf("move:v%s:%s", engine.Version, key)
}

type dbMoveBook struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMoveBookRepository - redis backed book, entries expire after ttl (0 keeps them forever).
func NewMoveBookRepository(client *redis.Client, ttl time.Duration) MoveBook {
	return &dbMoveBook{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbMoveBook) Save(ctx context.Context, key string, move entity.Move) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	if err = that.client.Set(ctx, redisKey(key), moveJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}

func (that *dbMoveBook) Get(ctx context.Context, key string) (entity.Move, error) {
	response, err := that.client.Get(ctx, redisKey(key)).Result()

	if errors.Is(err, redis.Nil) {
		return entity.Move{}, ErrMoveNotFound
	}

	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to get move by key: %w", err)
	}

	var move entity.Move
	if err = json.Unmarshal([]byte(response), &move); err != nil {
		return entity.Move{}, fmt.Errorf("failed to unmarshal move: %w", err)
	}

	return move, nil
}

type memoryMoveBook struct {
	mu    sync.RWMutex
	moves map[string]entity.Move
}

func NewMemoryMoveBook() MoveBook {
	return &memoryMoveBook{
		moves: make(map[string]entity.Move),
	}
}

func (that *memoryMoveBook) Save(_ context.Context, key string, move entity.Move) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.moves[key] = move

	return nil
}

func (that *memoryMoveBook) Get(_ context.Context, key string) (entity.Move, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	move, ok := that.moves[key]
	if !ok {
		return entity.Move{}, ErrMoveNotFound
	}

	return move, nil
}
