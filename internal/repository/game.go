package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// memGame - keeps live sessions in process memory. Sessions are never written
// anywhere else and are lost on restart.
type memGame struct {
	mu    sync.RWMutex
	games map[string]*entity.Game
}

func NewGameRepository() GameRepository {
	return &memGame{
		games: make(map[string]*entity.Game),
	}
}

func (that *memGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if game.ID == "" {
		return apperror.ErrEmptyGameID
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = game

	return nil
}

func (that *memGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", apperror.ErrGameNotFound, id)
	}

	return game, nil
}

func (that *memGame) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return fmt.Errorf("%w: id %s", apperror.ErrGameNotFound, id)
	}

	delete(that.games, id)

	return nil
}
