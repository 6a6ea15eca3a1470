package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
)

const standingsKey = "standings"

var ErrResultNotFound = errors.New("result not found")

// ResultRepository keeps the results of finished games and how many games every player won.
type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, id string) (*entity.Result, error)
	Standings(ctx context.Context) (map[string]int, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// Save - stores the result and counts the win, or the tie under entity.PlayerTie.
// Saving the same game twice keeps the standings unchanged.
func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	created, err := that.client.SetNX(ctx, resultKey(result.ID), resultJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to set result: %w", err)
	}

	if !created {
		return nil
	}

	field := result.Winner
	if result.IsTie() {
		field = entity.PlayerTie
	}

	if err = that.client.HIncrBy(ctx, standingsKey, field, 1).Err(); err != nil {
		return fmt.Errorf("failed to update standings: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.Result, error) {
	response, err := that.client.Get(ctx, resultKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Result{}, ErrResultNotFound
	}

	if err != nil {
		return &entity.Result{}, fmt.Errorf("%w by id", err)
	}

	var result entity.Result
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return &entity.Result{}, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

// Standings - wins per player name; ties are counted under entity.PlayerTie.
func (that *dbResult) Standings(ctx context.Context) (map[string]int, error) {
	response, err := that.client.HGetAll(ctx, standingsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get standings: %w", err)
	}

	standings := make(map[string]int, len(response))
	for name, value := range response {
		wins, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid standing for %s: %w", name, err)
		}

		standings[name] = wins
	}

	return standings, nil
}

func resultKey(id string) string {
	return "result:" + id
}
