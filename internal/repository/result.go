package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrResultNotFound = errors.New("match result not found")

type ResultRepository interface {
	Save(ctx context.Context, result *entity.MatchResult) error
	GetByID(ctx context.Context, id string) (*entity.MatchResult, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

func resultKey(id string) string {
	return "match:" + id
}

func (that *dbResult) Save(ctx context.Context, result *entity.MatchResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal match result: %w", err)
	}

	if err = that.client.Set(ctx, resultKey(result.ID), resultJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set match result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.MatchResult, error) {
	response, err := that.client.Get(ctx, resultKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match result by id: %w", err)
	}

	var result entity.MatchResult
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match result: %w", err)
	}

	return &result, nil
}

func (that *dbResult) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, resultKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete match result by id: %w", err)
	}

	if deleted == 0 {
		return ErrResultNotFound
	}

	return nil
}
