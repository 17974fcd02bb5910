package database

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
)

// RedisConnOpt is the asynq connection option for addr.
func RedisConnOpt(addr string) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: addr}
}

// NewAsynqClient checks that Redis answers, then returns a task client for it.
func NewAsynqClient(ctx context.Context, addr string) (*asynq.Client, error) {
	rdb, err := NewRedisClient(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("asynq client not initialized: %w", err)
	}
	_ = rdb.Close()

	return asynq.NewClient(RedisConnOpt(addr)), nil
}
