package redis

import (
	"context"
	"errors"
	"io"

	"github.com/redis/go-redis/v9"
)

// QueueRepoImpl is a FIFO URL queue on a Redis list. The collector pushes on
// the left and the extractor pops from the right.
type QueueRepoImpl struct {
	client *redis.Client
	key    string
}

// NewQueueRepo creates a new instance of QueueRepoImpl.
func NewQueueRepo(client *redis.Client, key string) *QueueRepoImpl {
	return &QueueRepoImpl{client: client, key: key}
}

// Write pushes a URL onto the queue.
func (r *QueueRepoImpl) Write(ctx context.Context, url string) error {
	return r.client.LPush(ctx, r.key, url).Err()
}

// Next pops the oldest URL. An empty queue yields io.EOF.
func (r *QueueRepoImpl) Next(ctx context.Context) (string, error) {
	for {
		url, err := r.client.RPop(ctx, r.key).Result()
		if errors.Is(err, redis.Nil) {
			return "", io.EOF
		}
		if err != nil {
			return "", err
		}
		if url != "" {
			return url, nil
		}
	}
}

// Size returns the current number of items in the queue.
func (r *QueueRepoImpl) Size(ctx context.Context) (int64, error) {
	return r.client.LLen(ctx, r.key).Result()
}
