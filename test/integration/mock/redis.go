package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *redis.Client

// NewRedis boots an in-process miniredis server shared by all scenarios and
// returns a client connected to it.
func NewRedis() *redis.Client {
	if redisConn == nil {
		redisConnOnce.Do(
			func() {
				redisConn = openRedisConn()
			},
		)
	}

	return redisConn
}

func openRedisConn() *redis.Client {
	miniRedis, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	conn := redis.NewClient(
		&redis.Options{
			Addr: miniRedis.Addr(),
		},
	)

	return conn
}

// ClearRedis flushes every key so cached report payloads never leak between
// scenarios.
func ClearRedis(redis *redis.Client) error {
	return redis.FlushAll(context.TODO()).Err()
}
