package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis starts an in-process miniredis server once and returns a client
// connected to it. The filter preference store runs against it unchanged.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		srv, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisConn = redis.NewClient(&redis.Options{Addr: srv.Addr()})
	})
	return redisConn
}

// ClearRedis flushes every key so scenarios start without stored preferences.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}
