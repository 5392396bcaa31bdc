package session

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// Store keeps the server-side half of every issued token: a session row in
// Redis keyed by the JWT's jti. The client only ever holds the opaque token;
// revoking the jti kills the session no matter what the token claims.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewClient(redisURL string) *redis.Client {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL %q, falling back to localhost: %v", redisURL, err)
		opts = &redis.Options{Addr: "localhost:6379"}
	}
	return redis.NewClient(opts)
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func key(jti string) string {
	return "session:" + jti
}

func (s *Store) Create(ctx context.Context, jti string, userID uint) error {
	return s.rdb.Set(ctx, key(jti), strconv.FormatUint(uint64(userID), 10), s.ttl).Err()
}

// UserID resolves a jti to its user; ok=false means revoked or expired.
func (s *Store) UserID(ctx context.Context, jti string) (uint, bool, error) {
	val, err := s.rdb.Get(ctx, key(jti)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return uint(id), true, nil
}

func (s *Store) Revoke(ctx context.Context, jti string) error {
	return s.rdb.Del(ctx, key(jti)).Err()
}
