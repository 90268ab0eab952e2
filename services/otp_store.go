package services

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jellydator/ttlcache/v3"
)

// ErrOTPNotFound is returned when no code is stored for an email, or when
// the stored code has expired.
var ErrOTPNotFound = errors.New("no OTP stored for this email")

// OTPStore keeps the most recently generated one-time password per email.
// Setting a new code supersedes any previous one; codes expire after the
// store's TTL.
type OTPStore interface {
	Set(ctx context.Context, email, code string) error
	Get(ctx context.Context, email string) (string, error)
}

// MemoryOTPStore keeps codes in process memory. Codes are lost on restart,
// which is acceptable for the single-user login flow.
type MemoryOTPStore struct {
	cache *ttlcache.Cache[string, string]
}

func NewMemoryOTPStore(ttl time.Duration) *MemoryOTPStore {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, string](ttl),
		ttlcache.WithDisableTouchOnHit[string, string](),
	)
	go cache.Start()

	return &MemoryOTPStore{cache: cache}
}

// Stop terminates the cache's expiry goroutine. The store in main lives for
// the whole process; callers with shorter-lived stores must stop them.
func (s *MemoryOTPStore) Stop() {
	s.cache.Stop()
}

func (s *MemoryOTPStore) Set(ctx context.Context, email, code string) error {
	s.cache.Set(email, code, ttlcache.DefaultTTL)
	return nil
}

func (s *MemoryOTPStore) Get(ctx context.Context, email string) (string, error) {
	item := s.cache.Get(email)
	if item == nil {
		return "", ErrOTPNotFound
	}
	return item.Value(), nil
}

// RedisOTPStore keeps codes in Redis so they survive process restarts.
type RedisOTPStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisOTPStore(client *redis.Client, ttl time.Duration) *RedisOTPStore {
	return &RedisOTPStore{client: client, ttl: ttl}
}

func (s *RedisOTPStore) Set(ctx context.Context, email, code string) error {
	return s.client.Set(ctx, "otp:"+email, code, s.ttl).Err()
}

func (s *RedisOTPStore) Get(ctx context.Context, email string) (string, error) {
	code, err := s.client.Get(ctx, "otp:"+email).Result()
	if err == redis.Nil {
		return "", ErrOTPNotFound
	}
	if err != nil {
		return "", err
	}
	return code, nil
}
