package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// NewRedisClient conecta e valida com PING.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RedisClient é o subconjunto do go-redis usado pelo lock.
type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	redis.Scripter
}

// RedisLocker usa SET NX com token e libera via script (só o dono apaga).
// Tenta de novo a cada retry até o ctx expirar.
type RedisLocker struct {
	client RedisClient
	ttl    time.Duration
	retry  time.Duration
	wait   time.Duration
	log    *slog.Logger
}

func NewRedisLocker(client RedisClient, ttl time.Duration, log *slog.Logger) *RedisLocker {
	return &RedisLocker{
		client: client,
		ttl:    ttl,
		retry:  25 * time.Millisecond,
		log:    log,
	}
}

// WithWait limita a espera pelo lock (0 = só o ctx).
func (l *RedisLocker) WithWait(d time.Duration) *RedisLocker {
	l.wait = d
	return l
}

var unlockScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func (l *RedisLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	token := uuid.NewString()

	waitCtx, cancelWait := waitContext(ctx, l.wait)
	err := l.acquire(waitCtx, key, token)
	cancelWait()
	if err != nil {
		return err
	}

	defer func() {
		// ctx do request pode já ter expirado
		relCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := l.release(relCtx, key, token); err != nil {
			l.log.Warn("release booking lock", slog.String("key", key), slog.Any("error", err))
		}
	}()

	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(ctxWithTimeout)
}

func (l *RedisLocker) acquire(ctx context.Context, key, token string) error {
	ticker := time.NewTicker(l.retry)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return ErrLockNotAcquired
			}
			return fmt.Errorf("acquire booking lock: %w", err)
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return ErrLockNotAcquired
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) release(ctx context.Context, key, token string) error {
	_, err := unlockScript.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("release booking lock: %w", err)
	}
	return nil
}

var (
	_ Locker      = (*RedisLocker)(nil)
	_ RedisClient = (*redis.Client)(nil)
)
