package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Locker распределённая блокировка для сериализации бронирований
// одного мастера на одну дату между несколькими инстансами сервиса.
type Locker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
	Close() error
}

// RedisLocker реализация Locker поверх Redis SETNX
type RedisLocker struct {
	client *redis.Client
}

// NewRedisLocker создает блокировщик с подключением к Redis
func NewRedisLocker(addr string) (*RedisLocker, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("lock: redis ping failed: %w", err)
	}

	return &RedisLocker{client: client}, nil
}

// Lock пытается захватить блокировку. Возвращает false без ошибки,
// если ключ уже занят.
func (l *RedisLocker) Lock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, lockKey(key), 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("lock: setnx %s: %w", key, err)
	}
	return ok, nil
}

// Unlock освобождает блокировку
func (l *RedisLocker) Unlock(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, lockKey(key)).Err(); err != nil {
		return fmt.Errorf("lock: del %s: %w", key, err)
	}
	return nil
}

// Close закрывает подключение к Redis
func (l *RedisLocker) Close() error {
	return l.client.Close()
}

func lockKey(key string) string {
	return fmt.Sprintf("lock:%s", key)
}

// NoopLocker заглушка для окружений без Redis (lock всегда успешен).
// Конфликт всё равно будет пойман exclusion constraint'ом базы.
type NoopLocker struct{}

func (NoopLocker) Lock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return true, nil
}

func (NoopLocker) Unlock(ctx context.Context, key string) error { return nil }

func (NoopLocker) Close() error { return nil }
