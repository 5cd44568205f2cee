package lock

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrLockNotAcquired = errors.New("booking lock not acquired")

// Locker serializa a seção crítica de reserva por chave.
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// BookingKey identifica a agenda de um profissional num dia.
func BookingKey(professionalID uint, date string) string {
	return fmt.Sprintf("lock:booking:%d:%s", professionalID, date)
}

func waitContext(ctx context.Context, wait time.Duration) (context.Context, context.CancelFunc) {
	if wait <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, wait)
}
