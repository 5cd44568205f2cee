package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	km := NewKeyedMutex()
	key := BookingKey(1, "2026-03-02")

	var inside, maxInside int32
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := km.WithLock(context.Background(), key, func(context.Context) error {
				n := atomic.AddInt32(&inside, 1)
				for {
					m := atomic.LoadInt32(&maxInside)
					if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inside, -1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Empty(t, km.locks, "entries are released")
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	km := NewKeyedMutex()
	release := make(chan struct{})
	entered := make(chan struct{})

	go func() {
		_ = km.WithLock(context.Background(), BookingKey(1, "2026-03-02"), func(context.Context) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := km.WithLock(ctx, BookingKey(2, "2026-03-02"), func(context.Context) error { return nil })
	require.NoError(t, err)
	close(release)
}

func TestKeyedMutexHonoursContext(t *testing.T) {
	km := NewKeyedMutex()
	key := BookingKey(1, "2026-03-02")
	release := make(chan struct{})
	entered := make(chan struct{})

	go func() {
		_ = km.WithLock(context.Background(), key, func(context.Context) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	called := false
	err := km.WithLock(ctx, key, func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrLockNotAcquired)
	assert.False(t, called)
	close(release)
}

func TestKeyedMutexWaitLimit(t *testing.T) {
	km := NewKeyedMutex().WithWait(20 * time.Millisecond)
	key := BookingKey(1, "2026-03-02")
	release := make(chan struct{})
	entered := make(chan struct{})

	go func() {
		_ = km.WithLock(context.Background(), key, func(context.Context) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered
	defer close(release)

	start := time.Now()
	err := km.WithLock(context.Background(), key, func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrLockNotAcquired)
	assert.Less(t, time.Since(start), time.Second)
}
