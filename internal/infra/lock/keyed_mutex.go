package lock

import (
	"context"
	"sync"
	"time"
)

// KeyedMutex é o Locker de uma instância só. Cada chave tem um canal de
// capacidade 1 para permitir espera com cancelamento por ctx.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedEntry
	wait  time.Duration
}

type keyedEntry struct {
	ch   chan struct{}
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*keyedEntry)}
}

// WithWait limita a espera pelo lock (0 = só o ctx).
func (k *KeyedMutex) WithWait(d time.Duration) *KeyedMutex {
	k.wait = d
	return k
}

func (k *KeyedMutex) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	e := k.acquireEntry(key)
	defer k.releaseEntry(key, e)

	waitCtx, cancel := waitContext(ctx, k.wait)
	defer cancel()

	select {
	case e.ch <- struct{}{}:
	case <-waitCtx.Done():
		return ErrLockNotAcquired
	}
	defer func() { <-e.ch }()

	return fn(ctx)
}

func (k *KeyedMutex) acquireEntry(key string) *keyedEntry {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.locks[key]
	if !ok {
		e = &keyedEntry{ch: make(chan struct{}, 1)}
		k.locks[key] = e
	}
	e.refs++
	return e
}

func (k *KeyedMutex) releaseEntry(key string, e *keyedEntry) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
}

var _ Locker = (*KeyedMutex)(nil)
