package slotlock

import (
	"context"
	"sync"
)

type localLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLocalLocker creates an in-process locker for single-instance deploys
// running without Redis. Unlike the Redis locker it blocks until the key's
// mutex is free, so local contention serializes instead of failing.
func NewLocalLocker() Locker {
	return &localLocker{
		locks: make(map[string]*sync.Mutex),
	}
}

func (l *localLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	keyMu := l.keyMutex(key)
	keyMu.Lock()
	defer keyMu.Unlock()

	return fn(ctx)
}

func (l *localLocker) keyMutex(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	keyMu, ok := l.locks[key]
	if !ok {
		keyMu = &sync.Mutex{}
		l.locks[key] = keyMu
	}
	return keyMu
}
