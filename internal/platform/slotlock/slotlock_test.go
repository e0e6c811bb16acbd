package slotlock

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestKey_Format(t *testing.T) {
	doctorID := uuid.MustParse("3f1c8a52-0000-0000-0000-000000000001")
	key := Key(doctorID, "2025-06-02", "09:30")

	if !strings.HasPrefix(key, "lock:slot:") {
		t.Errorf("expected lock:slot: prefix, got %q", key)
	}
	if !strings.HasSuffix(key, "2025-06-02:09:30") {
		t.Errorf("expected date and slot in key, got %q", key)
	}
}

func TestLocalLocker_RunsFn(t *testing.T) {
	locker := NewLocalLocker()

	called := false
	err := locker.WithLock(context.Background(), "lock:slot:a", func(ctx context.Context) error {
		called = true
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected fn to be called")
	}
}

func TestLocalLocker_PropagatesError(t *testing.T) {
	locker := NewLocalLocker()

	want := errors.New("boom")
	err := locker.WithLock(context.Background(), "lock:slot:a", func(ctx context.Context) error {
		return want
	})

	if !errors.Is(err, want) {
		t.Errorf("expected fn error, got %v", err)
	}
}

func TestLocalLocker_SerializesSameKey(t *testing.T) {
	locker := NewLocalLocker()

	const workers = 20
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = locker.WithLock(context.Background(), "lock:slot:shared", func(ctx context.Context) error {
				// Unsynchronized increment; the lock is the only thing
				// preventing a data race here.
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Errorf("expected %d increments, got %d", workers, counter)
	}
}

func TestLocalLocker_IndependentKeys(t *testing.T) {
	locker := NewLocalLocker()

	release := make(chan struct{})
	holding := make(chan struct{})

	go func() {
		_ = locker.WithLock(context.Background(), "lock:slot:a", func(ctx context.Context) error {
			close(holding)
			<-release
			return nil
		})
	}()

	<-holding

	// A different key must not be blocked by the held lock.
	done := make(chan struct{})
	go func() {
		_ = locker.WithLock(context.Background(), "lock:slot:b", func(ctx context.Context) error {
			return nil
		})
		close(done)
	}()

	<-done
	close(release)
}

func TestLocalLocker_CancelledContext(t *testing.T) {
	locker := NewLocalLocker()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := locker.WithLock(ctx, "lock:slot:a", func(ctx context.Context) error {
		t.Error("fn should not run with a cancelled context")
		return nil
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
