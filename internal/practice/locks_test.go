package practice

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSessionLocks_SerializesSameID(t *testing.T) {
	locks := newSessionLocks()
	ctx := context.Background()

	release, err := locks.acquire(ctx, "sess-1", 10*time.Millisecond)
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}

	_, err = locks.acquire(ctx, "sess-1", 10*time.Millisecond)
	var busy *ErrBusy
	if !errors.As(err, &busy) {
		t.Fatalf("second acquire error = %v, want ErrBusy", err)
	}
	if busy.SessionID != "sess-1" {
		t.Errorf("busy session id = %q, want sess-1", busy.SessionID)
	}

	release()
	release2, err := locks.acquire(ctx, "sess-1", 10*time.Millisecond)
	if err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	release2()
}

func TestSessionLocks_IndependentIDs(t *testing.T) {
	locks := newSessionLocks()
	ctx := context.Background()

	releaseA, err := locks.acquire(ctx, "sess-a", 10*time.Millisecond)
	if err != nil {
		t.Fatalf("acquire a: %v", err)
	}
	defer releaseA()

	releaseB, err := locks.acquire(ctx, "sess-b", 10*time.Millisecond)
	if err != nil {
		t.Fatalf("acquire b while a held: %v", err)
	}
	releaseB()
}

func TestSessionLocks_WaitsForRelease(t *testing.T) {
	locks := newSessionLocks()
	ctx := context.Background()

	release, err := locks.acquire(ctx, "sess-1", 10*time.Millisecond)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}

	go func() {
		time.Sleep(20 * time.Millisecond)
		release()
	}()

	release2, err := locks.acquire(ctx, "sess-1", time.Second)
	if err != nil {
		t.Fatalf("acquire with generous wait: %v", err)
	}
	release2()
}

func TestSessionLocks_ContextCancel(t *testing.T) {
	locks := newSessionLocks()
	ctx, cancel := context.WithCancel(context.Background())

	release, err := locks.acquire(ctx, "sess-1", time.Minute)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer release()

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err = locks.acquire(ctx, "sess-1", time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("acquire on cancelled ctx = %v, want context.Canceled", err)
	}
}
