package shutdown

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"
)

func TestHandler_ShutdownReverseOrder(t *testing.T) {
	h := NewHandler(time.Second)

	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		h.OnShutdown(func(context.Context) error {
			order = append(order, i)
			return nil
		})
	}

	if err := h.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if len(order) != 3 || order[0] != 3 || order[1] != 2 || order[2] != 1 {
		t.Errorf("hooks ran in order %v, want [3 2 1]", order)
	}
}

func TestHandler_ShutdownOnce(t *testing.T) {
	h := NewHandler(time.Second)

	calls := 0
	h.OnShutdown(func(context.Context) error {
		calls++
		return nil
	})

	h.Shutdown()
	h.Shutdown()
	if calls != 1 {
		t.Errorf("hook ran %d times, want 1", calls)
	}
}

func TestHandler_ShutdownJoinsErrors(t *testing.T) {
	h := NewHandler(time.Second)
	errA := errors.New("metrics")
	errB := errors.New("watcher")

	h.OnShutdown(func(context.Context) error { return errA })
	h.OnShutdown(func(context.Context) error { return nil })
	h.OnShutdown(func(context.Context) error { return errB })

	err := h.Shutdown()
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("Shutdown() = %v, want both hook errors", err)
	}
}

func TestHandler_HookDeadline(t *testing.T) {
	h := NewHandler(50 * time.Millisecond)
	h.OnShutdown(func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			return errors.New("no deadline")
		}
		return nil
	})
	if err := h.Shutdown(); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestNotifyContext_Signal(t *testing.T) {
	ctx, stop := NotifyContext(context.Background())
	defer stop()

	syscall.Kill(syscall.Getpid(), syscall.SIGTERM)

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context not canceled by SIGTERM")
	}
}

func TestNotifyContext_Stop(t *testing.T) {
	ctx, stop := NotifyContext(context.Background())
	stop()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not canceled by stop")
	}
}
