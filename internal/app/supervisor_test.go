package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestSuperviseRestartsAfterErrors(t *testing.T) {
	attempts := 0
	err := Supervise(context.Background(), "test", time.Millisecond, zap.NewNop(), func(context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("crash")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("Supervise returned error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestSuperviseRecoversPanic(t *testing.T) {
	attempts := 0
	err := Supervise(context.Background(), "test", time.Millisecond, zap.NewNop(), func(context.Context) error {
		attempts++
		if attempts == 1 {
			panic("boom")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("Supervise returned error: %v", err)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestSuperviseStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Supervise(ctx, "test", 10*time.Millisecond, zap.NewNop(), func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})
	}()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Supervise did not stop after cancel")
	}
}
