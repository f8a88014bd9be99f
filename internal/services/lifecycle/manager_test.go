package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestShutdownRunsHooksInReverseOrder(t *testing.T) {
	m := New(time.Second, 0, nil)

	var order []string
	m.Register("first", func(ctx context.Context) error {
		order = append(order, "first")
		return nil
	})
	m.Register("second", func(ctx context.Context) error {
		order = append(order, "second")
		return nil
	})

	if err := m.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown err=%v", err)
	}
	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Errorf("hook order = %v, want [second first]", order)
	}
}

func TestShutdownCollectsHookErrors(t *testing.T) {
	m := New(time.Second, 0, nil)

	boom := errors.New("boom")
	ran := false
	m.Register("broken", func(ctx context.Context) error { return boom })
	m.Register("fine", func(ctx context.Context) error {
		ran = true
		return nil
	})

	err := m.Shutdown(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("Shutdown err=%v, want wrapped %v", err, boom)
	}
	if !ran {
		t.Error("later hook failure must not skip remaining hooks")
	}
}

func TestRegisterIgnoresNilHook(t *testing.T) {
	m := New(time.Second, 0, nil)
	m.Register("nil", nil)

	if err := m.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown err=%v", err)
	}
}
