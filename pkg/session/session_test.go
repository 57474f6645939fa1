package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"tableflip.dev/advcontrol/pkg/store"
)

// flakySlots fails Put for the named slot.
type flakySlots struct {
	*store.Memory
	failPut string
}

func (f *flakySlots) Put(ctx context.Context, key, value string) error {
	if key == f.failPut {
		return errors.New("disk full")
	}
	return f.Memory.Put(ctx, key, value)
}

var alice = User{ID: "u1", Email: "alice@example.test", Name: "Alice"}

func TestSaveRestoreClear(t *testing.T) {
	ctx := context.Background()
	s := NewStore(store.NewMemory())

	if got := s.Restore(ctx); got != nil {
		t.Fatalf("expected no session, got %+v", got)
	}
	if err := s.Save(ctx, Session{Token: "t", User: alice}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := s.Restore(ctx)
	if got == nil || got.Token != "t" || got.User != alice {
		t.Fatalf("expected restored session, got %+v", got)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := s.Restore(ctx); got != nil {
		t.Fatalf("expected no session after clear, got %+v", got)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear on empty store: %v", err)
	}
}

func TestRestoreMalformedUser(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	_ = mem.Put(ctx, TokenSlot, "t")
	_ = mem.Put(ctx, UserSlot, "{not json")

	if got := NewStore(mem).Restore(ctx); got != nil {
		t.Fatalf("expected malformed user to restore as absent, got %+v", got)
	}
}

func TestRestoreNullUser(t *testing.T) {
	for _, raw := range []string{"null", "{}", `{"email":"a@b.c"}`} {
		ctx := context.Background()
		mem := store.NewMemory()
		_ = mem.Put(ctx, TokenSlot, "t")
		_ = mem.Put(ctx, UserSlot, raw)

		if got := NewStore(mem).Restore(ctx); got != nil {
			t.Fatalf("user %s: expected absent session, got %+v", raw, got)
		}
	}
}

func TestRestoreTokenWithoutUser(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	_ = mem.Put(ctx, TokenSlot, "t")

	if got := NewStore(mem).Restore(ctx); got != nil {
		t.Fatalf("expected absent session, got %+v", got)
	}
}

func TestRestoreEmptyToken(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	_ = mem.Put(ctx, TokenSlot, "  ")
	_ = mem.Put(ctx, UserSlot, `{"id":"u1"}`)

	if got := NewStore(mem).Restore(ctx); got != nil {
		t.Fatalf("expected absent session, got %+v", got)
	}
}

func TestSaveRollsBackOnPartialFailure(t *testing.T) {
	ctx := context.Background()
	slots := &flakySlots{Memory: store.NewMemory(), failPut: UserSlot}
	s := NewStore(slots)

	if err := s.Save(ctx, Session{Token: "t", User: alice}); err == nil {
		t.Fatalf("expected save to fail")
	}
	if slots.Len() != 0 {
		t.Fatalf("expected both slots rolled back, %d remain", slots.Len())
	}
	if got := s.Restore(ctx); got != nil {
		t.Fatalf("expected no session after failed save, got %+v", got)
	}
}

func TestSaveRequiresToken(t *testing.T) {
	if err := NewStore(store.NewMemory()).Save(context.Background(), Session{User: alice}); err == nil {
		t.Fatalf("expected error for empty token")
	}
}

func TestSaveLastWriteWins(t *testing.T) {
	ctx := context.Background()
	s := NewStore(store.NewMemory())

	var wg sync.WaitGroup
	for _, tok := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func(tok string) {
			defer wg.Done()
			_ = s.Save(ctx, Session{Token: tok, User: User{ID: tok}})
		}(tok)
	}
	wg.Wait()

	got := s.Restore(ctx)
	if got == nil {
		t.Fatalf("expected a session")
	}
	if got.Token != got.User.ID {
		t.Fatalf("observed a mixed session: token %q user %q", got.Token, got.User.ID)
	}
}

func TestSaveUsesDiskStore(t *testing.T) {
	ctx := context.Background()
	disk, err := store.Load(dirConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := NewStore(disk).Save(ctx, Session{Token: "t", User: alice}); err != nil {
		t.Fatalf("save: %v", err)
	}

	// A fresh store over the same directory models an app restart.
	again, err := store.Load(dirConfig(disk.BasePath()))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got := NewStore(again).Restore(ctx)
	if got == nil || got.User != alice {
		t.Fatalf("expected session to survive restart, got %+v", got)
	}
}

type dirConfig string

func (d dirConfig) BasePath() string { return string(d) }
