package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	r, err := DialRedis(context.Background(), "redis://"+mr.Addr()+"/0")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r, mr
}

func TestRedisSlots(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t)

	if _, ok, err := r.Get(ctx, "token"); err != nil || ok {
		t.Fatalf("expected missing slot, got ok=%v err=%v", ok, err)
	}
	if err := r.Put(ctx, "token", "abc"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if got, err := mr.Get(DefaultRedisPrefix + "token"); err != nil || got != "abc" {
		t.Fatalf("expected prefixed key in redis, got %q err=%v", got, err)
	}
	if err := r.Erase(ctx, "token"); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if err := r.Erase(ctx, "token"); err != nil {
		t.Fatalf("erase missing: %v", err)
	}
}

func TestRedisPutAll(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t)

	if err := r.PutAll(ctx, map[string]string{"token": "abc", "user": `{"id":"1"}`}); err != nil {
		t.Fatalf("put all: %v", err)
	}
	for _, key := range []string{"token", "user"} {
		if !mr.Exists(DefaultRedisPrefix + key) {
			t.Fatalf("expected %s to be written", key)
		}
	}
}

func TestRedisGetSurfacesErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := NewRedis(client, "test:")
	defer r.Close()

	mr.SetError("READONLY")
	if _, _, err := r.Get(context.Background(), "token"); err == nil {
		t.Fatalf("expected error from failing server")
	}
}

func TestOpenSlots(t *testing.T) {
	ctx := context.Background()
	disk, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	slots, closeFn, err := OpenSlots(ctx, BackendDisk, "", disk)
	if err != nil || slots != Slots(disk) {
		t.Fatalf("expected disk slots, got %T err=%v", slots, err)
	}
	_ = closeFn()

	mr := miniredis.RunT(t)
	slots, closeFn, err = OpenSlots(ctx, BackendRedis, "redis://"+mr.Addr(), disk)
	if err != nil {
		t.Fatalf("open redis: %v", err)
	}
	defer closeFn()
	if _, ok := slots.(BatchSlots); !ok {
		t.Fatalf("expected redis slots to support batches, got %T", slots)
	}

	if _, _, err := OpenSlots(ctx, "keychain", "", disk); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
