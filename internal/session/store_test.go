package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(rdb, time.Hour), mr
}

func TestSessionRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Create(ctx, "jti-1", 42); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	id, ok, err := store.UserID(ctx, "jti-1")
	if err != nil || !ok {
		t.Fatalf("expected live session, ok=%v err=%v", ok, err)
	}
	if id != 42 {
		t.Fatalf("expected user 42, got %d", id)
	}
}

func TestRevokedSessionIsGone(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Create(ctx, "jti-2", 7); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := store.Revoke(ctx, "jti-2"); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}

	if _, ok, _ := store.UserID(ctx, "jti-2"); ok {
		t.Fatal("revoked session must not resolve")
	}
}

func TestExpiredSessionIsGone(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Create(ctx, "jti-3", 9); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	mr.FastForward(2 * time.Hour)

	if _, ok, _ := store.UserID(ctx, "jti-3"); ok {
		t.Fatal("expired session must not resolve")
	}
}

func TestUnknownJTI(t *testing.T) {
	store, _ := newTestStore(t)

	if _, ok, err := store.UserID(context.Background(), "never-issued"); ok || err != nil {
		t.Fatalf("unknown jti: ok=%v err=%v", ok, err)
	}
}
