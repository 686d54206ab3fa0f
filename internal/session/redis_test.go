package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	store, err := NewRedisStore("redis://" + s.Addr())
	if err != nil {
		t.Fatalf("failed to create redis store: %v", err)
	}
	return store, s
}

func TestNewRedisStore(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	store, err := NewRedisStore("redis://" + s.Addr())
	if err != nil {
		t.Fatalf("NewRedisStore failed: %v", err)
	}
	defer store.Close()

	if err := store.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestRedisSaveAndValid(t *testing.T) {
	store, s := setupTestRedis(t)
	defer store.Close()
	defer s.Close()

	ctx := context.Background()
	if err := store.Save(ctx, "token-1", time.Now().Add(24*time.Hour)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	ok, err := store.Valid(ctx, "token-1")
	if err != nil {
		t.Fatalf("Valid failed: %v", err)
	}
	if !ok {
		t.Fatal("expected saved token to be valid")
	}
}

func TestRedisTokenExpires(t *testing.T) {
	store, s := setupTestRedis(t)
	defer store.Close()
	defer s.Close()

	ctx := context.Background()
	if err := store.Save(ctx, "token-ttl", time.Now().Add(time.Second)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	s.FastForward(2 * time.Second)

	ok, err := store.Valid(ctx, "token-ttl")
	if err != nil {
		t.Fatalf("Valid failed: %v", err)
	}
	if ok {
		t.Fatal("expected token to expire after TTL")
	}
}

func TestRedisSaveRejectsPastExpiry(t *testing.T) {
	store, s := setupTestRedis(t)
	defer store.Close()
	defer s.Close()

	if err := store.Save(context.Background(), "token-past", time.Now().Add(-time.Minute)); err == nil {
		t.Fatal("expected error saving an already-expired session")
	}
}

func TestRedisRevoke(t *testing.T) {
	store, s := setupTestRedis(t)
	defer store.Close()
	defer s.Close()

	ctx := context.Background()
	if err := store.Save(ctx, "token-r", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Revoke(ctx, "token-r"); err != nil {
		t.Fatalf("Revoke failed: %v", err)
	}
	if ok, _ := store.Valid(ctx, "token-r"); ok {
		t.Fatal("revoked token still valid")
	}

	// Revoking again should not error.
	if err := store.Revoke(ctx, "token-r"); err != nil {
		t.Fatalf("second Revoke failed: %v", err)
	}
}
