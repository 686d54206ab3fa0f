package session

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreSaveAndValid(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Save(ctx, "token-1", time.Now().Add(24*time.Hour)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	ok, err := s.Valid(ctx, "token-1")
	if err != nil {
		t.Fatalf("Valid: %v", err)
	}
	if !ok {
		t.Fatal("expected token to be valid")
	}
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	s := NewMemoryStore()
	ok, err := s.Valid(context.Background(), "never-issued")
	if err != nil {
		t.Fatalf("Valid: %v", err)
	}
	if ok {
		t.Fatal("expected unknown token to be invalid")
	}
}

func TestMemoryStoreExpiryAfterTTL(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := issued
	s.now = func() time.Time { return clock }

	if err := s.Save(ctx, "token-ttl", issued.Add(24*time.Hour)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	clock = issued.Add(23 * time.Hour)
	if ok, _ := s.Valid(ctx, "token-ttl"); !ok {
		t.Fatal("token should still be valid before the TTL elapses")
	}

	clock = issued.Add(24*time.Hour + time.Second)
	if ok, _ := s.Valid(ctx, "token-ttl"); ok {
		t.Fatal("token should be rejected after its 24-hour TTL")
	}

	// The expired entry is dropped, not just hidden.
	clock = issued
	if ok, _ := s.Valid(ctx, "token-ttl"); ok {
		t.Fatal("expired token must not resurrect when the clock rewinds")
	}
}

func TestMemoryStoreRevokeIsIdempotent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Save(ctx, "token-r", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Revoke(ctx, "token-r"); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if ok, _ := s.Valid(ctx, "token-r"); ok {
		t.Fatal("revoked token still valid")
	}
	if err := s.Revoke(ctx, "token-r"); err != nil {
		t.Fatalf("second Revoke: %v", err)
	}
}
