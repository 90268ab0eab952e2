package services

import (
	"context"
	"testing"
	"time"
)

func TestMemoryOTPStoreSetAndGet(t *testing.T) {
	store := NewMemoryOTPStore(time.Minute)
	defer store.Stop()
	ctx := context.Background()

	if err := store.Set(ctx, "user@example.com", "123456"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	code, err := store.Get(ctx, "user@example.com")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if code != "123456" {
		t.Errorf("got code %q, want %q", code, "123456")
	}
}

func TestMemoryOTPStoreOverwrite(t *testing.T) {
	store := NewMemoryOTPStore(time.Minute)
	defer store.Stop()
	ctx := context.Background()

	store.Set(ctx, "user@example.com", "111111")
	store.Set(ctx, "user@example.com", "222222")

	code, err := store.Get(ctx, "user@example.com")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if code != "222222" {
		t.Errorf("got code %q, want the most recently stored code", code)
	}
}

func TestMemoryOTPStoreMissingEmail(t *testing.T) {
	store := NewMemoryOTPStore(time.Minute)
	defer store.Stop()

	_, err := store.Get(context.Background(), "nobody@example.com")
	if err != ErrOTPNotFound {
		t.Errorf("got error %v, want ErrOTPNotFound", err)
	}
}

func TestMemoryOTPStoreExpiry(t *testing.T) {
	store := NewMemoryOTPStore(20 * time.Millisecond)
	defer store.Stop()
	ctx := context.Background()

	store.Set(ctx, "user@example.com", "123456")
	time.Sleep(60 * time.Millisecond)

	if _, err := store.Get(ctx, "user@example.com"); err != ErrOTPNotFound {
		t.Errorf("got error %v after TTL, want ErrOTPNotFound", err)
	}
}
