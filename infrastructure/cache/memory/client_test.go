package memory

import (
	"context"
	"testing"
	"time"
)

func newTestCache() *MemoryCache {
	return NewMemoryCache(time.Hour, time.Hour)
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get = %q, want %q", got, "value")
	}
}

func TestMemoryCache_MissingKey(t *testing.T) {
	cache := newTestCache()

	_, err := cache.Get(context.Background(), "missing")
	if err != ErrCacheMiss {
		t.Errorf("Get error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Expiration(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), 10*time.Millisecond); err != nil {
		t.Fatal(err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, err := cache.Get(ctx, "key"); err != ErrCacheMiss {
		t.Errorf("expired key should miss, got %v", err)
	}
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	cache := NewMemoryCache(10*time.Millisecond, time.Hour)
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatal(err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, err := cache.Get(ctx, "key"); err != nil {
		t.Errorf("zero-TTL key should not expire, got %v", err)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	_ = cache.Set(ctx, "key", []byte("value"), time.Hour)
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := cache.Get(ctx, "key"); err != ErrCacheMiss {
		t.Error("deleted key should miss")
	}

	// Deleting a missing key is not an error
	if err := cache.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete of missing key returned %v", err)
	}
}

func TestMemoryCache_ReturnsCopy(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	original := []byte("value")
	_ = cache.Set(ctx, "key", original, time.Hour)

	got, _ := cache.Get(ctx, "key")
	got[0] = 'X'

	again, _ := cache.Get(ctx, "key")
	if string(again) != "value" {
		t.Error("mutating a returned value must not affect the cached value")
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := newTestCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := cache.Get(ctx, "key"); err != context.Canceled {
		t.Errorf("Get with cancelled context = %v, want context.Canceled", err)
	}
	if err := cache.Set(ctx, "key", []byte("v"), time.Hour); err != context.Canceled {
		t.Errorf("Set with cancelled context = %v, want context.Canceled", err)
	}
}
