package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("NewSQLiteCache returned error: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestSQLiteCache_SetAndGet(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	if err := client.Set(ctx, "page:render:index", []byte("<h1>Home</h1>"), time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := client.Get(ctx, "page:render:index")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "<h1>Home</h1>" {
		t.Errorf("Get = %q", got)
	}
}

func TestSQLiteCache_MissingKey(t *testing.T) {
	client := newTestClient(t)

	_, err := client.Get(context.Background(), "missing")
	if err != ErrCacheMiss {
		t.Errorf("Get error = %v, want ErrCacheMiss", err)
	}
}

func TestSQLiteCache_ExpiredKeyMisses(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	if err := client.Set(ctx, "key", []byte("value"), time.Second); err != nil {
		t.Fatal(err)
	}

	// Backdate the expiry directly rather than sleeping
	if _, err := client.db.Exec("UPDATE rendered_cache SET expiry = ? WHERE key = ?", time.Now().Unix()-10, "key"); err != nil {
		t.Fatal(err)
	}

	if _, err := client.Get(ctx, "key"); err != ErrCacheMiss {
		t.Errorf("expired key should miss, got %v", err)
	}
}

func TestSQLiteCache_ZeroTTLNeverExpires(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	if err := client.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatal(err)
	}

	if _, err := client.Get(ctx, "key"); err != nil {
		t.Errorf("zero-TTL key should not expire, got %v", err)
	}
}

func TestSQLiteCache_Overwrite(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_ = client.Set(ctx, "key", []byte("old"), time.Hour)
	_ = client.Set(ctx, "key", []byte("new"), time.Hour)

	got, err := client.Get(ctx, "key")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("Get = %q, want overwritten value", got)
	}
}

func TestSQLiteCache_Delete(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_ = client.Set(ctx, "key", []byte("value"), time.Hour)
	if err := client.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := client.Get(ctx, "key"); err != ErrCacheMiss {
		t.Error("deleted key should miss")
	}
}

func TestSQLiteCache_EmptyKeyRejected(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	if _, err := client.Get(ctx, ""); err == nil {
		t.Error("Get with empty key should error")
	}
	if err := client.Set(ctx, "", []byte("v"), time.Hour); err == nil {
		t.Error("Set with empty key should error")
	}
}

func TestSQLiteCache_KeyWithQuotes(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	key := `page:render:o'reilly"-- DROP TABLE rendered_cache;`
	if err := client.Set(ctx, key, []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set with quoted key returned error: %v", err)
	}

	got, err := client.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get with quoted key returned error: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get = %q", got)
	}
}

func TestSQLiteCache_PersistsAcrossClients(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.db")
	ctx := context.Background()

	first, err := NewSQLiteCache(path)
	if err != nil {
		t.Fatal(err)
	}
	_ = first.Set(ctx, "key", []byte("persisted"), time.Hour)
	_ = first.Close()

	second, err := NewSQLiteCache(path)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()

	got, err := second.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get after reopen returned error: %v", err)
	}
	if string(got) != "persisted" {
		t.Errorf("Get = %q", got)
	}
}
