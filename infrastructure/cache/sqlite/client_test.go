package sqlite

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestCache(t *testing.T) *Client {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cache.db")
	cache, err := NewSQLiteCache(path)
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}

	t.Cleanup(func() {
		cache.Close()
	})

	return cache
}

func TestNewSQLiteCache(t *testing.T) {
	cache := newTestCache(t)

	if cache == nil {
		t.Fatal("NewSQLiteCache returned nil")
	}
}

func TestSQLiteCache_SetAndGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	key := "metadata:https://example.com/news/k1002.html"
	value := []byte(`{"title":"速報タイトル"}`)

	if err := cache.Set(ctx, key, value, time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !bytes.Equal(got, value) {
		t.Errorf("Get = %q, want %q", got, value)
	}
}

func TestSQLiteCache_GetMissingKey(t *testing.T) {
	cache := newTestCache(t)

	if _, err := cache.Get(context.Background(), "absent"); err == nil {
		t.Error("Get should return error for a missing key")
	}
}

func TestSQLiteCache_ExpiredEntryReadsAsMissing(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	// A negative TTL stores an already-expired row; reads must treat it
	// as missing even before the sweep removes it
	if err := cache.Set(ctx, "stale", []byte("v"), -time.Second); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	if _, err := cache.Get(ctx, "stale"); err == nil {
		t.Error("Get should return error for an expired entry")
	}
}

func TestSQLiteCache_SetReplacesExistingKey(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "k", []byte("first"), time.Hour); err != nil {
		t.Fatalf("First set failed: %v", err)
	}
	if err := cache.Set(ctx, "k", []byte("second"), time.Hour); err != nil {
		t.Fatalf("Second set failed: %v", err)
	}

	got, err := cache.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Get = %q, want replaced value", got)
	}
}

func TestSQLiteCache_Delete(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "k", []byte("v"), time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := cache.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := cache.Get(ctx, "k"); err == nil {
		t.Error("Get should return error after delete")
	}
}

func TestSQLiteCache_DeleteMissingKey(t *testing.T) {
	cache := newTestCache(t)

	if err := cache.Delete(context.Background(), "absent"); err != nil {
		t.Errorf("Delete of missing key returned error: %v", err)
	}
}

func TestSQLiteCache_EmptyKeyRejected(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if _, err := cache.Get(ctx, ""); err == nil {
		t.Error("Get should reject an empty key")
	}
	if err := cache.Set(ctx, "", []byte("v"), time.Hour); err == nil {
		t.Error("Set should reject an empty key")
	}
	if err := cache.Delete(ctx, ""); err == nil {
		t.Error("Delete should reject an empty key")
	}
}

func TestSQLiteCache_EmptyValueRejected(t *testing.T) {
	cache := newTestCache(t)

	if err := cache.Set(context.Background(), "k", nil, time.Hour); err == nil {
		t.Error("Set should reject an empty value")
	}
}

func TestSQLiteCache_BinaryValueRoundTrip(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	value := make([]byte, 256)
	for i := range value {
		value[i] = byte(i)
	}

	if err := cache.Set(ctx, "binary", value, time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, "binary")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !bytes.Equal(got, value) {
		t.Error("Binary value was not preserved")
	}
}

func TestSQLiteCache_KeyIntegrity(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	keys := []string{
		"key'; DROP TABLE cache; --",
		"key' OR '1'='1",
		"key with spaces",
		"key\nwith\nnewlines",
		"キー🔥",
		"thumbnailColor:https://example.com/a?b=c&d=e",
		strings.Repeat("k", 1000),
	}

	for _, key := range keys {
		if err := cache.Set(ctx, key, []byte("v"), time.Hour); err != nil {
			t.Errorf("Set(%q) returned error: %v", key, err)
			continue
		}

		got, err := cache.Get(ctx, key)
		if err != nil {
			t.Errorf("Get(%q) returned error: %v", key, err)
			continue
		}
		if string(got) != "v" {
			t.Errorf("Get(%q) = %q, want %q", key, got, "v")
		}
	}

	// The table must have survived every key above
	if err := cache.Set(ctx, "after", []byte("v"), time.Hour); err != nil {
		t.Errorf("Cache broken after hostile keys: %v", err)
	}
}

func TestSQLiteCache_Clear(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "a", []byte("1"), time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := cache.Set(ctx, "b", []byte("2"), time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	if err := cache.Clear(ctx); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}

	if _, err := cache.Get(ctx, "a"); err == nil {
		t.Error("Get should return error after clear")
	}
}

func TestSQLiteCache_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	first, err := NewSQLiteCache(path)
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	if err := first.Set(ctx, "k", []byte("persisted"), time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	second, err := NewSQLiteCache(path)
	if err != nil {
		t.Fatalf("Failed to reopen cache: %v", err)
	}
	defer second.Close()

	got, err := second.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get after reopen returned error: %v", err)
	}
	if string(got) != "persisted" {
		t.Errorf("Get = %q, want the value from the first process", got)
	}
}

func TestSQLiteCache_Sweep(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "stale", []byte("v"), -time.Second); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := cache.Set(ctx, "fresh", []byte("v"), time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	cache.sweep()

	stats, err := cache.Stats()
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats["total_entries"] != 1 {
		t.Errorf("total_entries = %v, want 1 after sweep", stats["total_entries"])
	}
	if stats["expired_entries"] != 0 {
		t.Errorf("expired_entries = %v, want 0 after sweep", stats["expired_entries"])
	}
}

func TestSQLiteCache_Stats(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "k", []byte("v"), time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	stats, err := cache.Stats()
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}

	if stats["total_entries"] != 1 {
		t.Errorf("total_entries = %v, want 1", stats["total_entries"])
	}
	if _, ok := stats["file_path"]; !ok {
		t.Error("Stats missing file_path")
	}
}

func TestSQLiteCache_DefaultPath(t *testing.T) {
	// An empty path falls back to cache.db in the working directory
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	cache, err := NewSQLiteCache("")
	if err != nil {
		t.Fatalf("NewSQLiteCache returned error: %v", err)
	}
	defer cache.Close()

	if cache.filePath != "cache.db" {
		t.Errorf("filePath = %q, want cache.db", cache.filePath)
	}
}
