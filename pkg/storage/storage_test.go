package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/Aswin-K5/nutriview/pkg/storage"
)

// withStores runs a test against both KeyValue implementations so the
// in-memory store used elsewhere in tests cannot drift from SQLite.
func withStores(t *testing.T, fn func(t *testing.T, kv storage.KeyValue)) {
	t.Run("sqlite", func(t *testing.T) {
		kv, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
		if err != nil {
			t.Fatalf("storage.Open: %v", err)
		}
		t.Cleanup(func() {
			if err := kv.Close(); err != nil {
				t.Errorf("Close: %v", err)
			}
		})
		fn(t, kv)
	})
	t.Run("memory", func(t *testing.T) {
		fn(t, storage.NewMemory())
	})
}

func TestSetGetRoundTrip(t *testing.T) {
	withStores(t, func(t *testing.T, kv storage.KeyValue) {
		if err := kv.Set("nutriview.token", "abc123"); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, ok := kv.Get("nutriview.token")
		if !ok || got != "abc123" {
			t.Fatalf("Get = (%q, %v), want (%q, true)", got, ok, "abc123")
		}
	})
}

func TestSetOverwrites(t *testing.T) {
	withStores(t, func(t *testing.T, kv storage.KeyValue) {
		if err := kv.Set("k", "first"); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := kv.Set("k", "second"); err != nil {
			t.Fatalf("Set overwrite: %v", err)
		}
		if got, _ := kv.Get("k"); got != "second" {
			t.Fatalf("Get after overwrite = %q, want %q", got, "second")
		}
	})
}

func TestGetAbsent(t *testing.T) {
	withStores(t, func(t *testing.T, kv storage.KeyValue) {
		if v, ok := kv.Get("missing"); ok || v != "" {
			t.Fatalf("Get(missing) = (%q, %v), want empty and false", v, ok)
		}
	})
}

func TestDeleteIdempotent(t *testing.T) {
	withStores(t, func(t *testing.T, kv storage.KeyValue) {
		if err := kv.Set("k", "v"); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := kv.Delete("k"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, ok := kv.Get("k"); ok {
			t.Fatalf("key still present after delete")
		}
		// A second delete of the same key must not error.
		if err := kv.Delete("k"); err != nil {
			t.Fatalf("Delete absent key: %v", err)
		}
	})
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	kv, err := storage.Open(path)
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	if err := kv.Set("nutriview.user", `{"id":1}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := storage.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	if got, ok := reopened.Get("nutriview.user"); !ok || got != `{"id":1}` {
		t.Fatalf("value lost across reopen: got (%q, %v)", got, ok)
	}
}
