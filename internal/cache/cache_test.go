package cache

import (
	"path/filepath"
	"testing"
)

func TestOpenCloseRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "badger")
	c, err := Open(dir, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	if _, ok := c.GetFeet(FeetKey(1, "-===")); ok {
		t.Error("GetFeet on an empty cache should report a miss")
	}

	c.PutFeet(FeetKey(1, "-==="), "مفاعیلن")
	value, ok := c.GetFeet(FeetKey(1, "-==="))
	if !ok {
		t.Fatal("GetFeet should find the value just stored")
	}
	if value != "مفاعیلن" {
		t.Errorf("GetFeet = %q, want %q", value, "مفاعیلن")
	}
}

func TestFeetKeyIsStableAndDistinguishesInputs(t *testing.T) {
	if FeetKey(1, "-===") == FeetKey(2, "-===") {
		t.Error("FeetKey should distinguish different meter ids")
	}
	if FeetKey(1, "-===") == FeetKey(1, "=-==") {
		t.Error("FeetKey should distinguish different codes")
	}
	if FeetKey(1, "-===") != FeetKey(1, "-===") {
		t.Error("FeetKey should be deterministic for the same inputs")
	}
}

func TestNilCacheIsSafeToUse(t *testing.T) {
	var c *Cache
	if _, ok := c.GetFeet("anything"); ok {
		t.Error("GetFeet on a nil *Cache should report a miss, not panic")
	}
	c.PutFeet("anything", "value") // must not panic
	if err := c.Close(); err != nil {
		t.Errorf("Close on a nil *Cache should be a no-op, got %v", err)
	}
}
