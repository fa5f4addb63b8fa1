package cache

import (
	"strings"
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, found := c.Get("k")
	if !found || string(got) != "v" {
		t.Errorf("expected v, got %q (found=%v)", got, found)
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("absent"); found {
		t.Error("expected miss for absent key")
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	_ = c.Set("k", []byte("v"), time.Minute)

	if err := c.Delete("k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected key removed")
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	_ = c.Set("a", []byte("1"), time.Minute)
	_ = c.Set("b", []byte("2"), time.Minute)

	if err := c.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("expected cache emptied")
	}
}

func TestKey_StableAndNamespaced(t *testing.T) {
	a := Key("The fox jumps")
	b := Key("The fox jumps")
	c := Key("The dog sleeps")

	if a != b {
		t.Error("expected identical text to produce identical keys")
	}
	if a == c {
		t.Error("expected different text to produce different keys")
	}
	if !strings.HasPrefix(a, "glossa:v1:") {
		t.Errorf("expected namespaced key, got %q", a)
	}
}
