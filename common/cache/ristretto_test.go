package cache

import (
	"testing"
	"time"
)

func TestGeneralCache_SetGet(t *testing.T) {
	c, err := NewGeneralCache(1024, time.Minute)
	if err != nil {
		t.Fatalf("NewGeneralCache: %v", err)
	}
	defer c.Close()

	if !c.Set("hand", []int{1, 2, 3}) {
		t.Fatalf("Set dropped the first write")
	}
	c.Wait()
	v, ok := c.Get("hand")
	if !ok {
		t.Fatalf("expected cached value")
	}
	if got := v.([]int); len(got) != 3 || got[2] != 3 {
		t.Fatalf("unexpected value %v", got)
	}

	c.Delete("hand")
	if _, ok := c.Get("hand"); ok {
		t.Fatalf("expected value to be deleted")
	}
	if s := c.Stats(); s.Hits != 1 || s.Misses != 1 {
		t.Fatalf("expected 1 hit and 1 miss, got %+v", s)
	}
}

func TestGeneralCache_InvalidCapacity(t *testing.T) {
	if _, err := NewGeneralCache(0, time.Minute); err == nil {
		t.Fatalf("expected error for zero capacity")
	}
}
