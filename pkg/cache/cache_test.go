package cache

import (
	"sort"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	c := New[string, int]()
	if c == nil {
		t.Fatal("New() returned nil")
	}
	if c.entries == nil {
		t.Error("entries map not initialized")
	}
	if c.Size() != 0 {
		t.Errorf("expected size 0, got %d", c.Size())
	}
}

func TestSetGet(t *testing.T) {
	c := New[string, int]()
	_, ok := c.Get("nonexistent")
	if ok {
		t.Error("expected ok=false for non-existent key")
	}

	c.Set("key1", 100)
	val, ok := c.Get("key1")
	if !ok || val != 100 {
		t.Errorf("expected 100, got %d (ok=%v)", val, ok)
	}

	c.Set("key1", 200)
	val, _ = c.Get("key1")
	if val != 200 {
		t.Errorf("expected value 200 after overwrite, got %d", val)
	}
	if c.Size() != 1 {
		t.Errorf("expected size 1 after overwrite, got %d", c.Size())
	}
}

func TestDelete(t *testing.T) {
	c := New[string, int]()

	c.Delete("nonexistent")
	c.Set("key1", 100)
	c.Set("key2", 200)

	c.Delete("key1")
	if c.Size() != 1 {
		t.Errorf("expected size 1 after delete, got %d", c.Size())
	}

	if _, ok := c.Get("key1"); ok {
		t.Error("expected key1 to be deleted")
	}

	val, ok := c.Get("key2")
	if !ok || val != 200 {
		t.Error("expected key2 to still exist with value 200")
	}
}

func TestGetOrSet(t *testing.T) {
	c := New[string, int]()

	calls := 0
	create := func() int {
		calls++
		return 42
	}

	if got := c.GetOrSet("a", create); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := c.GetOrSet("a", func() int { return 7 }); got != 42 {
		t.Errorf("expected existing value 42, got %d", got)
	}
	if calls != 1 {
		t.Errorf("expected create to run once, ran %d times", calls)
	}
}

func TestGetOrSet_Concurrent(t *testing.T) {
	c := New[string, *int64]()
	var created atomic.Int64
	var wg sync.WaitGroup

	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.GetOrSet("shared", func() *int64 {
				created.Add(1)
				return new(int64)
			})
		}()
	}
	wg.Wait()

	if created.Load() != 1 {
		t.Errorf("expected a single value to be created, got %d", created.Load())
	}
}

func TestDeleteFunc(t *testing.T) {
	c := New[string, int]()
	c.Set("keep", 1)
	c.Set("drop-1", 10)
	c.Set("drop-2", 20)

	removed := c.DeleteFunc(func(_ string, v int) bool { return v >= 10 })
	if removed != 2 {
		t.Errorf("expected 2 removed, got %d", removed)
	}
	if c.Size() != 1 {
		t.Errorf("expected size 1, got %d", c.Size())
	}
	if _, ok := c.Get("keep"); !ok {
		t.Error("expected keep to survive")
	}
}

func TestKeys(t *testing.T) {
	c := New[string, int]()

	if keys := c.Keys(); len(keys) != 0 {
		t.Errorf("expected 0 keys, got %d", len(keys))
	}

	c.Set("key1", 100)
	c.Set("key2", 200)
	c.Set("key3", 300)

	keys := c.Keys()
	sort.Strings(keys)
	want := []string{"key1", "key2", "key3"}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("expected key %s, got %s", want[i], keys[i])
		}
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New[int, int]()
	var wg sync.WaitGroup
	numGoroutines := 50
	numOperations := 200

	for i := range numGoroutines {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				key := id*numOperations + j
				c.Set(key, key)
				c.Get(key)
				_ = c.Keys()
			}
		}(i)
	}
	wg.Wait()

	expectedSize := numGoroutines * numOperations
	if c.Size() != expectedSize {
		t.Errorf("expected size %d after concurrent writes, got %d", expectedSize, c.Size())
	}

	removed := c.DeleteFunc(func(int, int) bool { return true })
	if removed != expectedSize || c.Size() != 0 {
		t.Errorf("expected everything removed, removed %d size %d", removed, c.Size())
	}
}
