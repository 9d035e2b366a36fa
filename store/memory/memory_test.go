package memory

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/T-Systems-MMS/yalog4ts/store"
)

func TestStore_SetGetRemove(t *testing.T) {
	s := NewStore()

	if _, err := s.Get("missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Set("k", "v1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, err := s.Get("k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v != "v1" {
		t.Fatalf("expected %q, got %q", "v1", v)
	}

	if err := s.Set("k", "v2"); err != nil {
		t.Fatalf("Set overwrite failed: %v", err)
	}
	v, _ = s.Get("k")
	if v != "v2" {
		t.Fatalf("expected overwrite to %q, got %q", "v2", v)
	}

	if err := s.Remove("k"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := s.Get("k"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
}

func TestStore_RemoveMissingKey(t *testing.T) {
	s := NewStore()
	if err := s.Remove("never-set"); err != nil {
		t.Fatalf("removing a missing key should not fail: %v", err)
	}
}

func TestStore_Len(t *testing.T) {
	s := NewStore()
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d keys", s.Len())
	}
	s.Set("a", "1")
	s.Set("b", "2")
	s.Set("a", "3")
	if s.Len() != 2 {
		t.Fatalf("expected 2 keys, got %d", s.Len())
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%4)
			for j := 0; j < 100; j++ {
				s.Set(key, "v")
				s.Get(key)
				if j%10 == 0 {
					s.Remove(key)
				}
			}
		}(i)
	}
	wg.Wait()
}
