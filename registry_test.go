package pdf

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestRegistry_sequence(t *testing.T) {
	r := NewRegistry()
	for want := uint32(1); want <= 5; want++ {
		got, err := r.Next()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("got %d, want %d", got, want)
		}
	}
}

func TestRegistry_concurrent(t *testing.T) {
	const (
		workers = 16
		each    = 500
	)
	var (
		r    Registry
		mu   sync.Mutex
		seen = make(map[uint32]bool)
		wg   sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := make([]uint32, 0, each)
			for j := 0; j < each; j++ {
				n, err := r.Next()
				if err != nil {
					t.Error(err)
					return
				}
				got = append(got, n)
			}
			mu.Lock()
			defer mu.Unlock()
			for _, n := range got {
				if seen[n] {
					t.Errorf("number %d handed out twice", n)
				}
				seen[n] = true
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*each {
		t.Fatalf("got %d distinct numbers, want %d", len(seen), workers*each)
	}
	for n := uint32(1); n <= workers*each; n++ {
		if !seen[n] {
			t.Errorf("number %d never handed out", n)
		}
	}
}

func TestRegistry_exhausted(t *testing.T) {
	r := NewRegistry()
	r.last.Store(math.MaxUint32 - 1)

	n, err := r.Next()
	if err != nil || n != math.MaxUint32 {
		t.Fatalf("got %d, %v, want %d", n, err, uint32(math.MaxUint32))
	}
	for i := 0; i < 2; i++ {
		if _, err := r.Next(); !errors.Is(err, ErrIdentitySpaceExhausted) {
			t.Errorf("got error %v, want ErrIdentitySpaceExhausted", err)
		}
	}
}
