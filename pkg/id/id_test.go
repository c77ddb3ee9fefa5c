package id

import (
	"sync"
	"testing"
)

func TestNext_StrictlyIncreasing(t *testing.T) {
	prev := Next()
	for range 100 {
		next := Next()
		if next.Compare(prev) <= 0 {
			t.Fatalf("Next() = %v after %v, want increasing", next, prev)
		}
		prev = next
	}
}

func TestNext_UniqueAcrossGoroutines(t *testing.T) {
	const workers, per = 8, 200
	var mu sync.Mutex
	seen := make(map[Id]bool, workers*per)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]Id, 0, per)
			for range per {
				local = append(local, Next())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, v := range local {
				if seen[v] {
					t.Errorf("duplicate id %v", v)
				}
				seen[v] = true
			}
		}()
	}
	wg.Wait()
	if len(seen) != workers*per {
		t.Errorf("got %d unique ids, want %d", len(seen), workers*per)
	}
}

func TestPath_Head(t *testing.T) {
	p := Path{3, 5, 8}
	head, tail, ok := p.Head()
	if !ok || head != 3 {
		t.Fatalf("Head() = %v, %v, want 3, true", head, ok)
	}
	if len(tail) != 2 || tail[0] != 5 {
		t.Errorf("tail = %v, want [#5 #8]", tail)
	}

	_, _, ok = Path(nil).Head()
	if ok {
		t.Error("Head() on empty path should report ok=false")
	}
}

func TestPath_CloneDoesNotAlias(t *testing.T) {
	p := Path{1, 2}
	c := p.Clone()
	c[0] = 9
	if p[0] != 1 {
		t.Errorf("Clone aliased original: %v", p)
	}
}

func TestPath_HasPrefix(t *testing.T) {
	tests := []struct {
		path, prefix Path
		want         bool
	}{
		{Path{1, 2, 3}, Path{1, 2}, true},
		{Path{1, 2, 3}, Path{}, true},
		{Path{1, 2}, Path{1, 2, 3}, false},
		{Path{1, 2, 3}, Path{2}, false},
	}
	for _, tt := range tests {
		if got := tt.path.HasPrefix(tt.prefix); got != tt.want {
			t.Errorf("%v.HasPrefix(%v) = %v, want %v", tt.path, tt.prefix, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	if got := (Path{1, 22}).String(); got != "[#1 #22]" {
		t.Errorf("String() = %q", got)
	}
}
