package syncs

import (
	"sync/atomic"
	"testing"
)

func TestMap(t *testing.T) {
	sem := NewSemaphore(2)
	var running, peak atomic.Int64
	inputs := []int{1, 2, 3, 4, 5, 6, 7, 8}
	results := Map(sem, inputs, func(i int) int {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		defer running.Add(-1)
		return i * i
	})
	for i, input := range inputs {
		if results[i] != input*input {
			t.Fatalf("got %d at %d", results[i], i)
		}
	}
	if peak.Load() > 2 {
		t.Fatalf("got %d", peak.Load())
	}
}

func TestZeroSemaphore(t *testing.T) {
	if cap(NewSemaphore(0)) != 1 {
		t.Fatal()
	}
}
