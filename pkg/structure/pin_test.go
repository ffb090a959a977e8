package structure

import "testing"

func TestPinAllocator(t *testing.T) {
	t.Run("SequentialFromZero", func(t *testing.T) {
		alloc := NewPinAllocator()
		for i := 0; i < 5; i++ {
			p := alloc.Allocate()
			if p.ID() != i {
				t.Errorf("pin %d: got ID %d", i, p.ID())
			}
		}
		if alloc.Count() != 5 {
			t.Errorf("count: got %d, want 5", alloc.Count())
		}
	})

	t.Run("AllocateN", func(t *testing.T) {
		alloc := NewPinAllocator()
		pins := alloc.AllocateN(4)
		if len(pins) != 4 {
			t.Fatalf("got %d pins, want 4", len(pins))
		}
		for i, p := range pins {
			if p.ID() != i {
				t.Errorf("pin %d: got ID %d", i, p.ID())
			}
		}
	})

	t.Run("ResetIsolatesBuilds", func(t *testing.T) {
		alloc := NewPinAllocator()
		first := alloc.AllocateN(3)
		alloc.Reset()
		second := alloc.AllocateN(3)
		for i := range first {
			if first[i].ID() != second[i].ID() {
				t.Errorf("after reset, build %d: IDs %d vs %d", i, first[i].ID(), second[i].ID())
			}
			if first[i] == second[i] {
				t.Errorf("pin %d: same object across builds", i)
			}
		}
	})

	t.Run("NoResetKeepsIncreasing", func(t *testing.T) {
		alloc := NewPinAllocator()
		first := alloc.AllocateN(3)
		second := alloc.AllocateN(3)
		if second[0].ID() <= first[2].ID() {
			t.Errorf("second build starts at %d, first ended at %d", second[0].ID(), first[2].ID())
		}
		seen := make(map[int]bool)
		for _, p := range append(first, second...) {
			if seen[p.ID()] {
				t.Errorf("duplicate pin ID %d", p.ID())
			}
			seen[p.ID()] = true
		}
	})
}
