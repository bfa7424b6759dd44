package game

import "testing"

func TestHashInvolution(t *testing.T) {
	h := NewHasher(1)
	stones := []Stone{
		{Point{0, 0}, Black},
		{Point{3, 16}, White},
		{Point{18, 18}, Black},
	}
	for _, s := range stones {
		once := h.Update(EmptyHash, s)
		if once == EmptyHash {
			t.Errorf("Expected %v to change the hash", s)
		}
		if twice := h.Update(once, s); twice != EmptyHash {
			t.Errorf("Expected toggling %v twice to cancel, got %v", s, twice)
		}
	}
}

func TestHashOrderIndependence(t *testing.T) {
	h := NewHasher(42)
	stones := []Stone{
		{Point{1, 1}, Black},
		{Point{2, 1}, White},
		{Point{5, 9}, Black},
		{Point{9, 5}, White},
	}

	all := h.Update(EmptyHash, stones...)

	oneAtATime := EmptyHash
	for _, s := range stones {
		oneAtATime = h.Update(oneAtATime, s)
	}
	if all != oneAtATime {
		t.Error("Expected bulk and incremental hashing to agree")
	}

	reversed := EmptyHash
	for i := len(stones) - 1; i >= 0; i-- {
		reversed = h.Update(reversed, stones[i])
	}
	if all != reversed {
		t.Error("Expected stone order not to matter")
	}
}

func TestHashColourAndPointMatter(t *testing.T) {
	h := NewHasher(7)
	black := h.Update(EmptyHash, Stone{Point{4, 4}, Black})
	white := h.Update(EmptyHash, Stone{Point{4, 4}, White})
	if black == white {
		t.Error("Expected different colours at a point to hash differently")
	}
	moved := h.Update(EmptyHash, Stone{Point{4, 5}, Black})
	if black == moved {
		t.Error("Expected different points to hash differently")
	}
	transposed := h.Update(EmptyHash, Stone{Point{5, 4}, Black})
	if moved == transposed {
		t.Error("Expected (x, y) and (y, x) to hash differently")
	}
}

func TestHasherDeterminism(t *testing.T) {
	// same seed, same first-use order: identical fingerprints
	a, b := NewHasher(99), NewHasher(99)
	stones := []Stone{
		{Point{0, 0}, Black},
		{Point{1, 0}, White},
		{Point{0, 1}, Black},
	}
	if a.Update(EmptyHash, stones...) != b.Update(EmptyHash, stones...) {
		t.Error("Expected identically seeded hashers to agree")
	}

	// repeated lookups of a cached key stay stable
	s := Stone{Point{2, 2}, White}
	first := a.Update(EmptyHash, s)
	for i := 0; i < 10; i++ {
		if a.Update(EmptyHash, s) != first {
			t.Fatal("Expected cached constants to be stable")
		}
	}
}
