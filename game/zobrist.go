package game

import (
	"math/rand"
	"sync"
)

// Zobrist is an incremental fingerprint of the set of stones on a board.
// https://en.wikipedia.org/wiki/Zobrist_hashing
//
// Two positions holding the same stones hash identically no matter the
// order the stones were added, and toggling the same stone twice cancels
// out. That is what lets State treat "place a stone" and "remove the
// captured chain" as pure XOR deltas instead of rehashing the board.
type Zobrist uint64

// EmptyHash is the fingerprint of a board with no stones.
const EmptyHash Zobrist = 0

type zkey struct {
	x, y   int
	colour Colour
}

// Hasher owns the table of per-(x, y, colour) random constants behind
// Zobrist fingerprints. Constants are drawn lazily from a seeded source
// on first use of a key and cached, so hashes are stable for the life
// of the Hasher. The table is write-once-per-key behind a mutex, which
// makes one Hasher shareable across goroutines.
//
// Hashes from two Hashers, or from the same seed with a different
// first-use order, are not comparable. Persisting hashes across
// processes would need a fixed, versioned constant table instead.
type Hasher struct {
	mu    sync.Mutex
	rng   *rand.Rand
	table map[zkey]uint64
}

// NewHasher creates a Hasher drawing its constants from seed.
func NewHasher(seed int64) *Hasher {
	return &Hasher{
		rng:   rand.New(rand.NewSource(seed)),
		table: make(map[zkey]uint64),
	}
}

func (h *Hasher) constant(k zkey) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if v, ok := h.table[k]; ok {
		return v
	}
	v := h.rng.Uint64()
	h.table[k] = v
	return v
}

// Update XORs the constant for each given stone into hash. Applying the
// same stone twice returns the original hash, and stone order does not
// matter.
func (h *Hasher) Update(hash Zobrist, stones ...Stone) Zobrist {
	for _, s := range stones {
		hash ^= Zobrist(h.constant(zkey{s.X, s.Y, s.Colour}))
	}
	return hash
}
