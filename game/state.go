package game

import "github.com/pkg/errors"

// Captures tallies the stones each player has taken off the board.
type Captures struct {
	Black, White int
}

// State is a full game snapshot: the board position, whose turn it is,
// capture tallies, and the Zobrist history of every position reached by
// a stone placement.
//
// A State is immutable. Apply returns the next State and leaves the
// receiver untouched, so a caller (an editor, a move tree) can keep any
// number of earlier snapshots alive.
type State struct {
	position *Position
	toMove   Colour
	captures Captures
	history  []Zobrist
	hasher   *Hasher
}

// NewState starts a game from an initial position with first to move.
// The history begins with the fingerprint of the initial stones.
func NewState(initial *Position, first Colour, hasher *Hasher) (*State, error) {
	if !IsPlayer(first) {
		return nil, errors.WithMessagef(ErrBadColour, "first to move %v", first)
	}
	return &State{
		position: initial,
		toMove:   first,
		history:  []Zobrist{hasher.Update(EmptyHash, initial.Stones()...)},
		hasher:   hasher,
	}, nil
}

// Position returns the current board position.
func (s *State) Position() *Position { return s.position }

// ToMove returns the player whose turn it is.
func (s *State) ToMove() Colour { return s.toMove }

// Captures returns the capture tallies.
func (s *State) Captures() Captures { return s.captures }

// Hash returns the fingerprint of the current position.
func (s *State) Hash() Zobrist { return s.history[len(s.history)-1] }

// History returns a copy of the position fingerprints recorded so far.
// Only stone placements extend it; passes leave it untouched, so its
// length counts placements, not plies.
func (s *State) History() []Zobrist {
	history := make([]Zobrist, len(s.history))
	copy(history, s.history)
	return history
}

func (s *State) clone() *State {
	history := make([]Zobrist, len(s.history), len(s.history)+1)
	copy(history, s.history)
	return &State{
		position: s.position,
		toMove:   s.toMove,
		captures: s.captures,
		history:  history,
		hasher:   s.hasher,
	}
}

// Apply plays a single move, resolving captures and suicide, and
// returns the next State.
//
// Apply never judges legality. Occupied points, ko and rule-dependent
// suicide bans are the concern of Rules, which reuse Apply as a pure
// simulation step; the only hard failure here is a play outside the
// board or with an impossible colour.
func (s *State) Apply(p Play) (*State, error) {
	if !IsPlayer(p.Colour) {
		return nil, errors.WithMessagef(ErrBadColour, "play %v", p)
	}

	next := s.clone()
	if p.IsPass() {
		next.toMove = Opponent(p.Colour)
		return next, nil
	}
	if !s.position.IsOnBoard(p.X, p.Y) {
		return nil, errors.WithMessagef(ErrOutsideBoard, "play %v", p)
	}

	pos, err := s.position.Set(p.X, p.Y, p.Colour)
	if err != nil {
		return nil, err
	}

	// Collect every adjacent opponent chain left without liberties.
	// A chain reachable through two neighbours lands in the list twice;
	// the tally keeps the double count while removal stays idempotent.
	var captured []Stone
	for _, d := range adjacents {
		a := p.Point.add(d)
		c, ok := pos.Get(a.X, a.Y)
		if !ok || c != Opponent(p.Colour) {
			continue
		}
		free, err := pos.HasLiberties(a.X, a.Y)
		if err != nil {
			return nil, err
		}
		if free {
			continue
		}
		chain, err := pos.Chain(a.X, a.Y)
		if err != nil {
			return nil, err
		}
		captured = append(captured, chain...)
	}

	var removed []Stone
	switch {
	case len(captured) > 0:
		removed = distinctStones(captured)
		pos = pos.RemoveStones(removed)
		next.captures = next.captures.credit(p.Colour, len(captured))
	default:
		// no captures: the played chain itself may be out of liberties
		free, err := pos.HasLiberties(p.X, p.Y)
		if err != nil {
			return nil, err
		}
		if !free {
			if removed, err = pos.Chain(p.X, p.Y); err != nil {
				return nil, err
			}
			pos = pos.RemoveStones(removed)
			next.captures = next.captures.credit(Opponent(p.Colour), len(removed))
		}
	}

	hash := s.hasher.Update(s.Hash(), Stone{Point: p.Point, Colour: p.Colour})
	hash = s.hasher.Update(hash, removed...)

	next.position = pos
	next.history = append(next.history, hash)
	next.toMove = Opponent(p.Colour)
	return next, nil
}

func (c Captures) credit(to Colour, n int) Captures {
	switch to {
	case Black:
		c.Black += n
	case White:
		c.White += n
	}
	return c
}

// distinctStones drops duplicate points, keeping first occurrences.
func distinctStones(stones []Stone) []Stone {
	seen := make(map[Point]struct{}, len(stones))
	var out []Stone
	for _, s := range stones {
		if _, ok := seen[s.Point]; ok {
			continue
		}
		seen[s.Point] = struct{}{}
		out = append(out, s)
	}
	return out
}
