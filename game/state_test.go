package game

import "testing"

func mustState(t *testing.T, grid [][]Colour, first Colour) *State {
	t.Helper()
	s, err := NewState(mustPosition(t, grid), first, NewHasher(1))
	if err != nil {
		t.Fatalf("building state: %v", err)
	}
	return s
}

func TestNewState(t *testing.T) {
	empty, _ := NewPosition(19, 19)
	h := NewHasher(1)
	s, err := NewState(empty, Black, h)
	if err != nil {
		t.Fatal(err)
	}
	if s.ToMove() != Black {
		t.Errorf("Expected Black to move, got %v", s.ToMove())
	}
	if c := s.Captures(); c.Black != 0 || c.White != 0 {
		t.Errorf("Expected zero captures, got %+v", c)
	}
	if hist := s.History(); len(hist) != 1 || hist[0] != EmptyHash {
		t.Errorf("Expected history [EmptyHash], got %v", hist)
	}

	seeded := mustPosition(t, [][]Colour{
		{Black, None},
		{None, White},
	})
	s2, err := NewState(seeded, White, h)
	if err != nil {
		t.Fatal(err)
	}
	want := h.Update(EmptyHash, seeded.Stones()...)
	if s2.Hash() != want {
		t.Errorf("Expected initial hash %v, got %v", want, s2.Hash())
	}

	if _, err := NewState(empty, None, h); err == nil {
		t.Error("Expected an error for a None first player")
	}
}

var applyTests = []struct {
	board    [][]Colour
	play     Play
	board2   [][]Colour // nil if the call must fail
	captures Captures
	willErr  bool
}{
	// placing on an empty board
	{
		board: [][]Colour{
			{None, None, None},
			{None, None, None},
			{None, None, None},
		},
		play: NewPlay(Black, 1, 1),
		board2: [][]Colour{
			{None, None, None},
			{None, Black, None},
			{None, None, None},
		},
	},

	// basic capture
	// · O ·        · O ·
	// O X O   →    O · O
	// · · ·        · O ·
	{
		board: [][]Colour{
			{None, White, None},
			{White, Black, White},
			{None, None, None},
		},
		play: NewPlay(White, 1, 2),
		board2: [][]Colour{
			{None, White, None},
			{White, None, White},
			{None, White, None},
		},
		captures: Captures{White: 1},
	},

	// group capture
	// · O · ·      · O · ·
	// O X O ·      O · O ·
	// O X O ·  →   O · O ·
	// · · · ·      · O · ·
	{
		board: [][]Colour{
			{None, White, None, None},
			{White, Black, White, None},
			{White, Black, White, None},
			{None, None, None, None},
		},
		play: NewPlay(White, 1, 3),
		board2: [][]Colour{
			{None, White, None, None},
			{White, None, White, None},
			{White, None, White, None},
			{None, White, None, None},
		},
		captures: Captures{White: 2},
	},

	// capture at the edge
	// · X X ·      · X X ·
	// X O O ·  →   X · · X
	{
		board: [][]Colour{
			{None, Black, Black, None},
			{Black, White, White, None},
		},
		play: NewPlay(Black, 3, 1),
		board2: [][]Colour{
			{None, Black, Black, None},
			{Black, None, None, Black},
		},
		captures: Captures{Black: 2},
	},

	// suicide is mechanically resolved, not rejected: the played chain
	// is removed and the opponent credited
	// · X ·        · X ·
	// X · X   →    X · X
	// · X ·        · X ·
	{
		board: [][]Colour{
			{None, Black, None},
			{Black, None, Black},
			{None, Black, None},
		},
		play: NewPlay(White, 1, 1),
		board2: [][]Colour{
			{None, Black, None},
			{Black, None, Black},
			{None, Black, None},
		},
		captures: Captures{Black: 1},
	},

	// capture takes precedence over suicide: the played stone has no
	// liberty of its own until it takes the corner stone
	// X O ·        · O ·
	// · X ·   →    O X ·
	{
		board: [][]Colour{
			{Black, White, None},
			{None, Black, None},
		},
		play: NewPlay(White, 0, 1),
		board2: [][]Colour{
			{None, White, None},
			{White, Black, None},
		},
		captures: Captures{White: 1},
	},

	// out of board
	{
		board: [][]Colour{
			{None, None, None},
			{None, None, None},
			{None, None, None},
		},
		play:    NewPlay(Black, 3, 3),
		willErr: true,
	},

	// impossible colour
	{
		board: [][]Colour{
			{None, None, None},
			{None, None, None},
			{None, None, None},
		},
		play:    NewPlay(None, 0, 0),
		willErr: true,
	},
}

func TestStateApply(t *testing.T) {
	for i, at := range applyTests {
		first := at.play.Colour
		if !IsPlayer(first) {
			first = Black
		}
		s := mustState(t, at.board, first)
		before := s.Position().Grid()

		next, err := s.Apply(at.play)
		switch {
		case at.willErr && err == nil:
			t.Errorf("Test %d: expected an error for %v on\n%s", i, at.play, s.Position())
			continue
		case at.willErr:
			continue
		case err != nil:
			t.Errorf("Test %d: err %v", i, err)
			continue
		}

		want := mustPosition(t, at.board2)
		if !next.Position().Eq(want) {
			t.Errorf("Test %d: board mismatch after %v:\n%s\nwant:\n%s", i, at.play, next.Position(), want)
		}
		if next.Captures() != at.captures {
			t.Errorf("Test %d: captures = %+v, want %+v", i, next.Captures(), at.captures)
		}
		if next.ToMove() != Opponent(at.play.Colour) {
			t.Errorf("Test %d: expected turn to flip to %v", i, Opponent(at.play.Colour))
		}
		if len(next.History()) != len(s.History())+1 {
			t.Errorf("Test %d: expected history to grow by one", i)
		}

		// the prior snapshot must be untouched
		if !s.Position().Eq(mustPosition(t, before)) {
			t.Errorf("Test %d: Apply mutated the receiver", i)
		}
	}
}

func TestApplyPass(t *testing.T) {
	s := mustState(t, [][]Colour{
		{Black, None},
		{None, White},
	}, Black)

	next, err := s.Apply(NewPass(Black))
	if err != nil {
		t.Fatal(err)
	}
	if next.ToMove() != White {
		t.Errorf("Expected White to move after a Black pass, got %v", next.ToMove())
	}
	if !next.Position().Eq(s.Position()) {
		t.Error("Expected the position to survive a pass unchanged")
	}
	if len(next.History()) != len(s.History()) {
		t.Errorf("Expected history length %d after a pass, got %d", len(s.History()), len(next.History()))
	}
	if next.Hash() != s.Hash() {
		t.Error("Expected the hash to survive a pass unchanged")
	}
}

// Black at the corner, White closes in from both sides.
func TestCornerCapture(t *testing.T) {
	empty, _ := NewPosition(19, 19)
	s, err := NewState(empty, Black, NewHasher(1))
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range []Play{
		NewPlay(Black, 0, 0),
		NewPlay(White, 1, 0),
		NewPlay(White, 0, 1),
	} {
		if s, err = s.Apply(p); err != nil {
			t.Fatalf("applying %v: %v", p, err)
		}
	}

	if c, _ := s.Position().Get(0, 0); c != None {
		t.Errorf("Expected the corner stone captured, got %v", c)
	}
	if s.Captures().White != 1 {
		t.Errorf("Expected White credited with 1 capture, got %+v", s.Captures())
	}
}

// White surrounds (9, 9); Black throws in anyway.
func TestSuicideResolution(t *testing.T) {
	empty, _ := NewPosition(19, 19)
	s, err := NewState(empty, White, NewHasher(1))
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []Play{
		NewPlay(White, 9, 8),
		NewPlay(White, 8, 9),
		NewPlay(White, 10, 9),
		NewPlay(White, 9, 10),
	} {
		if s, err = s.Apply(p); err != nil {
			t.Fatalf("applying %v: %v", p, err)
		}
	}

	before := s.Hash()
	next, err := s.Apply(NewPlay(Black, 9, 9))
	if err != nil {
		t.Fatal(err)
	}
	if c, _ := next.Position().Get(9, 9); c != None {
		t.Errorf("Expected the suicide stone removed, got %v", c)
	}
	if next.Captures().White != 1 {
		t.Errorf("Expected White credited for the self-capture, got %+v", next.Captures())
	}
	if next.ToMove() != White {
		t.Errorf("Expected White to move, got %v", next.ToMove())
	}
	// stone in, stone out: the fingerprint cancels back
	if next.Hash() != before {
		t.Error("Expected a pure self-capture to restore the prior hash")
	}
}

func TestHashTracksBoard(t *testing.T) {
	// a capture's hash delta must equal hashing the resulting stones
	// from scratch
	s := mustState(t, [][]Colour{
		{None, White, None},
		{White, Black, White},
		{None, None, None},
	}, White)

	next, err := s.Apply(NewPlay(White, 1, 2))
	if err != nil {
		t.Fatal(err)
	}
	scratch := NewHasher(1)
	// replay the same keys in first-use order so the constants line up
	_ = scratch.Update(EmptyHash, s.Position().Stones()...)
	_ = scratch.Update(EmptyHash, Stone{Point{1, 2}, White}, Stone{Point{1, 1}, Black})
	want := scratch.Update(EmptyHash, next.Position().Stones()...)
	if next.Hash() != want {
		t.Errorf("Expected incremental hash %v to match from-scratch %v", next.Hash(), want)
	}
}
