package gif

import (
	"bytes"
	"image/gif"
	"testing"

	"github.com/kifulab/kifu/game"
)

func TestEncodeStates(t *testing.T) {
	hasher := game.NewHasher(1337)
	pos, err := game.NewPosition(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	state, err := game.NewState(pos, game.Black, hasher)
	if err != nil {
		t.Fatal(err)
	}

	moves := []game.Play{
		game.NewPlay(game.Black, 2, 2),
		game.NewPlay(game.White, 1, 2),
		game.NewPass(game.Black),
	}
	states := []*game.State{state}
	for _, p := range moves {
		if state, err = state.Apply(p); err != nil {
			t.Fatal(err)
		}
		states = append(states, state)
	}

	var buf bytes.Buffer
	if err := EncodeStates(&buf, states, moves, 600, 600); err != nil {
		t.Fatal(err)
	}

	out, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decoding own output: %v", err)
	}
	if len(out.Image) != len(states) {
		t.Errorf("frames: got %d, want %d", len(out.Image), len(states))
	}
	b := out.Image[0].Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		t.Errorf("degenerate frame bounds %v", b)
	}
}

func TestEncoderLazySizing(t *testing.T) {
	enc := NewEncoder(400, 400)
	if enc.H != -1 || enc.W != -1 {
		t.Fatalf("dimensions fixed before the first frame: %d×%d", enc.H, enc.W)
	}

	hasher := game.NewHasher(1)
	pos, _ := game.NewPosition(9, 9)
	state, err := game.NewState(pos, game.Black, hasher)
	if err != nil {
		t.Fatal(err)
	}
	if err := enc.Encode(state, ""); err != nil {
		t.Fatal(err)
	}
	if enc.H <= 0 || enc.W <= 0 {
		t.Errorf("dimensions not derived from the first frame: %d×%d", enc.H, enc.W)
	}
	if enc.H > 400 || enc.W > 400 {
		t.Errorf("dimensions exceed the cap: %d×%d", enc.H, enc.W)
	}
}
