package sgf

import (
	"fmt"

	"github.com/kifulab/kifu/game"
	"github.com/pkg/errors"
)

// IllegalMoveError reports the first move of a record rejected by the
// ruleset used for replay. MoveNumber is 1-based.
type IllegalMoveError struct {
	MoveNumber int
	Play       game.Play
	Reason     game.InvalidReason
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("move %d (%v) invalid: %s", e.MoveNumber, e.Play, e.Reason)
}

// Replay walks the main line of a record, validating every move with
// rules and applying it. It returns the state after every ply, the
// pre-move starting state first. On an illegal move the states up to
// the offending move are returned alongside an *IllegalMoveError.
//
// Setup properties (AB/AW/AE) are honoured before the first move as
// the initial position; setup mixed into a running game is not a
// replayable record and errors out.
func Replay(t *Tree, rules game.Rules, hasher *game.Hasher) ([]*game.State, error) {
	info := t.Info()
	line := t.MainLine()

	pos, err := game.NewPosition(info.Rows, info.Cols)
	if err != nil {
		return nil, err
	}

	// setup phase: consume nodes until the first B/W move
	i := 0
	for ; i < len(line); i++ {
		node := line[i]
		if node.Has("B") || node.Has("W") {
			break
		}
		if pos, err = applySetup(pos, node); err != nil {
			return nil, err
		}
	}

	first := game.Black
	if v, ok := t.Root.Value("PL"); ok && v == "W" {
		first = game.White
	} else if i < len(line) && line[i].Has("W") && !line[i].Has("B") {
		first = game.White
	}

	state, err := game.NewState(pos, first, hasher)
	if err != nil {
		return nil, err
	}
	states := []*game.State{state}

	moveNumber := 0
	for ; i < len(line); i++ {
		node := line[i]
		if node.Has("AB") || node.Has("AW") || node.Has("AE") {
			return states, errors.Errorf("setup properties after move %d are not supported", moveNumber)
		}
		play, ok, err := nodePlay(node, info)
		if err != nil {
			return states, err
		}
		if !ok {
			continue
		}
		moveNumber++

		if v := rules.ValidatePlay(state, play); !v.Valid {
			return states, &IllegalMoveError{MoveNumber: moveNumber, Play: play, Reason: v.Reason}
		}
		if state, err = state.Apply(play); err != nil {
			return states, errors.WithMessagef(err, "move %d", moveNumber)
		}
		states = append(states, state)
	}
	return states, nil
}

// MainLinePlays lists the moves of the principal variation in order,
// skipping setup and comment-only nodes.
func MainLinePlays(t *Tree) ([]game.Play, error) {
	info := t.Info()
	var plays []game.Play
	for _, node := range t.MainLine() {
		play, ok, err := nodePlay(node, info)
		if err != nil {
			return plays, err
		}
		if ok {
			plays = append(plays, play)
		}
	}
	return plays, nil
}

func nodePlay(node *Node, info GameInfo) (game.Play, bool, error) {
	colour := game.None
	var value string
	if v, ok := node.Value("B"); ok {
		colour, value = game.Black, v
	} else if v, ok := node.Value("W"); ok {
		colour, value = game.White, v
	} else {
		return game.Play{}, false, nil
	}

	pt, pass, err := ParseCoord(value, info.Cols, info.Rows)
	if err != nil {
		return game.Play{}, false, err
	}
	if pass {
		return game.NewPass(colour), true, nil
	}
	return game.NewPlay(colour, pt.X, pt.Y), true, nil
}

func applySetup(pos *game.Position, node *Node) (*game.Position, error) {
	for key, colour := range map[string]game.Colour{"AB": game.Black, "AW": game.White, "AE": game.None} {
		for _, v := range node.Props[key] {
			pt, pass, err := ParseCoord(v, pos.Cols(), pos.Rows())
			if err != nil {
				return nil, err
			}
			if pass {
				return nil, errors.Errorf("%s cannot hold a pass value", key)
			}
			if pos, err = pos.Set(pt.X, pt.Y, colour); err != nil {
				return nil, errors.WithMessagef(err, "setup %s[%s]", key, v)
			}
		}
	}
	return pos, nil
}
