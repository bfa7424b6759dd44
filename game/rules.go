package game

import (
	"strings"

	"github.com/pkg/errors"
)

// InvalidReason classifies why a play was rejected.
type InvalidReason string

const (
	ReasonOccupied    InvalidReason = "occupied"
	ReasonSuicide     InvalidReason = "suicide"
	ReasonKo          InvalidReason = "ko"
	ReasonOutOfBounds InvalidReason = "out-of-bounds"
	ReasonOther       InvalidReason = "other"
)

// Validity is the soft result of a legality check. Moves a player might
// plausibly attempt never error out of ValidatePlay; they come back
// invalid with a reason a UI can present distinctly.
type Validity struct {
	Valid  bool
	Reason InvalidReason
}

func valid() Validity                  { return Validity{Valid: true} }
func invalid(r InvalidReason) Validity { return Validity{Reason: r} }

// Rules decides whether a candidate play is legal under one ruleset.
type Rules interface {
	Name() string
	ValidatePlay(s *State, p Play) Validity
}

type koScope int

const (
	koSimple koScope = iota
	koPositional
)

// ruleset is the shared validation skeleton. The three variants differ
// on exactly two axes: whether suicide is forbidden, and how far back
// the ko check reaches into the history.
type ruleset struct {
	name             string
	suicideForbidden bool
	ko               koScope
}

// Japanese rules: suicide illegal, simple ko.
var Japanese Rules = ruleset{name: "Japanese", suicideForbidden: true, ko: koSimple}

// Chinese rules: suicide illegal, positional superko.
var Chinese Rules = ruleset{name: "Chinese", suicideForbidden: true, ko: koPositional}

// Ing rules: suicide legal, positional superko.
var Ing Rules = ruleset{name: "Ing", suicideForbidden: false, ko: koPositional}

// RulesetByName resolves a ruleset from its (case-insensitive) name.
func RulesetByName(name string) (Rules, error) {
	switch strings.ToLower(name) {
	case "japanese":
		return Japanese, nil
	case "chinese":
		return Chinese, nil
	case "ing":
		return Ing, nil
	}
	return nil, errors.Errorf("unknown ruleset %q", name)
}

func (r ruleset) Name() string { return r.name }

// ValidatePlay checks a candidate play against s. The play is simulated
// with State.Apply, so validating a move costs about as much as
// committing it; boards are small enough that no caching is needed.
func (r ruleset) ValidatePlay(s *State, p Play) Validity {
	if p.IsPass() {
		return valid()
	}
	if !s.position.IsOnBoard(p.X, p.Y) {
		return invalid(ReasonOutOfBounds)
	}
	if c, _ := s.position.Get(p.X, p.Y); c != None {
		return invalid(ReasonOccupied)
	}

	next, err := s.Apply(p)
	if err != nil {
		return invalid(ReasonOther)
	}

	if r.suicideForbidden {
		// the played stone vanished during its own move: self-capture
		if c, _ := next.position.Get(p.X, p.Y); c != p.Colour {
			return invalid(ReasonSuicide)
		}
	}

	hist := next.history
	n := len(hist)
	switch r.ko {
	case koSimple:
		// immediate retake of the position from one round-trip ago
		if n >= 3 && hist[n-1] == hist[n-3] {
			return invalid(ReasonKo)
		}
	case koPositional:
		for i := n - 3; i >= 0; i-- {
			if hist[i] == hist[n-1] {
				return invalid(ReasonKo)
			}
		}
	}
	return valid()
}
