// Package gtp speaks the Go Text Protocol (version 2) for driving a
// game from a controller such as gogui or a tournament harness.
package gtp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/kifulab/kifu/game"
)

// Engine holds a live game behind a GTP command loop. Every applied
// play keeps its predecessor snapshot around, which is what makes undo
// a plain pop.
type Engine struct {
	state     *game.State
	snapshots []*game.State
	rules     game.Rules
	hasher    *game.Hasher

	rows, cols int
	komi       float64

	known map[string]Command

	ch  chan string
	ret chan string

	name, version string
}

// New creates an engine on an empty 19×19 board. A nil rules defaults
// to Japanese; a nil known defaults to StandardLib.
func New(rules game.Rules, name, version string, known map[string]Command) *Engine {
	if rules == nil {
		rules = game.Japanese
	}
	if known == nil {
		known = StandardLib()
	}
	e := &Engine{
		rules:   rules,
		hasher:  game.NewHasher(1337),
		rows:    19,
		cols:    19,
		known:   known,
		name:    name,
		version: version,
	}
	if err := e.reset(19, 19); err != nil {
		panic(err)
	}
	return e
}

// Start spins up the command loop and returns its channels. Writing a
// GTP command line to input yields one protocol response on output.
func (e *Engine) Start() (input, output chan string) {
	e.ch = make(chan string)
	e.ret = make(chan string)
	go e.start()
	return e.ch, e.ret
}

// State returns the current game state.
func (e *Engine) State() *game.State { return e.state }

// Komi returns the komi last set on the engine.
func (e *Engine) Komi() float64 { return e.komi }

func (e *Engine) reset(rows, cols int) error {
	pos, err := game.NewPosition(rows, cols)
	if err != nil {
		return err
	}
	state, err := game.NewState(pos, game.Black, e.hasher)
	if err != nil {
		return err
	}
	e.rows, e.cols = rows, cols
	e.state = state
	e.snapshots = e.snapshots[:0]
	return nil
}

func (e *Engine) apply(p game.Play) error {
	if v := e.rules.ValidatePlay(e.state, p); !v.Valid {
		return errors.Errorf("illegal move (%s)", v.Reason)
	}
	next, err := e.state.Apply(p)
	if err != nil {
		return err
	}
	e.snapshots = append(e.snapshots, e.state)
	e.state = next
	return nil
}

func (e *Engine) undo() error {
	if len(e.snapshots) == 0 {
		return errors.New("cannot undo")
	}
	e.state = e.snapshots[len(e.snapshots)-1]
	e.snapshots = e.snapshots[:len(e.snapshots)-1]
	return nil
}

func (e *Engine) start() {
	for cmd := range e.ch {
		id, x, args, err := e.parse(cmd)
		if x == nil && err == nil {
			continue
		}
		if err != nil {
			e.ret <- handleErr(id, err)
			continue
		}
		id, result, err := x.Do(id, args, e)
		e.ret <- handleResult(id, result, err)
	}
}

// refer to this
// https://www.lysator.liu.se/%7Egunnar/gtp/gtp2-spec-draft2/gtp2-spec.html#SECTION00030000000000000000
func (e *Engine) parse(cmd string) (id int, x Command, args []string, err error) {
	cmd = preprocess(cmd)
	tokens := strings.Fields(cmd)
	if len(tokens) == 0 {
		return -1, nil, nil, nil
	}
	if id, err = strconv.Atoi(tokens[0]); err == nil {
		// we've consumed ID
		tokens = tokens[1:]
	} else {
		// set err to nil because ID is optional
		err = nil
		id = -1
	}

	if len(tokens) == 0 {
		return id, nil, nil, nil // GNUGo some how does nothing when there are no tokens left. An ID may be passed in but it'll be ignored
	}

	var ok bool
	if x, ok = e.known[tokens[0]]; !ok {
		return id, nil, nil, errors.Errorf("Unknown command %q", tokens[0])
	}
	if len(tokens) > 1 {
		args = tokens[1:]
	}
	return
}

func preprocess(a string) string {
	return strings.ToLower(strings.TrimSpace(a))
}

// parseColour accepts the colour spellings GTP controllers send.
func parseColour(arg string) (game.Colour, error) {
	switch arg {
	case "b", "black":
		return game.Black, nil
	case "w", "white":
		return game.White, nil
	}
	return game.None, errors.Errorf("Unknown colour %q", arg)
}

// parseVertex converts a GTP vertex to board coordinates. Columns run
// A upward with I skipped; row 1 is the bottom of the board.
func parseVertex(arg string, rows, cols int) (game.Point, bool, error) {
	if arg == "pass" {
		return game.Point{}, true, nil
	}
	if len(arg) < 2 {
		return game.Point{}, false, errors.Errorf("Unable to parse vertex %q", arg)
	}
	col := arg[0]
	if col < 'a' || col > 'z' || col == 'i' {
		return game.Point{}, false, errors.Errorf("Unable to parse vertex %q", arg)
	}
	x := int(col - 'a')
	if col > 'i' {
		x--
	}
	row, err := strconv.Atoi(arg[1:])
	if err != nil {
		return game.Point{}, false, errors.WithMessagef(err, "Unable to parse vertex %q", arg)
	}
	y := rows - row
	if x >= cols || y < 0 || y >= rows {
		return game.Point{}, false, errors.Errorf("Vertex %q is outside the board", arg)
	}
	return game.Point{X: x, Y: y}, false, nil
}

func handleErr(id int, err error) string {
	if id != -1 {
		return fmt.Sprintf("? %d %v\n\n", id, err)
	}
	return fmt.Sprintf("? %v\n\n", err)
}

func handleResult(id int, result string, err error) string {
	if err != nil {
		return handleErr(id, err)
	}

	if id != -1 {
		return fmt.Sprintf("= %d %v\n\n", id, result)
	}
	return fmt.Sprintf("= %v\n\n", result)
}
