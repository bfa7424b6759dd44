package gtp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kifulab/kifu/game"
)

func Test_General(t *testing.T) {
	assert := assert.New(t)
	e := New(nil, "xx", "1", nil)
	var x string

	ch, ret := e.Start()
	ch <- "version"
	x = <-ret
	assert.Equal("= 1\n\n", x)

	ch <- "1 protocol_version"
	x = <-ret
	assert.Equal("= 1 2\n\n", x)

	ch <- "known_command hello"
	x = <-ret
	assert.Equal("= false\n\n", x)

	ch <- "known_command name"
	x = <-ret
	assert.Equal("= true\n\n", x)

	ch <- "completelyUnheardOfCommand xxx"
	x = <-ret
	assert.Equal("? Unknown command \"completelyunheardofcommand\"\n\n", x)
}

func Test_Play(t *testing.T) {
	assert := assert.New(t)
	e := New(game.Japanese, "xx", "1", nil)
	var x string

	ch, ret := e.Start()
	ch <- "boardsize 5"
	x = <-ret
	assert.Equal("= \n\n", x)

	ch <- "play b c3"
	x = <-ret
	assert.Equal("= \n\n", x)
	c, _ := e.State().Position().Get(2, 2)
	assert.Equal(game.Black, c)

	// same vertex again: the point is taken
	ch <- "play w c3"
	x = <-ret
	assert.True(strings.HasPrefix(x, "? illegal move"), x)

	ch <- "play w pass"
	x = <-ret
	assert.Equal("= \n\n", x)
	assert.Equal(game.Black, e.State().ToMove())

	ch <- "play w zz99"
	x = <-ret
	assert.True(strings.HasPrefix(x, "?"), x)
}

func Test_Undo(t *testing.T) {
	assert := assert.New(t)
	e := New(nil, "xx", "1", nil)
	var x string

	ch, ret := e.Start()
	ch <- "boardsize 5"
	<-ret

	ch <- "play b a1"
	<-ret
	c, _ := e.State().Position().Get(0, 4)
	assert.Equal(game.Black, c)

	ch <- "undo"
	x = <-ret
	assert.Equal("= \n\n", x)
	c, _ = e.State().Position().Get(0, 4)
	assert.Equal(game.None, c)

	ch <- "undo"
	x = <-ret
	assert.Equal("? cannot undo\n\n", x)
}

func Test_Setup(t *testing.T) {
	assert := assert.New(t)
	e := New(nil, "xx", "1", nil)
	var x string

	ch, ret := e.Start()
	ch <- "komi 6.5"
	x = <-ret
	assert.Equal("= \n\n", x)
	assert.Equal(6.5, e.Komi())

	ch <- "boardsize 9"
	<-ret
	assert.Equal(9, e.State().Position().Rows())
	assert.Equal(9, e.State().Position().Cols())

	ch <- "play b e5"
	<-ret
	ch <- "clear_board"
	x = <-ret
	assert.Equal("= \n\n", x)
	assert.Equal(0, len(e.State().Position().Stones()))

	ch <- "showboard"
	x = <-ret
	assert.True(strings.HasPrefix(x, "= \n"), x)
	assert.True(strings.Contains(x, "·"), x)
}

func Test_Vertex(t *testing.T) {
	tests := []struct {
		arg        string
		rows, cols int
		pt         game.Point
		pass       bool
		willErr    bool
	}{
		{arg: "a1", rows: 19, cols: 19, pt: game.Point{X: 0, Y: 18}},
		{arg: "t19", rows: 19, cols: 19, pt: game.Point{X: 18, Y: 0}},
		{arg: "j10", rows: 19, cols: 19, pt: game.Point{X: 8, Y: 9}},
		{arg: "pass", rows: 19, cols: 19, pass: true},
		{arg: "i5", rows: 19, cols: 19, willErr: true},
		{arg: "a0", rows: 19, cols: 19, willErr: true},
		{arg: "a20", rows: 19, cols: 19, willErr: true},
		{arg: "f1", rows: 5, cols: 5, willErr: true},
		{arg: "x", rows: 19, cols: 19, willErr: true},
	}
	for _, vt := range tests {
		pt, pass, err := parseVertex(vt.arg, vt.rows, vt.cols)
		if vt.willErr {
			assert.Error(t, err, "vertex %q", vt.arg)
			continue
		}
		if err != nil {
			t.Errorf("parseVertex(%q): %v", vt.arg, err)
			continue
		}
		assert.Equal(t, vt.pass, pass, "vertex %q", vt.arg)
		if !pass {
			assert.Equal(t, vt.pt, pt, "vertex %q", vt.arg)
		}
	}
}
