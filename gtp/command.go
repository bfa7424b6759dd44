package gtp

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/kifulab/kifu/game"
)

type Command interface {
	Do(id int, args []string, e *Engine) (int, string, error)
}

type stdlib func(e *Engine) string

type stdlib2 func(e *Engine, args []string) (string, error)

func (f stdlib) Do(id int, args []string, e *Engine) (int, string, error) {
	str := f(e)
	return id, str, nil
}

func (f stdlib2) Do(id int, args []string, e *Engine) (int, string, error) {
	str, err := f(e, args)
	return id, str, err
}

func protocolVersion(e *Engine) string { return "2" }
func name(e *Engine) string            { return e.name }
func version(e *Engine) string         { return e.version }

func listCommands(e *Engine) string {
	var buf bytes.Buffer
	for c := range e.known {
		fmt.Fprintf(&buf, "%v\n", c)
	}
	return buf.String()
}

func quit(e *Engine) string      { close(e.ch); return "QUIT" }
func showboard(e *Engine) string { return fmt.Sprintf("\n%v\n", e.state.Position()) }

func knownCommand(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"known_command\"")
	}
	if _, ok := e.known[args[0]]; ok {
		return "true", nil
	}
	return "false", nil
}

func clearBoard(e *Engine, args []string) (string, error) {
	return "", e.reset(e.rows, e.cols)
}

func boardSize(e *Engine, args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", errors.New("Not enough arguments for \"boardsize\"")
	case 1:
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return "", errors.WithMessage(err, "Unable to parse first argument of boardsize")
		}
		return "", e.reset(n, n)
	default:
		newM, err := strconv.Atoi(args[0])
		if err != nil {
			return "", errors.WithMessage(err, "Unable to parse first argument of boardsize")
		}
		newN, err := strconv.Atoi(args[1])
		if err != nil {
			return "", errors.WithMessage(err, "Unable to parse second argument of boardsize")
		}
		return "", e.reset(newM, newN)
	}
}

func komi(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"komi\"")
	}

	komi, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return "", errors.WithMessage(err, "Unable to parse komi argument")
	}
	e.komi = komi // accept komi even if ridiculous, GTP says so
	return "", nil
}

func play(e *Engine, args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("Not enough arguments for \"play\"")
	}
	colour, err := parseColour(args[0])
	if err != nil {
		return "", err
	}
	pt, pass, err := parseVertex(args[1], e.rows, e.cols)
	if err != nil {
		return "", err
	}
	if pass {
		return "", e.apply(game.NewPass(colour))
	}
	return "", e.apply(game.NewPlay(colour, pt.X, pt.Y))
}

func undo(e *Engine, args []string) (string, error) {
	return "", e.undo()
}

func StandardLib() map[string]Command {
	return map[string]Command{
		"protocol_version": stdlib(protocolVersion),
		"name":             stdlib(name),
		"version":          stdlib(version),
		"list_commands":    stdlib(listCommands),
		"quit":             stdlib(quit),
		"showboard":        stdlib(showboard),

		"known_command": stdlib2(knownCommand),
		"clear_board":   stdlib2(clearBoard),
		"boardsize":     stdlib2(boardSize),
		"komi":          stdlib2(komi),
		"play":          stdlib2(play),
		"undo":          stdlib2(undo),
	}
}
