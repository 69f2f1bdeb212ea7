package play

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/they4kman/sweeper/game"
)

type commandKind int

const (
	cmdMove commandKind = iota
	cmdNew
	cmdQuit
	cmdHelp
)

type command struct {
	kind commandKind
	move game.Move
}

const helpText = `Commands:
  r ROW COL   reveal a cell
  f ROW COL   flag or unflag a cell
  c ROW COL   reveal the neighbors of a satisfied number
  n           start a new game
  q           quit
`

var moveActions = map[string]game.Action{
	"r":      game.Reveal,
	"reveal": game.Reveal,
	"f":      game.Flag,
	"flag":   game.Flag,
	"c":      game.Chord,
	"chord":  game.Chord,
}

func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{kind: cmdHelp}, nil
	}

	switch fields[0] {
	case "q", "quit":
		return command{kind: cmdQuit}, nil
	case "n", "new":
		return command{kind: cmdNew}, nil
	case "h", "help", "?":
		return command{kind: cmdHelp}, nil
	}

	action, ok := moveActions[fields[0]]
	if !ok {
		return command{}, errors.Errorf("unknown command %q", fields[0])
	}
	if len(fields) != 3 {
		return command{}, errors.Errorf("usage: %s ROW COL", fields[0])
	}

	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return command{}, errors.Wrap(err, "row")
	}
	col, err := strconv.Atoi(fields[2])
	if err != nil {
		return command{}, errors.Wrap(err, "col")
	}

	return command{
		kind: cmdMove,
		move: game.Move{Action: action, Row: row, Col: col},
	}, nil
}
