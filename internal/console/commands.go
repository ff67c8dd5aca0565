package console

import (
	"errors"
	"strconv"
	"strings"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o": 2, // open, chords on an open cell, flags in flag mode
	"f": 2,
	"c": 2,
	"n": 0,
	"d": 0,
	"m": 0,
	"p": 0,
	"h": 0,
	"q": 0,
}

const help = `commands (row and col start at 0):
  o ROW COL  open a cell (chord if already open, flag in flag mode)
  f ROW COL  toggle a flag
  c ROW COL  chord: open around a satisfied number
  n          new game
  d          next difficulty (applies to the next game)
  m          toggle flag mode
  p          print the board
  h          help
  q          quit`

var (
	errUnknownCommand = errors.New("unknown command")
	errNargs          = errors.New("invalid number of arguments")
	errOutOfBounds    = errors.New("invalid cell coordinates")
)

type command struct {
	name     string
	row, col int
}

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

func parseCommand(line string) (cmd command, err error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return cmd, errUnknownCommand
	}
	cmd.name = strings.ToLower(parts[0])
	nargs, ok := commandNargs[cmd.name]
	if !ok {
		return cmd, errUnknownCommand
	}
	if nargs != len(parts)-1 {
		return cmd, errNargs
	}
	if nargs == 2 {
		cmd.row, cmd.col, err = parseRowCol(parts[1:])
	}
	return
}
