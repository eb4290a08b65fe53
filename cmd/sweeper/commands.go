package main

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/ddrozdov/sweeper-server/internal/mines"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0, // fetch, no mutation
	"r": 2, // reveal row col
	"f": 2, // flag row col
	"a": 2, // cell action row col (reveal or flag per flag mode)
	"m": 0, // toggle flag mode
	"t": 0, // clock tick
	"n": 0, // new game with current params
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

func executeCommand(g *mines.Game, rnd *rand.Rand, c string) (err error) {
	parts := strings.Split(c, " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "g":
		return
	case "r":
		if row, col, err := parseRowCol(parts[1:]); err != nil {
			return err
		} else if !g.InBounds(row, col) {
			return errors.New("invalid cell coordinates")
		} else {
			return g.Reveal(row, col)
		}
	case "f":
		if row, col, err := parseRowCol(parts[1:]); err != nil {
			return err
		} else if !g.InBounds(row, col) {
			return errors.New("invalid cell coordinates")
		} else {
			return g.ToggleFlag(row, col)
		}
	case "a":
		if row, col, err := parseRowCol(parts[1:]); err != nil {
			return err
		} else if !g.InBounds(row, col) {
			return errors.New("invalid cell coordinates")
		} else {
			return g.CellAction(row, col)
		}
	case "m":
		g.ToggleFlagMode()
		return
	case "t":
		g.Tick()
		return
	case "n":
		g.Reset(rnd)
		return
	}
	return errors.New("invalid command")
}
