package handlers

import (
	"errors"
	"iter"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-classic/internal/mines"
	"github.com/vancomm/minesweeper-classic/internal/session"
)

type wsCommand string

const (
	wsNoop       wsCommand = "g"
	wsOpen       wsCommand = "o"
	wsFlag       wsCommand = "f"
	wsDifficulty wsCommand = "d"
	wsKey        wsCommand = "k"
	wsNew        wsCommand = "n"
)

// Maps known commands to number of arguments
var commandNargs = map[wsCommand]int{
	wsNoop:       0,
	wsOpen:       2,
	wsFlag:       2,
	wsDifficulty: 1,
	wsKey:        1,
	wsNew:        1,
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadNargs       = errors.New("invalid number of arguments")
)

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
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

// executeCommand runs one command line against s. The caller holds the
// session lock.
func (g *GameHandler) executeCommand(s *session.Session, c string) error {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return nil
	}
	cmd := wsCommand(parts[0])
	nargs, ok := commandNargs[cmd]
	if !ok {
		return ErrUnknownCommand
	}
	if nargs != len(parts)-1 {
		return ErrBadNargs
	}
	args := parts[1:]

	switch cmd {
	case wsNoop:
		return nil
	case wsOpen, wsFlag:
		row, col, err := parseRowCol(args)
		if err != nil {
			return err
		}
		button := session.LeftButton
		if cmd == wsFlag {
			button = session.RightButton
		}
		s.Click(row, col, button)
		return nil
	case wsDifficulty:
		d, err := session.ParseDifficulty(args[0])
		if err != nil {
			return err
		}
		return s.SelectDifficulty(d)
	case wsKey:
		return s.Key(args[0])
	case wsNew:
		p, err := mines.ParseParams(args[0])
		if err != nil {
			return err
		}
		return s.Start(p)
	}
	return ErrUnknownCommand
}
