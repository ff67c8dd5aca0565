package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/stopwatch"
)

type Options struct {
	Difficulty config.Difficulty
	// Board, when set, replaces the difficulty preset until the player
	// picks another difficulty.
	Board *mines.GameParams
}

// Session is the text front end: it forwards player input to the engine and
// redraws the option bar and the board after every command.
type Session struct {
	log   *logrus.Logger
	out   io.Writer
	rnd   *rand.Rand
	clock *stopwatch.Stopwatch

	difficulty config.Difficulty
	board      *mines.GameParams
	flagMode   bool
	game       *mines.Game
}

func New(
	log *logrus.Logger, out io.Writer, rnd *rand.Rand,
	clock *stopwatch.Stopwatch, opts Options,
) (*Session, error) {
	s := &Session{
		log:        log,
		out:        out,
		rnd:        rnd,
		clock:      clock,
		difficulty: opts.Difficulty,
		board:      opts.Board,
	}
	if err := s.NewGame(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) Game() *mines.Game { return s.game }

func (s *Session) FlagMode() bool { return s.flagMode }

func (s *Session) label() string {
	if s.board != nil {
		return "CUSTOM"
	}
	return s.difficulty.String()
}

func (s *Session) params() (mines.GameParams, error) {
	if s.board != nil {
		return *s.board, nil
	}
	return s.difficulty.Params()
}

// NewGame throws the current engine away and starts over with the selected
// difficulty. This is the play button.
func (s *Session) NewGame() error {
	params, err := s.params()
	if err != nil {
		return err
	}
	game, err := mines.NewGame(params, s.rnd)
	if err != nil {
		return err
	}
	s.game = game
	s.clock.Reset()
	s.log.WithFields(logrus.Fields{
		"difficulty": s.label(),
		"params":     params.String(),
	}).Info("new game")
	return nil
}

// Execute runs one command line. quit reports that the player asked to leave.
func (s *Session) Execute(line string) (quit bool, err error) {
	cmd, err := parseCommand(line)
	if err != nil {
		return false, err
	}
	if cmd.name == "o" || cmd.name == "f" || cmd.name == "c" {
		if !s.game.Params().ValidatePoint(cmd.row, cmd.col) {
			return false, errOutOfBounds
		}
	}
	s.log.WithFields(logrus.Fields{
		"command": cmd.name,
		"row":     cmd.row,
		"col":     cmd.col,
	}).Debug("command")

	switch cmd.name {
	case "o":
		s.open(cmd.row, cmd.col)
	case "f":
		s.game.ToggleFlag(cmd.row, cmd.col)
	case "c":
		s.afterMove(s.game.ChordCell(cmd.row, cmd.col))
	case "n":
		err = s.NewGame()
	case "d":
		var next config.Difficulty
		if s.board != nil {
			next, s.board = s.difficulty, nil
		} else if next, err = s.difficulty.Next(); err != nil {
			return false, err
		}
		s.difficulty = next
	case "m":
		s.flagMode = !s.flagMode
	case "h":
		fmt.Fprintln(s.out, help)
	case "q":
		return true, nil
	}
	return false, err
}

func (s *Session) open(row, col int) {
	switch {
	case s.flagMode:
		s.game.ToggleFlag(row, col)
	case s.game.Cell(row, col).Revealed:
		s.afterMove(s.game.ChordCell(row, col))
	default:
		s.afterMove(s.game.RevealCell(row, col))
	}
}

func (s *Session) afterMove(outcome mines.Outcome) {
	switch outcome {
	case mines.Continue:
		s.clock.Start()
	case mines.Won, mines.Lost:
		s.clock.Stop()
		s.log.WithFields(logrus.Fields{
			"outcome": outcome.String(),
			"elapsed": s.clock.String(),
			"params":  s.game.Params().String(),
		}).Info("game over")
	}
}

func (s *Session) playButton() string {
	switch s.game.Outcome() {
	case mines.Won:
		return "WON"
	case mines.Lost:
		return "LOST"
	default:
		return "PLAY"
	}
}

func (s *Session) OptionBar() string {
	mode := "OPEN"
	if s.flagMode {
		mode = "FLAG"
	}
	return fmt.Sprintf(
		"%s | mines %d | %s | %s | %s",
		s.clock.String(), s.game.MinesLeft(), s.playButton(), s.label(), mode,
	)
}

func (s *Session) Render() {
	var (
		b      strings.Builder
		params = s.game.Params()
		grid   = s.game.PlayerGrid()
	)
	fmt.Fprintln(&b, s.OptionBar())
	fmt.Fprint(&b, "   ")
	for col := range params.Cols {
		fmt.Fprintf(&b, "%3d", col)
	}
	fmt.Fprintln(&b)
	for row := range params.Rows {
		fmt.Fprintf(&b, "%3d", row)
		for col := range params.Cols {
			fmt.Fprintf(&b, "%3s", grid[row*params.Cols+col].String())
		}
		fmt.Fprintln(&b)
	}
	fmt.Fprint(s.out, b.String())
}

// Run reads commands from in until the player quits, in runs dry or ctx is
// done.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	s.Render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			quit, err := s.Execute(line)
			if quit {
				return nil
			}
			if err != nil {
				fmt.Fprintf(s.out, "error: %s\n", err)
				continue
			}
			s.Render()
		}
	}
}
