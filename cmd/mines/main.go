package main

import (
	"hash/maphash"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/logging"
	"github.com/vancomm/minesweeper/internal/mines"
)

var log = logrus.New()

type options struct {
	configPath string
	difficulty string
	board      string
	seed       uint64
	logFile    string
	logLevel   string

	config *config.Config
}

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// load reads the config file and lets explicitly set flags win over it.
func (o *options) load(cmd *cobra.Command) error {
	required := cmd.Flags().Changed("config")
	c, err := config.Load(o.configPath, required)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("difficulty") {
		c.Difficulty = o.difficulty
	}
	if flags.Changed("board") {
		c.Board = o.board
	}
	if flags.Changed("seed") {
		c.Seed = o.seed
	}
	if flags.Changed("log-file") {
		c.Log.File = o.logFile
	}
	if flags.Changed("log-level") {
		c.Log.Level = o.logLevel
	}

	if err := logging.Setup(log, c); err != nil {
		return err
	}
	mines.Log = log

	log.Info("starting up, mode = ", c.Mode)
	log.WithFields(c.Fields()).Debug("config")

	o.config = c
	return nil
}

func newRootCmd() *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:   "mines",
		Short: "Play minesweeper in the terminal",
		Long: `mines is a terminal minesweeper.

The first cell you open is never a mine, and neither are its neighbours.
Type h during a game for the list of commands.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cmd, o.config)
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&o.configPath, "config", "c", config.DefaultPath, "config file path")
	flags.StringVarP(&o.difficulty, "difficulty", "d", "", "EASY, MEDIUM or HARD (env: MINES_DIFFICULTY)")
	flags.StringVar(&o.board, "board", "", `custom board, e.g. "rows=20&cols=24&mines=90"`)
	flags.Uint64Var(&o.seed, "seed", 0, "random seed, 0 picks one")
	flags.StringVar(&o.logFile, "log-file", "", "log file path (env: MINES_LOG_FILE)")
	flags.StringVar(&o.logLevel, "log-level", "", "log level")

	rootCmd.AddCommand(newDescribeCmd(o))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
