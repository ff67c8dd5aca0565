package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/console"
	"github.com/vancomm/minesweeper/internal/stopwatch"
	"golang.org/x/sync/errgroup"
)

func play(cmd *cobra.Command, c *config.Config) error {
	mainCtx, stop := signal.NotifyContext(
		cmd.Context(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	difficulty, err := config.ParseDifficulty(c.Difficulty)
	if err != nil {
		return err
	}
	opts := console.Options{Difficulty: difficulty}
	if strings.TrimSpace(c.Board) != "" {
		board, err := config.ParseBoard(c.Board)
		if err != nil {
			return err
		}
		opts.Board = &board
	}

	var clock stopwatch.Stopwatch
	session, err := console.New(log, cmd.OutOrStdout(), createRand(c.Seed), &clock, opts)
	if err != nil {
		return fmt.Errorf("unable to start game: %w", err)
	}

	g, gCtx := errgroup.WithContext(mainCtx)
	gCtx, cancel := context.WithCancel(gCtx)
	g.Go(func() error {
		defer cancel()
		return session.Run(gCtx, cmd.InOrStdin())
	})
	g.Go(func() error {
		return clock.Run(gCtx, time.Second)
	})

	if err := g.Wait(); err != nil {
		log.Errorf("exit reason: %s", err)
		return err
	}
	log.Info("bye")
	return nil
}
