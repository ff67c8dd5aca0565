package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vancomm/minesweeper/internal/mines"
)

func newDescribeCmd(o *options) *cobra.Command {
	var row, col int

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Open one cell of a fresh board and dump the layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, label, err := o.config.Params()
			if err != nil {
				return err
			}
			if !params.ValidatePoint(row, col) {
				return fmt.Errorf("cell %d:%d is outside of %s board", row, col, params)
			}
			game, err := mines.NewGame(params, createRand(o.config.Seed))
			if err != nil {
				return err
			}
			outcome := game.RevealCell(row, col)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s, opened %d:%d: %s\n", label, params, row, col, outcome)
			for line := range game.Describe() {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, "player")
			fmt.Fprint(out, game.PlayerGrid().ToString(params.Cols))
			return nil
		},
	}

	cmd.Flags().IntVar(&row, "row", 0, "row of the first click")
	cmd.Flags().IntVar(&col, "col", 0, "column of the first click")

	return cmd
}
