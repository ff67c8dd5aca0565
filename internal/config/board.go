package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper/internal/mines"
)

var ErrInvalidBoard = errors.New("invalid board")

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

type BoardParams struct {
	Rows      int `schema:"rows,required"`
	Cols      int `schema:"cols,required"`
	MineCount int `schema:"mines,required"`
}

// ParseBoard reads a custom board such as "rows=20&cols=24&mines=90" and
// checks it against the engine limits.
func ParseBoard(query string) (mines.GameParams, error) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return mines.GameParams{}, fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}
	var b BoardParams
	if err := dec.Decode(&b, values); err != nil {
		return mines.GameParams{}, fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}
	params := mines.GameParams(b)
	if err := params.Validate(); err != nil {
		return mines.GameParams{}, fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}
	return params, nil
}
