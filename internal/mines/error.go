package mines

import "errors"

var (
	ErrInvalidDimension = errors.New("invalid board dimension")
	ErrInvalidMineCount = errors.New("invalid mine count")
)

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
