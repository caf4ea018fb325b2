package trail

import "github.com/pkg/errors"

var (
	// ErrEmptyGrid indicates the input text holds no rows.
	ErrEmptyGrid = errors.New("trail: grid must have at least one row")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("trail: all rows must have the same length")
	// ErrInvalidDigit indicates a character other than 0-9.
	ErrInvalidDigit = errors.New("trail: grid cells must be decimal digits")
)
