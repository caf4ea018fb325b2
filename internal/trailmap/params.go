package trailmap

import (
	"crypto/sha256"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// MaxCanvasSize bounds the grid side length accepted from callers.
const MaxCanvasSize = 512

// ErrInvalidParams wraps every Params validation failure.
var ErrInvalidParams = errors.New("trailmap: invalid params")

// Params are the knobs of one generation run. The JSON names match the web
// form payload.
type Params struct {
	Seed        string `json:"seed"`
	CanvasSize  int    `json:"canvasSize"`
	MinLeafSize int    `json:"minLeafSize"`
	Density     int    `json:"density"`
}

func DefaultParams(seed string) Params {
	return Params{
		Seed:        seed,
		CanvasSize:  45,
		MinLeafSize: 3,
		Density:     2,
	}
}

func (p Params) Validate() error {
	switch {
	case p.Seed == "":
		return errors.Wrap(ErrInvalidParams, "seed must not be empty")
	case p.CanvasSize < 1 || p.CanvasSize > MaxCanvasSize:
		return errors.Wrapf(ErrInvalidParams, "canvas size %d outside [1, %d]", p.CanvasSize, MaxCanvasSize)
	case p.MinLeafSize < 1:
		return errors.Wrapf(ErrInvalidParams, "min leaf size %d must be at least 1", p.MinLeafSize)
	case p.Density < 0 || p.Density > 255:
		return errors.Wrapf(ErrInvalidParams, "density %d outside [0, 255]", p.Density)
	}
	return nil
}

// NewRand returns the random stream for seed. Equal seeds give equal
// streams.
func NewRand(seed string) *rand.Rand {
	return rand.New(rand.NewChaCha8(sha256.Sum256([]byte(seed))))
}
