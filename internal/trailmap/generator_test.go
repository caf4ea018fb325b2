package trailmap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ko-stant/trailmap/internal/partition"
	"github.com/Ko-stant/trailmap/internal/render"
	"github.com/Ko-stant/trailmap/internal/trail"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := NewGenerator(golog.NewTestLogger(t), partition.DefaultConfig(), render.DefaultConfig())
	require.NoError(t, err)
	return g
}

func TestParamsValidate(t *testing.T) {
	assert.NoError(t, DefaultParams("x").Validate())

	cases := map[string]Params{
		"empty seed":     {CanvasSize: 45, MinLeafSize: 3, Density: 2},
		"zero canvas":    {Seed: "a", CanvasSize: 0, MinLeafSize: 3, Density: 2},
		"huge canvas":    {Seed: "a", CanvasSize: MaxCanvasSize + 1, MinLeafSize: 3, Density: 2},
		"zero min leaf":  {Seed: "a", CanvasSize: 45, MinLeafSize: 0, Density: 2},
		"negative dense": {Seed: "a", CanvasSize: 45, MinLeafSize: 3, Density: -1},
		"dense overflow": {Seed: "a", CanvasSize: 45, MinLeafSize: 3, Density: 256},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			err := p.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParams), "got %v", err)
		})
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a, b := NewRand("hello"), NewRand("hello")
	for range 32 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, NewRand("hello").Uint64(), NewRand("hellp").Uint64())
}

func TestGenerateDeterministic(t *testing.T) {
	g := newTestGenerator(t)

	first, err := g.Generate(DefaultParams("hello"))
	require.NoError(t, err)
	second, err := g.Generate(DefaultParams("hello"))
	require.NoError(t, err)

	assert.Equal(t, first.Grid, second.Grid)
	assert.Equal(t, first.Map.Paths, second.Map.Paths)

	svgA, err := g.SVG(first.Map)
	require.NoError(t, err)
	svgB, err := g.SVG(second.Map)
	require.NoError(t, err)
	assert.Equal(t, svgA, svgB)
}

func TestGenerateShape(t *testing.T) {
	g := newTestGenerator(t)
	res, err := g.Generate(DefaultParams("shape"))
	require.NoError(t, err)

	rows := strings.Split(strings.TrimSuffix(res.Grid, "\n"), "\n")
	require.Len(t, rows, 45)
	for _, row := range rows {
		require.Len(t, row, 45)
		for _, c := range row {
			require.True(t, c >= '0' && c <= '9', "unexpected %q", c)
		}
	}
	assert.Equal(t, 45, res.Map.Width)
	assert.Equal(t, 45, res.Map.Height)

	for _, path := range res.Map.Paths {
		require.Len(t, path, 10)
		for i, p := range path {
			assert.Equal(t, uint8(i), res.Map.At(p))
		}
	}
}

func TestGenerateZeroDensity(t *testing.T) {
	g := newTestGenerator(t)
	p := DefaultParams("quiet")
	p.Density = 0
	res, err := g.Generate(p)
	require.NoError(t, err)
	assert.Len(t, res.Grid, 45*46)
}

func TestGenerateRejectsInvalid(t *testing.T) {
	g := newTestGenerator(t)
	_, err := g.Generate(Params{})
	assert.True(t, errors.Is(err, ErrInvalidParams))
}

func TestFromText(t *testing.T) {
	g := newTestGenerator(t)

	m, err := g.FromText("0123456789\n")
	require.NoError(t, err)
	require.Len(t, m.Paths, 1)

	out, err := g.SVG(m)
	require.NoError(t, err)
	assert.Contains(t, out, `d="M42 32h556"`)

	var buf bytes.Buffer
	require.NoError(t, g.PNG(&buf, m))
	assert.NotZero(t, buf.Len())

	_, err = g.FromText("01a\n")
	assert.True(t, errors.Is(err, trail.ErrInvalidDigit))
}
