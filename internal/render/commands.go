package render

import (
	"github.com/Ko-stant/trailmap/internal/geometry"
)

// Command is one axis-aligned move in pixel space.
type Command struct {
	Orientation geometry.Orientation
	Delta       int
}

// Commands converts a path into one command per step. Steps are assumed to
// be grid-adjacent.
func (e *Encoder) Commands(path []geometry.Position) []Command {
	if len(path) < 2 {
		return nil
	}
	cmds := make([]Command, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		if from.X != to.X {
			cmds = append(cmds, Command{
				Orientation: geometry.Horizontal,
				Delta:       e.pixel(to.X) - e.pixel(from.X),
			})
			continue
		}
		cmds = append(cmds, Command{
			Orientation: geometry.Vertical,
			Delta:       e.pixel(to.Y) - e.pixel(from.Y),
		})
	}
	return cmds
}

// MergeCommands folds runs of consecutive commands on the same axis into a
// single command carrying their summed delta. Order is preserved.
func MergeCommands(cmds []Command) []Command {
	merged := make([]Command, 0, len(cmds))
	for _, cmd := range cmds {
		if n := len(merged); n > 0 && merged[n-1].Orientation == cmd.Orientation {
			merged[n-1].Delta += cmd.Delta
			continue
		}
		merged = append(merged, cmd)
	}
	return merged
}

// pullBack shortens cmd by n pixels toward its start.
func pullBack(cmd *Command, n int) {
	if cmd.Delta < 0 {
		cmd.Delta += n
	} else {
		cmd.Delta -= n
	}
}
