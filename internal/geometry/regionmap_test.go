package geometry

import "testing"

func TestBuildRegionMap(t *testing.T) {
	// Two trails that share (1,1) form one network; the third is separate.
	paths := [][]Position{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
		{{X: 1, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 1}},
		{{X: 4, Y: 4}, {X: 4, Y: 3}},
	}
	rm := BuildRegionMap(5, 5, paths)

	if rm.RegionsCount != 2 {
		t.Fatalf("expected 2 networks, got %d", rm.RegionsCount)
	}
	a := rm.RegionOf(5, Position{X: 0, Y: 0})
	b := rm.RegionOf(5, Position{X: 2, Y: 1})
	if a != b {
		t.Fatalf("expected merged trails to share a network, got %d and %d", a, b)
	}
	c := rm.RegionOf(5, Position{X: 4, Y: 3})
	if c == a {
		t.Fatalf("expected separate network for isolated trail, got %d", c)
	}
	if got := rm.RegionOf(5, Position{X: 3, Y: 0}); got != -1 {
		t.Fatalf("expected -1 for cell on no path, got %d", got)
	}
}

func TestBuildRegionMapAdjacentButUnlinked(t *testing.T) {
	// Side by side but never stepped between: two networks.
	paths := [][]Position{
		{{X: 0, Y: 0}, {X: 0, Y: 1}},
		{{X: 1, Y: 0}, {X: 1, Y: 1}},
	}
	rm := BuildRegionMap(2, 2, paths)
	if rm.RegionsCount != 2 {
		t.Fatalf("expected 2 networks, got %d", rm.RegionsCount)
	}
}
