// Package views holds the server-rendered HTML pages. Pages are written in
// .templ files; regenerate the _templ.go files with `templ generate`.
package views

import "github.com/Ko-stant/trailmap/internal/protocol"

// IndexData feeds IndexPage. SVG is written verbatim and must come from the
// encoder, never from user input.
type IndexData struct {
	Params protocol.GenerateRequest
	SVG    string
	Error  string
	Stats  *Stats
}

type Stats struct {
	Trailheads int
	Paths      int
}
