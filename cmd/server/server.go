package main

import (
	"net/http"

	"github.com/edaniels/golog"

	"github.com/Ko-stant/trailmap/internal/trailmap"
	"github.com/Ko-stant/trailmap/internal/ws"
)

const maxBodyBytes = 1 << 20

type server struct {
	generator      *trailmap.Generator
	hub            *ws.Hub
	broadcaster    Broadcaster
	metrics        *PerformanceMetrics
	logger         golog.Logger
	staticDir      string
	allowedOrigins []string
}

func newServer(generator *trailmap.Generator, logger golog.Logger, staticDir string, allowedOrigins []string) *server {
	hub := ws.NewHub(logger)
	return &server{
		generator:      generator,
		hub:            hub,
		broadcaster:    NewBroadcaster(hub, NewSequenceGenerator(), logger),
		metrics:        NewPerformanceMetrics(),
		logger:         logger,
		staticDir:      staticDir,
		allowedOrigins: allowedOrigins,
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	fileServer := http.FileServer(http.Dir(s.staticDir))
	mux.Handle("/static/", http.StripPrefix("/static/", fileServer))

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/generate", s.handleGenerate)
	mux.HandleFunc("/api/generate.png", s.handleGeneratePNG)
	mux.HandleFunc("/api/grid", s.handleGrid)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/stream", s.handleStream)

	return s.withRequestLogging(s.withCORS(mux))
}
