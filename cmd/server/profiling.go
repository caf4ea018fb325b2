package main

import (
	"context"
	"net"
	"net/http"
	"net/http/pprof"
	"runtime"
	"sync"
	"time"

	"github.com/edaniels/golog"
)

// ProfilingConfig holds configuration for profiling
type ProfilingConfig struct {
	// Port serves net/http/pprof when non-empty.
	Port string
}

// StartProfiling serves the pprof handlers on their own port until ctx is
// done.
func StartProfiling(ctx context.Context, config ProfilingConfig, logger golog.Logger) {
	if config.Port == "" {
		return
	}

	runtime.SetBlockProfileRate(1)
	runtime.SetMutexProfileFraction(1)

	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	srv := &http.Server{
		Addr:              net.JoinHostPort("", config.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Infow("starting pprof server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorw("pprof server failed", "error", err)
		}
	}()
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
}

// PerformanceMetrics tracks generation throughput.
type PerformanceMetrics struct {
	mu              sync.Mutex
	Generations     int64
	Failures        int64
	AvgGenerateTime time.Duration
	PeakGoroutines  int
	PeakMemoryUsage uint64
	StartTime       time.Time
}

func NewPerformanceMetrics() *PerformanceMetrics {
	return &PerformanceMetrics{
		StartTime: time.Now(),
	}
}

// TrackGenerate records one pipeline run.
func (pm *PerformanceMetrics) TrackGenerate(duration time.Duration, err error) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	if err != nil {
		pm.Failures++
		return
	}
	pm.Generations++
	pm.AvgGenerateTime = (pm.AvgGenerateTime*time.Duration(pm.Generations-1) + duration) / time.Duration(pm.Generations)
	pm.updateSystemMetrics()
}

func (pm *PerformanceMetrics) updateSystemMetrics() {
	goroutines := runtime.NumGoroutine()
	if goroutines > pm.PeakGoroutines {
		pm.PeakGoroutines = goroutines
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	if m.Alloc > pm.PeakMemoryUsage {
		pm.PeakMemoryUsage = m.Alloc
	}
}

func (pm *PerformanceMetrics) LogMetrics(logger golog.Logger) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	logger.Infow("performance metrics",
		"uptime", time.Since(pm.StartTime),
		"generations", pm.Generations,
		"failures", pm.Failures,
		"avg_generate_time", pm.AvgGenerateTime,
		"peak_goroutines", pm.PeakGoroutines,
		"peak_memory_bytes", pm.PeakMemoryUsage)
}

// StartMetricsReporting logs metrics every interval until ctx is done.
func StartMetricsReporting(ctx context.Context, metrics *PerformanceMetrics, interval time.Duration, logger golog.Logger) {
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				metrics.LogMetrics(logger)
			}
		}
	}()
}
