package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/Ko-stant/trailmap/internal/protocol"
	"github.com/Ko-stant/trailmap/internal/trailmap"
	"github.com/Ko-stant/trailmap/internal/web/views"
)

func defaultRequest() protocol.GenerateRequest {
	return protocol.GenerateRequest(trailmap.DefaultParams(""))
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodPost {
		return true
	}
	w.Header().Set("Allow", http.MethodPost)
	writeJSON(w, http.StatusMethodNotAllowed, protocol.ErrorResponse{Message: "method not allowed"})
	return false
}

// decodeParams reads a JSON GenerateRequest. Omitted fields keep their
// defaults.
func decodeParams(r *http.Request) (trailmap.Params, error) {
	req := defaultRequest()
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		return trailmap.Params{}, badRequest(errors.Wrap(err, "decoding request"))
	}
	params := trailmap.Params(req)
	if err := params.Validate(); err != nil {
		return trailmap.Params{}, err
	}
	return params, nil
}

// generate runs the pipeline and announces the image to stream clients.
func (s *server) generate(id string, params trailmap.Params) (*trailmap.Result, string, error) {
	start := time.Now()
	res, err := s.generator.Generate(params)
	if err != nil {
		s.metrics.TrackGenerate(time.Since(start), err)
		return nil, "", err
	}
	svg, err := s.generator.SVG(res.Map)
	s.metrics.TrackGenerate(time.Since(start), err)
	if err != nil {
		return nil, "", errors.Wrap(err, "encoding svg")
	}
	s.broadcaster.BroadcastEvent(protocol.EventImageGenerated, protocol.ImageGenerated{
		RequestID:  id,
		Params:     protocol.GenerateRequest(params),
		Trailheads: len(res.Map.Trailheads),
		Paths:      len(res.Map.Paths),
		SVG:        svg,
	})
	return res, svg, nil
}

func writeSVG(w http.ResponseWriter, svg string) {
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = io.WriteString(w, svg)
}

func (s *server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	params, err := decodeParams(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	_, svg, err := s.generate(requestID(r.Context()), params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeSVG(w, svg)
}

func (s *server) handleGeneratePNG(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	params, err := decodeParams(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.generator.CheckPNG(params); err != nil {
		s.writeError(w, r, err)
		return
	}
	res, _, err := s.generate(requestID(r.Context()), params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := s.generator.PNG(&buf, res.Map); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = buf.WriteTo(w)
}

func (s *server) handleGrid(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	params, err := decodeParams(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.generator.Generate(params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, res.Grid)
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, r, badRequest(errors.Wrap(err, "reading grid")))
		return
	}
	m, err := s.generator.FromText(string(body))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	svg, err := s.generator.SVG(m)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeSVG(w, svg)
}

// queryParams reads generation params from the index page form. ok is false
// when no seed was submitted.
func queryParams(r *http.Request) (params trailmap.Params, ok bool, err error) {
	q := r.URL.Query()
	params = trailmap.DefaultParams(q.Get("seed"))
	if !q.Has("seed") {
		return params, false, nil
	}
	for name, dst := range map[string]*int{
		"canvasSize":  &params.CanvasSize,
		"minLeafSize": &params.MinLeafSize,
		"density":     &params.Density,
	} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		n, convErr := strconv.Atoi(v)
		if convErr != nil {
			return params, true, errors.Wrapf(trailmap.ErrInvalidParams, "%s: %q is not a number", name, v)
		}
		*dst = n
	}
	return params, true, params.Validate()
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	params, submitted, err := queryParams(r)
	data := views.IndexData{Params: protocol.GenerateRequest(params)}
	switch {
	case err != nil:
		w.WriteHeader(http.StatusBadRequest)
		data.Error = err.Error()
	case submitted:
		res, svg, genErr := s.generate(requestID(r.Context()), params)
		if genErr != nil {
			appErr := classify(genErr)
			w.WriteHeader(appErr.Status)
			data.Error = appErr.Message
			break
		}
		data.SVG = svg
		data.Stats = &views.Stats{Trailheads: len(res.Map.Trailheads), Paths: len(res.Map.Paths)}
	}
	if err := views.IndexPage(data).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
