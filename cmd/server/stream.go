package main

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Ko-stant/trailmap/internal/protocol"
	"github.com/Ko-stant/trailmap/internal/trailmap"
)

func (s *server) acceptOptions() *websocket.AcceptOptions {
	if slices.Contains(s.allowedOrigins, "*") {
		return &websocket.AcceptOptions{InsecureSkipVerify: true}
	}
	return &websocket.AcceptOptions{OriginPatterns: s.allowedOrigins}
}

func (s *server) sendEnvelope(ctx context.Context, conn *websocket.Conn, eventType string, payload any) error {
	data, err := json.Marshal(protocol.PatchEnvelope{Type: eventType, Payload: payload})
	if err != nil {
		return errors.Wrapf(err, "marshalling %s", eventType)
	}
	return s.hub.Send(ctx, conn, data)
}

func (s *server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, s.acceptOptions())
	if err != nil {
		s.logger.Debugw("websocket accept failed", "error", err)
		return
	}
	s.hub.Add(conn)
	defer s.hub.Remove(conn)
	defer conn.Close(websocket.StatusNormalClosure, "")

	ctx := r.Context()
	hello := protocol.Hello{
		ProtocolVersion: protocol.ProtocolVersion,
		Defaults:        defaultRequest(),
		Clients:         s.hub.Count(),
	}
	if err := s.sendEnvelope(ctx, conn, protocol.EventHello, hello); err != nil {
		return
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var env protocol.IntentEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			continue
		}
		switch env.Type {
		case protocol.IntentRequestGenerate:
			s.handleRequestGenerate(ctx, conn, env.Payload)
		default:
			s.logger.Debugw("ignoring intent", "type", env.Type)
		}
	}
}

func (s *server) handleRequestGenerate(ctx context.Context, conn *websocket.Conn, payload json.RawMessage) {
	req := defaultRequest()
	if err := json.Unmarshal(payload, &req); err != nil {
		_ = s.sendEnvelope(ctx, conn, protocol.EventGenerateFailed, protocol.GenerateFailed{Message: err.Error()})
		return
	}
	params := trailmap.Params(req)
	if _, _, err := s.generate(uuid.NewString(), params); err != nil {
		s.logger.Debugw("stream generate failed", "error", err)
		_ = s.sendEnvelope(ctx, conn, protocol.EventGenerateFailed, protocol.GenerateFailed{Message: err.Error()})
	}
}
