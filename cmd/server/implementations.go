package main

import (
	"encoding/json"
	"sync/atomic"

	"github.com/edaniels/golog"

	"github.com/Ko-stant/trailmap/internal/protocol"
	"github.com/Ko-stant/trailmap/internal/ws"
)

// BroadcasterImpl implements Broadcaster using the websocket hub.
type BroadcasterImpl struct {
	hub      *ws.Hub
	sequence SequenceGenerator
	logger   golog.Logger
}

func NewBroadcaster(hub *ws.Hub, sequence SequenceGenerator, logger golog.Logger) *BroadcasterImpl {
	return &BroadcasterImpl{
		hub:      hub,
		sequence: sequence,
		logger:   logger,
	}
}

func (b *BroadcasterImpl) BroadcastEvent(eventType string, payload any) {
	seq := b.sequence.Next()
	data, err := json.Marshal(protocol.PatchEnvelope{
		Sequence: seq,
		Type:     eventType,
		Payload:  payload,
	})
	if err != nil {
		b.logger.Errorw("failed to marshal event", "type", eventType, "error", err)
		return
	}
	b.logger.Debugw("broadcasting", "type", eventType, "seq", seq, "clients", b.hub.Count())
	b.hub.Broadcast(data)
}

// SequenceGeneratorImpl implements SequenceGenerator using an atomic counter.
type SequenceGeneratorImpl struct {
	counter atomic.Uint64
}

func NewSequenceGenerator() *SequenceGeneratorImpl {
	return &SequenceGeneratorImpl{}
}

func (sg *SequenceGeneratorImpl) Next() uint64 {
	return sg.counter.Add(1)
}

func (sg *SequenceGeneratorImpl) Current() uint64 {
	return sg.counter.Load()
}
