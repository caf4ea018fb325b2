package protocol

import "encoding/json"

// Intent types accepted on the stream.
const (
	IntentRequestGenerate = "RequestGenerate"
)

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// GenerateRequest is the body of POST /api/generate and the payload of a
// RequestGenerate intent.
type GenerateRequest struct {
	Seed        string `json:"seed"`
	CanvasSize  int    `json:"canvasSize"`
	MinLeafSize int    `json:"minLeafSize"`
	Density     int    `json:"density"`
}
