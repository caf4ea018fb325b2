package protocol

// Event types pushed to stream clients.
const (
	EventHello          = "Hello"
	EventImageGenerated = "ImageGenerated"
	EventGenerateFailed = "GenerateFailed"
)

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

type ImageGenerated struct {
	RequestID  string          `json:"requestId"`
	Params     GenerateRequest `json:"params"`
	Trailheads int             `json:"trailheads"`
	Paths      int             `json:"paths"`
	SVG        string          `json:"svg"`
}

type GenerateFailed struct {
	Message string `json:"message"`
}
