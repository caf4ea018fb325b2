package protocol

import (
	"encoding/json"
	"testing"
)

func TestIntentEnvelope_DecodeGenerate(t *testing.T) {
	raw := `{"type":"RequestGenerate","payload":{"seed":"hello","canvasSize":20,"minLeafSize":4,"density":1}}`

	var env IntentEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		t.Fatalf("Failed to unmarshal envelope: %v", err)
	}
	if env.Type != IntentRequestGenerate {
		t.Fatalf("Expected type %q, got %q", IntentRequestGenerate, env.Type)
	}

	var req GenerateRequest
	if err := json.Unmarshal(env.Payload, &req); err != nil {
		t.Fatalf("Failed to unmarshal payload: %v", err)
	}
	want := GenerateRequest{Seed: "hello", CanvasSize: 20, MinLeafSize: 4, Density: 1}
	if req != want {
		t.Errorf("Expected %+v, got %+v", want, req)
	}
}

func TestPatchEnvelope_FieldNames(t *testing.T) {
	data, err := json.Marshal(PatchEnvelope{
		Sequence: 7,
		Type:     EventImageGenerated,
		Payload:  ImageGenerated{RequestID: "r1", Paths: 3, SVG: "<svg></svg>"},
	})
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if decoded["seq"] != float64(7) {
		t.Errorf("Expected seq 7, got %v", decoded["seq"])
	}
	payload, ok := decoded["payload"].(map[string]any)
	if !ok {
		t.Fatalf("Expected object payload, got %T", decoded["payload"])
	}
	for _, key := range []string{"requestId", "params", "trailheads", "paths", "svg"} {
		if _, ok := payload[key]; !ok {
			t.Errorf("Expected payload key %q", key)
		}
	}
}

func TestErrorResponse_MessageKey(t *testing.T) {
	data, err := json.Marshal(ErrorResponse{Message: "bad seed"})
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if string(data) != `{"message":"bad seed"}` {
		t.Errorf("Unexpected body %s", data)
	}
}
