package protocol

// ProtocolVersion is sent in Hello so clients can detect a mismatched server.
const ProtocolVersion = "v1"

// Hello greets every new stream connection.
type Hello struct {
	ProtocolVersion string          `json:"protocolVersion"`
	Defaults        GenerateRequest `json:"defaults"`
	Clients         int             `json:"clients"`
}

// ErrorResponse is the JSON body of every 4xx/5xx API reply.
type ErrorResponse struct {
	Message string `json:"message"`
}
