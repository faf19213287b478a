package sma

const schemaVersion = "1.0"

// Response is the envelope returned to the platform for every event.
type Response struct {
	SchemaVersion string   `json:"SchemaVersion"`
	Actions       []Action `json:"Actions"`
}

// NewResponse wraps an action list in the response envelope. The platform
// expects Actions to be an array even when there is nothing to do.
func NewResponse(actions []Action) Response {
	if actions == nil {
		actions = []Action{}
	}
	return Response{
		SchemaVersion: schemaVersion,
		Actions:       actions,
	}
}
