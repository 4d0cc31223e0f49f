package cli

import (
	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/kenmoini/unifi-facts/api/controller"
)

// queryOutput is the stdout contract: the flat result shape host
// automation consumes.
type queryOutput struct {
	Changed bool            `json:"changed"`
	Failed  bool            `json:"failed"`
	Msg     string          `json:"msg,omitempty"`
	Status  int             `json:"status"`
	Data    json.RawMessage `json:"data"`
}

// renderResult serializes result for stdout. JSON payloads embed as
// raw JSON; anything else (the SUCCESS acknowledgement, HTML error
// pages) becomes a JSON string.
func renderResult(result *controller.QueryResult) ([]byte, error) {
	out := queryOutput{
		Changed: result.HasChanged,
		Failed:  result.IsError,
		Status:  result.Status,
		Data:    payloadJSON(result.Payload),
	}
	if result.IsError {
		out.Msg = "Error"
	}
	return json.MarshalIndent(out, "", "  ")
}

func payloadJSON(payload string) json.RawMessage {
	if gjson.Valid(payload) {
		return json.RawMessage(payload)
	}
	quoted, err := json.Marshal(payload)
	if err != nil {
		return json.RawMessage(`""`)
	}
	return quoted
}
