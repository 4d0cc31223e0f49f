package controller

import (
	"github.com/kenmoini/unifi-facts/internal/response"
)

// AckPayload is the payload for ok envelopes that carry no data array,
// such as command acknowledgements.
const AckPayload = "SUCCESS"

// QueryResult is the normalized outcome of one query.
type QueryResult struct {
	// IsError reports whether the controller answered with a failure
	// envelope or an unrecognizable response.
	IsError bool
	// HasChanged is always false: catalog queries never mutate
	// controller state. The field exists because consumers share this
	// result shape with mutating automation.
	HasChanged bool
	// Status is the HTTP status code of the response.
	Status int
	// Payload is the raw response body for data-carrying envelopes and
	// AckPayload for plain acknowledgements. On failures it carries the
	// raw body for the caller to relay.
	Payload string
}

// classify maps a query response to its QueryResult and error verdict.
// Failure results come back alongside their typed error so callers can
// pick either surface.
func classify(status int, body []byte) (*QueryResult, error) {
	env := response.Parse(body)

	switch env.Kind {
	case response.KindData:
		return &QueryResult{Status: status, Payload: string(body)}, nil
	case response.KindAck:
		return &QueryResult{Status: status, Payload: AckPayload}, nil
	case response.KindError:
		return &QueryResult{IsError: true, Status: status, Payload: string(body)},
			&APIError{Status: status, Message: env.Msg, Body: string(body)}
	default:
		return &QueryResult{IsError: true, Status: status, Payload: string(body)},
			&TransportError{Status: status, Body: string(body)}
	}
}
