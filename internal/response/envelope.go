// Package response interprets controller API response envelopes.
// Every classic API endpoint wraps its result in
// {"meta":{"rc":...,"msg":...},"data":[...]} regardless of the resource.
package response

import "github.com/tidwall/gjson"

// Kind classifies a response body against the envelope contract.
type Kind int

const (
	// KindMalformed marks bodies that are not valid JSON or carry no meta.rc string.
	KindMalformed Kind = iota
	// KindData marks rc=="ok" envelopes whose data field is an array, even an empty one.
	KindData
	// KindAck marks rc=="ok" envelopes without a data array (command acknowledgements).
	KindAck
	// KindError marks envelopes with rc != "ok".
	KindError
)

// Envelope is the parsed verdict over a response body.
// The data payload itself is never bound here: its shape varies per
// endpoint and callers forward the raw body instead.
type Envelope struct {
	Kind Kind
	RC   string
	Msg  string
}

// OK reports whether the envelope signals success (rc == "ok").
func (e Envelope) OK() bool {
	return e.Kind == KindData || e.Kind == KindAck
}

// Parse classifies body against the {meta:{rc,msg},data} envelope.
func Parse(body []byte) Envelope {
	if !gjson.ValidBytes(body) {
		return Envelope{Kind: KindMalformed}
	}

	rc := gjson.GetBytes(body, "meta.rc")
	if rc.Type != gjson.String {
		return Envelope{Kind: KindMalformed}
	}

	if rc.Str != "ok" {
		return Envelope{
			Kind: KindError,
			RC:   rc.Str,
			Msg:  gjson.GetBytes(body, "meta.msg").String(),
		}
	}

	if gjson.GetBytes(body, "data").IsArray() {
		return Envelope{Kind: KindData, RC: rc.Str}
	}

	return Envelope{Kind: KindAck, RC: rc.Str}
}
