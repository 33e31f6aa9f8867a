package match

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// requestPayload is the wire form of a Request. Context values are decoded lazily so
// keys other than industry may hold any JSON value.
type requestPayload struct {
	PainPoint string                     `json:"pain_point"`
	Context   map[string]json.RawMessage `json:"context"`
}

// DecodeRequest reads a single JSON request object from r.
//
// Empty input, malformed JSON and non-object payloads are returned as *InputError, as
// is a context.industry that is not a string. Other context keys are kept only when
// their value is a string. A missing pain_point is not a decode error; Scorer.Suggest
// reports it.
func DecodeRequest(r io.Reader) (Request, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Request{}, &InputError{Err: err}
	}
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return Request{}, &InputError{Err: errors.New("no input provided")}
	}
	if b[0] != '{' {
		return Request{}, &InputError{Err: errors.New("request must be a JSON object")}
	}
	var p requestPayload
	if err := json.Unmarshal(b, &p); err != nil {
		return Request{}, &InputError{Err: err}
	}

	req := Request{PainPoint: p.PainPoint}
	for k, raw := range p.Context {
		var v string
		if bytes.Equal(raw, []byte("null")) || json.Unmarshal(raw, &v) != nil {
			if k == ContextIndustry {
				return Request{}, &InputError{Err: fmt.Errorf("context.%s must be a string", k)}
			}
			continue
		}
		if req.Context == nil {
			req.Context = make(map[string]string, len(p.Context))
		}
		req.Context[k] = v
	}
	return req, nil
}
