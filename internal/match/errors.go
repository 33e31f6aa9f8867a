package match

import (
	"errors"
	"fmt"
)

// ErrMissingPainPoint is returned by Scorer.Suggest when the request has no pain point.
// It is reported to the caller as an ErrorResult rather than aborting.
var ErrMissingPainPoint = errors.New("Input JSON must contain a 'pain_point' field.")

// InputError reports a request that is absent, unreadable or cannot be decoded.
type InputError struct {
	Err error
}

func (e *InputError) Error() string { return fmt.Sprintf("invalid request: %v", e.Err) }

func (e *InputError) Unwrap() error { return e.Err }
