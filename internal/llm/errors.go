package llm

import (
	"errors"
	"fmt"
)

// ErrorKind distinguishes upstream failures the user can act on differently.
type ErrorKind int

const (
	// KindUnreachable means the request never got a response
	KindUnreachable ErrorKind = iota
	// KindBadRequest is a 400: malformed request or invalid API key
	KindBadRequest
	// KindForbidden is a 403: key lacks access or quota is exhausted
	KindForbidden
	// KindRateLimited is a 429
	KindRateLimited
	// KindBadResponse means a 2xx arrived without the expected body shape
	KindBadResponse
	// KindUpstream is any other non-2xx status
	KindUpstream
)

// UpstreamError is a transport or HTTP failure from the completion service.
// Malformed-but-successful completions are not upstream errors; the question
// generator handles those locally.
type UpstreamError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsUpstream reports whether err is (or wraps) an UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// errFromStatus maps a non-2xx status to a short, specific message so the
// user can take corrective action.
func errFromStatus(status int) *UpstreamError {
	switch status {
	case 400:
		return &UpstreamError{
			Kind:    KindBadRequest,
			Status:  status,
			Message: "invalid API key or request format",
		}
	case 403:
		return &UpstreamError{
			Kind:    KindForbidden,
			Status:  status,
			Message: "API key access denied or quota exceeded",
		}
	case 429:
		return &UpstreamError{
			Kind:    KindRateLimited,
			Status:  status,
			Message: "rate limit exceeded, try again later",
		}
	default:
		return &UpstreamError{
			Kind:    KindUpstream,
			Status:  status,
			Message: fmt.Sprintf("AI service request failed with status %d", status),
		}
	}
}
