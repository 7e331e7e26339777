package pocket

import (
	"errors"
	"fmt"
)

var (
	ErrListFailed         = errors.New("failed to list Pocket articles")
	ErrMissingAccessToken = errors.New("pocket access token missing (authenticate first)")
	ErrMissingConsumerKey = errors.New("pocket consumer key missing")
	ErrEncodeRequest      = errors.New("JSON serialization failed")
	ErrTransport          = errors.New("request failed")
	ErrHTTPStatus         = errors.New("unexpected HTTP status")
	ErrDecodeResponse     = errors.New("response is not valid UTF-8")
	ErrParseResponse      = errors.New("JSON parsing failed")
)

// ListError is the single classification every list failure is reported
// under. errors.Is matches both ErrListFailed and the underlying cause.
type ListError struct {
	Err error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("%v: %v", ErrListFailed, e.Err)
}

func (e *ListError) Unwrap() []error {
	return []error{ErrListFailed, e.Err}
}

// Failed wraps err as a ListError. It returns nil for a nil err and leaves an
// existing ListError alone.
func Failed(err error) error {
	if err == nil {
		return nil
	}
	var le *ListError
	if errors.As(err, &le) {
		return err
	}
	return &ListError{Err: err}
}

// StatusError reports a non-2xx reply from Pocket.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("pocket API %d", e.Code)
	}
	return fmt.Sprintf("pocket API %d: %s", e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrHTTPStatus
}
