package service

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// ErrMissingAPIKey is returned when the service is constructed without a credential
var ErrMissingAPIKey = errors.New("spoonacular API key is required: set SPOONACULAR_API_KEY")

// Kind classifies a failed upstream call
type Kind int

const (
	// KindUpstream covers transport failures and unexpected upstream statuses
	KindUpstream Kind = iota
	KindUnauthorized
	KindQuotaExceeded
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindQuotaExceeded:
		return "quota_exceeded"
	case KindNotFound:
		return "not_found"
	default:
		return "upstream_error"
	}
}

const (
	msgUnauthorized  = "Unauthorized: Invalid API key"
	msgQuotaExceeded = "Payment Required: API quota exceeded"
	msgNotFound      = "Not Found: Recipe or ingredient not found"
)

// UpstreamError is a failed call to the recipe API
type UpstreamError struct {
	Kind Kind
	// StatusCode is the upstream HTTP status, 0 when no response was received
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an UpstreamError of the given kind
func IsKind(err error, kind Kind) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr) && upstreamErr.Kind == kind
}

// statusError reports an upstream exchange that completed with a non-2xx status
type statusError struct {
	StatusCode int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

// classifyError maps a failed upstream exchange onto an UpstreamError.
// Errors that are neither an upstream status nor a transport failure are
// returned unchanged.
func classifyError(err error, prefix string) error {
	var se *statusError
	if errors.As(err, &se) {
		switch se.StatusCode {
		case http.StatusUnauthorized:
			return &UpstreamError{Kind: KindUnauthorized, StatusCode: se.StatusCode, Message: msgUnauthorized, Err: err}
		case http.StatusPaymentRequired:
			return &UpstreamError{Kind: KindQuotaExceeded, StatusCode: se.StatusCode, Message: msgQuotaExceeded, Err: err}
		case http.StatusNotFound:
			return &UpstreamError{Kind: KindNotFound, StatusCode: se.StatusCode, Message: msgNotFound, Err: err}
		}
		return &UpstreamError{
			Kind:       KindUpstream,
			StatusCode: se.StatusCode,
			Message:    fmt.Sprintf("%s: %s", prefix, se.Error()),
			Err:        err,
		}
	}

	// url.Error carries the request URL, which holds the API key.
	// Only the underlying cause goes into the message.
	var ue *url.Error
	if errors.As(err, &ue) {
		return &UpstreamError{
			Kind:    KindUpstream,
			Message: fmt.Sprintf("%s: %s", prefix, ue.Err.Error()),
			Err:     ue.Err,
		}
	}

	return err
}
