package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed operation. Every *Error carries exactly one Kind;
// there is no double classification and no unclassified passthrough.
type Kind string

const (
	// KindNetwork means the request never reached the server or the response
	// never arrived (timeout, DNS failure, connection reset).
	KindNetwork Kind = "network"

	// KindUnauthenticated maps HTTP 401. The session layer reacts to this;
	// the client never retries it.
	KindUnauthenticated Kind = "unauthenticated"

	// KindForbidden maps HTTP 403.
	KindForbidden Kind = "forbidden"

	// KindNotFound maps HTTP 404.
	KindNotFound Kind = "not_found"

	// KindValidation maps the remaining 4xx range. When the backend reports
	// structured per-field problems they are carried in Error.Fields.
	KindValidation Kind = "validation"

	// KindServer maps the 5xx range.
	KindServer Kind = "server"

	// KindMalformed means the response body could not be decoded as expected.
	KindMalformed Kind = "malformed"
)

// Error is the single error type surfaced by this package. It carries the
// transport status code and the backend-provided detail text when present.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	// Fields holds backend-reported per-field validation problems, keyed by
	// field name. Only populated for KindValidation.
	Fields map[string][]string

	cause error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf returns the classification of err, or the empty Kind when err is
// not an *Error from this package.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

// errorBody is the backend's error envelope. The detail text is always a
// human-readable message; errors is only present on validation failures.
type errorBody struct {
	Detail string              `json:"detail"`
	Errors map[string][]string `json:"errors"`
}

// classifyStatus maps a non-2xx response to an *Error per the taxonomy.
func classifyStatus(status int, body []byte) *Error {
	var parsed errorBody
	// Decode failures here are deliberate no-ops: an unreadable error body
	// still classifies by status code, with a generic message.
	_ = json.Unmarshal(body, &parsed)

	message := parsed.Detail
	if message == "" {
		message = http.StatusText(status)
	}

	switch {
	case status == http.StatusUnauthorized:
		return &Error{Kind: KindUnauthenticated, StatusCode: status, Message: message}
	case status == http.StatusForbidden:
		return &Error{Kind: KindForbidden, StatusCode: status, Message: message}
	case status == http.StatusNotFound:
		return &Error{Kind: KindNotFound, StatusCode: status, Message: message}
	case status >= 400 && status < 500:
		return &Error{Kind: KindValidation, StatusCode: status, Message: message, Fields: parsed.Errors}
	default:
		return &Error{Kind: KindServer, StatusCode: status, Message: message}
	}
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: err.Error(), cause: err}
}

func malformedError(err error) *Error {
	return &Error{Kind: KindMalformed, Message: "unexpected response body: " + err.Error(), cause: err}
}
