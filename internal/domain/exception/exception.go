package exception

import (
	"errors"
	"net/http"

	"task-list-api/pkg/msg"
)

// Kind classifies the failures a request can end with.
type Kind string

const (
	KindInvalidIdentifier Kind = "invalid_identifier"
	KindNotFound          Kind = "not_found"
	KindInvalidPayload    Kind = "invalid_payload"
)

// Exception is an error that already knows its HTTP status and body.
// Details is set for payload failures and Message for everything else.
type Exception struct {
	Kind       Kind
	Message    string
	Details    string
	StatusCode int
}

func (e *Exception) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Details
}

// Is matches exceptions of the same kind, so callers can test with
// errors.Is(err, &Exception{Kind: KindNotFound}).
func (e *Exception) Is(target error) bool {
	var other *Exception
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// InvalidIdentifier is returned when resource ids are not integers.
func InvalidIdentifier(resource string, raw any) *Exception {
	return &Exception{
		Kind:       KindInvalidIdentifier,
		Message:    msg.GetMessage(resource+".error.invalid-id", raw),
		StatusCode: http.StatusBadRequest,
	}
}

// NotFound is returned when a well-formed id matches no row.
func NotFound(resource string, id any) *Exception {
	return &Exception{
		Kind:       KindNotFound,
		Message:    msg.GetMessage(resource+".error.not-found", id),
		StatusCode: http.StatusNotFound,
	}
}

// InvalidPayload is returned when required request body keys are absent.
func InvalidPayload() *Exception {
	return &Exception{
		Kind:       KindInvalidPayload,
		Details:    msg.GetMessage("request.error.invalid-data"),
		StatusCode: http.StatusBadRequest,
	}
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	return errors.Is(err, &Exception{Kind: KindNotFound})
}

func IsInvalidIdentifier(err error) bool {
	return errors.Is(err, &Exception{Kind: KindInvalidIdentifier})
}

func IsInvalidPayload(err error) bool {
	return errors.Is(err, &Exception{Kind: KindInvalidPayload})
}
