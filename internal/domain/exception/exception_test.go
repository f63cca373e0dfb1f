package exception

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"testing"

	"task-list-api/pkg/msg"
)

func TestMain(m *testing.M) {
	if err := msg.Init("../../../configs/messages.yml"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *Exception
		wantStatus int
		wantText   string
	}{
		{"invalid identifier", InvalidIdentifier("task", "abc"), http.StatusBadRequest, "task abc invalid, id must be integer"},
		{"not found", NotFound("goal", int64(7)), http.StatusNotFound, "goal 7 not found"},
		{"invalid payload", InvalidPayload(), http.StatusBadRequest, "Invalid data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", tt.err.StatusCode, tt.wantStatus)
			}
			if tt.err.Error() != tt.wantText {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantText)
			}
		})
	}
}

func TestKindPredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", NotFound("task", 1))

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound() = false for a wrapped NotFound")
	}
	if IsInvalidIdentifier(wrapped) || IsInvalidPayload(wrapped) {
		t.Error("a NotFound must not match other kinds")
	}
	if StatusCode(wrapped) != http.StatusNotFound {
		t.Errorf("StatusCode() = %d", StatusCode(wrapped))
	}
	if StatusCode(errors.New("plain")) != http.StatusInternalServerError {
		t.Error("plain errors map to 500")
	}
}
