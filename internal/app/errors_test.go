package app

import (
	"errors"
	"testing"
)

func TestOperationError(t *testing.T) {
	base := errors.New("disk full")

	tests := []struct {
		err      *OperationError
		expected string
	}{
		{NewOperationError("save", "/tmp/a.txt", base), "save /tmp/a.txt: disk full"},
		{NewOperationError("save", "", base), "save: disk full"},
		{NewOperationError("open", "a.txt", nil), "open a.txt"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}

	if !errors.Is(NewOperationError("save", "a", base), base) {
		t.Error("expected OperationError to unwrap to its cause")
	}

	var nilErr *OperationError
	if nilErr.Error() != "" || nilErr.Unwrap() != nil {
		t.Error("nil OperationError should be empty")
	}
}

func TestInitError(t *testing.T) {
	base := errors.New("no tty")
	err := &InitError{Component: "backend", Err: base}

	if err.Error() != "init backend: no tty" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("expected InitError to unwrap to its cause")
	}
}
