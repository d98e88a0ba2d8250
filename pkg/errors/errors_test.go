package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidShapeType, "unrecognized shape type: %q", "triangle")

	if got := GetCode(err); got != ErrCodeInvalidShapeType {
		t.Errorf("GetCode = %s, want %s", got, ErrCodeInvalidShapeType)
	}
	if !strings.Contains(err.Error(), "triangle") {
		t.Errorf("Error = %q, want formatted args", err.Error())
	}
	if !strings.Contains(err.Error(), string(ErrCodeInvalidShapeType)) {
		t.Errorf("Error = %q, want code prefix", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(ErrCodeInternal, cause, "save document %s", "abc")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if got := GetCode(err); got != ErrCodeInternal {
		t.Errorf("GetCode = %s, want %s", got, ErrCodeInternal)
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Error = %q, want cause text", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeNotFound, "missing")

	if !Is(err, ErrCodeNotFound) {
		t.Error("Is failed on direct match")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is matched the wrong code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeNotFound) {
		t.Error("Is matched a plain error")
	}
	if Is(nil, ErrCodeNotFound) {
		t.Error("Is matched nil")
	}

	// Code survives a layer of fmt wrapping.
	wrapped := fmt.Errorf("context: %w", err)
	if !Is(wrapped, ErrCodeNotFound) {
		t.Error("Is failed through a %w wrapper")
	}
}

func TestGetCodePlainError(t *testing.T) {
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad value")
	if got := UserMessage(err); got != "bad value" {
		t.Errorf("UserMessage = %q, want %q", got, "bad value")
	}

	plain := fmt.Errorf("raw failure")
	if got := UserMessage(plain); got != "raw failure" {
		t.Errorf("UserMessage = %q, want %q", got, "raw failure")
	}
}

func TestValidateDocumentID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"Valid", "my-document-1", false},
		{"ValidUUID", "4f2d9c1e-8b6a-4f6e-9d3c-2a1b0c9d8e7f", false},
		{"Empty", "", true},
		{"TooLong", strings.Repeat("a", 129), true},
		{"MaxLength", strings.Repeat("a", 128), false},
		{"PathTraversal", "../etc/passwd", true},
		{"ForwardSlash", "a/b", true},
		{"Backslash", `a\b`, true},
		{"ControlChar", "doc\x01", true},
		{"Newline", "doc\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocumentID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDocumentID(%q) = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidInput {
				t.Errorf("code = %s, want %s", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}
