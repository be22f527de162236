package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrHelper,
		ErrDispatch,
		ErrMetrics,
		ErrTerminal,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid threshold in config.yaml",
			suggestion: "Pick a value between 20 and 95",
		},
		{
			name:       "helper error",
			code:       ErrHelper,
			message:    "RAMMap64.exe could not be downloaded",
			suggestion: "Check your network connection",
		},
		{
			name:       "terminal error",
			code:       ErrTerminal,
			message:    "stdout is not a terminal",
			suggestion: "Run rammon from an interactive shell",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
	}{
		{
			name:          "message and suggestion",
			err:           New(ErrConfig, "Invalid configuration", "Check config.yaml syntax"),
			expectedParts: []string{"✗", "Invalid configuration", "Check config.yaml syntax"},
		},
		{
			name:          "without suggestion",
			err:           New(ErrDispatch, "Spawn failed", ""),
			expectedParts: []string{"✗ Spawn failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()
			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part)
			}
		})
	}
}

func TestErrorMessageStructure(t *testing.T) {
	err := WrapWithCode(
		errors.New("dial tcp: i/o timeout"),
		ErrHelper,
		"Couldn't download RAMMap",
		"Check your network connection",
	)

	lines := strings.Split(err.Error(), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "✗"))
	assert.Contains(t, lines[0], "Couldn't download RAMMap")
	assert.Contains(t, err.Error(), "dial tcp: i/o timeout")
}

func TestWrap(t *testing.T) {
	cause := errors.New("zip: not a valid zip file")
	wrapped := Wrap(cause, "Archive unreadable")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrHelper, wrapped.Code, "Wrap should default to ErrHelper code")
	assert.Equal(t, cause, wrapped.Cause)
	assert.True(t, errors.Is(wrapped, cause))
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "Config error", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrHelper))
	assert.False(t, IsCode(errors.New("standard error"), ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))
	assert.True(t, IsCode(fmt.Errorf("outer: %w", err), ErrConfig))
}

func TestShort(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain", err: errors.New("exec: not found"), want: "exec: not found"},
		{name: "multi-line plain", err: errors.New("first\n  second"), want: "first second"},
		{name: "structured without cause", err: New(ErrHelper, "Helper missing", "Run rammon doctor"), want: "Helper missing"},
		{
			name: "structured with structured cause",
			err:  WrapWithCode(New(ErrHelper, "Download failed", "x"), ErrDispatch, "Couldn't prepare helper", "y"),
			want: "Couldn't prepare helper: Download failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Short(tt.err))
		})
	}
}
