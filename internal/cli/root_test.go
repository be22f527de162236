package cli

import (
	"bytes"
	"errors"
	"testing"

	rmerrors "github.com/rileyhilliard/rammon/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsUnknownCommandError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unknown command error",
			err:  errors.New(`unknown command "foo" for "rammon"`),
			want: true,
		},
		{
			name: "unknown flag error",
			err:  errors.New(`unknown flag: --foo`),
			want: true,
		},
		{
			name: "other error",
			err:  errors.New("connection failed"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				// Can't call isUnknownCommandError with nil
				return
			}
			got := isUnknownCommandError(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractUnknownCommand(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "standard cobra format",
			err:  errors.New(`unknown command "foo" for "rammon"`),
			want: "foo",
		},
		{
			name: "task name",
			err:  errors.New(`unknown command "test" for "rammon"`),
			want: "test",
		},
		{
			name: "command with hyphen",
			err:  errors.New(`unknown command "my-task" for "rammon"`),
			want: "my-task",
		},
		{
			name: "no quotes returns empty",
			err:  errors.New("unknown command foo"),
			want: "",
		},
		{
			name: "single quote returns empty",
			err:  errors.New(`unknown command "foo`),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractUnknownCommand(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrintError(t *testing.T) {
	plainOutput(t)

	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "structured error",
			err:      rmerrors.New(rmerrors.ErrTerminal, "The dashboard needs an interactive terminal", "Run rammon directly"),
			contains: []string{"The dashboard needs an interactive terminal", "Run rammon directly"},
		},
		{
			name:     "unknown command",
			err:      errors.New(`unknown command "foo" for "rammon"`),
			contains: []string{`Unknown command "foo"`, "rammon --help"},
		},
		{
			name:     "plain error",
			err:      errors.New("disk full"),
			contains: []string{"disk full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printError(&buf, tt.err)
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"run", "actions", "config", "doctor", "version"} {
		assert.True(t, names[want], "missing %s", want)
	}
}
