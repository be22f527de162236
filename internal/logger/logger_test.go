package logger

import (
	"bytes"
	"log"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestEnvLogger_Debug(t *testing.T) {
	tests := []struct {
		name      string
		envValue  string
		expectLog bool
	}{
		{name: "logs when RAMMON_DEBUG is set", envValue: "1", expectLog: true},
		{name: "logs when RAMMON_DEBUG is any value", envValue: "true", expectLog: true},
		{name: "silent when RAMMON_DEBUG is empty", envValue: "", expectLog: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)
			t.Setenv(DebugEnv, tt.envValue)

			l := NewEnvLogger("[test]")
			l.Debug("test message %s", "arg")

			if tt.expectLog {
				assert.Contains(t, buf.String(), "[test] test message arg")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestEnvLogger_Levels(t *testing.T) {
	buf := captureLog(t)

	l := NewEnvLogger("[helper]")
	l.Info("downloaded %d bytes", 42)
	l.Warn("slow mirror")
	l.Error("spawn failed")

	out := buf.String()
	assert.Contains(t, out, "[helper] downloaded 42 bytes")
	assert.Contains(t, out, "[helper] WARN: slow mirror")
	assert.Contains(t, out, "[helper] ERROR: spawn failed")
}

func TestNoopLogger(t *testing.T) {
	buf := captureLog(t)

	l := Noop()
	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")

	assert.Empty(t, buf.String())
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("debug %s", "msg")
	l.Info("info %s", "msg")
	l.Warn("warn %s", "msg")
	l.Error("error %s", "msg")

	msgs := l.Snapshot()
	require.Len(t, msgs, 4)
	assert.Equal(t, LogMessage{Level: "debug", Message: "debug msg"}, msgs[0])
	assert.Equal(t, LogMessage{Level: "error", Message: "error msg"}, msgs[3])

	assert.True(t, l.HasLevel("warn"))
	l.Clear()
	assert.False(t, l.HasLevel("warn"))
	assert.Empty(t, l.Snapshot())
}

func TestBufferLogger_Concurrent(t *testing.T) {
	l := NewBufferLogger()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Info("worker %d", i)
		}(i)
	}
	wg.Wait()

	assert.Len(t, l.Snapshot(), 20)
}

func TestDefault(t *testing.T) {
	original := defaultLogger
	defer func() { defaultLogger = original }()

	assert.NotNil(t, Default())

	buf := NewBufferLogger()
	SetDefault(buf)
	assert.Equal(t, buf, Default())
}

func TestDebugEnabled(t *testing.T) {
	t.Setenv(DebugEnv, "")
	assert.False(t, DebugEnabled())

	t.Setenv(DebugEnv, "1")
	assert.True(t, DebugEnabled())
}
