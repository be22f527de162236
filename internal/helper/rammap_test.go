package helper

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rileyhilliard/rammon/internal/config"
	"github.com/rileyhilliard/rammon/internal/logger"
	"github.com/rileyhilliard/rammon/internal/monitor"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ monitor.Dispatcher = (*Helper)(nil)

func buildArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// archiveServer serves body after failing the first failures requests.
func archiveServer(t *testing.T, body []byte, failures int32, status int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := hits.Add(1)
		if n <= failures {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/zip")
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func newTestHelper(t *testing.T, url string, opts ...Option) (*Helper, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tools", "RAMMap64.exe")
	opts = append([]Option{WithRetry(3, time.Millisecond)}, opts...)
	return New(config.HelperConfig{Path: path, URL: url}, opts...), path
}

func TestNew_Defaults(t *testing.T) {
	h := New(config.HelperConfig{})

	def := config.DefaultConfig().Helper
	assert.Equal(t, def.Path, h.Path())
	assert.Equal(t, def.URL, h.url)
	assert.Equal(t, uint(defaultAttempts), h.attempts)
}

func TestEnsureAvailable_Downloads(t *testing.T) {
	body := buildArchive(t, map[string]string{
		"Eula.txt":     "terms",
		"RAMMap.exe":   "32-bit",
		"RAMMap64.exe": "64-bit",
	})
	srv, hits := archiveServer(t, body, 0, 0)
	log := logger.NewBufferLogger()
	h, path := newTestHelper(t, srv.URL, WithLogger(log))

	require.NoError(t, h.EnsureAvailable(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "64-bit", string(data))
	assert.NoFileExists(t, filepath.Join(filepath.Dir(path), tempArchiveName))
	assert.NoFileExists(t, path+".part")
	assert.True(t, h.Installed())
	assert.True(t, log.HasLevel("info"))

	// Present now, so no second download.
	require.NoError(t, h.EnsureAvailable(context.Background()))
	assert.Equal(t, int32(1), hits.Load())
}

func TestEnsureAvailable_AlreadyInstalled(t *testing.T) {
	srv, hits := archiveServer(t, nil, 0, 0)
	h, path := newTestHelper(t, srv.URL)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0o755))

	require.NoError(t, h.EnsureAvailable(context.Background()))

	assert.Equal(t, int32(0), hits.Load())
}

func TestEnsureAvailable_RetriesServerErrors(t *testing.T) {
	body := buildArchive(t, map[string]string{"RAMMap64.exe": "ok"})
	srv, hits := archiveServer(t, body, 2, http.StatusBadGateway)
	h, path := newTestHelper(t, srv.URL)

	require.NoError(t, h.EnsureAvailable(context.Background()))

	assert.Equal(t, int32(3), hits.Load())
	assert.FileExists(t, path)
}

func TestEnsureAvailable_GivesUpAfterAttempts(t *testing.T) {
	srv, hits := archiveServer(t, nil, 100, http.StatusServiceUnavailable)
	h, path := newTestHelper(t, srv.URL)

	err := h.EnsureAvailable(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Equal(t, int32(3), hits.Load())
	assert.NoFileExists(t, path)
}

func TestEnsureAvailable_ClientErrorNotRetried(t *testing.T) {
	srv, hits := archiveServer(t, nil, 100, http.StatusNotFound)
	h, _ := newTestHelper(t, srv.URL)

	err := h.EnsureAvailable(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Equal(t, int32(1), hits.Load())
}

func TestEnsureAvailable_MissingMember(t *testing.T) {
	body := buildArchive(t, map[string]string{"RAMMap.exe": "32-bit only"})
	srv, _ := archiveServer(t, body, 0, 0)
	h, path := newTestHelper(t, srv.URL)

	err := h.EnsureAvailable(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "RAMMap64.exe not found in archive")
	assert.NoFileExists(t, path)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(path), tempArchiveName))
}

func TestEnsureAvailable_NotAnArchive(t *testing.T) {
	srv, _ := archiveServer(t, []byte("<html>captive portal</html>"), 0, 0)
	h, path := newTestHelper(t, srv.URL)

	err := h.EnsureAvailable(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open archive")
	assert.NoFileExists(t, path)
}

func TestEnsureAvailable_BreakerOpens(t *testing.T) {
	srv, hits := archiveServer(t, nil, 100, http.StatusInternalServerError)
	h, _ := newTestHelper(t, srv.URL, WithRetry(1, time.Millisecond))

	for i := 0; i < 3; i++ {
		require.Error(t, h.EnsureAvailable(context.Background()))
	}
	require.Equal(t, int32(3), hits.Load())

	err := h.EnsureAvailable(context.Background())

	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(3), hits.Load(), "open breaker skips the network")
}

func TestEnsureAvailable_Cancelled(t *testing.T) {
	srv, _ := archiveServer(t, nil, 100, http.StatusInternalServerError)
	h, _ := newTestHelper(t, srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, h.EnsureAvailable(ctx))
}

func TestEnsureAvailable_Serialized(t *testing.T) {
	body := buildArchive(t, map[string]string{"RAMMap64.exe": "ok"})
	srv, hits := archiveServer(t, body, 0, 0)
	h, _ := newTestHelper(t, srv.URL)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, h.EnsureAvailable(context.Background()))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
}

func TestSpawn(t *testing.T) {
	var mu sync.Mutex
	var got [][]string
	starter := func(name string, args ...string) *exec.Cmd {
		mu.Lock()
		got = append(got, append([]string{name}, args...))
		mu.Unlock()
		// The test binary with no tests selected exits 0 immediately.
		return exec.Command(os.Args[0], "-test.run=^$")
	}
	h, path := newTestHelper(t, "http://unused", WithStarter(starter))

	require.NoError(t, h.Spawn(context.Background(), "-Et"))
	h.Wait()

	require.Len(t, got, 1)
	assert.Equal(t, []string{path, "-Et"}, got[0])
}

func TestSpawn_StartFailure(t *testing.T) {
	h, _ := newTestHelper(t, "http://unused")

	assert.Error(t, h.Spawn(context.Background(), "-Ew"))
}

func TestSpawn_CancelledContext(t *testing.T) {
	started := false
	h, _ := newTestHelper(t, "http://unused", WithStarter(func(string, ...string) *exec.Cmd {
		started = true
		return exec.Command(os.Args[0], "-test.run=^$")
	}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, h.Spawn(ctx, "-Ew"), context.Canceled)
	assert.False(t, started)
}

func TestExecute_ThroughHelper(t *testing.T) {
	srv, _ := archiveServer(t, nil, 100, http.StatusNotFound)
	h, _ := newTestHelper(t, srv.URL)

	err := monitor.Execute(context.Background(), h, 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to download RAMMap")
}
