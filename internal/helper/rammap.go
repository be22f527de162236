package helper

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go/v5"
	"github.com/rileyhilliard/rammon/internal/config"
	"github.com/rileyhilliard/rammon/internal/logger"
	"github.com/sony/gobreaker"
)

// tempArchiveName is the download target, created next to the executable.
const tempArchiveName = "rammap_temp.zip"

const (
	defaultAttempts   = 3
	defaultRetryDelay = 500 * time.Millisecond
)

// Option customizes a Helper.
type Option func(*Helper)

// WithHTTPClient replaces the client used for downloads.
func WithHTTPClient(c *http.Client) Option {
	return func(h *Helper) { h.client = c }
}

// WithLogger sets the debug logger.
func WithLogger(l logger.Logger) Option {
	return func(h *Helper) { h.logger = l }
}

// WithRetry sets the number of download attempts and the base delay between them.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(h *Helper) {
		h.attempts = attempts
		h.delay = delay
	}
}

// WithStarter replaces process creation, for tests.
func WithStarter(start func(name string, args ...string) *exec.Cmd) Option {
	return func(h *Helper) { h.command = start }
}

// Helper downloads RAMMap on demand and spawns it with an action switch.
// It is safe for concurrent use; acquisition is serialized.
type Helper struct {
	path   string
	url    string
	client *http.Client
	logger logger.Logger

	attempts uint
	delay    time.Duration
	breaker  *gobreaker.CircuitBreaker
	command  func(name string, args ...string) *exec.Cmd

	mu sync.Mutex
	wg sync.WaitGroup
}

// New creates a Helper for the given helper config. An empty path or URL
// falls back to the defaults.
func New(cfg config.HelperConfig, opts ...Option) *Helper {
	def := config.DefaultConfig().Helper
	if strings.TrimSpace(cfg.Path) == "" {
		cfg.Path = def.Path
	}
	if strings.TrimSpace(cfg.URL) == "" {
		cfg.URL = def.URL
	}

	h := &Helper{
		path:     cfg.Path,
		url:      cfg.URL,
		client:   &http.Client{},
		logger:   logger.Noop(),
		attempts: defaultAttempts,
		delay:    defaultRetryDelay,
		command:  exec.Command,
	}
	for _, opt := range opts {
		opt(h)
	}

	h.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "rammap-download",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			h.logger.Warn("%s breaker %s -> %s", name, from, to)
		},
	})

	return h
}

// Path returns where the executable is expected.
func (h *Helper) Path() string {
	return h.path
}

// Installed reports whether the executable is present.
func (h *Helper) Installed() bool {
	info, err := os.Stat(h.path)
	return err == nil && !info.IsDir()
}

// EnsureAvailable downloads and extracts the executable if it is missing.
func (h *Helper) EnsureAvailable(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.Installed() {
		return nil
	}

	binary := filepath.Base(h.path)
	h.logger.Info("%s not found, downloading %s", binary, h.url)

	_, err := h.breaker.Execute(func() (interface{}, error) {
		return nil, h.acquire(ctx)
	})
	if err != nil {
		return err
	}

	h.logger.Info("downloaded %s to %s", binary, h.path)
	return nil
}

// acquire downloads the archive with retries and extracts the executable.
func (h *Helper) acquire(ctx context.Context) error {
	dir := filepath.Dir(h.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	archive := filepath.Join(dir, tempArchiveName)
	defer os.Remove(archive)

	r := retry.New(
		retry.Context(ctx),
		retry.Attempts(h.attempts),
		retry.Delay(h.delay),
		retry.LastErrorOnly(true),
	)
	err := r.Do(func() error {
		return h.download(ctx, archive)
	})
	if err != nil {
		return err
	}

	return extract(archive, filepath.Base(h.path), h.path)
}

// download fetches the archive to dest.
func (h *Helper) download(ctx context.Context, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return retry.Unrecoverable(fmt.Errorf("build request: %w", err))
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", h.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("fetch %s: %s", h.url, resp.Status)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return retry.Unrecoverable(err)
		}
		return err
	}

	f, err := os.Create(dest)
	if err != nil {
		return retry.Unrecoverable(fmt.Errorf("create %s: %w", dest, err))
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return f.Close()
}

// extract copies the archive member named name to dest. The member is
// written to a sibling file first and renamed into place.
func extract(archive, name, dest string) error {
	zr, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if filepath.Base(f.Name) != name || f.FileInfo().IsDir() {
			continue
		}

		src, err := f.Open()
		if err != nil {
			return fmt.Errorf("open %s in archive: %w", name, err)
		}
		defer src.Close()

		tmp := dest + ".part"
		out, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o755)
		if err != nil {
			return fmt.Errorf("create %s: %w", tmp, err)
		}
		if _, err := io.Copy(out, src); err != nil {
			out.Close()
			os.Remove(tmp)
			return fmt.Errorf("extract %s: %w", name, err)
		}
		if err := out.Close(); err != nil {
			os.Remove(tmp)
			return err
		}
		return os.Rename(tmp, dest)
	}

	return fmt.Errorf("%s not found in archive", name)
}

// Spawn starts the executable with parameter and returns once the process
// has started. The process is reaped in the background.
func (h *Helper) Spawn(ctx context.Context, parameter string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cmd := h.command(h.path, parameter)
	if err := cmd.Start(); err != nil {
		return err
	}

	h.logger.Debug("spawned %s %s (pid %d)", h.path, parameter, cmd.Process.Pid)

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		if err := cmd.Wait(); err != nil {
			h.logger.Warn("%s %s exited: %v", filepath.Base(h.path), parameter, err)
		}
	}()
	return nil
}

// Wait blocks until every spawned process has exited.
func (h *Helper) Wait() {
	h.wg.Wait()
}
