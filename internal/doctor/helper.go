package doctor

import (
	"context"
	"fmt"
	"runtime"
	"time"
)

// HelperInstaller is the part of the RAMMap helper the checks need.
type HelperInstaller interface {
	Path() string
	Installed() bool
	EnsureAvailable(ctx context.Context) error
}

// HelperPlatformCheck warns when the host cannot run RAMMap at all.
type HelperPlatformCheck struct {
	// GOOS defaults to runtime.GOOS.
	GOOS string
}

func (c *HelperPlatformCheck) Name() string     { return "helper_platform" }
func (c *HelperPlatformCheck) Category() string { return CategoryHelper }

func (c *HelperPlatformCheck) Run() CheckResult {
	goos := c.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	if goos != "windows" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("RAMMap only runs on Windows (this is %s)", goos),
			Suggestion: "Monitoring works here; memory actions will fail to start",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Windows host",
	}
}

func (c *HelperPlatformCheck) Fix() error {
	return nil
}

// HelperInstalledCheck verifies the RAMMap executable is present. Fix
// downloads it.
type HelperInstalledCheck struct {
	Helper  HelperInstaller
	Timeout time.Duration
}

func (c *HelperInstalledCheck) Name() string     { return "helper_installed" }
func (c *HelperInstalledCheck) Category() string { return CategoryHelper }

func (c *HelperInstalledCheck) Run() CheckResult {
	if !c.Helper.Installed() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("RAMMap not found at %s", c.Helper.Path()),
			Suggestion: "It is downloaded on first use, or run 'rammon doctor --fix' to fetch it now",
			Fixable:    true,
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("RAMMap: %s", c.Helper.Path()),
	}
}

func (c *HelperInstalledCheck) Fix() error {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return c.Helper.EnsureAvailable(ctx)
}

// NewHelperChecks creates all helper-related checks.
func NewHelperChecks(h HelperInstaller) []Check {
	return []Check{
		&HelperPlatformCheck{},
		&HelperInstalledCheck{Helper: h},
	}
}
