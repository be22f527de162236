package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/rileyhilliard/rammon/internal/errors"
	"github.com/rileyhilliard/rammon/internal/monitor"
)

// MemorySourceCheck takes one sample from the memory source.
type MemorySourceCheck struct {
	Source  monitor.Source
	Timeout time.Duration
}

func (c *MemorySourceCheck) Name() string     { return "memory_source" }
func (c *MemorySourceCheck) Category() string { return CategoryMemory }

func (c *MemorySourceCheck) Run() CheckResult {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	snap, err := c.Source.Sample(ctx)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    errors.Short(err),
			Suggestion: "The dashboard cannot show usage without a working memory source",
		}
	}

	if snap.RAM.Total == 0 {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "Memory source reported 0 bytes of RAM",
		}
	}

	msg := fmt.Sprintf("RAM %.1fGB / %.1fGB (%.1f%%)", snap.RAM.UsedGB(), snap.RAM.TotalGB(), snap.RAM.Percent())
	if snap.HasSwap() {
		msg += fmt.Sprintf(", page file %.1fGB / %.1fGB", snap.Swap.UsedGB(), snap.Swap.TotalGB())
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: msg,
	}
}

func (c *MemorySourceCheck) Fix() error {
	return nil
}
