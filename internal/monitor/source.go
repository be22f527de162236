package monitor

import (
	"context"
	"time"

	"github.com/rileyhilliard/rammon/internal/errors"
	"github.com/shirou/gopsutil/v3/mem"
)

// Source produces memory snapshots.
type Source interface {
	Sample(ctx context.Context) (Snapshot, error)
}

// SystemSource samples the local host through gopsutil.
type SystemSource struct{}

// NewSystemSource returns a Source for the local host.
func NewSystemSource() *SystemSource {
	return &SystemSource{}
}

// Sample reads physical memory and swap usage. A swap read failure is not
// an error; the snapshot simply reports no swap.
func (s *SystemSource) Sample(ctx context.Context) (Snapshot, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Snapshot{}, errors.WrapWithCode(err, errors.ErrMetrics,
			"Failed to read memory usage",
			"Run 'rammon doctor' to check the memory source")
	}

	snap := Snapshot{
		RAM: Usage{Used: usedBytes(vm), Total: vm.Total},
		At:  time.Now(),
	}

	if sw, err := mem.SwapMemoryWithContext(ctx); err == nil {
		snap.Swap = Usage{Used: sw.Used, Total: sw.Total}
	}

	return snap, nil
}

// usedBytes counts everything not available to new allocations, which
// matches what the platform task managers report.
func usedBytes(vm *mem.VirtualMemoryStat) uint64 {
	if vm.Available > 0 && vm.Available <= vm.Total {
		return vm.Total - vm.Available
	}
	return vm.Used
}
