package monitor

import (
	"context"
	"testing"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemSource_Sample(t *testing.T) {
	snap, err := NewSystemSource().Sample(context.Background())

	require.NoError(t, err)
	assert.Greater(t, snap.RAM.Total, uint64(0))
	assert.LessOrEqual(t, snap.RAM.Used, snap.RAM.Total)
	assert.False(t, snap.At.IsZero())
}

func TestUsedBytes(t *testing.T) {
	tests := []struct {
		name string
		vm   mem.VirtualMemoryStat
		want uint64
	}{
		{"from available", mem.VirtualMemoryStat{Total: 100, Available: 30, Used: 50}, 70},
		{"available unknown", mem.VirtualMemoryStat{Total: 100, Used: 50}, 50},
		{"available out of range", mem.VirtualMemoryStat{Total: 100, Available: 200, Used: 50}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usedBytes(&tt.vm))
		})
	}
}

func TestUsage_Percent(t *testing.T) {
	assert.Equal(t, 0.0, Usage{}.Percent())
	assert.Equal(t, 25.0, Usage{Used: 1, Total: 4}.Percent())
	assert.InDelta(t, 2.0, Usage{Used: 2 * gib, Total: 4 * gib}.UsedGB(), 1e-9)
	assert.False(t, Snapshot{}.HasSwap())
	assert.True(t, Snapshot{Swap: Usage{Total: 1}}.HasSwap())
}
