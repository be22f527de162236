package monitor

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/rileyhilliard/rammon/internal/action"
	"github.com/rileyhilliard/rammon/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	d := &fakeDispatcher{}

	require.NoError(t, Execute(context.Background(), d, action.EmptyStandbyList))
	assert.Equal(t, []string{"-Et"}, d.spawned())
}

func TestExecute_Codes(t *testing.T) {
	cause := stderrors.New("nope")

	err := Execute(context.Background(), &fakeDispatcher{ensureErr: cause}, action.Default)
	assert.True(t, errors.IsCode(err, errors.ErrHelper))
	assert.True(t, errors.Is(err, cause))

	err = Execute(context.Background(), &fakeDispatcher{spawnErr: cause}, action.Default)
	assert.True(t, errors.IsCode(err, errors.ErrDispatch))
}

func TestExecute_SkipsSpawnWhenUnavailable(t *testing.T) {
	d := &fakeDispatcher{ensureErr: stderrors.New("offline")}

	_ = Execute(context.Background(), d, action.Default)

	assert.Empty(t, d.spawned())
}

func TestExecuteWithProgress_Phases(t *testing.T) {
	tests := []struct {
		name string
		d    *fakeDispatcher
		want []Phase
	}{
		{"success", &fakeDispatcher{}, []Phase{PhaseAcquire, PhaseSpawn}},
		{"download fails", &fakeDispatcher{ensureErr: stderrors.New("offline")}, []Phase{PhaseAcquire}},
		{"spawn fails", &fakeDispatcher{spawnErr: stderrors.New("denied")}, []Phase{PhaseAcquire, PhaseSpawn}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen []Phase
			_ = ExecuteWithProgress(context.Background(), tt.d, action.Default, func(p Phase) {
				seen = append(seen, p)
			})
			assert.Equal(t, tt.want, seen)
		})
	}
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "preparing RAMMap", PhaseAcquire.String())
	assert.Equal(t, "starting RAMMap64", PhaseSpawn.String())
	assert.Equal(t, "unknown", Phase(9).String())
}

func TestDispatchCmd_SingleResult(t *testing.T) {
	msgs := drain(dispatchCmd(&fakeDispatcher{}, action.EmptySystemWorkingSets, time.Second))

	require.Len(t, msgs, 1)
	res, ok := msgs[0].(dispatchResultMsg)
	require.True(t, ok)
	assert.Equal(t, action.EmptySystemWorkingSets, res.action)
	assert.NoError(t, res.err)
}

func TestDispatchCmd_RecoversPanic(t *testing.T) {
	msgs := drain(dispatchCmd(&fakeDispatcher{panicWith: "kaboom"}, action.Default, time.Second))

	require.Len(t, msgs, 1)
	res := msgs[0].(dispatchResultMsg)
	require.Error(t, res.err)
	assert.Contains(t, errors.Short(res.err), "panic: kaboom")
}
