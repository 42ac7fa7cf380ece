package signals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vyredo/xdom/signals"
)

// disposing a scope should stop every effect created while it was active
func TestScopeDisposesAdoptedEffects(t *testing.T) {
	rs := signals.NewReactiveSystem(func(from signals.SignalAware, err error) {
		assert.FailNow(t, err.Error())
	})
	a := signals.Signal(rs, 1)
	b := signals.Signal(rs, 1)

	aRuns, bRuns := 0, 0
	stop, err := signals.EffectScope(rs, func() error {
		if _, err := signals.Effect(rs, func() error {
			a.Value()
			aRuns++
			return nil
		}); err != nil {
			return err
		}
		_, err := signals.Effect(rs, func() error {
			b.Value()
			bRuns++
			return nil
		})
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, aRuns)
	assert.Equal(t, 1, bRuns)

	require.NoError(t, a.SetValue(2))
	require.NoError(t, b.SetValue(2))
	assert.Equal(t, 2, aRuns)
	assert.Equal(t, 2, bRuns)

	require.NoError(t, stop())
	require.NoError(t, a.SetValue(3))
	require.NoError(t, b.SetValue(3))
	assert.Equal(t, 2, aRuns)
	assert.Equal(t, 2, bRuns)
}

// disposing a parent scope should cascade into child scopes
func TestScopeDisposeCascades(t *testing.T) {
	rs := signals.NewReactiveSystem(func(from signals.SignalAware, err error) {
		assert.FailNow(t, err.Error())
	})
	a := signals.Signal(rs, 1)

	innerRuns := 0
	parent := signals.NewScope(rs)
	require.NoError(t, parent.Run(func() error {
		child := signals.NewScope(rs)
		return child.Run(func() error {
			_, err := signals.Effect(rs, func() error {
				a.Value()
				innerRuns++
				return nil
			})
			return err
		})
	}))
	assert.Equal(t, 1, innerRuns)

	require.NoError(t, parent.Dispose())
	require.NoError(t, a.SetValue(2))
	assert.Equal(t, 1, innerRuns)
}

// cleanup hooks run once, on disposal, after the children are gone
func TestScopeOnCleanup(t *testing.T) {
	rs := signals.NewReactiveSystem(func(from signals.SignalAware, err error) {
		assert.FailNow(t, err.Error())
	})
	a := signals.Signal(rs, 1)

	var trace []string
	sc := signals.NewScope(rs)
	sc.OnCleanup(func() { trace = append(trace, "scope cleanup") })
	require.NoError(t, sc.Run(func() error {
		_, err := signals.EffectWithCleanup(rs, func() (signals.CleanupFn, error) {
			a.Value()
			return func() error {
				trace = append(trace, "effect cleanup")
				return nil
			}, nil
		})
		return err
	}))

	require.NoError(t, sc.Dispose())
	assert.Equal(t, []string{"effect cleanup", "scope cleanup"}, trace)

	// a second dispose is a no-op
	require.NoError(t, sc.Dispose())
	assert.Equal(t, []string{"effect cleanup", "scope cleanup"}, trace)
}

// a disposed child should detach from its parent so the parent does not
// double-dispose it
func TestScopeChildDisposedFirst(t *testing.T) {
	rs := signals.NewReactiveSystem(func(from signals.SignalAware, err error) {
		assert.FailNow(t, err.Error())
	})

	cleanups := 0
	parent := signals.NewScope(rs)
	var child *signals.Scope
	require.NoError(t, parent.Run(func() error {
		child = signals.NewScope(rs)
		child.OnCleanup(func() { cleanups++ })
		return nil
	}))

	require.NoError(t, child.Dispose())
	assert.Equal(t, 1, cleanups)

	require.NoError(t, parent.Dispose())
	assert.Equal(t, 1, cleanups)
}

// a failing setup inside EffectScope should dispose whatever was already
// created and return the error
func TestEffectScopeSetupError(t *testing.T) {
	rs := signals.NewReactiveSystem(nil)
	a := signals.Signal(rs, 1)

	runs := 0
	stop, err := signals.EffectScope(rs, func() error {
		if _, err := signals.Effect(rs, func() error {
			a.Value()
			runs++
			return nil
		}); err != nil {
			return err
		}
		return assert.AnError
	})
	assert.Equal(t, assert.AnError, err)
	assert.Nil(t, stop)
	assert.Equal(t, 1, runs)

	require.NoError(t, a.SetValue(2))
	assert.Equal(t, 1, runs)
}
