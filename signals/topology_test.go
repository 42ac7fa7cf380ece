package signals_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vyredo/xdom/signals"
)

func TestTopologyDropAbaUpdates(t *testing.T) {
	rs := signals.NewReactiveSystem(func(from signals.SignalAware, err error) {
		assert.FailNow(t, err.Error())
	})

	//     A
	//   / |
	//  B  |
	//   \ |
	//     C
	//     |
	//     D
	a := signals.Signal(rs, 2)
	b := signals.Computed(rs, func(oldValue int) (int, error) {
		return a.Value() - 1, nil
	})
	c := signals.Computed(rs, func(oldValue int) (int, error) {
		bv, err := b.Value()
		return a.Value() + bv, err
	})
	callCount := 0
	d := signals.Computed(rs, func(oldValue string) (string, error) {
		callCount++
		cv, err := c.Value()
		return fmt.Sprintf("d: %d", cv), err
	})

	dActual, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "d: 3", dActual)
	assert.Equal(t, 1, callCount)

	require.NoError(t, a.SetValue(4))
	_, err = d.Value()
	require.NoError(t, err)
	assert.Equal(t, 2, callCount)
}

func TestShouldOnlyUpdateEverySignalOnceDiamond(t *testing.T) {
	rs := signals.NewReactiveSystem(func(from signals.SignalAware, err error) {
		assert.FailNow(t, err.Error())
	})

	// In this scenario "D" should only update once when "A" receives
	// an update. This is sometimes referred to as the "diamond" scenario.
	//     A
	//   /   \
	//  B     C
	//   \   /
	//     D

	a := signals.Signal(rs, "a")
	b := signals.Computed(rs, func(oldValue string) (string, error) {
		return a.Value(), nil
	})
	c := signals.Computed(rs, func(oldValue string) (string, error) {
		return a.Value(), nil
	})

	callCount := 0
	d := signals.Computed(rs, func(oldValue string) (string, error) {
		callCount++
		bv, err := b.Value()
		if err != nil {
			return "", err
		}
		cv, err := c.Value()
		return bv + " " + cv, err
	})

	dActual, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "a a", dActual)
	assert.Equal(t, 1, callCount)
	callCount = 0

	require.NoError(t, a.SetValue("aa"))
	dActual, err = d.Value()
	require.NoError(t, err)
	assert.Equal(t, "aa aa", dActual)
	assert.Equal(t, 1, callCount)
}

// the observed diamond: one source write runs the effect exactly once and
// each branch exactly once
func TestDiamondUnderEffect(t *testing.T) {
	rs := signals.NewReactiveSystem(func(from signals.SignalAware, err error) {
		assert.FailNow(t, err.Error())
	})
	a := signals.Signal(rs, 1)

	bRuns, cRuns, effectRuns := 0, 0, 0
	b := signals.Computed(rs, func(oldValue int) (int, error) {
		bRuns++
		return a.Value() + 1, nil
	})
	c := signals.Computed(rs, func(oldValue int) (int, error) {
		cRuns++
		return a.Value() + 2, nil
	})

	var last int
	_, err := signals.Effect(rs, func() error {
		bv, err := b.Value()
		if err != nil {
			return err
		}
		cv, err := c.Value()
		if err != nil {
			return err
		}
		last = bv + cv
		effectRuns++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5, last)
	assert.Equal(t, 1, effectRuns)
	assert.Equal(t, 1, bRuns)
	assert.Equal(t, 1, cRuns)

	require.NoError(t, a.SetValue(2))
	assert.Equal(t, 7, last)
	assert.Equal(t, 2, effectRuns)
	assert.Equal(t, 2, bRuns)
	assert.Equal(t, 2, cRuns)
}

func TestShouldOnlyUpdateEverySignalOnceDiamondTail(t *testing.T) {
	rs := signals.NewReactiveSystem(func(from signals.SignalAware, err error) {
		assert.FailNow(t, err.Error())
	})

	// "E" would update twice if the staleness walk were buggy.
	//     A
	//   /   \
	//  B     C
	//   \   /
	//     D
	//     |
	//     E

	a := signals.Signal(rs, "a")
	b := signals.Computed(rs, func(oldValue string) (string, error) {
		return a.Value(), nil
	})
	c := signals.Computed(rs, func(oldValue string) (string, error) {
		return a.Value(), nil
	})
	d := signals.Computed(rs, func(oldValue string) (string, error) {
		bv, err := b.Value()
		if err != nil {
			return "", err
		}
		cv, err := c.Value()
		return bv + " " + cv, err
	})

	eCallCount := 0
	e := signals.Computed(rs, func(oldValue string) (string, error) {
		eCallCount++
		return d.Value()
	})

	eActual, err := e.Value()
	require.NoError(t, err)
	assert.Equal(t, "a a", eActual)
	assert.Equal(t, 1, eCallCount)

	require.NoError(t, a.SetValue("aa"))
	eActual, err = e.Value()
	require.NoError(t, err)
	assert.Equal(t, "aa aa", eActual)
	assert.Equal(t, 2, eCallCount)
}

func TestBailOutIfResultIsTheSame(t *testing.T) {
	rs := signals.NewReactiveSystem(func(from signals.SignalAware, err error) {
		assert.FailNow(t, err.Error())
	})

	// Bail out if value of "B" never changes
	// A->B->C
	a := signals.Signal(rs, "a")
	b := signals.Computed(rs, func(oldValue string) (string, error) {
		a.Value()
		return "foo", nil
	})

	callCount := 0
	c := signals.Computed(rs, func(oldValue string) (string, error) {
		callCount++
		return b.Value()
	})

	cActual, err := c.Value()
	require.NoError(t, err)
	assert.Equal(t, "foo", cActual)
	assert.Equal(t, 1, callCount)

	require.NoError(t, a.SetValue("aa"))
	cActual, err = c.Value()
	require.NoError(t, err)
	assert.Equal(t, "foo", cActual)
	assert.Equal(t, 1, callCount)
}

// an unchanged computed between a source and an effect should absorb the
// update: the effect must not run
func TestUnchangedComputedShieldsEffect(t *testing.T) {
	rs := signals.NewReactiveSystem(func(from signals.SignalAware, err error) {
		assert.FailNow(t, err.Error())
	})
	a := signals.Signal(rs, 5)
	sign := signals.Computed(rs, func(oldValue bool) (bool, error) {
		return a.Value() >= 0, nil
	})

	effectRuns := 0
	_, err := signals.Effect(rs, func() error {
		_, err := sign.Value()
		effectRuns++
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, effectRuns)

	require.NoError(t, a.SetValue(7))
	assert.Equal(t, 1, effectRuns)

	require.NoError(t, a.SetValue(-7))
	assert.Equal(t, 2, effectRuns)
}
