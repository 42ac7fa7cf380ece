package combine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vyredo/xdom/combine"
	"github.com/vyredo/xdom/signals"
)

// a combined computed should track every input, whether writeable or
// derived
func TestComputed2TracksBothInputs(t *testing.T) {
	rs := signals.NewReactiveSystem(func(from signals.SignalAware, err error) {
		assert.FailNow(t, err.Error())
	})
	price := signals.Signal(rs, 10)
	qty := signals.Signal(rs, 2)

	total := combine.Computed2(rs, price, qty, func(p, q int) (int, error) {
		return p * q, nil
	})

	v, err := total.Value()
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	require.NoError(t, price.SetValue(15))
	v, err = total.Value()
	require.NoError(t, err)
	assert.Equal(t, 30, v)

	require.NoError(t, qty.SetValue(4))
	v, err = total.Value()
	require.NoError(t, err)
	assert.Equal(t, 60, v)
}

// computeds compose as inputs to other combined computeds
func TestComputed3MixedInputs(t *testing.T) {
	rs := signals.NewReactiveSystem(func(from signals.SignalAware, err error) {
		assert.FailNow(t, err.Error())
	})
	a := signals.Signal(rs, 1)
	b := signals.Signal(rs, 2)
	sum := combine.Computed2(rs, a, b, func(av, bv int) (int, error) {
		return av + bv, nil
	})

	out := combine.Computed3(rs, a, b, sum, func(av, bv, sv int) (string, error) {
		if av+bv != sv {
			return "", assert.AnError
		}
		return "ok", nil
	})

	v, err := out.Value()
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	require.NoError(t, a.SetValue(10))
	v, err = out.Value()
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

// an input error should short-circuit the combiner and surface to readers
func TestComputed2InputError(t *testing.T) {
	rs := signals.NewReactiveSystem(nil)
	a := signals.Signal(rs, 1)
	failing := signals.Computed(rs, func(oldValue int) (int, error) {
		if a.Value() < 0 {
			return 0, assert.AnError
		}
		return a.Value(), nil
	})

	combinerRuns := 0
	out := combine.Computed2(rs, a, failing, func(av, fv int) (int, error) {
		combinerRuns++
		return av + fv, nil
	})

	v, err := out.Value()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, combinerRuns)

	require.NoError(t, a.SetValue(-1))
	_, err = out.Value()
	assert.Equal(t, assert.AnError, err)
	assert.Equal(t, 1, combinerRuns)
}

// a combined effect should run once per batch of input changes
func TestEffect2Batched(t *testing.T) {
	rs := signals.NewReactiveSystem(func(from signals.SignalAware, err error) {
		assert.FailNow(t, err.Error())
	})
	x := signals.Signal(rs, 1)
	y := signals.Signal(rs, 2)

	var seen [][2]int
	stop, err := combine.Effect2(rs, x, y, func(xv, yv int) error {
		seen = append(seen, [2]int{xv, yv})
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 2}}, seen)

	require.NoError(t, rs.Batch(func() {
		_ = x.SetValue(10)
		_ = y.SetValue(20)
	}))
	assert.Equal(t, [][2]int{{1, 2}, {10, 20}}, seen)

	require.NoError(t, stop())
	require.NoError(t, x.SetValue(11))
	assert.Equal(t, [][2]int{{1, 2}, {10, 20}}, seen)
}
