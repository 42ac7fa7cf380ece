package combine

import "github.com/vyredo/xdom/signals"

func Computed1[T0, O comparable](
	rs *signals.ReactiveSystem,
	d0 signals.Readable[T0],
	fn func(T0) (O, error),
) *signals.ReadonlySignal[O] {
	return signals.Computed(rs, func(oldValue O) (O, error) {
		var zero O
		v0, err := d0.Read()
		if err != nil {
			return zero, err
		}
		return fn(v0)
	})
}

func Effect1[T0 comparable](
	rs *signals.ReactiveSystem,
	d0 signals.Readable[T0],
	fn func(T0) error,
) (stop func() error, err error) {
	return signals.Effect(rs, func() error {
		v0, err := d0.Read()
		if err != nil {
			return err
		}
		return fn(v0)
	})
}

func Computed2[T0, T1, O comparable](
	rs *signals.ReactiveSystem,
	d0 signals.Readable[T0],
	d1 signals.Readable[T1],
	fn func(T0, T1) (O, error),
) *signals.ReadonlySignal[O] {
	return signals.Computed(rs, func(oldValue O) (O, error) {
		var zero O
		v0, err := d0.Read()
		if err != nil {
			return zero, err
		}
		v1, err := d1.Read()
		if err != nil {
			return zero, err
		}
		return fn(v0, v1)
	})
}

func Effect2[T0, T1 comparable](
	rs *signals.ReactiveSystem,
	d0 signals.Readable[T0],
	d1 signals.Readable[T1],
	fn func(T0, T1) error,
) (stop func() error, err error) {
	return signals.Effect(rs, func() error {
		v0, err := d0.Read()
		if err != nil {
			return err
		}
		v1, err := d1.Read()
		if err != nil {
			return err
		}
		return fn(v0, v1)
	})
}

func Computed3[T0, T1, T2, O comparable](
	rs *signals.ReactiveSystem,
	d0 signals.Readable[T0],
	d1 signals.Readable[T1],
	d2 signals.Readable[T2],
	fn func(T0, T1, T2) (O, error),
) *signals.ReadonlySignal[O] {
	return signals.Computed(rs, func(oldValue O) (O, error) {
		var zero O
		v0, err := d0.Read()
		if err != nil {
			return zero, err
		}
		v1, err := d1.Read()
		if err != nil {
			return zero, err
		}
		v2, err := d2.Read()
		if err != nil {
			return zero, err
		}
		return fn(v0, v1, v2)
	})
}

func Effect3[T0, T1, T2 comparable](
	rs *signals.ReactiveSystem,
	d0 signals.Readable[T0],
	d1 signals.Readable[T1],
	d2 signals.Readable[T2],
	fn func(T0, T1, T2) error,
) (stop func() error, err error) {
	return signals.Effect(rs, func() error {
		v0, err := d0.Read()
		if err != nil {
			return err
		}
		v1, err := d1.Read()
		if err != nil {
			return err
		}
		v2, err := d2.Read()
		if err != nil {
			return err
		}
		return fn(v0, v1, v2)
	})
}

func Computed4[T0, T1, T2, T3, O comparable](
	rs *signals.ReactiveSystem,
	d0 signals.Readable[T0],
	d1 signals.Readable[T1],
	d2 signals.Readable[T2],
	d3 signals.Readable[T3],
	fn func(T0, T1, T2, T3) (O, error),
) *signals.ReadonlySignal[O] {
	return signals.Computed(rs, func(oldValue O) (O, error) {
		var zero O
		v0, err := d0.Read()
		if err != nil {
			return zero, err
		}
		v1, err := d1.Read()
		if err != nil {
			return zero, err
		}
		v2, err := d2.Read()
		if err != nil {
			return zero, err
		}
		v3, err := d3.Read()
		if err != nil {
			return zero, err
		}
		return fn(v0, v1, v2, v3)
	})
}

func Effect4[T0, T1, T2, T3 comparable](
	rs *signals.ReactiveSystem,
	d0 signals.Readable[T0],
	d1 signals.Readable[T1],
	d2 signals.Readable[T2],
	d3 signals.Readable[T3],
	fn func(T0, T1, T2, T3) error,
) (stop func() error, err error) {
	return signals.Effect(rs, func() error {
		v0, err := d0.Read()
		if err != nil {
			return err
		}
		v1, err := d1.Read()
		if err != nil {
			return err
		}
		v2, err := d2.Read()
		if err != nil {
			return err
		}
		v3, err := d3.Read()
		if err != nil {
			return err
		}
		return fn(v0, v1, v2, v3)
	})
}

func Computed5[T0, T1, T2, T3, T4, O comparable](
	rs *signals.ReactiveSystem,
	d0 signals.Readable[T0],
	d1 signals.Readable[T1],
	d2 signals.Readable[T2],
	d3 signals.Readable[T3],
	d4 signals.Readable[T4],
	fn func(T0, T1, T2, T3, T4) (O, error),
) *signals.ReadonlySignal[O] {
	return signals.Computed(rs, func(oldValue O) (O, error) {
		var zero O
		v0, err := d0.Read()
		if err != nil {
			return zero, err
		}
		v1, err := d1.Read()
		if err != nil {
			return zero, err
		}
		v2, err := d2.Read()
		if err != nil {
			return zero, err
		}
		v3, err := d3.Read()
		if err != nil {
			return zero, err
		}
		v4, err := d4.Read()
		if err != nil {
			return zero, err
		}
		return fn(v0, v1, v2, v3, v4)
	})
}

func Effect5[T0, T1, T2, T3, T4 comparable](
	rs *signals.ReactiveSystem,
	d0 signals.Readable[T0],
	d1 signals.Readable[T1],
	d2 signals.Readable[T2],
	d3 signals.Readable[T3],
	d4 signals.Readable[T4],
	fn func(T0, T1, T2, T3, T4) error,
) (stop func() error, err error) {
	return signals.Effect(rs, func() error {
		v0, err := d0.Read()
		if err != nil {
			return err
		}
		v1, err := d1.Read()
		if err != nil {
			return err
		}
		v2, err := d2.Read()
		if err != nil {
			return err
		}
		v3, err := d3.Read()
		if err != nil {
			return err
		}
		v4, err := d4.Read()
		if err != nil {
			return err
		}
		return fn(v0, v1, v2, v3, v4)
	})
}

func Computed6[T0, T1, T2, T3, T4, T5, O comparable](
	rs *signals.ReactiveSystem,
	d0 signals.Readable[T0],
	d1 signals.Readable[T1],
	d2 signals.Readable[T2],
	d3 signals.Readable[T3],
	d4 signals.Readable[T4],
	d5 signals.Readable[T5],
	fn func(T0, T1, T2, T3, T4, T5) (O, error),
) *signals.ReadonlySignal[O] {
	return signals.Computed(rs, func(oldValue O) (O, error) {
		var zero O
		v0, err := d0.Read()
		if err != nil {
			return zero, err
		}
		v1, err := d1.Read()
		if err != nil {
			return zero, err
		}
		v2, err := d2.Read()
		if err != nil {
			return zero, err
		}
		v3, err := d3.Read()
		if err != nil {
			return zero, err
		}
		v4, err := d4.Read()
		if err != nil {
			return zero, err
		}
		v5, err := d5.Read()
		if err != nil {
			return zero, err
		}
		return fn(v0, v1, v2, v3, v4, v5)
	})
}

func Effect6[T0, T1, T2, T3, T4, T5 comparable](
	rs *signals.ReactiveSystem,
	d0 signals.Readable[T0],
	d1 signals.Readable[T1],
	d2 signals.Readable[T2],
	d3 signals.Readable[T3],
	d4 signals.Readable[T4],
	d5 signals.Readable[T5],
	fn func(T0, T1, T2, T3, T4, T5) error,
) (stop func() error, err error) {
	return signals.Effect(rs, func() error {
		v0, err := d0.Read()
		if err != nil {
			return err
		}
		v1, err := d1.Read()
		if err != nil {
			return err
		}
		v2, err := d2.Read()
		if err != nil {
			return err
		}
		v3, err := d3.Read()
		if err != nil {
			return err
		}
		v4, err := d4.Read()
		if err != nil {
			return err
		}
		v5, err := d5.Read()
		if err != nil {
			return err
		}
		return fn(v0, v1, v2, v3, v4, v5)
	})
}

func Computed7[T0, T1, T2, T3, T4, T5, T6, O comparable](
	rs *signals.ReactiveSystem,
	d0 signals.Readable[T0],
	d1 signals.Readable[T1],
	d2 signals.Readable[T2],
	d3 signals.Readable[T3],
	d4 signals.Readable[T4],
	d5 signals.Readable[T5],
	d6 signals.Readable[T6],
	fn func(T0, T1, T2, T3, T4, T5, T6) (O, error),
) *signals.ReadonlySignal[O] {
	return signals.Computed(rs, func(oldValue O) (O, error) {
		var zero O
		v0, err := d0.Read()
		if err != nil {
			return zero, err
		}
		v1, err := d1.Read()
		if err != nil {
			return zero, err
		}
		v2, err := d2.Read()
		if err != nil {
			return zero, err
		}
		v3, err := d3.Read()
		if err != nil {
			return zero, err
		}
		v4, err := d4.Read()
		if err != nil {
			return zero, err
		}
		v5, err := d5.Read()
		if err != nil {
			return zero, err
		}
		v6, err := d6.Read()
		if err != nil {
			return zero, err
		}
		return fn(v0, v1, v2, v3, v4, v5, v6)
	})
}

func Effect7[T0, T1, T2, T3, T4, T5, T6 comparable](
	rs *signals.ReactiveSystem,
	d0 signals.Readable[T0],
	d1 signals.Readable[T1],
	d2 signals.Readable[T2],
	d3 signals.Readable[T3],
	d4 signals.Readable[T4],
	d5 signals.Readable[T5],
	d6 signals.Readable[T6],
	fn func(T0, T1, T2, T3, T4, T5, T6) error,
) (stop func() error, err error) {
	return signals.Effect(rs, func() error {
		v0, err := d0.Read()
		if err != nil {
			return err
		}
		v1, err := d1.Read()
		if err != nil {
			return err
		}
		v2, err := d2.Read()
		if err != nil {
			return err
		}
		v3, err := d3.Read()
		if err != nil {
			return err
		}
		v4, err := d4.Read()
		if err != nil {
			return err
		}
		v5, err := d5.Read()
		if err != nil {
			return err
		}
		v6, err := d6.Read()
		if err != nil {
			return err
		}
		return fn(v0, v1, v2, v3, v4, v5, v6)
	})
}

func Computed8[T0, T1, T2, T3, T4, T5, T6, T7, O comparable](
	rs *signals.ReactiveSystem,
	d0 signals.Readable[T0],
	d1 signals.Readable[T1],
	d2 signals.Readable[T2],
	d3 signals.Readable[T3],
	d4 signals.Readable[T4],
	d5 signals.Readable[T5],
	d6 signals.Readable[T6],
	d7 signals.Readable[T7],
	fn func(T0, T1, T2, T3, T4, T5, T6, T7) (O, error),
) *signals.ReadonlySignal[O] {
	return signals.Computed(rs, func(oldValue O) (O, error) {
		var zero O
		v0, err := d0.Read()
		if err != nil {
			return zero, err
		}
		v1, err := d1.Read()
		if err != nil {
			return zero, err
		}
		v2, err := d2.Read()
		if err != nil {
			return zero, err
		}
		v3, err := d3.Read()
		if err != nil {
			return zero, err
		}
		v4, err := d4.Read()
		if err != nil {
			return zero, err
		}
		v5, err := d5.Read()
		if err != nil {
			return zero, err
		}
		v6, err := d6.Read()
		if err != nil {
			return zero, err
		}
		v7, err := d7.Read()
		if err != nil {
			return zero, err
		}
		return fn(v0, v1, v2, v3, v4, v5, v6, v7)
	})
}

func Effect8[T0, T1, T2, T3, T4, T5, T6, T7 comparable](
	rs *signals.ReactiveSystem,
	d0 signals.Readable[T0],
	d1 signals.Readable[T1],
	d2 signals.Readable[T2],
	d3 signals.Readable[T3],
	d4 signals.Readable[T4],
	d5 signals.Readable[T5],
	d6 signals.Readable[T6],
	d7 signals.Readable[T7],
	fn func(T0, T1, T2, T3, T4, T5, T6, T7) error,
) (stop func() error, err error) {
	return signals.Effect(rs, func() error {
		v0, err := d0.Read()
		if err != nil {
			return err
		}
		v1, err := d1.Read()
		if err != nil {
			return err
		}
		v2, err := d2.Read()
		if err != nil {
			return err
		}
		v3, err := d3.Read()
		if err != nil {
			return err
		}
		v4, err := d4.Read()
		if err != nil {
			return err
		}
		v5, err := d5.Read()
		if err != nil {
			return err
		}
		v6, err := d6.Read()
		if err != nil {
			return err
		}
		v7, err := d7.Read()
		if err != nil {
			return err
		}
		return fn(v0, v1, v2, v3, v4, v5, v6, v7)
	})
}
