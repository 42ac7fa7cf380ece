package signals

// ReadonlySignal is a signal whose value derives from other signals via a
// getter. It is lazy: a source write only marks it outdated, recomputation
// happens on the next read. While it has at least one subscriber it is
// eagerly tracked and skips the version walk on clean reads.
type ReadonlySignal[T comparable] struct {
	baseDependency
	baseSubscriber

	rs     *ReactiveSystem
	getter func(oldValue T) (T, error)
	value  T
	err    error

	// lastGlobalVersion short-circuits refresh when nothing anywhere in
	// the graph changed since the previous read.
	lastGlobalVersion int
}

// Computed constructs a derived cell. The getter receives the previous
// value and returns the next one, or an error; an error becomes the cell's
// value for memoization purposes and is returned to every reader until a
// later recomputation succeeds.
func Computed[T comparable](rs *ReactiveSystem, getter func(oldValue T) (T, error)) *ReadonlySignal[T] {
	return &ReadonlySignal[T]{
		rs:     rs,
		getter: getter,
		baseSubscriber: baseSubscriber{
			flags: fOutdated,
		},
		lastGlobalVersion: rs.globalVersion - 1,
	}
}

func (c *ReadonlySignal[T]) isSignalAware() {}

// Value returns the up-to-date derived value, recording a dependency edge
// for the active evaluation context. Reading a computed from inside its
// own getter returns ErrCycleDetected.
func (c *ReadonlySignal[T]) Value() (T, error) {
	if c.flags&fRunning != 0 {
		var zero T
		return zero, ErrCycleDetected
	}
	l := c.rs.link(c)
	c.refresh()
	if l != nil {
		l.version = c.version
	}
	if c.flags&fHasError != 0 {
		var zero T
		return zero, c.err
	}
	return c.value, nil
}

// Peek returns the up-to-date value without recording any dependency.
func (c *ReadonlySignal[T]) Peek() (T, error) {
	var zero T
	if !c.refresh() {
		return zero, ErrCycleDetected
	}
	if c.flags&fHasError != 0 {
		return zero, c.err
	}
	return c.value, nil
}

func (c *ReadonlySignal[T]) Read() (T, error) {
	return c.Value()
}

// Subscribe runs fn with the current value immediately and after every
// change. When the computed is in an error state fn is skipped and the
// error surfaces through the system's error callback and the triggering
// write. The returned function unsubscribes; it is always callable, even
// when the computed was already failing at subscription time.
func (c *ReadonlySignal[T]) Subscribe(fn func(T)) func() {
	stop, err := Effect(c.rs, func() error {
		v, err := c.Value()
		if err != nil {
			return err
		}
		c.rs.PauseTracking()
		defer c.rs.ResumeTracking()
		fn(v)
		return nil
	})
	if err != nil {
		// the first run failed and the effect disposed itself; later
		// runs report through EndBatch, this one has no write to return
		// through
		if c.rs.onError != nil {
			c.rs.onError(c, err)
		}
		return func() {}
	}
	return func() { _ = stop() }
}

// refresh reports whether the value is current, recomputing if needed.
// Fast paths, in order: an eagerly-tracked computed with no pending
// notification cannot be stale; an unchanged global version means nothing
// anywhere changed; a version walk finding every dependency recursively
// clean means this level is clean too.
func (c *ReadonlySignal[T]) refresh() bool {
	c.flags &^= fNotified

	if c.flags&fRunning != 0 {
		return false
	}
	if c.flags&(fOutdated|fTracking) == fTracking {
		return true
	}
	c.flags &^= fOutdated

	if c.lastGlobalVersion == c.rs.globalVersion {
		return true
	}
	c.lastGlobalVersion = c.rs.globalVersion

	c.flags |= fRunning
	if c.version > 0 && !c.rs.needsToRecompute(c) {
		c.flags &^= fRunning
		return true
	}

	rs := c.rs
	prevSub := rs.activeSub
	rs.prepareSources(c)
	rs.activeSub = c
	func() {
		defer func() {
			rs.activeSub = prevSub
			rs.cleanupSources(c)
			c.flags &^= fRunning
		}()

		value, err := c.getter(c.value)
		switch {
		case err != nil:
			c.err = err
			c.flags |= fHasError
			c.version++
		case c.flags&fHasError != 0 || c.value != value || c.version == 0:
			c.value = value
			c.err = nil
			c.flags &^= fHasError
			c.version++
		}
	}()
	return true
}

// subscribe gains eager tracking on the first subscriber: the computed
// subscribes its own dependency links so source writes reach it directly.
func (c *ReadonlySignal[T]) subscribe(l *link) {
	if c.subs == nil {
		c.flags |= fOutdated | fTracking
		for d := c.deps; d != nil; d = d.nextDep {
			d.dep.subscribe(d)
		}
	}
	c.baseDependency.subscribe(l)
}

// unsubscribe drops eager tracking with the last subscriber, letting an
// unobserved dependency subgraph become collectible.
func (c *ReadonlySignal[T]) unsubscribe(l *link) {
	if c.subs == nil {
		return
	}
	c.baseDependency.unsubscribe(l)
	if c.subs == nil {
		c.flags &^= fTracking
		for d := c.deps; d != nil; d = d.nextDep {
			d.dep.unsubscribe(d)
		}
	}
}

// notify marks the computed outdated and fans out, at most once per batch.
func (c *ReadonlySignal[T]) notify() {
	if c.flags&fNotified != 0 {
		return
	}
	c.flags |= fOutdated | fNotified
	for l := c.subs; l != nil; l = l.nextSub {
		l.sub.notify()
	}
}
