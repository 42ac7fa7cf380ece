package signals

// CleanupFn is returned by an effect body to run before the next execution
// and on disposal.
type CleanupFn func() error

// EffectFn is an effect body: it may return a cleanup function, an error,
// or neither.
type EffectFn func() (CleanupFn, error)

// EffectRunner is an eager subscriber: it re-runs its body whenever any
// dependency read during the previous run changes. Unlike a computed it is
// always subscribed from creation until disposal.
type EffectRunner struct {
	baseSubscriber

	rs      *ReactiveSystem
	fn      EffectFn
	cleanup CleanupFn

	nextQueued *EffectRunner
}

func (e *EffectRunner) isSignalAware() {}

// Effect constructs an eager subscriber and runs it once synchronously. If
// that first run fails the effect disposes itself and the error is
// returned. The returned stop function disposes the effect; it reports any
// cleanup error.
func Effect(rs *ReactiveSystem, fn func() error) (stop func() error, err error) {
	return EffectWithCleanup(rs, func() (CleanupFn, error) {
		return nil, fn()
	})
}

// EffectWithCleanup is Effect for bodies that return a cleanup function.
func EffectWithCleanup(rs *ReactiveSystem, fn EffectFn) (stop func() error, err error) {
	e := &EffectRunner{
		rs: rs,
		fn: fn,
		baseSubscriber: baseSubscriber{
			flags: fTracking,
		},
	}
	if rs.activeScope != nil {
		rs.activeScope.adopt(e)
	}
	if err := e.callback(); err != nil {
		_ = e.Dispose()
		return nil, err
	}
	return e.Dispose, nil
}

// Dispose unsubscribes every dependency and runs any pending cleanup. When
// called mid-run, disposal is deferred to the run's finalizer. Disposing
// twice is a no-op.
func (e *EffectRunner) Dispose() error {
	e.flags |= fDisposed
	if e.flags&fRunning == 0 {
		return e.disposeNow()
	}
	return nil
}

func (e *EffectRunner) disposeNow() error {
	for l := e.deps; l != nil; l = l.nextDep {
		l.dep.unsubscribe(l)
	}
	e.fn = nil
	e.deps = nil
	return e.runCleanup()
}

// runCleanup invokes and clears the stored cleanup outside any evaluation
// context. A failing cleanup disposes the effect and surfaces the error.
func (e *EffectRunner) runCleanup() error {
	cleanup := e.cleanup
	e.cleanup = nil
	if cleanup == nil {
		return nil
	}

	rs := e.rs
	rs.StartBatch()
	rs.PauseTracking()
	err := func() error {
		defer rs.ResumeTracking()
		return cleanup()
	}()
	if err != nil {
		e.flags &^= fRunning
		e.flags |= fDisposed
		_ = e.disposeNow()
		_ = rs.EndBatch()
		return err
	}
	return rs.EndBatch()
}

// start opens a run: it flags the effect running, runs the previous
// cleanup, marks the current dependency links reusable, opens a batch and
// installs the effect as the active evaluation context. The returned
// finalizer closes all of that in reverse.
func (e *EffectRunner) start() (finish func() error, err error) {
	if e.flags&fRunning != 0 {
		return nil, ErrCycleDetected
	}
	e.flags |= fRunning
	e.flags &^= fDisposed
	if err := e.runCleanup(); err != nil {
		return nil, err
	}
	rs := e.rs
	rs.prepareSources(e)

	rs.StartBatch()
	prevSub := rs.activeSub
	rs.activeSub = e

	return func() error {
		if rs.activeSub != e {
			panic("signals: out-of-order effect finish")
		}
		rs.cleanupSources(e)
		rs.activeSub = prevSub
		e.flags &^= fRunning

		var err error
		if e.flags&fDisposed != 0 {
			err = e.disposeNow()
		}
		if berr := rs.EndBatch(); err == nil {
			err = berr
		}
		return err
	}, nil
}

// callback is one full run of the effect body, guarded by start/finish.
func (e *EffectRunner) callback() (err error) {
	finish, startErr := e.start()
	if startErr != nil {
		return startErr
	}
	defer func() {
		if ferr := finish(); err == nil {
			err = ferr
		}
	}()

	if e.flags&fDisposed != 0 || e.fn == nil {
		return nil
	}
	cleanup, runErr := e.fn()
	if runErr != nil {
		return runErr
	}
	if cleanup != nil {
		e.cleanup = cleanup
	}
	return nil
}

// notify queues the effect for the current drain, at most once per batch.
func (e *EffectRunner) notify() {
	if e.flags&fNotified != 0 {
		return
	}
	e.flags |= fNotified

	rs := e.rs
	if rs.queuedEffectsTail != nil {
		rs.queuedEffectsTail.nextQueued = e
	} else {
		rs.queuedEffects = e
	}
	rs.queuedEffectsTail = e
}
