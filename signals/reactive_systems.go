package signals

import "errors"

// ErrCycleDetected is returned when a computed or effect is re-entered
// while already evaluating, or when write-triggered notification re-enters
// more than batchIterationLimit levels deep.
var ErrCycleDetected = errors.New("signals: cycle detected")

// batchIterationLimit bounds re-entrant effect drains triggered by writes
// issued from inside effects. It is a circuit breaker, not a cycle proof.
const batchIterationLimit = 100

// OnErrorFunc observes every effect error raised while the system drains
// its pending queue. The first such error per drain is also returned from
// the write or Batch call that triggered it.
type OnErrorFunc func(from SignalAware, err error)

// ReactiveSystem owns all state the engine shares between primitives: the
// active evaluation context, the batch depth, the global version counter
// and the pending effect queue. Construct one per independent graph; the
// zero value is not usable.
type ReactiveSystem struct {
	batchDepth     int
	batchIteration int
	globalVersion  int

	activeSub         subscriber
	queuedEffects     *EffectRunner
	queuedEffectsTail *EffectRunner

	activeScope *Scope
	pauseStack  []subscriber
	onError     OnErrorFunc
}

func NewReactiveSystem(onError OnErrorFunc) *ReactiveSystem {
	return &ReactiveSystem{onError: onError}
}

func (rs *ReactiveSystem) StartBatch() {
	rs.batchDepth++
}

// EndBatch closes the current transaction. Closing the outermost one
// drains the pending effect queue: each queued effect runs at most once,
// effects scheduled by other effects are flushed in the same drain, and
// per-effect errors are captured so siblings still run. The first error is
// returned once draining finishes.
func (rs *ReactiveSystem) EndBatch() error {
	if rs.batchDepth > 1 {
		rs.batchDepth--
		return nil
	}

	var firstErr error
	for rs.queuedEffects != nil {
		e := rs.queuedEffects
		rs.queuedEffects = nil
		rs.queuedEffectsTail = nil
		rs.batchIteration++

		for e != nil {
			next := e.nextQueued
			e.nextQueued = nil
			e.flags &^= fNotified

			if e.flags&fDisposed == 0 && rs.needsToRecompute(e) {
				if err := e.callback(); err != nil {
					if rs.onError != nil {
						rs.onError(e, err)
					}
					if firstErr == nil {
						firstErr = err
					}
				}
			}
			e = next
		}
	}
	rs.batchIteration = 0
	rs.batchDepth--
	return firstErr
}

// Batch runs fn inside a transaction: effect execution is deferred until
// the outermost transaction closes, so multiple writes coalesce into one
// notification pass. Nested calls share the outermost commit.
func (rs *ReactiveSystem) Batch(fn func()) (err error) {
	if rs.batchDepth > 0 {
		fn()
		return nil
	}
	rs.StartBatch()
	defer func() {
		err = rs.EndBatch()
	}()
	fn()
	return nil
}

// BatchValue is Batch for functions that return a value.
func BatchValue[T any](rs *ReactiveSystem, fn func() T) (v T, err error) {
	err = rs.Batch(func() { v = fn() })
	return v, err
}

func (rs *ReactiveSystem) PauseTracking() {
	rs.pauseStack = append(rs.pauseStack, rs.activeSub)
	rs.activeSub = nil
}

func (rs *ReactiveSystem) ResumeTracking() {
	lastIdx := len(rs.pauseStack) - 1
	rs.activeSub = rs.pauseStack[lastIdx]
	rs.pauseStack = rs.pauseStack[:lastIdx]
}

// Untracked runs fn with dependency tracking paused: no signal read inside
// fn is recorded, even when called from inside a computed or effect.
func Untracked[T any](rs *ReactiveSystem, fn func() T) T {
	rs.PauseTracking()
	defer rs.ResumeTracking()
	return fn()
}

// link records a dependency edge between dep and the active subscriber, if
// any. A fresh link is appended as the new tail of the subscriber's
// dependency list; a link marked reusable from the in-flight re-evaluation
// is reset and spliced back to the tail, so list order always matches the
// order dependencies were read in the most recent evaluation.
func (rs *ReactiveSystem) link(dep dependency) *link {
	sub := rs.activeSub
	if sub == nil {
		return nil
	}
	d := dep.base()
	s := sub.subBase()

	l := d.self
	if l == nil || l.sub != sub {
		l = &link{
			dep:      dep,
			sub:      sub,
			prevDep:  s.deps,
			rollback: l,
		}
		if s.deps != nil {
			s.deps.nextDep = l
		}
		s.deps = l
		d.self = l
		if s.flags&fTracking != 0 {
			dep.subscribe(l)
		}
		return l
	}

	if l.version == -1 {
		l.version = 0
		// relocate to the tail unless it is already there
		if l.nextDep != nil {
			l.nextDep.prevDep = l.prevDep
			if l.prevDep != nil {
				l.prevDep.nextDep = l.nextDep
			}
			l.prevDep = s.deps
			l.nextDep = nil
			s.deps.nextDep = l
			s.deps = l
		}
		return l
	}
	return nil
}

// needsToRecompute reports whether any dependency of sub changed since sub
// last observed it, refreshing dependencies recursively along the way.
func (rs *ReactiveSystem) needsToRecompute(sub subscriber) bool {
	for l := sub.subBase().deps; l != nil; l = l.nextDep {
		d := l.dep.base()
		if d.version != l.version || !l.dep.refresh() || d.version != l.version {
			return true
		}
	}
	return false
}

// prepareSources marks every existing dependency link of sub as reusable
// and parks it as its dependency's self link, saving the previous one for
// rollback. It leaves sub's deps pointer at the list tail so the in-flight
// evaluation can append.
func (rs *ReactiveSystem) prepareSources(sub subscriber) {
	s := sub.subBase()
	for l := s.deps; l != nil; l = l.nextDep {
		d := l.dep.base()
		if d.self != nil {
			l.rollback = d.self
		}
		d.self = l
		l.version = -1

		if l.nextDep == nil {
			s.deps = l
			break
		}
	}
}

// cleanupSources walks sub's dependency list backwards from the tail,
// drops every link the evaluation did not re-touch (unsubscribing it from
// its dependency), restores each dependency's previous self link, and
// rewinds sub's deps pointer to the surviving head.
func (rs *ReactiveSystem) cleanupSources(sub subscriber) {
	s := sub.subBase()
	l := s.deps
	var head *link
	for l != nil {
		prev := l.prevDep
		if l.version == -1 {
			l.dep.unsubscribe(l)
			if prev != nil {
				prev.nextDep = l.nextDep
			}
			if l.nextDep != nil {
				l.nextDep.prevDep = prev
			}
		} else {
			head = l
		}
		l.dep.base().self = l.rollback
		if l.rollback != nil {
			l.rollback = nil
		}
		l = prev
	}
	s.deps = head
}
