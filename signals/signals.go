package signals

// WriteableSignal is a versioned value cell and a root of the dependency
// graph. Reads inside an active evaluation record a dependency edge;
// writes notify dependents inside an implicit batch.
type WriteableSignal[T comparable] struct {
	baseDependency
	rs    *ReactiveSystem
	value T
}

func Signal[T comparable](rs *ReactiveSystem, initialValue T) *WriteableSignal[T] {
	return &WriteableSignal[T]{
		rs:    rs,
		value: initialValue,
	}
}

func (s *WriteableSignal[T]) isSignalAware() {}

func (s *WriteableSignal[T]) refresh() bool { return true }

// Value returns the current value, recording a dependency edge for the
// active evaluation context, if any.
func (s *WriteableSignal[T]) Value() T {
	if l := s.rs.link(s); l != nil {
		l.version = s.version
	}
	return s.value
}

// Peek returns the current value without recording any dependency.
func (s *WriteableSignal[T]) Peek() T {
	return s.value
}

// Read makes a writeable signal usable wherever a Readable is expected.
func (s *WriteableSignal[T]) Read() (T, error) {
	return s.Value(), nil
}

// SetValue stores v, bumps the signal's version and the system's global
// version, and notifies every subscriber inside an implicit batch. Writing
// the currently-held value is a no-op. The returned error is
// ErrCycleDetected when re-entrant write depth blows the iteration limit,
// or the first effect error of the drain this write triggered.
func (s *WriteableSignal[T]) SetValue(v T) error {
	if s.value == v {
		return nil
	}
	rs := s.rs
	if rs.batchIteration > batchIterationLimit {
		return ErrCycleDetected
	}

	s.value = v
	s.version++
	rs.globalVersion++

	rs.StartBatch()
	for l := s.subs; l != nil; l = l.nextSub {
		l.sub.notify()
	}
	return rs.EndBatch()
}

// Subscribe runs fn with the current value immediately and again after
// every change. fn itself runs untracked so it cannot accidentally record
// dependencies. The returned function unsubscribes.
func (s *WriteableSignal[T]) Subscribe(fn func(T)) func() {
	stop, _ := Effect(s.rs, func() error {
		v := s.Value()
		s.rs.PauseTracking()
		defer s.rs.ResumeTracking()
		fn(v)
		return nil
	})
	return func() { _ = stop() }
}

// Readable is the uniform read surface shared by writeable signals and
// computeds.
type Readable[T comparable] interface {
	Read() (T, error)
}
