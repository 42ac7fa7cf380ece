package signals

import mapset "github.com/deckarep/golang-set/v2"

// Disposable is anything a scope can tear down.
type Disposable interface {
	Dispose() error
}

// Scope collects the effects and child scopes created while it is active,
// so a whole subtree of subscriptions can be torn down with one call.
type Scope struct {
	rs       *ReactiveSystem
	parent   *Scope
	children mapset.Set[Disposable]
	cleanups []func()
	disposed bool
}

// NewScope creates a scope. If another scope is active it becomes this
// one's parent and disposes it along with its own children.
func NewScope(rs *ReactiveSystem) *Scope {
	sc := &Scope{
		rs:       rs,
		parent:   rs.activeScope,
		children: mapset.NewSet[Disposable](),
	}
	if sc.parent != nil {
		sc.parent.adopt(sc)
	}
	return sc
}

func (sc *Scope) adopt(child Disposable) {
	sc.children.Add(child)
}

// Run executes fn with this scope active: every effect and scope created
// inside fn is adopted.
func (sc *Scope) Run(fn func() error) error {
	prev := sc.rs.activeScope
	sc.rs.activeScope = sc
	defer func() { sc.rs.activeScope = prev }()
	return fn()
}

// OnCleanup registers fn to run once when the scope is disposed.
func (sc *Scope) OnCleanup(fn func()) {
	sc.cleanups = append(sc.cleanups, fn)
}

// Dispose tears down every adopted child and runs the cleanup hooks.
// Disposing twice is a no-op.
func (sc *Scope) Dispose() error {
	if sc.disposed {
		return nil
	}
	sc.disposed = true
	if sc.parent != nil {
		sc.parent.children.Remove(sc)
	}

	children := sc.children.ToSlice()
	sc.children.Clear()
	var firstErr error
	for _, child := range children {
		if err := child.Dispose(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	cleanups := sc.cleanups
	sc.cleanups = nil
	for _, fn := range cleanups {
		fn()
	}
	return firstErr
}

// EffectScope runs fn with a fresh scope active and returns its disposer,
// so effects created inside fn all stop together.
func EffectScope(rs *ReactiveSystem, fn func() error) (stop func() error, err error) {
	sc := NewScope(rs)
	if err := sc.Run(fn); err != nil {
		_ = sc.Dispose()
		return nil, err
	}
	return sc.Dispose, nil
}
