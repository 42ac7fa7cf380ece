package signals

type subscriberFlags uint8

const (
	fRunning subscriberFlags = 1 << iota
	fNotified
	fOutdated
	fDisposed
	fHasError
	fTracking
)

// link is one edge of the dependency graph: a dependency (signal or
// computed) read by a subscriber (computed or effect). It lives in two
// doubly-linked lists at once, the subscriber's dependency list
// (prevDep/nextDep) and the dependency's subscriber list (prevSub/nextSub).
type link struct {
	dep dependency
	sub subscriber

	// version of dep last observed by sub. -1 marks the link as
	// reuse-or-remove while sub is re-evaluating.
	version int

	prevDep, nextDep *link
	prevSub, nextSub *link

	// rollback holds dep's previous self link while sub evaluates, so a
	// nested evaluation reading the same dependency can restore it.
	rollback *link
}

// baseDependency is embedded by everything that can be read inside an
// evaluation: writeable signals and computeds.
type baseDependency struct {
	// version increments on every observable value change.
	version int

	// self is the link for the subscriber currently evaluating, reused
	// across repeated reads of the same dependency.
	self *link

	// subs is the head of the subscriber list.
	subs *link
}

func (d *baseDependency) base() *baseDependency { return d }

func (d *baseDependency) subscribe(l *link) {
	if d.subs != l && l.prevSub == nil {
		l.nextSub = d.subs
		if d.subs != nil {
			d.subs.prevSub = l
		}
		d.subs = l
	}
}

func (d *baseDependency) unsubscribe(l *link) {
	if d.subs == nil {
		return
	}
	prev, next := l.prevSub, l.nextSub
	if prev != nil {
		prev.nextSub = next
		l.prevSub = nil
	}
	if next != nil {
		next.prevSub = prev
		l.nextSub = nil
	}
	if l == d.subs {
		d.subs = next
	}
}

// baseSubscriber is embedded by everything that evaluates a function with
// tracked reads: computeds and effects.
type baseSubscriber struct {
	flags subscriberFlags

	// deps points at the head of the dependency list between evaluations
	// and at the tail while an evaluation is in flight (prepareSources
	// advances it, cleanupSources rewinds it).
	deps *link
}

func (s *baseSubscriber) subBase() *baseSubscriber { return s }

type dependency interface {
	base() *baseDependency

	// refresh brings the dependency's value up to date. It reports false
	// only when re-entered mid-evaluation.
	refresh() bool

	subscribe(l *link)
	unsubscribe(l *link)
}

type subscriber interface {
	subBase() *baseSubscriber
	notify()
}

// SignalAware is implemented by every reactive primitive the system hands
// to its error callback.
type SignalAware interface {
	isSignalAware()
}
