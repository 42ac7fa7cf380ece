package signals

// Handle is a generation-checked reference into a HandleTable. A stale
// handle (released slot, possibly reoccupied) fails to resolve instead of
// reaching a different value.
type Handle struct {
	index      uint32
	generation uint32
}

type handleSlot[T any] struct {
	value      T
	generation uint32
	occupied   bool
}

// HandleTable hands out weak, generation-checked handles to values the
// engine must not keep alive through a subscription, typically UI elements
// owned by a binding layer.
type HandleTable[T any] struct {
	slots []handleSlot[T]
	free  []uint32
}

func NewHandleTable[T any]() *HandleTable[T] {
	return &HandleTable[T]{}
}

// Put stores v and returns its handle.
func (t *HandleTable[T]) Put(v T) Handle {
	if n := len(t.free); n > 0 {
		idx := t.free[n-1]
		t.free = t.free[:n-1]
		slot := &t.slots[idx]
		slot.value = v
		slot.occupied = true
		return Handle{index: idx, generation: slot.generation}
	}
	t.slots = append(t.slots, handleSlot[T]{value: v, occupied: true})
	return Handle{index: uint32(len(t.slots) - 1)}
}

// Resolve returns the value h refers to, or false when the slot was
// released or reoccupied since h was issued.
func (t *HandleTable[T]) Resolve(h Handle) (T, bool) {
	if int(h.index) >= len(t.slots) {
		var zero T
		return zero, false
	}
	slot := &t.slots[h.index]
	if !slot.occupied || slot.generation != h.generation {
		var zero T
		return zero, false
	}
	return slot.value, true
}

// Release frees the slot behind h, invalidating h and every copy of it.
// Releasing a stale handle is a no-op.
func (t *HandleTable[T]) Release(h Handle) bool {
	if int(h.index) >= len(t.slots) {
		return false
	}
	slot := &t.slots[h.index]
	if !slot.occupied || slot.generation != h.generation {
		return false
	}
	var zero T
	slot.value = zero
	slot.occupied = false
	slot.generation++
	t.free = append(t.free, h.index)
	return true
}

// Len reports the number of live slots.
func (t *HandleTable[T]) Len() int {
	return len(t.slots) - len(t.free)
}

// Subscribable is anything with Subscribe semantics - writeable signals
// and computeds.
type Subscribable[T comparable] interface {
	Subscribe(fn func(T)) func()
}

// SubscribeWeak subscribes on behalf of the value behind h without keeping
// it alive through the subscription: every delivery resolves h first, and
// the subscription drops itself when resolution fails. The returned
// function unsubscribes early.
func SubscribeWeak[T comparable, U any](src Subscribable[T], table *HandleTable[U], h Handle, fn func(target U, value T)) func() {
	dead := false
	var unsub func()
	unsub = src.Subscribe(func(v T) {
		target, ok := table.Resolve(h)
		if !ok {
			dead = true
			if unsub != nil {
				unsub()
			}
			return
		}
		fn(target, v)
	})
	// the immediate first delivery may have found the handle already stale
	if dead {
		unsub()
	}
	return unsub
}
