package engine

// ListenerID identifies a subscription so it can be removed later.
type ListenerID uint64

type listener[F any] struct {
	id ListenerID
	fn F
}

// Event is a multi-cast event with no argument.
type Event struct {
	listeners []listener[func()]
	nextID    ListenerID
}

// AddListener adds a callback to be invoked when the event fires.
// A nil callback is ignored and yields the zero ID.
func (e *Event) AddListener(callback func()) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[func()]{id: e.nextID, fn: callback})
	return e.nextID
}

// RemoveListener drops the subscription with the given ID.
func (e *Event) RemoveListener(id ListenerID) bool {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Event) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls all registered listeners in subscription order.
func (e *Event) Invoke() {
	for _, l := range e.snapshot() {
		l.fn()
	}
}

func (e *Event) snapshot() []listener[func()] {
	return append([]listener[func()](nil), e.listeners...)
}

func (e *Event) GetListenerCount() int {
	return len(e.listeners)
}

// EventWithArg is a generic event with one argument
type EventWithArg[T any] struct {
	listeners []listener[func(T)]
	nextID    ListenerID
}

func (e *EventWithArg[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[func(T)]{id: e.nextID, fn: callback})
	return e.nextID
}

func (e *EventWithArg[T]) RemoveListener(id ListenerID) bool {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	// Listeners may unsubscribe while being invoked
	ls := append([]listener[func(T)](nil), e.listeners...)
	for _, l := range ls {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.listeners)
}
