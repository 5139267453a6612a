// internal/event/event.go
package event

// EventType identifies an event kind.
type EventType string

// Event carries a type and an optional payload.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener is implemented by event subscribers. Listeners are compared by
// identity on Unsubscribe, so use pointer receivers.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher routes events to subscribers. Events can be dispatched right away
// or posted to a queue that the update loop drains with Flush.
// It is not safe for concurrent use: one update thread owns it.
type Dispatcher struct {
	listeners map[EventType][]Listener
	queue     []Event
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for eventType.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes the first registration of listener for eventType.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
				break
			}
		}
		if len(d.listeners[eventType]) == 0 {
			delete(d.listeners, eventType)
		}
	}
}

// Dispatch delivers event synchronously to every subscriber.
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		// copy: a listener may unsubscribe while we iterate
		snapshot := append([]Listener(nil), listeners...)
		for _, listener := range snapshot {
			listener.OnEvent(event)
		}
	}
}

// Post queues event for the next Flush.
func (d *Dispatcher) Post(event Event) {
	d.queue = append(d.queue, event)
}

// Flush dispatches all queued events in posting order and returns how many ran.
// Events posted by listeners during Flush run in the same call.
func (d *Dispatcher) Flush() int {
	n := 0
	for len(d.queue) > 0 {
		next := d.queue[0]
		d.queue = d.queue[1:]
		d.Dispatch(next)
		n++
	}
	d.queue = nil
	return n
}

// Pending returns the number of queued events.
func (d *Dispatcher) Pending() int {
	return len(d.queue)
}

// ListenerCount returns the total number of registrations across all types.
func (d *Dispatcher) ListenerCount() int {
	n := 0
	for _, listeners := range d.listeners {
		n += len(listeners)
	}
	return n
}
