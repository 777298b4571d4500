package rowan

// Event is a named channel carrying arbitrary payloads to any number of
// subscribers. Dispatch is single-threaded and synchronous: Emit calls every
// current subscriber in subscription order before returning. Subscribers
// added during dispatch are not called until the next emission.
type Event struct {
	name     string
	subs     []subscriber
	nextID   uint32
	emitBuf  []subscriber // reused snapshot to keep Emit allocation-free
	emitting bool
}

type subscriber struct {
	id uint32
	fn func(payload any)
}

// Sub identifies one subscription on an Event and can cancel it.
type Sub struct {
	ev *Event
	id uint32
}

// Name returns the name the event was registered under.
func (e *Event) Name() string { return e.name }

// On subscribes fn to the event and returns a Sub for later removal.
// Subscribers fire in the order they were added.
func (e *Event) On(fn func(payload any)) Sub {
	e.nextID++
	e.subs = append(e.subs, subscriber{id: e.nextID, fn: fn})
	return Sub{ev: e, id: e.nextID}
}

// Emit calls every subscriber registered at the time of the call, in
// subscription order, passing payload to each. Subscriptions made by a
// running callback take effect from the next emission.
func (e *Event) Emit(payload any) {
	var snap []subscriber
	if e.emitting {
		// Re-entrant emission from a callback: take a fresh snapshot.
		snap = append([]subscriber(nil), e.subs...)
	} else {
		e.emitting = true
		e.emitBuf = append(e.emitBuf[:0], e.subs...)
		snap = e.emitBuf
		defer func() { e.emitting = false }()
	}
	for _, s := range snap {
		s.fn(payload)
	}
}

// Clear removes all subscribers.
func (e *Event) Clear() {
	e.subs = e.subs[:0]
}

// SubscriberCount returns the number of active subscribers.
func (e *Event) SubscriberCount() int { return len(e.subs) }

// Off cancels the subscription. Calling Off more than once is harmless.
func (s Sub) Off() {
	if s.ev == nil {
		return
	}
	subs := s.ev.subs
	for i := range subs {
		if subs[i].id == s.id {
			copy(subs[i:], subs[i+1:])
			subs[len(subs)-1] = subscriber{}
			s.ev.subs = subs[:len(subs)-1]
			return
		}
	}
}

// Bus is the event registry. Events are deduplicated by name: requesting an
// already-registered name returns the same Event with its subscriber list
// cleared, so a reloaded script starts from a clean slate.
type Bus struct {
	events map[string]*Event
	order  []*Event
}

// NewBus creates an empty event registry.
func NewBus() *Bus {
	return &Bus{events: make(map[string]*Event)}
}

// NewEvent registers (or re-registers) a named event. Re-registering clears
// existing subscribers but keeps the Event identity, so references held
// elsewhere keep emitting to the same channel.
func (b *Bus) NewEvent(name string) *Event {
	if ev, ok := b.events[name]; ok {
		ev.Clear()
		return ev
	}
	ev := &Event{name: name}
	b.events[name] = ev
	b.order = append(b.order, ev)
	return ev
}

// Lookup returns the named event without disturbing its subscribers, or nil
// if no event with that name was registered.
func (b *Bus) Lookup(name string) *Event {
	return b.events[name]
}

// ClearAll removes the subscribers of every registered event. Event
// identities are preserved. Used when script state is torn down for a
// reload.
func (b *Bus) ClearAll() {
	for _, ev := range b.order {
		ev.Clear()
	}
}

// --- System events ---

// Names of the built-in system events.
const (
	EventKeyDown        = "rowan/keyDown"
	EventKeyUp          = "rowan/keyUp"
	EventTextInput      = "rowan/textInput"
	EventMouseDown      = "rowan/mouseDown"
	EventMouseUp        = "rowan/mouseUp"
	EventMouseClick     = "rowan/mouseClick"
	EventResourceReady  = "rowan/resourceReady"
	EventConsoleCommand = "rowan/consoleCommand"
)

// SystemEvents bundles the built-in events every runtime owns.
type SystemEvents struct {
	KeyDown        *Event // payload: KeyPayload
	KeyUp          *Event // payload: KeyPayload
	TextInput      *Event // payload: string (typed characters)
	MouseDown      *Event // payload: MousePayload
	MouseUp        *Event // payload: MousePayload
	MouseClick     *Event // payload: MousePayload
	ResourceReady  *Event // payload: *Handle
	ConsoleCommand *Event // payload: string (the command line)
}

// KeyPayload is the payload of KeyDown and KeyUp events.
type KeyPayload struct {
	Key string
}

// MousePayload is the payload of the mouse button events.
type MousePayload struct {
	Pos    Vec2 // pixels
	Button MouseButton
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button
)

func newSystemEvents(b *Bus) SystemEvents {
	return SystemEvents{
		KeyDown:        b.NewEvent(EventKeyDown),
		KeyUp:          b.NewEvent(EventKeyUp),
		TextInput:      b.NewEvent(EventTextInput),
		MouseDown:      b.NewEvent(EventMouseDown),
		MouseUp:        b.NewEvent(EventMouseUp),
		MouseClick:     b.NewEvent(EventMouseClick),
		ResourceReady:  b.NewEvent(EventResourceReady),
		ConsoleCommand: b.NewEvent(EventConsoleCommand),
	}
}
