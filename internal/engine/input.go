package engine

// Key identifies one logical input on the six-key pad the engine
// targets. Concrete devices map whatever hardware they poll (touch pads,
// GPIO buttons, terminal keys) onto these.
type Key uint

const (
	KeyBack Key = iota
	KeyUp
	KeyEnter
	KeyLeft
	KeyDown
	KeyRight

	// KeyCount is the number of logical keys. Devices tracking per-key
	// state size their tables with it.
	KeyCount
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyBack:
		return "Back"
	case KeyUp:
		return "Up"
	case KeyEnter:
		return "Enter"
	case KeyLeft:
		return "Left"
	case KeyDown:
		return "Down"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Keys is a bitmask of logical keys. The zero value is the empty set.
type Keys uint32

// KeySet builds a Keys mask from individual keys.
func KeySet(keys ...Key) Keys {
	var s Keys
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// Has reports whether k is in the set.
func (s Keys) Has(k Key) bool {
	return s&(1<<k) != 0
}

// With returns the set with k added.
func (s Keys) With(k Key) Keys {
	return s | 1<<k
}

// Without returns the set with k removed.
func (s Keys) Without(k Key) Keys {
	return s &^ (1 << k)
}

// Empty reports whether no key is held.
func (s Keys) Empty() bool {
	return s == 0
}

// State is the input snapshot handed to update hooks each tick.
// Pressed and Released are derived from consecutive polls, so
// Pressed ∩ Released is empty by construction and
// Held(now) == Held(prev) ∪ Pressed − Released.
type State struct {
	Held     Keys // keys down this tick
	Pressed  Keys // down now, up last tick
	Released Keys // up now, down last tick
}

// Next derives the snapshot for a new poll result from the previous one.
func (s State) Next(held Keys) State {
	return State{
		Held:     held,
		Pressed:  held &^ s.Held,
		Released: s.Held &^ held,
	}
}

// Device is the input polling contract. The Manager calls Poll exactly
// once per tick, before any update hook runs. A device that cannot read
// its hardware should return the empty set rather than block the loop;
// the engine defines no failure channel for input.
type Device interface {
	Poll() Keys
}

// DeviceFunc adapts a plain function to the Device interface.
type DeviceFunc func() Keys

// Poll implements Device.
func (f DeviceFunc) Poll() Keys {
	return f()
}
