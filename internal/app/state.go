// Package app provides the canonical color state, change events, and application lifecycle helpers.
package app

import (
	"image/color"
	"strconv"
	"strings"
	"sync"

	"color-picker/pkg/colorutil"
)

// DefaultColor is the color shown at startup.
var DefaultColor = colorutil.Red

// State holds the canonical RGB color. CMYK and HLS are derived on every update
// and handed to listeners as a Snapshot; they are never stored on their own.
type State struct {
	mu sync.RWMutex

	current Snapshot

	// Event listeners
	listeners map[EventType][]EventListener
}

// Snapshot is one consistent view of the current color in every model.
type Snapshot struct {
	RGB  colorutil.RGB
	CMYK colorutil.CMYK
	HLS  colorutil.HLS
}

// NewSnapshot derives a Snapshot from an RGB color. Channels are clamped to 0-255.
func NewSnapshot(c colorutil.RGB) Snapshot {
	c = c.Clamped()
	return Snapshot{
		RGB:  c,
		CMYK: c.CMYK(),
		HLS:  c.HLS(),
	}
}

// Display formats the snapshot for the UI.
func (s Snapshot) Display() Display {
	return NewDisplay(s)
}

// EventType identifies different application events.
type EventType int

const (
	// EventColorChanged fires after every accepted update; data is a Snapshot.
	EventColorChanged EventType = iota
	// EventColorSampled fires after a color taken from an image; data is a Snapshot.
	EventColorSampled
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a new state holding DefaultColor.
func NewState() *State {
	return &State{
		current:   NewSnapshot(DefaultColor),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// OnColorChanged registers a typed listener for EventColorChanged.
func (s *State) OnColorChanged(fn func(Snapshot)) {
	s.On(EventColorChanged, func(data interface{}) {
		if snap, ok := data.(Snapshot); ok {
			fn(snap)
		}
	})
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Snapshot returns the current color in all models.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Color returns the canonical RGB color.
func (s *State) Color() colorutil.RGB {
	return s.Snapshot().RGB
}

// SetColor stores a new canonical color and notifies listeners.
// Out-of-range channels are clamped to 0-255.
func (s *State) SetColor(r, g, b int) Snapshot {
	snap := NewSnapshot(colorutil.RGB{R: r, G: g, B: b})

	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()

	s.Emit(EventColorChanged, snap)
	return snap
}

// SetColorFromDialog stores a color picked in a color chooser dialog.
func (s *State) SetColorFromDialog(c color.Color) Snapshot {
	rgb := colorutil.FromColor(c)
	return s.SetColor(rgb.R, rgb.G, rgb.B)
}

// SetColorFromSample stores a color sampled from an image.
func (s *State) SetColorFromSample(c color.Color) Snapshot {
	snap := s.SetColorFromDialog(c)
	s.Emit(EventColorSampled, snap)
	return snap
}

// SetColorFromText parses the three RGB text fields. If any field is not an
// integer the input is dropped: the state is untouched, no event fires, and
// the current snapshot is returned with ok=false.
func (s *State) SetColorFromText(r, g, b string) (snap Snapshot, ok bool) {
	var vals [3]int
	for i, text := range []string{r, g, b} {
		v, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return s.Snapshot(), false
		}
		vals[i] = v
	}
	return s.SetColor(vals[0], vals[1], vals[2]), true
}
