package journey

import (
	"sync"
	"time"
)

// EventType represents the type of journey change event.
type EventType string

const (
	EventJourneyStarted   EventType = "JOURNEY_STARTED"
	EventProgressAdvanced EventType = "PROGRESS_ADVANCED"
	EventArrived          EventType = "ARRIVED"
)

// Event records one journey state change for the HUD event log.
type Event struct {
	Type      EventType
	Timestamp time.Time
	From      string
	To        string
	Fraction  float64
}

// Manager holds the current travel progress with thread-safe access and
// keeps a ring buffer of change events.
type Manager struct {
	mu sync.RWMutex

	current Progress
	hasData bool

	events    []Event
	maxEvents int
	writeAt   int
}

// Config holds configuration for the journey manager.
type Config struct {
	MaxEvents int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{MaxEvents: 50}
}

// NewManager creates a journey manager.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	return &Manager{
		maxEvents: maxEvents,
		events:    make([]Event, 0, maxEvents),
	}
}

// Update atomically replaces the progress state, detecting change
// events against the previous value. It reports whether the travel
// state moved in a way that should re-trigger the scripted camera
// (a new journey, or an advance along the current one).
func (m *Manager) Update(p Progress, now time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.current
	hadData := m.hasData
	m.current = p
	m.hasData = true

	if !p.Active() {
		return false
	}

	newJourney := !hadData || prev.Target != p.Target || prev.StartingLocation != p.StartingLocation
	if newJourney {
		m.addEvent(Event{
			Type:      EventJourneyStarted,
			Timestamp: now,
			From:      p.StartingLocation,
			To:        p.Target,
			Fraction:  p.Fraction(),
		})
		if p.Fraction() >= 1 {
			m.addEvent(Event{Type: EventArrived, Timestamp: now, From: p.StartingLocation, To: p.Target, Fraction: 1})
		}
		return true
	}

	if p.DistanceTraveled > prev.DistanceTraveled {
		m.addEvent(Event{
			Type:      EventProgressAdvanced,
			Timestamp: now,
			From:      p.StartingLocation,
			To:        p.Target,
			Fraction:  p.Fraction(),
		})
		if prev.Fraction() < 1 && p.Fraction() >= 1 {
			m.addEvent(Event{Type: EventArrived, Timestamp: now, From: p.StartingLocation, To: p.Target, Fraction: 1})
		}
		return true
	}
	return false
}

// Snapshot returns the current progress and whether any update has
// arrived yet.
func (m *Manager) Snapshot() (Progress, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current, m.hasData
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.writeAt] = e
		m.writeAt = (m.writeAt + 1) % m.maxEvents
	}
}

// RecentEvents returns the last n events in chronological order.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.eventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

func (m *Manager) eventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		result[i] = m.events[(m.writeAt+i)%m.maxEvents]
	}
	return result
}
