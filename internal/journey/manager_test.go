package journey

import (
	"testing"
	"time"
)

func TestProgressFraction(t *testing.T) {
	tests := []struct {
		name string
		p    Progress
		want float64
	}{
		{"halfway", Progress{InitialDistance: 100, DistanceTraveled: 50}, 0.5},
		{"clamped above", Progress{InitialDistance: 100, DistanceTraveled: 150}, 1},
		{"clamped below", Progress{InitialDistance: 100, DistanceTraveled: -5}, 0},
		{"zero distance counts as arrived", Progress{InitialDistance: 0, DistanceTraveled: 0}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Fraction(); got != tc.want {
				t.Errorf("Fraction() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestManagerDetectsJourneyStart(t *testing.T) {
	m := NewManager(DefaultConfig())
	now := time.Now()

	p := Progress{StartingLocation: "Earth", Target: "Mars", InitialDistance: 100}
	if !m.Update(p, now) {
		t.Fatal("new journey did not report a change")
	}

	events := m.RecentEvents(10)
	if len(events) != 1 || events[0].Type != EventJourneyStarted {
		t.Fatalf("events = %+v, want one JOURNEY_STARTED", events)
	}
	if events[0].From != "Earth" || events[0].To != "Mars" {
		t.Errorf("event route = %s->%s", events[0].From, events[0].To)
	}
}

func TestManagerDetectsAdvanceAndArrival(t *testing.T) {
	m := NewManager(DefaultConfig())
	now := time.Now()

	m.Update(Progress{StartingLocation: "Earth", Target: "Mars", InitialDistance: 100}, now)

	p := Progress{StartingLocation: "Earth", Target: "Mars", InitialDistance: 100,
		DistanceTraveled: 40, PreviousDistanceTraveled: 0}
	if !m.Update(p, now) {
		t.Fatal("advance did not report a change")
	}

	// Re-reading the same progress is not a change.
	if m.Update(p, now) {
		t.Error("identical progress reported a change")
	}

	p.PreviousDistanceTraveled = 40
	p.DistanceTraveled = 100
	if !m.Update(p, now) {
		t.Fatal("final advance did not report a change")
	}

	events := m.RecentEvents(10)
	want := []EventType{EventJourneyStarted, EventProgressAdvanced, EventProgressAdvanced, EventArrived}
	if len(events) != len(want) {
		t.Fatalf("got %d events (%+v), want %d", len(events), events, len(want))
	}
	for i, w := range want {
		if events[i].Type != w {
			t.Errorf("event[%d] = %s, want %s", i, events[i].Type, w)
		}
	}
}

func TestManagerEventRingWraps(t *testing.T) {
	m := NewManager(Config{MaxEvents: 3})
	now := time.Now()

	m.Update(Progress{StartingLocation: "Earth", Target: "Mars", InitialDistance: 1000}, now)
	for i := 1; i <= 5; i++ {
		m.Update(Progress{
			StartingLocation:         "Earth",
			Target:                   "Mars",
			InitialDistance:          1000,
			DistanceTraveled:         float64(i * 10),
			PreviousDistanceTraveled: float64((i - 1) * 10),
		}, now.Add(time.Duration(i)*time.Second))
	}

	events := m.RecentEvents(10)
	if len(events) != 3 {
		t.Fatalf("ring holds %d events, want 3", len(events))
	}
	// Oldest to newest.
	for i := 1; i < len(events); i++ {
		if events[i].Timestamp.Before(events[i-1].Timestamp) {
			t.Fatal("ring events out of order")
		}
	}
	if events[2].Fraction != 0.05 {
		t.Errorf("newest event fraction = %v, want 0.05", events[2].Fraction)
	}
}

func TestSnapshot(t *testing.T) {
	m := NewManager(DefaultConfig())
	if _, ok := m.Snapshot(); ok {
		t.Error("empty manager claims data")
	}
	p := Progress{StartingLocation: "Earth", Target: "Moon", InitialDistance: 10}
	m.Update(p, time.Now())
	got, ok := m.Snapshot()
	if !ok || got != p {
		t.Errorf("Snapshot() = %+v, %v", got, ok)
	}
}
