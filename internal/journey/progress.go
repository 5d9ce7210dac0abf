// Package journey tracks travel progress between bodies and drives the
// traveler's position along the surface-to-surface path.
package journey

// Progress is the externally supplied travel state, read every frame.
// Distances are in the caller's own units; only their ratios matter.
type Progress struct {
	StartingLocation         string
	Target                   string
	InitialDistance          float64
	DistanceTraveled         float64
	PreviousDistanceTraveled float64
}

// Active reports whether a journey is underway.
func (p Progress) Active() bool {
	return p.Target != "" && p.StartingLocation != ""
}

// Fraction is the completed share of the journey, clamped to [0,1].
// A zero initial distance counts as already arrived.
func (p Progress) Fraction() float64 {
	return fractionOf(p.DistanceTraveled, p.InitialDistance)
}

// PreviousFraction is the completed share before the latest advance.
func (p Progress) PreviousFraction() float64 {
	return fractionOf(p.PreviousDistanceTraveled, p.InitialDistance)
}

// TravelKey identifies the start/target pair, shared by every traveler
// on the same route.
func (p Progress) TravelKey() string {
	return p.StartingLocation + "->" + p.Target
}

func fractionOf(traveled, initial float64) float64 {
	if initial <= 0 {
		return 1
	}
	f := traveled / initial
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
