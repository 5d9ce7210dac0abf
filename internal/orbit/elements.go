package orbit

// Elements holds heliocentric Keplerian elements at the J2000.0 epoch,
// in AU and degrees, with optional linear rates per Julian century.
// Elements are defined once per planet at startup and never mutated.
// Eccentricity must satisfy 0 <= e < 1 (elliptical orbits only).
type Elements struct {
	SemiMajorAU       float64 // a
	Eccentricity      float64 // e
	InclinationDeg    float64 // i
	MeanLongitudeDeg  float64 // L at epoch
	LongPerihelionDeg float64 // longitude of perihelion
	LongAscNodeDeg    float64 // longitude of ascending node

	// Secular rates, per Julian century. Zero when absent.
	SemiMajorDot      float64
	EccentricityDot   float64
	InclinationDot    float64
	MeanLongitudeDot  float64
	LongPerihelionDot float64
	LongAscNodeDot    float64
}

// at applies the secular rates for T Julian centuries past J2000.0 and
// returns the instantaneous elements.
func (el Elements) at(T float64) Elements {
	return Elements{
		SemiMajorAU:       el.SemiMajorAU + el.SemiMajorDot*T,
		Eccentricity:      el.Eccentricity + el.EccentricityDot*T,
		InclinationDeg:    el.InclinationDeg + el.InclinationDot*T,
		MeanLongitudeDeg:  norm360(el.MeanLongitudeDeg + el.MeanLongitudeDot*T),
		LongPerihelionDeg: el.LongPerihelionDeg + el.LongPerihelionDot*T,
		LongAscNodeDeg:    el.LongAscNodeDeg + el.LongAscNodeDot*T,
	}
}

// SatelliteElements holds parent-centric orbital elements for a moon.
// Distances are kilometers, not AU: satellites orbit a planet, not the
// sun. Mean motion may be negative for retrograde orbits (Triton).
type SatelliteElements struct {
	SemiMajorKm           float64
	Eccentricity          float64
	InclinationDeg        float64
	LongAscNodeDeg        float64
	ArgPeriapsisDeg       float64
	MeanAnomalyAtEpochDeg float64
	MeanMotionDegPerDay   float64

	// EpochJD is the Julian Day the mean anomaly is referenced to.
	// Zero means J2000.0.
	EpochJD float64
}

// epoch returns the reference epoch, defaulting to J2000.0.
func (s SatelliteElements) epoch() float64 {
	if s.EpochJD == 0 {
		return J2000
	}
	return s.EpochJD
}
