// Package orbit computes celestial body positions from Keplerian orbital
// elements: a Newton-Raphson Kepler solver, heliocentric propagation with
// secular rates, and parent-relative satellite propagation.
package orbit

import "math"

const (
	// KmPerAU is the Astronomical Unit in kilometers.
	KmPerAU = 149597870.7

	// J2000 is the J2000.0 reference epoch as a Julian Day.
	J2000 = 2451545.0

	// DaysPerCentury is the length of a Julian century in days.
	DaysPerCentury = 36525.0

	// Solver stopping criteria. Convergence failure after the iteration
	// cap is accepted with the best-effort eccentric anomaly; for the
	// elliptical orbits in the catalog (e < 0.25) the solver converges in
	// a handful of iterations, so the cap is an approximation limit rather
	// than an error condition.
	keplerTolerance  = 1e-8
	keplerIterations = 50
)

// SolveKepler returns the eccentric anomaly E satisfying
// E - e*sin(E) = M, for mean anomaly M in radians and eccentricity
// 0 <= e < 1. Newton-Raphson seeded at E = M.
func SolveKepler(meanAnomaly, eccentricity float64) float64 {
	E := meanAnomaly
	for i := 0; i < keplerIterations; i++ {
		f := E - eccentricity*math.Sin(E) - meanAnomaly
		delta := f / (1 - eccentricity*math.Cos(E))
		E -= delta
		if math.Abs(delta) <= keplerTolerance {
			break
		}
	}
	return E
}

// trueAnomaly converts an eccentric anomaly to the true anomaly.
func trueAnomaly(eccentricAnomaly, eccentricity float64) float64 {
	denom := 1 - eccentricity*math.Cos(eccentricAnomaly)
	cosV := (math.Cos(eccentricAnomaly) - eccentricity) / denom
	sinV := math.Sqrt(1-eccentricity*eccentricity) * math.Sin(eccentricAnomaly) / denom
	return math.Atan2(sinV, cosV)
}

// norm360 normalizes an angle to [0, 360) degrees.
func norm360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
