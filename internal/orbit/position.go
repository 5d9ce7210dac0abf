package orbit

import (
	"math"
	"time"

	"github.com/litescript/ls-orrery/internal/geom"
)

// HeliocentricKm computes the heliocentric ecliptic J2000 position of a
// body in kilometers at the given instant. The instant is quantized to
// the nearest whole second before propagation.
func HeliocentricKm(el Elements, t time.Time) geom.Vec3 {
	jd := JulianDay(QuantizeTime(t))
	T := CenturiesSinceJ2000(jd)
	cur := el.at(T)

	meanAnomalyDeg := norm360(cur.MeanLongitudeDeg - cur.LongPerihelionDeg)
	E := SolveKepler(degToRad(meanAnomalyDeg), cur.Eccentricity)
	v := trueAnomaly(E, cur.Eccentricity)
	rAU := cur.SemiMajorAU * (1 - cur.Eccentricity*math.Cos(E))

	// Argument of latitude: argument of perihelion plus true anomaly.
	u := degToRad(cur.LongPerihelionDeg-cur.LongAscNodeDeg) + v

	pos := rotateToEcliptic(rAU, u, degToRad(cur.InclinationDeg), degToRad(cur.LongAscNodeDeg))
	return pos.Scale(KmPerAU)
}

// SatelliteRelativeKm computes a satellite's position in kilometers
// relative to its parent body at the given instant. The satellite's
// elements are already in kilometers and degrees; its mean anomaly
// advances linearly from the reference epoch.
func SatelliteRelativeKm(sat SatelliteElements, t time.Time) geom.Vec3 {
	jd := JulianDay(QuantizeTime(t))

	meanAnomalyDeg := meanAnomalyAt(sat.MeanAnomalyAtEpochDeg, sat.MeanMotionDegPerDay, sat.epoch(), jd)
	E := SolveKepler(degToRad(meanAnomalyDeg), sat.Eccentricity)
	v := trueAnomaly(E, sat.Eccentricity)
	rKm := sat.SemiMajorKm * (1 - sat.Eccentricity*math.Cos(E))

	u := degToRad(sat.ArgPeriapsisDeg) + v

	return rotateToEcliptic(rKm, u, degToRad(sat.InclinationDeg), degToRad(sat.LongAscNodeDeg))
}

// rotateToEcliptic places an in-plane position (radius r at argument of
// latitude u) into the reference frame given the orbit's inclination and
// ascending node, both in radians.
func rotateToEcliptic(r, u, incl, node float64) geom.Vec3 {
	sinU, cosU := math.Sincos(u)
	sinNode, cosNode := math.Sincos(node)
	cosIncl := math.Cos(incl)
	sinIncl := math.Sin(incl)

	return geom.Vec3{
		X: r * (cosNode*cosU - sinNode*sinU*cosIncl),
		Y: r * (sinNode*cosU + cosNode*sinU*cosIncl),
		Z: r * (sinU * sinIncl),
	}
}
