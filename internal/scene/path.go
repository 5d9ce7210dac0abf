package scene

import (
	"math"

	"github.com/litescript/ls-orrery/internal/geom"
)

// LandingClearance is the buffer between a traveler and the destination
// surface, in scene units, so arrivals never visually clip the body.
const LandingClearance = 0.08

// Endpoints are the surface-to-surface travel points between two bodies.
type Endpoints struct {
	StartSurface  geom.Vec3
	TargetSurface geom.Vec3
}

// SurfaceEndpoints returns the points on the line between two body
// centers that lie on each body's surface. The target endpoint stops
// LandingClearance short of the destination surface.
func SurfaceEndpoints(startCenter geom.Vec3, startRadius float64, targetCenter geom.Vec3, targetRadius float64) Endpoints {
	axis := targetCenter.Sub(startCenter).Normalized()
	return Endpoints{
		StartSurface:  startCenter.Add(axis.Scale(startRadius)),
		TargetSurface: targetCenter.Sub(axis.Scale(targetRadius + LandingClearance)),
	}
}

// AimPoint returns the look-direction target for a traveler headed from
// startCenter toward targetCenter: the landing point on the destination,
// independent of the traveler's own current position, so orientation
// stays continuous mid-flight.
func AimPoint(startCenter, targetCenter geom.Vec3, targetRadius float64) geom.Vec3 {
	axis := targetCenter.Sub(startCenter).Normalized()
	return targetCenter.Sub(axis.Scale(targetRadius + LandingClearance))
}

// RaySphereSpan intersects a ray (origin, unit dir) against a collision
// sphere and reports the entry and exit distances along the ray. ok is
// false when the ray misses or the sphere lies entirely behind the
// origin. entry is negative when the origin starts inside the sphere.
// A point at distance d sits inside the sphere when entry < d < exit.
func RaySphereSpan(origin, dir, sphereCenter geom.Vec3, sphereRadius float64) (entry, exit float64, ok bool) {
	oc := sphereCenter.Sub(origin)
	proj := oc.Dot(dir)
	perpSq := oc.NormSq() - proj*proj
	rSq := sphereRadius * sphereRadius
	if perpSq >= rSq {
		return 0, 0, false
	}
	half := math.Sqrt(rSq - perpSq)
	exit = proj + half
	if exit <= 0 {
		return 0, 0, false
	}
	return proj - half, exit, true
}
