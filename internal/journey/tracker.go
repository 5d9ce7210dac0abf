package journey

import (
	"fmt"
	"time"

	"github.com/litescript/ls-orrery/internal/body"
	"github.com/litescript/ls-orrery/internal/geom"
	"github.com/litescript/ls-orrery/internal/scene"
)

// cameraClearance pads body collision spheres so the camera never
// grazes a surface, in scene units.
const cameraClearance = 0.15

// Tracker converts journey progress into scene-space traveler
// positions. All animation is computed from absolute timestamps so a
// paused frame loop resumes at the correct point.
type Tracker struct {
	reg *body.Registry
	fan *scene.Fan

	// MoveDelay is the lead time before the travel animation starts,
	// matching the camera's pre-roll and hold.
	MoveDelay time.Duration
	// TravelDuration is how long the traveler animates from its
	// previous fraction to the current one.
	TravelDuration time.Duration
}

// NewTracker returns a tracker over the given registry.
func NewTracker(reg *body.Registry, moveDelay, travelDur time.Duration) *Tracker {
	return &Tracker{
		reg:            reg,
		fan:            scene.NewFan(),
		MoveDelay:      moveDelay,
		TravelDuration: travelDur,
	}
}

// Endpoints resolves the journey's surface-to-surface travel points in
// scene units at simulation time t.
func (tr *Tracker) Endpoints(p Progress, t time.Time) (scene.Endpoints, error) {
	if !p.Active() {
		return scene.Endpoints{}, fmt.Errorf("journey: no active travel")
	}
	startKm, err := tr.reg.PositionKm(p.StartingLocation, t)
	if err != nil {
		return scene.Endpoints{}, err
	}
	targetKm, err := tr.reg.PositionKm(p.Target, t)
	if err != nil {
		return scene.Endpoints{}, err
	}
	return scene.SurfaceEndpoints(
		scene.ToUnitsVec(startKm), tr.reg.ApparentRadius(p.StartingLocation),
		scene.ToUnitsVec(targetKm), tr.reg.ApparentRadius(p.Target),
	), nil
}

// AnimatedFraction returns the traveler's displayed journey fraction at
// now, easing from the previous fraction to the current one over
// TravelDuration after MoveDelay has elapsed since animStart.
func (tr *Tracker) AnimatedFraction(p Progress, animStart, now time.Time) float64 {
	from := p.PreviousFraction()
	to := p.Fraction()
	elapsed := now.Sub(animStart) - tr.MoveDelay
	if elapsed <= 0 {
		return from
	}
	if elapsed >= tr.TravelDuration || tr.TravelDuration <= 0 {
		return to
	}
	t := float64(elapsed) / float64(tr.TravelDuration)
	t = t * t * (3 - 2*t)
	return from + (to-from)*t
}

// Position returns one traveler's scene position at journey fraction
// frac, spread laterally when several travelers share the route.
func (tr *Tracker) Position(entityID string, p Progress, cluster []string, frac float64, t time.Time) (geom.Vec3, error) {
	ep, err := tr.Endpoints(p, t)
	if err != nil {
		return geom.Vec3{}, err
	}
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	pos := ep.StartSurface.Add(ep.TargetSurface.Sub(ep.StartSurface).Scale(frac))

	axis := ep.TargetSurface.Sub(ep.StartSurface)
	offset := tr.fan.OffsetFor(entityID, p.TravelKey(), cluster, axis)
	return pos.Add(offset), nil
}

// AimPoint returns the landing point the traveler orients toward.
func (tr *Tracker) AimPoint(p Progress, t time.Time) (geom.Vec3, error) {
	if !p.Active() {
		return geom.Vec3{}, fmt.Errorf("journey: no active travel")
	}
	startKm, err := tr.reg.PositionKm(p.StartingLocation, t)
	if err != nil {
		return geom.Vec3{}, err
	}
	targetKm, err := tr.reg.PositionKm(p.Target, t)
	if err != nil {
		return geom.Vec3{}, err
	}
	return scene.AimPoint(
		scene.ToUnitsVec(startKm),
		scene.ToUnitsVec(targetKm),
		tr.reg.ApparentRadius(p.Target),
	), nil
}

// CollisionResolver returns a camera resolver that pushes the camera
// out of the collision sphere of any visible planet or moon it has
// ended up inside. Spheres merely pierced by the view ray beyond the
// camera leave it alone. The sun is exempt: the camera may orbit
// inside its display radius at system scale.
func (tr *Tracker) CollisionResolver(simNow func() time.Time) func(center, dir geom.Vec3, radius float64) float64 {
	return func(center, dir geom.Vec3, radius float64) float64 {
		t := simNow()
		var safe float64
		for _, name := range tr.reg.Names() {
			b, ok := tr.reg.Get(name)
			if !ok || b.Kind == body.KindStar || !tr.reg.Visible(name) {
				continue
			}
			posKm, err := tr.reg.PositionKm(name, t)
			if err != nil {
				continue
			}
			sphere := scene.ToUnitsVec(posKm)
			r := tr.reg.ApparentRadius(name) + cameraClearance
			entry, exit, hit := scene.RaySphereSpan(center, dir, sphere, r)
			if !hit || radius <= entry || radius >= exit {
				continue
			}
			if exit > safe {
				safe = exit
			}
		}
		return safe
	}
}
