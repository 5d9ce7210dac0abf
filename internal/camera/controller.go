// Package camera implements the orbital camera: a yaw/pitch/radius
// state machine smoothed toward gesture- or script-driven targets, with
// its orbital plane rebuilt every frame from the live sun, traveler and
// destination positions.
package camera

import (
	"math"
	"time"

	"github.com/litescript/ls-orrery/internal/geom"
)

// eclipticUp orients hemisphere stabilization. Normals are kept on the
// southern side of the ecliptic so the basis never flips between frames.
var eclipticUp = geom.Vec3{Z: 1}

const basisEpsilon = 1e-12

// Pose is the fully resolved camera placement for one frame.
type Pose struct {
	Position geom.Vec3
	LookAt   geom.Vec3
	Up       geom.Vec3
}

// CollisionResolver reports the minimum safe orbit radius when the
// camera at distance radius from center along dir would sit inside a
// collision sphere, or 0 when that position is unobstructed. dir is a
// unit vector from the look-at point toward the camera.
type CollisionResolver func(center, dir geom.Vec3, radius float64) float64

// Config holds the tuning constants for a Controller.
type Config struct {
	DefaultRadius float64
	MinRadius     float64
	MaxRadius     float64

	// Per-axis exponential smoothing factors. Radius intentionally
	// trails the angular axes.
	YawSmoothing    float64
	PitchSmoothing  float64
	RadiusSmoothing float64

	AutoRotateStep  float64
	InertiaFriction float64
	InertiaStop     float64

	PitchMin float64
	PitchMax float64

	ZoomPresets []float64

	// SkipAnimation resolves scripted sequences instantly.
	SkipAnimation bool
}

// DefaultConfig returns the tuning used by the interactive view.
func DefaultConfig() Config {
	return Config{
		DefaultRadius:   3.0,
		MinRadius:       0.6,
		MaxRadius:       40.0,
		YawSmoothing:    0.12,
		PitchSmoothing:  0.12,
		RadiusSmoothing: 0.06,
		AutoRotateStep:  0.0025,
		InertiaFriction: 0.92,
		InertiaStop:     1e-4,
		PitchMin:        -1.45,
		PitchMax:        1.45,
		ZoomPresets:     []float64{3.0, 8.0, 20.0},
	}
}

// Controller owns the camera state. It is not safe for concurrent use;
// the frame loop and gesture handlers run on one goroutine.
type Controller struct {
	cfg Config

	yaw, pitch, radius                   float64
	yawTarget, pitchTarget, radiusTarget float64

	panning   bool
	yawVel    float64
	pitchVel  float64
	pinching  bool
	pinchBase float64
	zoomIdx   int

	seq      *sequence
	resolver CollisionResolver
}

// New returns a controller at the default radius with a slight opening
// pitch.
func New(cfg Config) *Controller {
	c := &Controller{cfg: cfg}
	c.radius = cfg.DefaultRadius
	c.radiusTarget = cfg.DefaultRadius
	c.pitch = 0.5
	c.pitchTarget = 0.5
	return c
}

// SetCollisionResolver installs the resolver consulted before each pose
// is finalized. A nil resolver disables collision handling.
func (c *Controller) SetCollisionResolver(r CollisionResolver) {
	c.resolver = r
}

// State reports the current smoothed yaw, pitch and radius.
func (c *Controller) State() (yaw, pitch, radius float64) {
	return c.yaw, c.pitch, c.radius
}

// ScriptActive reports whether a scripted sequence is still driving yaw.
func (c *Controller) ScriptActive() bool {
	return c.seq != nil
}

// BeginPan starts a pan gesture. Any scripted sequence is cancelled
// immediately and the current tweened values become the new baseline.
func (c *Controller) BeginPan() {
	c.cancelScript()
	c.panning = true
	c.yawVel = 0
	c.pitchVel = 0
}

// UpdatePan applies a pan delta in radians. The last delta seeds the
// release inertia.
func (c *Controller) UpdatePan(dYaw, dPitch float64) {
	if !c.panning {
		return
	}
	c.yawTarget += dYaw
	c.pitchTarget = clamp(c.pitchTarget+dPitch, c.cfg.PitchMin, c.cfg.PitchMax)
	c.yawVel = dYaw
	c.pitchVel = dPitch
}

// EndPan releases the pan; the final deltas keep coasting as inertia.
func (c *Controller) EndPan() {
	c.panning = false
}

// BeginPinch starts a zoom gesture from the current radius target.
func (c *Controller) BeginPinch() {
	c.cancelScript()
	c.pinching = true
	c.pinchBase = c.radiusTarget
}

// UpdatePinch rescales the radius target against the pinch baseline.
// scale > 1 zooms in.
func (c *Controller) UpdatePinch(scale float64) {
	if !c.pinching || scale <= 0 {
		return
	}
	c.radiusTarget = clamp(c.pinchBase/scale, c.cfg.MinRadius, c.cfg.MaxRadius)
}

// EndPinch releases the zoom gesture.
func (c *Controller) EndPinch() {
	c.pinching = false
}

// ResetZoom cycles the radius target through the configured presets.
func (c *Controller) ResetZoom() {
	if len(c.cfg.ZoomPresets) == 0 {
		c.radiusTarget = c.cfg.DefaultRadius
		return
	}
	c.radiusTarget = clamp(c.cfg.ZoomPresets[c.zoomIdx], c.cfg.MinRadius, c.cfg.MaxRadius)
	c.zoomIdx = (c.zoomIdx + 1) % len(c.cfg.ZoomPresets)
}

// StartScripted begins the travel camera move: swing to the vantage for
// progressFrom, hold, then follow the traveler to the vantage for
// progressTo over travelDur. Pitch stays wherever the user left it.
// With SkipAnimation set the end vantage is applied immediately.
func (c *Controller) StartScripted(now time.Time, progressFrom, progressTo float64, travelDur time.Duration) {
	vStart := VantageForProgress(progressFrom)
	vEnd := VantageForProgress(progressTo)
	if c.cfg.SkipAnimation {
		c.seq = nil
		c.yawTarget = vEnd.Yaw
		c.radiusTarget = c.cfg.DefaultRadius
		return
	}
	c.seq = &sequence{
		start:     now,
		travelDur: travelDur,
		fromYaw:   c.yaw,
		vStart:    vStart,
		vEnd:      vEnd,
	}
	c.yawVel = 0
	c.pitchVel = 0
}

// ScriptPhase reports the active sequence's phase at now.
func (c *Controller) ScriptPhase(now time.Time) Phase {
	if c.seq == nil {
		return PhaseInactive
	}
	return c.seq.phase(now)
}

func (c *Controller) cancelScript() {
	if c.seq == nil {
		return
	}
	c.seq = nil
	// Freeze the tween where it stands.
	c.yawTarget = c.yaw
	c.radiusTarget = c.radius
}

// Tick advances the camera one frame and returns the resolved pose.
// center is the point the camera orbits and looks at; target is the
// destination body fixing the orbital plane. The sun sits at the
// origin of both.
func (c *Controller) Tick(now time.Time, center, target geom.Vec3) Pose {
	if c.seq != nil {
		yaw, active := c.seq.yawAt(now)
		if active {
			c.yawTarget = yaw
			c.radiusTarget = clamp(c.cfg.DefaultRadius, c.cfg.MinRadius, c.cfg.MaxRadius)
		} else {
			c.seq = nil
		}
	}

	idle := !c.panning && c.seq == nil &&
		math.Abs(c.yawVel) < c.cfg.InertiaStop && math.Abs(c.pitchVel) < c.cfg.InertiaStop
	if idle {
		c.yawTarget += c.cfg.AutoRotateStep
	}

	if !c.panning {
		c.applyInertia()
	}

	c.yaw += (c.yawTarget - c.yaw) * c.cfg.YawSmoothing
	c.pitch += (c.pitchTarget - c.pitch) * c.cfg.PitchSmoothing
	c.radius += (c.radiusTarget - c.radius) * c.cfg.RadiusSmoothing

	n, u, v := planeBasis(center, target)

	r := c.radius
	offset := offsetOnPlane(n, u, v, c.yaw, c.pitch)
	if c.resolver != nil {
		if safe := c.resolver(center, offset, r); safe > r {
			r = math.Min(safe, c.cfg.MaxRadius)
		}
	}

	return Pose{
		Position: center.Add(offset.Scale(r)),
		LookAt:   center,
		Up:       n,
	}
}

func (c *Controller) applyInertia() {
	if c.yawVel != 0 {
		c.yawTarget += c.yawVel
		c.yawVel *= c.cfg.InertiaFriction
		if math.Abs(c.yawVel) < c.cfg.InertiaStop {
			c.yawVel = 0
		}
	}
	if c.pitchVel != 0 {
		c.pitchTarget = clamp(c.pitchTarget+c.pitchVel, c.cfg.PitchMin, c.cfg.PitchMax)
		c.pitchVel *= c.cfg.InertiaFriction
		if math.Abs(c.pitchVel) < c.cfg.InertiaStop {
			c.pitchVel = 0
		}
	}
}

// offsetOnPlane is the unit offset from the orbit center for the given
// yaw and pitch within the frame's plane basis.
func offsetOnPlane(n, u, v geom.Vec3, yaw, pitch float64) geom.Vec3 {
	lateral := u.Scale(math.Cos(yaw)).Add(v.Scale(math.Sin(yaw)))
	return n.Scale(math.Sin(pitch)).Add(lateral.Scale(math.Cos(pitch)))
}

// planeBasis builds the camera's orbital frame from the sun (origin),
// the orbit center and the destination. n spans the orbital plane
// normal, u points along the projected travel direction, v completes
// the right-handed set.
func planeBasis(center, target geom.Vec3) (n, u, v geom.Vec3) {
	n = center.Cross(target)
	if n.NormSq() < basisEpsilon {
		dir := center.Normalized()
		helper := geom.Vec3{Y: 1}
		if math.Abs(dir.Dot(helper)) > math.Abs(dir.Dot(geom.Vec3{X: 1})) {
			helper = geom.Vec3{X: 1}
		}
		n = center.Cross(helper)
	}
	if n.NormSq() < basisEpsilon {
		n = geom.Vec3{Y: 1}
	}
	n = n.Normalized()
	// Keep every frame's normal in the same hemisphere.
	if n.Dot(eclipticUp) > 0 {
		n = n.Scale(-1)
	}

	u = target.Sub(center).ProjectOntoPlane(n)
	if u.NormSq() < basisEpsilon {
		u = eclipticUp.Cross(n)
	}
	if u.NormSq() < basisEpsilon {
		u = geom.Vec3{X: 1}.Cross(n)
	}
	u = u.Normalized()
	if u == (geom.Vec3{}) {
		u = geom.Vec3{X: 1}
	}
	v = n.Cross(u).Normalized()
	return n, u, v
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
