package camera

import (
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-orrery/internal/geom"
)

var (
	testCenter = geom.Vec3{X: 10, Y: 0, Z: 0}
	testTarget = geom.Vec3{X: 0, Y: 14, Z: 0.5}
)

func tickN(c *Controller, now time.Time, n int) (Pose, time.Time) {
	var p Pose
	for i := 0; i < n; i++ {
		p = c.Tick(now, testCenter, testTarget)
		now = now.Add(33 * time.Millisecond)
	}
	return p, now
}

func TestPoseGeometry(t *testing.T) {
	c := New(DefaultConfig())
	c.yaw, c.yawTarget = 0.8, 0.8
	c.pitch, c.pitchTarget = 0.4, 0.4

	pose := c.Tick(time.Now(), testCenter, testTarget)

	if got := pose.Position.DistanceTo(testCenter); math.Abs(got-c.radius) > 1e-9 {
		t.Errorf("camera distance = %v, want radius %v", got, c.radius)
	}
	if pose.LookAt != testCenter {
		t.Errorf("LookAt = %+v, want center %+v", pose.LookAt, testCenter)
	}
	if math.Abs(pose.Up.Norm()-1) > 1e-9 {
		t.Errorf("Up not unit length: %v", pose.Up.Norm())
	}
	// Up is the plane normal, which stays in the lower hemisphere.
	if pose.Up.Dot(eclipticUp) > 0 {
		t.Errorf("Up in upper hemisphere: %+v", pose.Up)
	}
}

func TestPlaneBasisOrthonormal(t *testing.T) {
	n, u, v := planeBasis(testCenter, testTarget)
	for name, vec := range map[string]geom.Vec3{"n": n, "u": u, "v": v} {
		if math.Abs(vec.Norm()-1) > 1e-9 {
			t.Errorf("%s not unit: %v", name, vec.Norm())
		}
	}
	if math.Abs(n.Dot(u)) > 1e-9 || math.Abs(n.Dot(v)) > 1e-9 || math.Abs(u.Dot(v)) > 1e-9 {
		t.Error("basis not orthogonal")
	}
}

func TestPlaneBasisDegenerateFallbacks(t *testing.T) {
	// Collinear center and target: cross product vanishes, helper axis
	// takes over.
	n, _, _ := planeBasis(geom.Vec3{X: 5}, geom.Vec3{X: 9})
	if n.NormSq() == 0 {
		t.Fatal("no normal for collinear inputs")
	}
	if n.Dot(eclipticUp) > 0 {
		t.Error("fallback normal not stabilized")
	}

	// Everything at the origin: the hard default applies.
	n, u, v := planeBasis(geom.Vec3{}, geom.Vec3{})
	if n.NormSq() == 0 || u.NormSq() == 0 || v.NormSq() == 0 {
		t.Fatal("degenerate basis for zero inputs")
	}
}

func TestPlaneNormalNeverFlips(t *testing.T) {
	// Sweep center and target along continuous non-collinear paths and
	// require consecutive normals to stay in the same hemisphere.
	var prev geom.Vec3
	for i := 0; i <= 500; i++ {
		a := float64(i) * 0.013
		center := geom.Vec3{X: 10 * math.Cos(a), Y: 10 * math.Sin(a), Z: 0.3}
		target := geom.Vec3{X: 14 * math.Cos(a+1.1), Y: 14 * math.Sin(a+1.1), Z: -0.2}
		n, _, _ := planeBasis(center, target)
		if i > 0 && prev.Dot(n) < 0 {
			t.Fatalf("normal flipped at step %d: %+v -> %+v", i, prev, n)
		}
		prev = n
	}
}

func TestSmoothingConverges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoRotateStep = 0
	c := New(cfg)
	c.yawTarget = 1.2
	c.radiusTarget = 9.0

	now := time.Now()
	_, _ = tickN(c, now, 400)

	yaw, _, radius := c.State()
	if math.Abs(yaw-c.yawTarget) > 0.01 {
		t.Errorf("yaw did not converge: %v vs %v", yaw, c.yawTarget)
	}
	if math.Abs(radius-9.0) > 0.05 {
		t.Errorf("radius did not converge: %v", radius)
	}
}

func TestAutoRotateOnlyWhenIdle(t *testing.T) {
	cfg := DefaultConfig()
	c := New(cfg)

	before := c.yawTarget
	c.Tick(time.Now(), testCenter, testTarget)
	if c.yawTarget != before+cfg.AutoRotateStep {
		t.Errorf("idle tick moved yawTarget to %v, want %v", c.yawTarget, before+cfg.AutoRotateStep)
	}

	// A held pan suppresses ambient rotation.
	c.BeginPan()
	before = c.yawTarget
	c.Tick(time.Now(), testCenter, testTarget)
	if c.yawTarget != before {
		t.Errorf("panning tick auto-rotated: %v -> %v", before, c.yawTarget)
	}
}

func TestPanInertiaDecaysToZero(t *testing.T) {
	c := New(DefaultConfig())
	c.BeginPan()
	c.UpdatePan(0.05, 0.02)
	c.EndPan()

	if c.yawVel == 0 {
		t.Fatal("release velocity not captured")
	}
	now := time.Now()
	released := c.yawTarget
	_, _ = tickN(c, now, 300)

	if c.yawVel != 0 || c.pitchVel != 0 {
		t.Errorf("inertia never snapped to zero: yawVel=%v pitchVel=%v", c.yawVel, c.pitchVel)
	}
	if c.yawTarget <= released {
		t.Error("inertia did not carry yaw forward after release")
	}
}

func TestPitchClamped(t *testing.T) {
	cfg := DefaultConfig()
	c := New(cfg)
	c.BeginPan()
	for i := 0; i < 100; i++ {
		c.UpdatePan(0, 0.5)
	}
	if c.pitchTarget != cfg.PitchMax {
		t.Errorf("pitchTarget = %v, want clamp at %v", c.pitchTarget, cfg.PitchMax)
	}
	for i := 0; i < 200; i++ {
		c.UpdatePan(0, -0.5)
	}
	if c.pitchTarget != cfg.PitchMin {
		t.Errorf("pitchTarget = %v, want clamp at %v", c.pitchTarget, cfg.PitchMin)
	}
}

func TestPinchClampsRadius(t *testing.T) {
	cfg := DefaultConfig()
	c := New(cfg)

	c.BeginPinch()
	c.UpdatePinch(1000)
	if c.radiusTarget != cfg.MinRadius {
		t.Errorf("zoom in radiusTarget = %v, want %v", c.radiusTarget, cfg.MinRadius)
	}
	c.UpdatePinch(0.0001)
	if c.radiusTarget != cfg.MaxRadius {
		t.Errorf("zoom out radiusTarget = %v, want %v", c.radiusTarget, cfg.MaxRadius)
	}
	c.EndPinch()

	// Updates after release are ignored.
	before := c.radiusTarget
	c.UpdatePinch(2)
	if c.radiusTarget != before {
		t.Error("pinch update applied after EndPinch")
	}
}

func TestResetZoomCycles(t *testing.T) {
	cfg := DefaultConfig()
	c := New(cfg)
	seen := make([]float64, 0, len(cfg.ZoomPresets)*2)
	for i := 0; i < len(cfg.ZoomPresets)*2; i++ {
		c.ResetZoom()
		seen = append(seen, c.radiusTarget)
	}
	for i, want := range cfg.ZoomPresets {
		if seen[i] != want || seen[i+len(cfg.ZoomPresets)] != want {
			t.Fatalf("preset cycle broken: %v", seen)
		}
	}
}

func TestScriptedSequenceDrivesYawNotPitch(t *testing.T) {
	c := New(DefaultConfig())
	startPitch := c.pitchTarget

	t0 := time.Unix(1_700_000_000, 0)
	c.StartScripted(t0, 0, 1, 2*time.Second)
	if !c.ScriptActive() {
		t.Fatal("sequence did not start")
	}

	now := t0
	for i := 0; i < 40; i++ {
		c.Tick(now, testCenter, testTarget)
		now = now.Add(33 * time.Millisecond)
	}
	if c.pitchTarget != startPitch {
		t.Errorf("scripted sequence touched pitch: %v -> %v", startPitch, c.pitchTarget)
	}
	if c.ScriptPhase(now) == PhaseInactive {
		t.Fatal("sequence ended too early")
	}

	// Past the rocket end the controller returns to idle behavior.
	end := t0.Add(PreRollDuration + HoldDuration + 2*time.Second)
	c.Tick(end, testCenter, testTarget)
	if c.ScriptActive() {
		t.Error("sequence still active past its end")
	}
}

func TestGestureCancelsScript(t *testing.T) {
	c := New(DefaultConfig())
	t0 := time.Unix(1_700_000_000, 0)
	c.StartScripted(t0, 0, 1, 2*time.Second)
	c.Tick(t0.Add(100*time.Millisecond), testCenter, testTarget)

	c.BeginPan()
	if c.ScriptActive() {
		t.Fatal("pan begin did not cancel the sequence")
	}
	// The tween freezes where it stands.
	if c.yawTarget != c.yaw || c.radiusTarget != c.radius {
		t.Errorf("targets not frozen on cancel: yaw %v/%v radius %v/%v",
			c.yaw, c.yawTarget, c.radius, c.radiusTarget)
	}
}

func TestSkipAnimationResolvesInstantly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SkipAnimation = true
	c := New(cfg)

	c.StartScripted(time.Now(), 0.3, 1, 2*time.Second)
	if c.ScriptActive() {
		t.Fatal("skip flag still produced an active sequence")
	}
	if want := VantageForProgress(1).Yaw; c.yawTarget != want {
		t.Errorf("yawTarget = %v, want end vantage %v", c.yawTarget, want)
	}
}

func TestCollisionResolverEnlargesRadius(t *testing.T) {
	cfg := DefaultConfig()
	c := New(cfg)
	var seenRadius float64
	c.SetCollisionResolver(func(center, dir geom.Vec3, radius float64) float64 {
		seenRadius = radius
		return 12.0
	})

	pose := c.Tick(time.Now(), testCenter, testTarget)
	if got := pose.Position.DistanceTo(testCenter); math.Abs(got-12.0) > 1e-9 {
		t.Errorf("camera distance = %v, want pushed out to 12", got)
	}
	// The stored radius keeps smoothing toward its own target.
	if _, _, r := c.State(); r > cfg.DefaultRadius {
		t.Errorf("resolver leaked into radius state: %v", r)
	}
	// The resolver sees the frame's candidate radius.
	if _, _, r := c.State(); seenRadius != r {
		t.Errorf("resolver saw radius %v, want %v", seenRadius, r)
	}

	// A resolver reporting below the candidate leaves the pose alone.
	c.SetCollisionResolver(func(center, dir geom.Vec3, radius float64) float64 {
		return radius / 2
	})
	pose = c.Tick(time.Now(), testCenter, testTarget)
	_, _, r := c.State()
	if got := pose.Position.DistanceTo(testCenter); math.Abs(got-r) > 1e-9 {
		t.Errorf("camera distance = %v, want untouched radius %v", got, r)
	}

	// A resolver demanding more than max zoom is clamped.
	c.SetCollisionResolver(func(center, dir geom.Vec3, radius float64) float64 {
		return cfg.MaxRadius * 10
	})
	pose = c.Tick(time.Now(), testCenter, testTarget)
	if got := pose.Position.DistanceTo(testCenter); math.Abs(got-cfg.MaxRadius) > 1e-9 {
		t.Errorf("camera distance = %v, want clamped to %v", got, cfg.MaxRadius)
	}
}
