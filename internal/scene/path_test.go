package scene

import (
	"math"
	"testing"

	"github.com/litescript/ls-orrery/internal/geom"
)

func TestSurfaceEndpoints(t *testing.T) {
	start := geom.Vec3{X: 0, Y: 0, Z: 0}
	target := geom.Vec3{X: 10, Y: 0, Z: 0}
	const startR, targetR = 0.5, 1.25

	ep := SurfaceEndpoints(start, startR, target, targetR)

	// startSurface sits exactly startRadius from the start center along
	// the connecting axis.
	if d := ep.StartSurface.DistanceTo(start); math.Abs(d-startR) > 1e-12 {
		t.Errorf("start surface distance = %v, want %v", d, startR)
	}

	// targetSurface stops exactly radius+clearance short of the target.
	wantShort := targetR + LandingClearance
	if d := ep.TargetSurface.DistanceTo(target); math.Abs(d-wantShort) > 1e-12 {
		t.Errorf("target surface distance = %v, want %v", d, wantShort)
	}

	// Both endpoints lie on the connecting segment.
	if ep.StartSurface.Y != 0 || ep.StartSurface.Z != 0 || ep.TargetSurface.Y != 0 || ep.TargetSurface.Z != 0 {
		t.Errorf("endpoints left the travel axis: %+v, %+v", ep.StartSurface, ep.TargetSurface)
	}
	if ep.StartSurface.X >= ep.TargetSurface.X {
		t.Errorf("endpoints out of order: start %v >= target %v", ep.StartSurface.X, ep.TargetSurface.X)
	}
}

func TestSurfaceEndpointsArbitraryAxis(t *testing.T) {
	start := geom.Vec3{X: -3, Y: 2, Z: 7}
	target := geom.Vec3{X: 5, Y: -1, Z: 4}

	ep := SurfaceEndpoints(start, 0.4, target, 0.9)

	if d := ep.StartSurface.DistanceTo(start); math.Abs(d-0.4) > 1e-12 {
		t.Errorf("start surface distance = %v, want 0.4", d)
	}
	if d := ep.TargetSurface.DistanceTo(target); math.Abs(d-(0.9+LandingClearance)) > 1e-12 {
		t.Errorf("target surface distance = %v, want %v", d, 0.9+LandingClearance)
	}
}

func TestAimPointMatchesTargetSurface(t *testing.T) {
	start := geom.Vec3{X: 1, Y: 2, Z: 3}
	target := geom.Vec3{X: -4, Y: 0, Z: 6}
	const targetR = 0.7

	ep := SurfaceEndpoints(start, 0.3, target, targetR)
	aim := AimPoint(start, target, targetR)

	if aim.Sub(ep.TargetSurface).Norm() > 1e-12 {
		t.Errorf("AimPoint = %+v, want the target surface point %+v", aim, ep.TargetSurface)
	}
}

func TestRaySphereSpan(t *testing.T) {
	tests := []struct {
		name      string
		origin    geom.Vec3
		dir       geom.Vec3
		center    geom.Vec3
		radius    float64
		wantEntry float64
		wantExit  float64
		wantOK    bool
	}{
		{
			name:      "ray through sphere center",
			origin:    geom.Vec3{},
			dir:       geom.Vec3{X: 1},
			center:    geom.Vec3{X: 5},
			radius:    2,
			wantEntry: 3,
			wantExit:  7,
			wantOK:    true,
		},
		{
			name:   "ray misses",
			origin: geom.Vec3{},
			dir:    geom.Vec3{X: 1},
			center: geom.Vec3{X: 5, Y: 10},
			radius: 2,
			wantOK: false,
		},
		{
			name:   "sphere behind ray",
			origin: geom.Vec3{},
			dir:    geom.Vec3{X: 1},
			center: geom.Vec3{X: -9},
			radius: 2,
			wantOK: false,
		},
		{
			name:      "origin inside sphere",
			origin:    geom.Vec3{X: 5},
			dir:       geom.Vec3{X: 1},
			center:    geom.Vec3{X: 5},
			radius:    3,
			wantEntry: -3,
			wantExit:  3,
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, exit, ok := RaySphereSpan(tt.origin, tt.dir, tt.center, tt.radius)
			if ok != tt.wantOK {
				t.Fatalf("RaySphereSpan() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if math.Abs(entry-tt.wantEntry) > 1e-12 || math.Abs(exit-tt.wantExit) > 1e-12 {
				t.Errorf("RaySphereSpan() = (%v, %v), want (%v, %v)", entry, exit, tt.wantEntry, tt.wantExit)
			}
		})
	}
}
