package geom

import (
	"math"
	"testing"
)

func TestCross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want Vec3
	}{
		{
			name: "X cross Y is Z",
			a:    Vec3{X: 1},
			b:    Vec3{Y: 1},
			want: Vec3{Z: 1},
		},
		{
			name: "Y cross X is -Z",
			a:    Vec3{Y: 1},
			b:    Vec3{X: 1},
			want: Vec3{Z: -1},
		},
		{
			name: "parallel vectors give zero",
			a:    Vec3{X: 2, Y: 4, Z: -6},
			b:    Vec3{X: 1, Y: 2, Z: -3},
			want: Vec3{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Cross(tt.b)
			if got.Sub(tt.want).Norm() > 1e-12 {
				t.Errorf("Cross() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalized(t *testing.T) {
	v := Vec3{X: 3, Y: 4, Z: 0}
	got := v.Normalized()
	if math.Abs(got.Norm()-1) > 1e-12 {
		t.Errorf("Normalized() magnitude = %v, want 1", got.Norm())
	}
	if math.Abs(got.X-0.6) > 1e-12 || math.Abs(got.Y-0.8) > 1e-12 {
		t.Errorf("Normalized() = %+v, want {0.6 0.8 0}", got)
	}

	zero := Vec3{}.Normalized()
	if zero != (Vec3{}) {
		t.Errorf("Normalized() of zero vector = %+v, want zero", zero)
	}
}

func TestProjectOntoPlane(t *testing.T) {
	// Project a tilted vector onto the XY plane (normal +Z).
	v := Vec3{X: 1, Y: 2, Z: 3}
	n := Vec3{Z: 1}

	got := v.ProjectOntoPlane(n)
	if math.Abs(got.Z) > 1e-12 {
		t.Errorf("ProjectOntoPlane() Z = %v, want 0", got.Z)
	}
	if math.Abs(got.X-1) > 1e-12 || math.Abs(got.Y-2) > 1e-12 {
		t.Errorf("ProjectOntoPlane() = %+v, want {1 2 0}", got)
	}

	// The projected component is orthogonal to the normal.
	if math.Abs(got.Dot(n)) > 1e-12 {
		t.Errorf("projection not orthogonal to normal: dot = %v", got.Dot(n))
	}
}

func TestDistanceTo(t *testing.T) {
	a := Vec3{X: 1, Y: 1, Z: 1}
	b := Vec3{X: 4, Y: 5, Z: 1}
	if d := a.DistanceTo(b); math.Abs(d-5) > 1e-12 {
		t.Errorf("DistanceTo() = %v, want 5", d)
	}
}
