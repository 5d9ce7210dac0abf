// Package scene maps physical kilometer coordinates into bounded
// rendering-scene units and provides the travel geometry between body
// surfaces.
package scene

import (
	"math"

	"github.com/litescript/ls-orrery/internal/geom"
)

const (
	// UnitsPerKm scales the solar system into a numeric range that
	// preserves float precision at both planetary and lunar scale.
	UnitsPerKm = 1e-7

	// EarthRadiusKm is the reference radius for apparent-size
	// compression.
	EarthRadiusKm = 6371.0

	// EarthSceneRadius is Earth's fixed display radius in scene units.
	EarthSceneRadius = 0.5

	// radiusExponent compresses true radius ratios so giants and dwarfs
	// stay comparably visible.
	radiusExponent = 0.4

	// ratioEpsilon floors the radius ratio before exponentiation.
	ratioEpsilon = 1e-6
)

// ToUnits converts kilometers to scene units.
func ToUnits(km float64) float64 {
	return km * UnitsPerKm
}

// ToUnitsVec converts a kilometer position vector to scene units.
func ToUnitsVec(km geom.Vec3) geom.Vec3 {
	return km.Scale(UnitsPerKm)
}

// ApparentScaleRatio maps a true radius ratio (body/Earth) to a display
// scale ratio via power-law compression. Monotone, with ratio 1 mapping
// to 1.
func ApparentScaleRatio(ratio float64) float64 {
	if ratio < ratioEpsilon {
		ratio = ratioEpsilon
	}
	return math.Pow(ratio, radiusExponent)
}

// ApparentRadius returns the compressed display radius in scene units
// for a body with the given true radius.
func ApparentRadius(trueRadiusKm float64) float64 {
	return EarthSceneRadius * ApparentScaleRatio(trueRadiusKm/EarthRadiusKm)
}
