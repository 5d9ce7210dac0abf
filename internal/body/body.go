// Package body models the celestial bodies of the solar system as a
// closed set of variants (star, planet, moon) held in a flat registry.
// Moons reference their parent by name; the relation is resolved by
// lookup at query time, never by pointer.
package body

import (
	"github.com/litescript/ls-orrery/internal/orbit"
)

// Kind categorizes celestial bodies. The variant set is fixed.
type Kind int

const (
	KindStar Kind = iota
	KindPlanet
	KindMoon
)

// String returns the body kind name.
func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindPlanet:
		return "planet"
	case KindMoon:
		return "moon"
	default:
		return "unknown"
	}
}

// Body describes one celestial body. Which fields are meaningful depends
// on Kind: a star sits at the origin, a planet carries heliocentric
// Elements, a moon carries parent-relative Satellite elements plus the
// name of its parent.
type Body struct {
	Name     string
	Kind     Kind
	RadiusKm float64

	// Planet only.
	Elements orbit.Elements

	// Moon only.
	Satellite orbit.SatelliteElements
	Parent    string
}
