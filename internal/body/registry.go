package body

import (
	"fmt"
	"time"

	"github.com/litescript/ls-orrery/internal/geom"
	"github.com/litescript/ls-orrery/internal/orbit"
	"github.com/litescript/ls-orrery/internal/scene"
)

// Registry is a flat arena of bodies keyed by stable name. Bodies are
// registered once at startup and live for the process lifetime; Add
// validates moon parent chains so that position queries cannot fail at
// runtime.
type Registry struct {
	bodies  map[string]*Body
	order   []string
	visible map[string]bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bodies:  make(map[string]*Body),
		visible: make(map[string]bool),
	}
}

// Add registers a body. For moons the declared parent must already be
// registered and must itself resolve, transitively, to a star — a
// missing or cyclic parent is a static configuration bug and is
// rejected here so it cannot surface later as a query-time failure.
func (r *Registry) Add(b Body) error {
	if b.Name == "" {
		return fmt.Errorf("body has no name")
	}
	if _, exists := r.bodies[b.Name]; exists {
		return fmt.Errorf("body %q already registered", b.Name)
	}
	if b.Kind == KindPlanet || b.Kind == KindMoon {
		if e := b.Elements.Eccentricity; b.Kind == KindPlanet && (e < 0 || e >= 1) {
			return fmt.Errorf("body %q: eccentricity %v outside [0, 1)", b.Name, e)
		}
		if e := b.Satellite.Eccentricity; b.Kind == KindMoon && (e < 0 || e >= 1) {
			return fmt.Errorf("body %q: eccentricity %v outside [0, 1)", b.Name, e)
		}
	}
	if b.Kind == KindMoon {
		if err := r.checkParentChain(b.Name, b.Parent); err != nil {
			return err
		}
	}

	cp := b
	r.bodies[b.Name] = &cp
	r.order = append(r.order, b.Name)
	r.visible[b.Name] = true
	return nil
}

// checkParentChain walks a moon's ancestry and verifies it terminates at
// a heliocentric body already in the registry.
func (r *Registry) checkParentChain(name, parent string) error {
	seen := map[string]bool{name: true}
	for {
		p, ok := r.bodies[parent]
		if !ok {
			return fmt.Errorf("body %q: parent %q not registered", name, parent)
		}
		if seen[p.Name] {
			return fmt.Errorf("body %q: parent chain cycles at %q", name, p.Name)
		}
		seen[p.Name] = true

		switch p.Kind {
		case KindStar, KindPlanet:
			return nil
		case KindMoon:
			parent = p.Parent
		default:
			return fmt.Errorf("body %q: parent %q has unknown kind", name, p.Name)
		}
	}
}

// Get returns a body by name.
func (r *Registry) Get(name string) (*Body, bool) {
	b, ok := r.bodies[name]
	return b, ok
}

// Names returns all registered body names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// PositionKm returns the heliocentric position of a named body in
// kilometers at the given instant.
func (r *Registry) PositionKm(name string, t time.Time) (geom.Vec3, error) {
	b, ok := r.bodies[name]
	if !ok {
		return geom.Vec3{}, fmt.Errorf("unknown body %q", name)
	}
	return r.positionOf(b, t), nil
}

// positionOf resolves a body's heliocentric position, recursing through
// moon parent chains. Parent lookups were validated at Add time, so a
// miss here means the registry was mutated out from under us — that is
// a programming error and fails loudly.
func (r *Registry) positionOf(b *Body, t time.Time) geom.Vec3 {
	switch b.Kind {
	case KindStar:
		return geom.Vec3{}
	case KindPlanet:
		return orbit.HeliocentricKm(b.Elements, t)
	case KindMoon:
		parent, ok := r.bodies[b.Parent]
		if !ok {
			panic(fmt.Sprintf("body: moon %q references missing parent %q", b.Name, b.Parent))
		}
		rel := orbit.SatelliteRelativeKm(b.Satellite, t)
		return r.positionOf(parent, t).Add(rel)
	default:
		panic(fmt.Sprintf("body: %q has unknown kind %d", b.Name, b.Kind))
	}
}

// ApparentRadius returns the body's compressed display radius in scene
// units. The live value tracks whatever radius the body was registered
// with.
func (r *Registry) ApparentRadius(name string) float64 {
	b, ok := r.bodies[name]
	if !ok {
		return 0
	}
	return scene.ApparentRadius(b.RadiusKm)
}

// SetVisible toggles a body's visibility flag.
func (r *Registry) SetVisible(name string, visible bool) {
	if _, ok := r.bodies[name]; ok {
		r.visible[name] = visible
	}
}

// Visible reports whether a body is currently visible.
func (r *Registry) Visible(name string) bool {
	return r.visible[name]
}
