package scene

import (
	"math"
	"sort"

	"github.com/litescript/ls-orrery/internal/geom"
)

// fanRadius is the lateral displacement of fanned travelers from the
// travel axis, in scene units.
const fanRadius = 0.25

// Fan spreads independently-traveling entities that share the same
// start/target pair around the travel axis so they do not overlap.
// Offsets are assigned deterministically (sorted by entity identifier)
// and stay sticky per entity until the travel key changes.
type Fan struct {
	key    string
	angles map[string]float64
}

// NewFan returns an empty fan.
func NewFan() *Fan {
	return &Fan{angles: make(map[string]float64)}
}

// OffsetFor returns the lateral scene-unit offset for one entity of a
// cluster traveling along axis. travelKey identifies the shared
// start/target pair; a key change re-deals the fan, anything else keeps
// existing assignments so the formation never jitters frame to frame.
func (f *Fan) OffsetFor(entityID, travelKey string, cluster []string, axis geom.Vec3) geom.Vec3 {
	if travelKey != f.key || !f.assigned(entityID) {
		f.deal(travelKey, cluster)
	}

	angle, ok := f.angles[entityID]
	if !ok {
		return geom.Vec3{}
	}

	u, v := tangentBasis(axis)
	return u.Scale(fanRadius * math.Cos(angle)).Add(v.Scale(fanRadius * math.Sin(angle)))
}

func (f *Fan) assigned(entityID string) bool {
	_, ok := f.angles[entityID]
	return ok
}

// deal assigns one ring slot per entity, evenly spaced, in sorted order.
func (f *Fan) deal(travelKey string, cluster []string) {
	ids := make([]string, len(cluster))
	copy(ids, cluster)
	sort.Strings(ids)

	f.key = travelKey
	f.angles = make(map[string]float64, len(ids))
	if len(ids) == 0 {
		return
	}
	step := 2 * math.Pi / float64(len(ids))
	for i, id := range ids {
		f.angles[id] = step * float64(i)
	}
}

// tangentBasis builds an orthonormal pair spanning the plane orthogonal
// to the travel axis. The helper axis is whichever of +Y or +X is less
// parallel to the axis.
func tangentBasis(axis geom.Vec3) (geom.Vec3, geom.Vec3) {
	dir := axis.Normalized()
	helper := geom.Vec3{Y: 1}
	if math.Abs(dir.Dot(helper)) > math.Abs(dir.Dot(geom.Vec3{X: 1})) {
		helper = geom.Vec3{X: 1}
	}
	u := dir.Cross(helper).Normalized()
	if u == (geom.Vec3{}) {
		u = geom.Vec3{X: 1}
	}
	v := dir.Cross(u).Normalized()
	return u, v
}
