package physics

import (
	"cmp"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

const (
	// World units to resolv grid units.
	broadphaseScale = 16.0

	// Gaps up to contactSlop still stop a moving body.
	contactSlop = 1e-6

	// Dynamic bodies closer than this are touching.
	dynamicContactTolerance = 1e-3
)

// Y first so that landing is resolved before sliding along the ground.
var moveOrder = [3]int{1, 0, 2}

type Config struct {
	Gravity mgl64.Vec3
	// Extent is the half-size of the broadphase region on X and Z. Boxes
	// outside it only collide with planes.
	Extent   float64
	CellSize float64
}

func DefaultConfig() Config {
	return Config{
		Gravity:  mgl64.Vec3{0, -9.82, 0},
		Extent:   64,
		CellSize: 1,
	}
}

type pairKey struct {
	lo, hi BodyID
}

func comparePairs(x, y pairKey) int {
	if c := cmp.Compare(x.lo, y.lo); c != 0 {
		return c
	}
	return cmp.Compare(x.hi, y.hi)
}

type contact struct {
	a, b   *Body      // a has the lower id
	normal mgl64.Vec3 // from b towards a
}

// World owns rigid bodies and advances them in fixed steps. It is not safe
// for concurrent use.
type World struct {
	Gravity mgl64.Vec3

	extent   float64
	space    *resolv.Space
	bodies   []*Body
	planes   []*Body
	byID     map[BodyID]*Body
	nextID   BodyID
	contacts map[pairKey]contact
	stepping bool
	time     float64
}

func NewWorld(cfg Config) (*World, error) {
	if !(cfg.Extent > 0) || !(cfg.CellSize > 0) || cfg.CellSize > 2*cfg.Extent {
		return nil, fmt.Errorf("%w: extent %v, cell size %v", ErrConfiguration, cfg.Extent, cfg.CellSize)
	}
	size := int(math.Ceil(2 * cfg.Extent * broadphaseScale))
	cell := max(1, int(math.Round(cfg.CellSize*broadphaseScale)))

	return &World{
		Gravity:  cfg.Gravity,
		extent:   cfg.Extent,
		space:    resolv.NewSpace(size, size, cell, cell),
		byID:     make(map[BodyID]*Body),
		contacts: make(map[pairKey]contact),
	}, nil
}

// Time is the simulated time in seconds.
func (w *World) Time() float64 { return w.time }

func (w *World) Len() int { return len(w.bodies) }

func (w *World) Bodies() []*Body { return slices.Clone(w.bodies) }

func (w *World) Body(id BodyID) (*Body, bool) {
	b, ok := w.byID[id]
	return b, ok
}

// Touching reports whether a and b were in contact after the last step.
func (w *World) Touching(a, b *Body) bool {
	if a == nil || b == nil {
		return false
	}
	lo, hi := a.id, b.id
	if lo > hi {
		lo, hi = hi, lo
	}
	_, ok := w.contacts[pairKey{lo, hi}]
	return ok
}

func (w *World) NewBody(opts BodyOptions) (*Body, error) {
	if w.stepping {
		return nil, ErrWorldLocked
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	q := opts.Orientation
	if q == (mgl64.Quat{}) {
		q = mgl64.QuatIdent()
	} else {
		q = q.Normalize()
	}

	w.nextID++
	b := &Body{
		Position:       opts.Position,
		Quaternion:     q,
		LinearDamping:  opts.LinearDamping,
		AngularDamping: opts.AngularDamping,
		FixedRotation:  opts.FixedRotation,
		Data:           opts.Data,
		id:             w.nextID,
		mass:           opts.Mass,
		shape:          opts.Shape,
		world:          w,
	}

	if b.shape.Kind == ShapePlane {
		w.planes = append(w.planes, b)
	} else {
		h := b.shape.HalfExtents
		b.object = resolv.NewObject(0, 0, 2*h.X()*broadphaseScale, 2*h.Z()*broadphaseScale)
		b.object.Data = b
		w.space.Add(b.object)
		w.syncProxy(b)
	}

	w.bodies = append(w.bodies, b)
	w.byID[b.id] = b
	return b, nil
}

// Remove takes b out of the world. Contacts involving b end immediately.
func (w *World) Remove(b *Body) error {
	if w.stepping {
		return ErrWorldLocked
	}
	if b == nil || b.world != w {
		return ErrBodyNotFound
	}

	isB := func(o *Body) bool { return o == b }
	w.bodies = slices.DeleteFunc(w.bodies, isB)
	w.planes = slices.DeleteFunc(w.planes, isB)
	delete(w.byID, b.id)
	if b.object != nil {
		w.space.Remove(b.object)
	}
	b.world = nil

	for _, key := range slices.SortedFunc(maps.Keys(w.contacts), comparePairs) {
		if key.lo != b.id && key.hi != b.id {
			continue
		}
		c := w.contacts[key]
		delete(w.contacts, key)
		emitPair(c, endListeners)
	}
	return nil
}

func (w *World) RemoveByID(id BodyID) error {
	b, ok := w.byID[id]
	if !ok {
		return ErrBodyNotFound
	}
	return w.Remove(b)
}

// Step advances the simulation by dt seconds and then delivers contact
// events. Listeners run while the world is locked.
func (w *World) Step(dt float64) {
	if !(dt > 0) || w.stepping {
		return
	}
	w.stepping = true
	defer func() { w.stepping = false }()

	current := make(map[pairKey]contact, len(w.contacts))
	for _, b := range w.bodies {
		if b.IsStatic() {
			continue
		}
		w.integrate(b, dt)
		w.move(b, dt, current)
	}
	w.separate(current)
	w.time += dt

	for _, key := range slices.SortedFunc(maps.Keys(current), comparePairs) {
		c := current[key]
		emitPair(c, collideListeners)
		if _, ok := w.contacts[key]; !ok {
			emitPair(c, beginListeners)
		}
	}
	for _, key := range slices.SortedFunc(maps.Keys(w.contacts), comparePairs) {
		if _, ok := current[key]; !ok {
			emitPair(w.contacts[key], endListeners)
		}
	}
	w.contacts = current
}

func (w *World) integrate(b *Body, dt float64) {
	b.Velocity = b.Velocity.Add(w.Gravity.Mul(dt)).Mul(math.Pow(1-b.LinearDamping, dt))

	if b.FixedRotation {
		b.AngularVelocity = mgl64.Vec3{}
		return
	}
	b.AngularVelocity = b.AngularVelocity.Mul(math.Pow(1-b.AngularDamping, dt))
	if b.AngularVelocity.Len() == 0 {
		return
	}
	spin := mgl64.Quat{V: b.AngularVelocity}.Mul(b.Quaternion).Scale(0.5 * dt)
	b.Quaternion = b.Quaternion.Add(spin).Normalize()
}

// move sweeps b one axis at a time against static bodies, clipping the
// displacement at the nearest obstacles and zeroing velocity on that axis.
// Every obstacle at the clipping distance is recorded as a contact.
func (w *World) move(b *Body, dt float64, current map[pairKey]contact) {
	// Position may have been assigned since the last step.
	w.syncProxy(b)

	d := b.Velocity.Mul(dt)
	obstacles := append(slices.Clone(w.planes), w.neighbours(b, d.X(), d.Z(), (*Body).IsStatic)...)

	type blocker struct {
		body *Body
		gap  float64 // distance along the direction of travel
	}
	var blockers []blocker

	for _, axis := range moveOrder {
		delta := d[axis]
		if delta == 0 {
			continue
		}
		dir := math.Copysign(1, delta)

		box := b.AABB()
		nearest := math.Abs(delta)
		blockers = blockers[:0]
		for _, other := range obstacles {
			ob := other.AABB()
			if !box.overlapsExcept(ob, axis, contactSlop) {
				continue
			}
			gap := ob.Min[axis] - box.Max[axis]
			if dir < 0 {
				gap = box.Min[axis] - ob.Max[axis]
			}
			if gap < -contactSlop || gap >= nearest+contactSlop {
				continue
			}
			blockers = append(blockers, blocker{other, gap})
			nearest = math.Min(nearest, math.Max(gap, 0))
		}

		b.Position[axis] += dir * nearest
		if len(blockers) == 0 {
			continue
		}
		b.Velocity[axis] = 0
		var n mgl64.Vec3
		n[axis] = -dir
		for _, bl := range blockers {
			if math.Max(bl.gap, 0) <= nearest+contactSlop {
				record(current, b, bl.body, n)
			}
		}
	}
	w.syncProxy(b)
}

// separate pushes overlapping dynamic bodies apart by inverse mass and
// records every touching dynamic pair. A body never moves further than the
// free room between it and the statics on the push axis; whatever it cannot
// take goes to the other body.
func (w *World) separate(current map[pairKey]contact) {
	for _, a := range w.bodies {
		if !a.IsDynamic() || a.object == nil {
			continue
		}
		for _, b := range w.neighbours(a, 0, 0, (*Body).IsDynamic) {
			if b.id < a.id {
				continue
			}
			ab, bb := a.AABB(), b.AABB()
			if !ab.Overlaps(bb, -dynamicContactTolerance) {
				continue
			}

			axis, depth := shallowestAxis(ab, bb)
			sign := 1.0
			if a.Position[axis] < b.Position[axis] {
				sign = -1
			}
			var n mgl64.Vec3
			n[axis] = sign

			if depth > 0 {
				ia, ib := 1/a.mass, 1/b.mass
				da, db := depth*ia/(ia+ib), depth*ib/(ia+ib)
				ra, rb := w.room(a, axis, sign), w.room(b, axis, -sign)
				pinnedA, pinnedB := ra < da, rb < db
				da, db = splitPush(da, db, ra, rb)
				a.Position[axis] += sign * da
				b.Position[axis] -= sign * db

				if (a.Velocity[axis]-b.Velocity[axis])*sign < 0 {
					var shared float64
					switch {
					case pinnedA && pinnedB:
					case pinnedA:
						shared = a.Velocity[axis]
					case pinnedB:
						shared = b.Velocity[axis]
					default:
						shared = (a.mass*a.Velocity[axis] + b.mass*b.Velocity[axis]) / (a.mass + b.mass)
					}
					a.Velocity[axis] = shared
					b.Velocity[axis] = shared
				}
				w.syncProxy(a)
				w.syncProxy(b)
			}
			record(current, a, b, n)
		}
	}
}

// room is how far b can move along axis in direction dir before it reaches
// a static body or plane.
func (w *World) room(b *Body, axis int, dir float64) float64 {
	box := b.AABB()
	free := math.Inf(1)
	for _, other := range append(slices.Clone(w.planes), w.neighbours(b, 0, 0, (*Body).IsStatic)...) {
		ob := other.AABB()
		if !box.overlapsExcept(ob, axis, contactSlop) {
			continue
		}
		behind := ob.Max[axis] <= box.Min[axis]
		gap := ob.Min[axis] - box.Max[axis]
		if dir < 0 {
			behind = ob.Min[axis] >= box.Max[axis]
			gap = box.Min[axis] - ob.Max[axis]
		}
		if behind {
			continue
		}
		free = math.Min(free, math.Max(gap, 0))
	}
	return free
}

// splitPush clamps each share of a separation to its room and hands the
// excess to the other body.
func splitPush(da, db, ra, rb float64) (float64, float64) {
	if da > ra {
		db, da = db+da-ra, ra
	}
	if db > rb {
		da, db = math.Min(ra, da+db-rb), rb
	}
	return da, db
}

func shallowestAxis(a, b AABB) (axis int, depth float64) {
	depth = math.Inf(1)
	for i := 0; i < 3; i++ {
		overlap := math.Min(a.Max[i], b.Max[i]) - math.Max(a.Min[i], b.Min[i])
		if overlap < depth {
			axis, depth = i, overlap
		}
	}
	return axis, depth
}

// neighbours returns bodies sharing broadphase cells with b at its current
// position or offset by (dx, dz), filtered by keep.
func (w *World) neighbours(b *Body, dx, dz float64, keep func(*Body) bool) []*Body {
	if b.object == nil {
		return nil
	}
	var out []*Body
	for _, off := range [][2]float64{{0, 0}, {dx, dz}} {
		check := b.object.Check(off[0]*broadphaseScale, off[1]*broadphaseScale)
		if check == nil {
			continue
		}
		for _, obj := range check.Objects {
			other, ok := obj.Data.(*Body)
			if !ok || other == b || !keep(other) || slices.Contains(out, other) {
				continue
			}
			out = append(out, other)
		}
	}
	return out
}

func (w *World) syncProxy(b *Body) {
	if b.object == nil {
		return
	}
	h := b.shape.HalfExtents
	b.object.X = (b.Position.X() - h.X() + w.extent) * broadphaseScale
	b.object.Y = (b.Position.Z() - h.Z() + w.extent) * broadphaseScale
	b.object.Update()
}

// record stores a contact with normal pointing from other towards body.
func record(set map[pairKey]contact, body, other *Body, normal mgl64.Vec3) {
	if body.id > other.id {
		body, other, normal = other, body, normal.Mul(-1)
	}
	set[pairKey{body.id, other.id}] = contact{a: body, b: other, normal: normal}
}

func collideListeners(b *Body) []ContactListener { return b.onCollide }
func beginListeners(b *Body) []ContactListener { return b.onBegin }
func endListeners(b *Body) []ContactListener { return b.onEnd }

func emitPair(c contact, pick func(*Body) []ContactListener) {
	emit(pick(c.a), ContactEvent{Body: c.a, Other: c.b, Normal: c.normal})
	emit(pick(c.b), ContactEvent{Body: c.b, Other: c.a, Normal: c.normal.Mul(-1)})
}
