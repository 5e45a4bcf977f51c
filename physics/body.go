package physics

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

type BodyID uint64

// ContactEvent is delivered to a body's listeners. Normal points from Other
// towards Body.
type ContactEvent struct {
	Body   *Body
	Other  *Body
	Normal mgl64.Vec3
}

type ContactListener func(ContactEvent)

type BodyOptions struct {
	Mass           float64 // 0 = static
	Shape          Shape
	Position       mgl64.Vec3
	Orientation    mgl64.Quat // zero value means identity
	LinearDamping  float64    // fraction of velocity lost per second, [0,1]
	AngularDamping float64
	// FixedRotation locks all rotational degrees of freedom.
	FixedRotation bool
	Data          any
}

func (o BodyOptions) validate() error {
	if math.IsNaN(o.Mass) || math.IsInf(o.Mass, 0) || o.Mass < 0 {
		return fmt.Errorf("%w: mass %v", ErrConfiguration, o.Mass)
	}
	if o.LinearDamping < 0 || o.LinearDamping > 1 {
		return fmt.Errorf("%w: linear damping %v outside [0,1]", ErrConfiguration, o.LinearDamping)
	}
	if o.AngularDamping < 0 || o.AngularDamping > 1 {
		return fmt.Errorf("%w: angular damping %v outside [0,1]", ErrConfiguration, o.AngularDamping)
	}
	if err := o.Shape.validate(); err != nil {
		return err
	}
	if o.Shape.Kind == ShapePlane && o.Mass != 0 {
		return fmt.Errorf("%w: plane bodies must be static", ErrConfiguration)
	}
	return nil
}

type Body struct {
	Position        mgl64.Vec3
	Quaternion      mgl64.Quat
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3
	LinearDamping   float64
	AngularDamping  float64
	FixedRotation   bool
	Data            any

	id    BodyID
	mass  float64
	shape Shape
	world *World

	// Broadphase proxy on the XZ plane; nil for planes.
	object *resolv.Object

	onCollide []ContactListener
	onBegin   []ContactListener
	onEnd     []ContactListener
}

func (b *Body) ID() BodyID { return b.id }
func (b *Body) Mass() float64 { return b.mass }
func (b *Body) Shape() Shape { return b.shape }
func (b *Body) IsStatic() bool { return b.mass == 0 }
func (b *Body) InWorld() bool { return b.world != nil }
func (b *Body) IsDynamic() bool { return b.mass > 0 }

func (b *Body) AABB() AABB {
	if b.shape.Kind == ShapePlane {
		inf := math.Inf(1)
		return AABB{
			Min: mgl64.Vec3{-inf, -inf, -inf},
			Max: mgl64.Vec3{inf, b.Position.Y(), inf},
		}
	}
	h := b.shape.HalfExtents
	return AABB{Min: b.Position.Sub(h), Max: b.Position.Add(h)}
}

// OnCollide registers fn for every step in which the body touches another body.
func (b *Body) OnCollide(fn ContactListener) { b.onCollide = append(b.onCollide, fn) }

// OnBeginContact registers fn for the first step of a contact.
func (b *Body) OnBeginContact(fn ContactListener) { b.onBegin = append(b.onBegin, fn) }

// OnEndContact registers fn for the step a contact stops, or for removal of
// either body while touching.
func (b *Body) OnEndContact(fn ContactListener) { b.onEnd = append(b.onEnd, fn) }

func emit(listeners []ContactListener, ev ContactEvent) {
	for _, fn := range listeners {
		fn(ev)
	}
}
