package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const step = 1.0 / 60

func newTestWorld(t *testing.T, gravity mgl64.Vec3) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Gravity = gravity
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func mustBody(t *testing.T, w *World, opts BodyOptions) *Body {
	t.Helper()
	b, err := w.NewBody(opts)
	if err != nil {
		t.Fatalf("NewBody: %v", err)
	}
	return b
}

func cube(half float64) Shape {
	return NewBox(mgl64.Vec3{half, half, half})
}

type counter struct {
	collide, begin, end int
}

func (c *counter) watch(b *Body) {
	b.OnCollide(func(ContactEvent) { c.collide++ })
	b.OnBeginContact(func(ContactEvent) { c.begin++ })
	b.OnEndContact(func(ContactEvent) { c.end++ })
}

func TestNewWorld_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero extent", Config{Extent: 0, CellSize: 1}},
		{"negative cell", Config{Extent: 10, CellSize: -1}},
		{"cell larger than region", Config{Extent: 1, CellSize: 5}},
		{"NaN extent", Config{Extent: math.NaN(), CellSize: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewWorld(tt.cfg); !errors.Is(err, ErrConfiguration) {
				t.Errorf("NewWorld() error = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestNewBody_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts BodyOptions
	}{
		{"negative mass", BodyOptions{Mass: -1, Shape: cube(0.5)}},
		{"NaN mass", BodyOptions{Mass: math.NaN(), Shape: cube(0.5)}},
		{"zero extent", BodyOptions{Mass: 1, Shape: NewBox(mgl64.Vec3{0.5, 0, 0.5})}},
		{"damping above one", BodyOptions{Mass: 1, Shape: cube(0.5), LinearDamping: 1.5}},
		{"negative angular damping", BodyOptions{Mass: 1, Shape: cube(0.5), AngularDamping: -0.1}},
		{"dynamic plane", BodyOptions{Mass: 1, Shape: NewPlane()}},
		{"unknown shape", BodyOptions{Mass: 1, Shape: Shape{Kind: ShapeKind(9)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, mgl64.Vec3{})
			if _, err := w.NewBody(tt.opts); !errors.Is(err, ErrConfiguration) {
				t.Errorf("NewBody() error = %v, want ErrConfiguration", err)
			}
			if w.Len() != 0 {
				t.Errorf("Len() = %d after rejected body, want 0", w.Len())
			}
		})
	}
}

func TestNewBody_DefaultsToIdentityOrientation(t *testing.T) {
	w := newTestWorld(t, mgl64.Vec3{})
	b := mustBody(t, w, BodyOptions{Mass: 1, Shape: cube(0.25)})
	if b.Quaternion != mgl64.QuatIdent() {
		t.Errorf("Quaternion = %v, want identity", b.Quaternion)
	}
	if !b.IsDynamic() || b.IsStatic() {
		t.Error("mass 1 body should be dynamic")
	}
}

func TestStep_BoxLandsOnPlane(t *testing.T) {
	w := newTestWorld(t, mgl64.Vec3{0, -9.82, 0})
	ground := mustBody(t, w, BodyOptions{Shape: NewPlane()})
	box := mustBody(t, w, BodyOptions{
		Mass:          1,
		Shape:         cube(0.25),
		Position:      mgl64.Vec3{0, 2.5, 0},
		LinearDamping: 0.9,
	})

	var c counter
	c.watch(box)
	var normal mgl64.Vec3
	box.OnBeginContact(func(ev ContactEvent) {
		if ev.Other == ground {
			normal = ev.Normal
		}
	})

	for i := 0; i < 300; i++ {
		w.Step(step)
	}

	if got := box.Position.Y(); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("resting height = %v, want 0.25", got)
	}
	if box.Velocity.Y() != 0 {
		t.Errorf("resting vertical velocity = %v, want 0", box.Velocity.Y())
	}
	if c.begin != 1 {
		t.Errorf("begin contacts = %d, want 1", c.begin)
	}
	if c.end != 0 {
		t.Errorf("end contacts = %d, want 0", c.end)
	}
	if c.collide < 2 {
		t.Errorf("collide events = %d, want one per resting step", c.collide)
	}
	if normal != (mgl64.Vec3{0, 1, 0}) {
		t.Errorf("contact normal = %v, want +Y", normal)
	}
	if !w.Touching(box, ground) {
		t.Error("Touching(box, ground) = false after landing")
	}
}

func TestStep_LeavingPlatformEndsContact(t *testing.T) {
	w := newTestWorld(t, mgl64.Vec3{0, -9.82, 0})
	platform := mustBody(t, w, BodyOptions{
		Shape:    NewBox(mgl64.Vec3{0.5, 0.05, 0.5}),
		Position: mgl64.Vec3{0, 0.5, 0},
	})
	box := mustBody(t, w, BodyOptions{
		Mass:     1,
		Shape:    cube(0.25),
		Position: mgl64.Vec3{0, 1, 0},
	})

	var c counter
	c.watch(box)

	for i := 0; i < 120; i++ {
		w.Step(step)
	}
	if got := box.Position.Y(); math.Abs(got-0.8) > 1e-9 {
		t.Fatalf("height on platform = %v, want 0.8", got)
	}
	if !w.Touching(box, platform) {
		t.Fatal("box should rest on platform")
	}

	for i := 0; i < 30; i++ {
		box.Velocity[0] = 5
		w.Step(step)
	}
	if w.Touching(box, platform) {
		t.Error("box still touching platform after walking off")
	}
	if c.begin != 1 || c.end != 1 {
		t.Errorf("begin/end = %d/%d, want 1/1", c.begin, c.end)
	}
	if box.Position.Y() >= 0.8 {
		t.Errorf("box should fall after leaving the platform, y = %v", box.Position.Y())
	}
}

func TestStep_WallStopsHorizontalMotion(t *testing.T) {
	w := newTestWorld(t, mgl64.Vec3{})
	wall := mustBody(t, w, BodyOptions{
		Shape:    NewBox(mgl64.Vec3{0.1, 1, 1}),
		Position: mgl64.Vec3{1, 0, 0},
	})
	box := mustBody(t, w, BodyOptions{Mass: 1, Shape: cube(0.25)})

	for i := 0; i < 60; i++ {
		box.Velocity[0] = 5
		w.Step(step)
	}
	if got := box.Position.X(); math.Abs(got-0.65) > 1e-9 {
		t.Errorf("x against wall = %v, want 0.65", got)
	}
	if !w.Touching(box, wall) {
		t.Error("box should touch the wall")
	}
}

func TestStep_DynamicBodiesSeparateAndTouch(t *testing.T) {
	w := newTestWorld(t, mgl64.Vec3{})
	a := mustBody(t, w, BodyOptions{Mass: 1, Shape: cube(0.25)})
	b := mustBody(t, w, BodyOptions{Mass: 1, Shape: cube(0.25), Position: mgl64.Vec3{0.45, 0, 0}})

	var ca, cb counter
	ca.watch(a)
	cb.watch(b)

	w.Step(step)
	w.Step(step)

	if got := b.Position.X() - a.Position.X(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("separation = %v, want 0.5", got)
	}
	if math.Abs(a.Position.X()+0.025) > 1e-9 {
		t.Errorf("equal masses should share the push, a.x = %v", a.Position.X())
	}
	if ca.begin != 1 || cb.begin != 1 {
		t.Errorf("begin = %d/%d, want 1/1", ca.begin, cb.begin)
	}
	if ca.collide != 2 || cb.collide != 2 {
		t.Errorf("collide = %d/%d, want 2/2", ca.collide, cb.collide)
	}
}

func TestStep_DynamicPushStopsAtStatics(t *testing.T) {
	w := newTestWorld(t, mgl64.Vec3{0, -9.82, 0})
	ground := mustBody(t, w, BodyOptions{Shape: NewPlane()})
	player := mustBody(t, w, BodyOptions{
		Mass:          1,
		Shape:         cube(0.25),
		Position:      mgl64.Vec3{0, 0.25, 0},
		LinearDamping: 0.9,
	})
	box := mustBody(t, w, BodyOptions{
		Mass:     1,
		Shape:    cube(0.15),
		Position: mgl64.Vec3{0, 1.5, 0},
	})

	for i := 0; i < 120; i++ {
		w.Step(step)
		if got := player.Position.Y(); got < 0.25-1e-9 {
			t.Fatalf("step %d: player pushed into the ground, y = %v", i, got)
		}
	}

	if got := player.Position.Y(); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("player y = %v, want 0.25", got)
	}
	if got := box.Position.Y(); math.Abs(got-0.65) > 1e-6 {
		t.Errorf("box y = %v, want 0.65 on top of the player", got)
	}
	if !w.Touching(player, ground) {
		t.Error("player should still touch the ground")
	}
	if !w.Touching(box, player) {
		t.Error("box should rest on the player")
	}
}

func TestSplitPush(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name           string
		da, db, ra, rb float64
		wantA, wantB   float64
	}{
		{"free", 0.1, 0.1, inf, inf, 0.1, 0.1},
		{"a pinned", 0.1, 0.1, 0, inf, 0, 0.2},
		{"b pinned", 0.1, 0.1, inf, 0, 0.2, 0},
		{"a partly blocked", 0.1, 0.1, 0.05, inf, 0.05, 0.15},
		{"both pinned", 0.1, 0.1, 0, 0, 0, 0},
		{"both short", 0.1, 0.1, 0.02, 0.03, 0.02, 0.03},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := splitPush(tt.da, tt.db, tt.ra, tt.rb)
			if math.Abs(a-tt.wantA) > 1e-12 || math.Abs(b-tt.wantB) > 1e-12 {
				t.Errorf("splitPush() = (%v, %v), want (%v, %v)", a, b, tt.wantA, tt.wantB)
			}
		})
	}
}

func TestRemove(t *testing.T) {
	w := newTestWorld(t, mgl64.Vec3{0, -9.82, 0})
	ground := mustBody(t, w, BodyOptions{Shape: NewPlane()})
	box := mustBody(t, w, BodyOptions{Mass: 1, Shape: cube(0.25), Position: mgl64.Vec3{0, 0.3, 0}})

	var cg counter
	cg.watch(ground)
	for i := 0; i < 30; i++ {
		w.Step(step)
	}
	if cg.begin != 1 {
		t.Fatalf("ground begin = %d, want 1", cg.begin)
	}

	if err := w.Remove(box); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if cg.end != 1 {
		t.Errorf("removing a touching body should end the contact, end = %d", cg.end)
	}
	if box.InWorld() {
		t.Error("InWorld() = true after Remove")
	}
	if _, ok := w.Body(box.ID()); ok {
		t.Error("Body() still finds removed body")
	}
	if err := w.Remove(box); !errors.Is(err, ErrBodyNotFound) {
		t.Errorf("second Remove() error = %v, want ErrBodyNotFound", err)
	}
	if err := w.RemoveByID(box.ID()); !errors.Is(err, ErrBodyNotFound) {
		t.Errorf("RemoveByID() error = %v, want ErrBodyNotFound", err)
	}

	before := cg.collide
	w.Step(step)
	if cg.collide != before {
		t.Errorf("removed body still produced contacts")
	}
	if w.Len() != 1 {
		t.Errorf("Len() = %d, want 1", w.Len())
	}
}

func TestRemove_LockedDuringStep(t *testing.T) {
	w := newTestWorld(t, mgl64.Vec3{0, -9.82, 0})
	mustBody(t, w, BodyOptions{Shape: NewPlane()})
	box := mustBody(t, w, BodyOptions{Mass: 1, Shape: cube(0.25), Position: mgl64.Vec3{0, 0.3, 0}})

	var removeErr, addErr error
	box.OnBeginContact(func(ev ContactEvent) {
		removeErr = w.Remove(ev.Body)
		_, addErr = w.NewBody(BodyOptions{Mass: 1, Shape: cube(0.1)})
	})
	for i := 0; i < 30; i++ {
		w.Step(step)
	}

	if !errors.Is(removeErr, ErrWorldLocked) {
		t.Errorf("Remove during step error = %v, want ErrWorldLocked", removeErr)
	}
	if !errors.Is(addErr, ErrWorldLocked) {
		t.Errorf("NewBody during step error = %v, want ErrWorldLocked", addErr)
	}
	if !box.InWorld() {
		t.Error("body removed during step")
	}
	if err := w.Remove(box); err != nil {
		t.Errorf("Remove after step: %v", err)
	}
}

func TestStep_Rotation(t *testing.T) {
	tests := []struct {
		name  string
		fixed bool
	}{
		{"free", false},
		{"fixed", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, mgl64.Vec3{})
			b := mustBody(t, w, BodyOptions{Mass: 1, Shape: cube(0.25), FixedRotation: tt.fixed})
			b.AngularVelocity = mgl64.Vec3{0, 2, 0}

			for i := 0; i < 10; i++ {
				w.Step(step)
			}

			if tt.fixed {
				if b.Quaternion != mgl64.QuatIdent() {
					t.Errorf("fixed body rotated: %v", b.Quaternion)
				}
				if b.AngularVelocity != (mgl64.Vec3{}) {
					t.Errorf("fixed body angular velocity = %v", b.AngularVelocity)
				}
				return
			}
			if b.Quaternion.ApproxEqual(mgl64.QuatIdent()) {
				t.Error("free body did not rotate")
			}
			if math.Abs(b.Quaternion.Len()-1) > 1e-9 {
				t.Errorf("quaternion not normalised: len %v", b.Quaternion.Len())
			}
		})
	}
}

func TestStep_IgnoresNonPositiveTimestep(t *testing.T) {
	w := newTestWorld(t, mgl64.Vec3{0, -9.82, 0})
	b := mustBody(t, w, BodyOptions{Mass: 1, Shape: cube(0.25), Position: mgl64.Vec3{0, 1, 0}})
	w.Step(0)
	w.Step(-1)
	if b.Position.Y() != 1 || w.Time() != 0 {
		t.Errorf("non-positive dt moved the world: y=%v t=%v", b.Position.Y(), w.Time())
	}
}
