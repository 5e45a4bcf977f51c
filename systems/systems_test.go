package systems

import (
	"math"
	"testing"

	"github.com/automoto/cubehop/components"
	cfg "github.com/automoto/cubehop/config"
	"github.com/automoto/cubehop/levels"
	"github.com/automoto/cubehop/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

const maxFrames = 600

type scene struct {
	w      donburi.World
	player *donburi.Entry
}

func (s scene) session() *components.SessionData { return session(s.w) }

func (s scene) body() *components.BodyData { return components.Body.Get(s.player) }

func (s scene) grounded() bool { return Grounded(s.player) }

// runUntil runs frames until cond holds and reports how many it took.
func (s scene) runUntil(t *testing.T, what string, cond func() bool) int {
	t.Helper()
	for i := 1; i <= maxFrames; i++ {
		RunFrame(s.w)
		if cond() {
			return i
		}
	}
	t.Fatalf("%s: not reached within %d frames", what, maxFrames)
	return 0
}

func newScene(t *testing.T, layout levels.Layout) scene {
	t.Helper()
	cfg.Reset()
	cfg.ResetInput()
	t.Cleanup(func() {
		cfg.Reset()
		cfg.ResetInput()
	})

	w := donburi.NewWorld()
	pw, err := factory.CreateSpace()
	if err != nil {
		t.Fatalf("CreateSpace: %v", err)
	}
	factory.CreateSession(w, pw)
	factory.CreateCamera(w)
	factory.CreateHUD(w)

	player, err := BuildLevel(w, layout)
	if err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}
	return scene{w: w, player: player}
}

func count(w donburi.World, cs ...donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(cs...)).Count(w)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestBuildLevel_RequiresSession(t *testing.T) {
	if _, err := BuildLevel(donburi.NewWorld(), levels.Layout{}); err == nil {
		t.Fatal("BuildLevel() without a session returned nil error")
	}
}

func TestScene_DropThenJump(t *testing.T) {
	s := newScene(t, levels.Layout{Name: "empty"})
	body := s.body()

	if s.grounded() {
		t.Fatal("player grounded at spawn")
	}
	if got := body.Position.Y(); got != 2.5 {
		t.Fatalf("spawn height = %v, want 2.5", got)
	}

	s.runUntil(t, "landing", s.grounded)
	if y := body.Position.Y(); math.Abs(y-0.25) > 1e-3 {
		t.Errorf("resting height = %v, want 0.25", y)
	}

	KeyDown(s.w, "Space")
	if got := body.Velocity.Y(); got != 5 {
		t.Fatalf("vertical velocity after jump = %v, want 5", got)
	}
	KeyUp(s.w, "Space")

	RunFrame(s.w)
	if s.grounded() {
		t.Fatal("still grounded after the jump step")
	}

	airborne := 0
	s.runUntil(t, "second landing", func() bool {
		if !s.grounded() {
			airborne++
		}
		return s.grounded()
	})
	if airborne == 0 {
		t.Error("grounded again without being airborne")
	}
}

func TestScene_FivePlatforms(t *testing.T) {
	layout := levels.Layout{Name: "five"}
	for _, xz := range [][2]float64{{-3, -3}, {3, -3}, {-3, 3}, {3, 3}, {0, -3}} {
		layout.Platforms = append(layout.Platforms, levels.Platform{
			Position: mgl64.Vec3{xz[0], 1, xz[1]},
			Size:     mgl64.Vec3{1, 0.1, 1},
		})
	}
	s := newScene(t, layout)

	if got := count(s.w, components.Collectible); got != 5 {
		t.Fatalf("collectibles = %d, want 5", got)
	}
	components.Collectible.Each(s.w, func(e *donburi.Entry) {
		pos := components.Body.Get(e).Position
		var under int
		for _, p := range layout.Platforms {
			if approx(p.Position.X(), pos.X()) && approx(p.Position.Z(), pos.Z()) && pos.Y() > p.Top() {
				under++
			}
		}
		if under != 1 {
			t.Errorf("collectible at %v sits above %d platforms, want 1", pos, under)
		}
	})

	// Let the cubes settle, then walk the player into the first one.
	for range 10 {
		RunFrame(s.w)
	}
	target := layout.Platforms[0]
	body := s.body()
	body.Position = mgl64.Vec3{target.Position.X() + 0.35, target.Top() + cfg.Player.Size/2, target.Position.Z()}
	body.Velocity = mgl64.Vec3{}

	meshes := count(s.w, components.Mesh)
	bodies := s.session().World.Len()

	RunFrame(s.w)
	if got := s.session().Collected; got != 1 {
		t.Fatalf("collected = %d, want 1", got)
	}
	if got := count(s.w, components.Mesh); got != meshes-1 {
		t.Errorf("meshes = %d, want %d", got, meshes-1)
	}

	RunFrame(s.w)
	RunFrame(s.w)
	if got := s.session().World.Len(); got != bodies-1 {
		t.Errorf("bodies = %d, want %d", got, bodies-1)
	}
	if got := count(s.w, components.Collectible); got != 4 {
		t.Errorf("collectibles left = %d, want 4", got)
	}
	if got := s.session().Collected; got != 1 {
		t.Errorf("collected after further frames = %d, want 1", got)
	}
}

func TestScene_TwoSupports(t *testing.T) {
	layout := levels.Layout{Platforms: []levels.Platform{
		{Position: mgl64.Vec3{-0.6, 0.5, 0}, Size: mgl64.Vec3{1, 0.1, 1}},
		{Position: mgl64.Vec3{0.6, 0.5, 0}, Size: mgl64.Vec3{1, 0.1, 1}},
	}}
	s := newScene(t, layout)
	player := components.Player.Get(s.player)

	s.runUntil(t, "landing on both platforms", func() bool { return len(player.Supports) == 2 })

	KeyDown(s.w, "ArrowRight")
	s.runUntil(t, "leaving the left platform", func() bool { return len(player.Supports) == 1 })
	if !s.grounded() {
		t.Error("not grounded while one support remains")
	}
	if y := s.body().Position.Y(); math.Abs(y-0.8) > 1e-3 {
		t.Errorf("height = %v, want 0.8 on the platform", y)
	}
}
