package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/cubehop/levels"
	"github.com/automoto/cubehop/render"
	"github.com/automoto/cubehop/systems"
	"github.com/automoto/cubehop/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type WorldScene struct {
	ecs     *ecs.ECS
	hud     *render.HUD
	focused bool
}

// NewWorldScene builds the physics world, the entities of layout and the
// system schedule.
func NewWorldScene(layout levels.Layout) (*WorldScene, error) {
	ws := &WorldScene{focused: true}
	if err := ws.configure(layout); err != nil {
		return nil, err
	}
	return ws, nil
}

func (ws *WorldScene) Update() {
	w := ws.ecs.World

	// Keys released while unfocused never report; drop them all.
	if focused := ebiten.IsFocused(); focused != ws.focused {
		ws.focused = focused
		if !focused {
			systems.ReleaseAll(w)
		}
	}

	pollKeyboard(w)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure(layout levels.Layout) error {
	e := ecs.NewECS(donburi.NewWorld())

	pw, err := factory.CreateSpace()
	if err != nil {
		return err
	}
	factory.CreateSession(e.World, pw)
	factory.CreateCamera(e.World)
	factory.CreateHUD(e.World)
	if _, err := systems.BuildLevel(e.World, layout); err != nil {
		return fmt.Errorf("build level %q: %w", layout.Name, err)
	}

	hud, err := render.NewHUD()
	if err != nil {
		return err
	}
	ws.hud = hud

	for _, fn := range systems.Frame {
		e.AddSystem(worldSystem(fn))
	}
	e.AddSystem(func(e *ecs.ECS) { ws.hud.Update(e.World) })

	// Add renderers
	e.AddRenderer(render.LayerScene, render.DrawScene)
	e.AddRenderer(render.LayerHUD, ws.hud.Draw)

	ws.ecs = e
	return nil
}

func worldSystem(fn func(donburi.World)) ecs.System {
	return func(e *ecs.ECS) { fn(e.World) }
}
