package render

import (
	"bytes"
	"fmt"

	"github.com/automoto/cubehop/components"
	cfg "github.com/automoto/cubehop/config"
	"github.com/automoto/cubehop/fonts"
	"github.com/automoto/cubehop/systems"
	"github.com/automoto/cubehop/tags"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD shows the collected counter and, when enabled, a debug line.
type HUD struct {
	UI *ebitenui.UI

	counter *widget.Label
	debug   *widget.Label

	counterSize float64
	counterFace *text.GoTextFace
	// Stored as interfaces for ebitenui.
	counterText text.Face
	debugText   text.Face
}

func NewHUD() (*HUD, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("hud font: %w", err)
	}
	if !fonts.Loaded(fonts.Debug) {
		if err := fonts.LoadFontWithSize(fonts.Debug, goregular.TTF, cfg.UI.DebugFontSize); err != nil {
			return nil, err
		}
	}

	h := &HUD{counterSize: cfg.UI.HUDFontSize}
	h.counterFace = &text.GoTextFace{Source: source, Size: h.counterSize}
	h.counterText = h.counterFace
	h.debugText = text.NewGoXFace(fonts.Debug.Get())

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.UI.HUDMargin)),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	h.counter = widget.NewLabel(
		widget.LabelOpts.Text("", &h.counterText, &widget.LabelColor{
			Idle: cfg.UI.HUDTextColor,
		}),
	)
	root.AddChild(h.counter)

	h.debug = widget.NewLabel(
		widget.LabelOpts.Text("", &h.debugText, &widget.LabelColor{
			Idle: cfg.UI.HUDTextColor,
		}),
	)
	root.AddChild(h.debug)

	h.UI = &ebitenui.UI{Container: root}
	return h, nil
}

// Update refreshes the labels from the world and advances the UI.
func (h *HUD) Update(w donburi.World) {
	collected, frames, bodies := 0, 0, 0
	if entry, ok := components.Session.First(w); ok {
		sess := components.Session.Get(entry)
		collected, frames = sess.Collected, sess.Frames
		if sess.World != nil {
			bodies = sess.World.Len()
		}
	}

	remaining := 0
	components.Collectible.Each(w, func(e *donburi.Entry) {
		if components.Collectible.Get(e).Collectible {
			remaining++
		}
	})

	scale := 1.0
	if entry, ok := components.HUD.First(w); ok {
		scale = components.HUD.Get(entry).Scale
	}
	h.counterFace.Size = h.counterSize * scale
	h.counter.Label = fmt.Sprintf("Cubes: %d / %d", collected, collected+remaining)

	h.debug.Label = ""
	if cfg.Debug.Overlay {
		grounded := false
		if p, ok := tags.Player.First(w); ok {
			grounded = systems.Grounded(p)
		}
		h.debug.Label = fmt.Sprintf("frame %d  bodies %d  tps %.0f  grounded %v",
			frames, bodies, ebiten.ActualTPS(), grounded)
	}

	h.UI.Update()
}

// Draw is an ecs renderer.
func (h *HUD) Draw(_ *ecs.ECS, screen *ebiten.Image) {
	h.UI.Draw(screen)
}
