package scenes

import (
	cfg "github.com/automoto/cubehop/config"
	"github.com/automoto/cubehop/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
)

// Reusable slice to avoid allocations
var keys []ebiten.Key

// pollKeyboard turns this tick's key edges into key events, presses first.
func pollKeyboard(w donburi.World) {
	keys = inpututil.AppendJustPressedKeys(keys[:0])
	for _, k := range keys {
		systems.KeyDown(w, cfg.CodeFromKeyName(k.String()))
	}

	keys = inpututil.AppendJustReleasedKeys(keys[:0])
	for _, k := range keys {
		systems.KeyUp(w, cfg.CodeFromKeyName(k.String()))
	}
}
