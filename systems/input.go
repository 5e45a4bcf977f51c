package systems

import (
	cfg "github.com/automoto/cubehop/config"
	"github.com/automoto/cubehop/logger"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// KeyDown records code as held. A key bound to jump also attempts the jump
// right away, so the grounded check happens at the moment of the press.
func KeyDown(w donburi.World, code string) {
	in := input(w)
	if in == nil {
		return
	}
	in.Set(code, true)

	for _, action := range cfg.ActionsFor(code) {
		if action == cfg.ActionJump {
			TryJump(w)
		}
	}
}

// KeyUp records code as released.
func KeyUp(w donburi.World, code string) {
	in := input(w)
	if in == nil {
		return
	}
	in.Set(code, false)
}

// ReleaseAll clears every held key, e.g. when the window loses focus.
func ReleaseAll(w donburi.World) {
	in := input(w)
	if in == nil {
		return
	}
	for code, held := range in.Keys {
		if held {
			logger.L().Debug("releasing held key", zap.String("code", code))
		}
		in.Keys[code] = false
	}
}
