package components

import (
	cfg "github.com/automoto/cubehop/config"
	"github.com/yohamta/donburi"
)

// InputData maps key codes to their pressed state. Entries are written by
// key events and read once per frame.
type InputData struct {
	Keys map[string]bool
}

func (i *InputData) Set(code string, pressed bool) {
	if i.Keys == nil {
		i.Keys = make(map[string]bool)
	}
	i.Keys[code] = pressed
}

// Pressed reports whether any key bound to action is held.
func (i *InputData) Pressed(action cfg.ActionID) bool {
	for _, k := range cfg.Input.Bindings[action].Keys {
		if i.Keys[k] {
			return true
		}
	}
	return false
}

// Moving reports whether any directional action is held.
func (i *InputData) Moving() bool {
	for _, a := range cfg.MoveActions {
		if i.Pressed(a) {
			return true
		}
	}
	return false
}

var Input = donburi.NewComponentType[InputData]()
