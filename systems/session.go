package systems

import (
	"github.com/automoto/cubehop/components"
	"github.com/yohamta/donburi"
)

// session returns the session singleton, or nil before the scene is built.
func session(w donburi.World) *components.SessionData {
	entry, ok := components.Session.First(w)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

func input(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}
