package factory

import (
	"time"

	"github.com/automoto/cubehop/archetypes"
	"github.com/automoto/cubehop/components"
	"github.com/automoto/cubehop/physics"
	"github.com/yohamta/donburi"
)

func CreateSession(w donburi.World, pw *physics.World) *donburi.Entry {
	session := archetypes.Session.Spawn(w)
	components.Session.SetValue(session, components.SessionData{
		World: pw,
		Now:   time.Now,
	})
	components.Input.SetValue(session, components.InputData{
		Keys: make(map[string]bool),
	})
	return session
}
