package components

import (
	"time"

	"github.com/automoto/cubehop/physics"
	"github.com/yohamta/donburi"
)

// SessionData is the state shared by the frame loop and key handlers.
type SessionData struct {
	World *physics.World

	// Removals are bodies to take out of World before the next step.
	Removals  []physics.BodyID
	Collected int
	Frames    int

	Now func() time.Time
}

var Session = donburi.NewComponentType[SessionData]()
