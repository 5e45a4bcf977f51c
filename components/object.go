package components

import (
	"github.com/automoto/cubehop/physics"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its rigid body. The body's Data points back at
// the entry.
type BodyData struct {
	*physics.Body
}

var Body = donburi.NewComponentType[BodyData]()
