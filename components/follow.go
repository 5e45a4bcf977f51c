package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// FollowData pins a mesh to another entity's mesh at a fixed offset.
type FollowData struct {
	Target *donburi.Entry
	Offset mgl64.Vec3
}

var Follow = donburi.NewComponentType[FollowData]()
