package systems

import (
	"github.com/automoto/cubehop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	bodyMeshes = donburi.NewQuery(filter.Contains(components.Body, components.Mesh))
	followers  = donburi.NewQuery(filter.Contains(components.Follow, components.Mesh))
)

// UpdateSync copies every body's transform onto its mesh, then moves
// followers to their target's mesh.
func UpdateSync(w donburi.World) {
	bodyMeshes.Each(w, func(e *donburi.Entry) {
		body := components.Body.Get(e).Body
		mesh := components.Mesh.Get(e)
		mesh.Position = body.Position
		mesh.Orientation = body.Quaternion
	})

	followers.Each(w, func(e *donburi.Entry) {
		f := components.Follow.Get(e)
		if f.Target == nil || !f.Target.Valid() || !f.Target.HasComponent(components.Mesh) {
			return
		}
		target := components.Mesh.Get(f.Target)
		mesh := components.Mesh.Get(e)
		mesh.Position = target.Position.Add(target.Orientation.Rotate(f.Offset))
		mesh.Orientation = target.Orientation
	})
}
