package systems

import "github.com/yohamta/donburi"

// Frame lists the per-tick systems in execution order. Removals queued by
// collect callbacks drain before the step that follows them.
var Frame = []func(donburi.World){
	UpdateRemovals,
	UpdatePhysics,
	UpdateSync,
	UpdatePlayer,
	UpdateBounce,
	UpdateCamera,
	UpdateHUD,
}

// RunFrame runs every system in Frame once.
func RunFrame(w donburi.World) {
	for _, fn := range Frame {
		fn(w)
	}
}
