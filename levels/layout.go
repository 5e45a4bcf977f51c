// Package levels builds platform layouts, either at random or from Tiled
// TMX files.
package levels

import (
	"math/rand/v2"

	"github.com/automoto/cubehop/config"
	"github.com/go-gl/mathgl/mgl64"
)

// Platform is a static slab with one collectible resting on top.
type Platform struct {
	Position mgl64.Vec3 // centre
	Size     mgl64.Vec3 // full extents
}

// Top is the world height of the platform's upper face.
func (p Platform) Top() float64 {
	return p.Position.Y() + p.Size.Y()/2
}

// CubePosition centres a cube of the given size on the platform's top face.
func (p Platform) CubePosition(cubeSize float64) mgl64.Vec3 {
	return mgl64.Vec3{p.Position.X(), p.Top() + cubeSize/2, p.Position.Z()}
}

type Layout struct {
	Name      string
	Platforms []Platform
}

// Random scatters lc.Platforms platforms within +-MaxPosition on X and Z and
// between MinY and MaxY.
func Random(rng *rand.Rand, lc config.LevelConfig) Layout {
	size := mgl64.Vec3{lc.PlatformWidth, lc.PlatformHeight, lc.PlatformDepth}
	layout := Layout{Name: "random", Platforms: make([]Platform, 0, lc.Platforms)}
	for i := 0; i < lc.Platforms; i++ {
		pos := mgl64.Vec3{
			rng.Float64()*(lc.MaxPosition*2) - lc.MaxPosition,
			rng.Float64()*(lc.MaxY-lc.MinY) + lc.MinY,
			rng.Float64()*(lc.MaxPosition*2) - lc.MaxPosition,
		}
		layout.Platforms = append(layout.Platforms, Platform{Position: pos, Size: size})
	}
	return layout
}
