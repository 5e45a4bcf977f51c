// Package render draws the ECS world onto the ebiten screen.
package render

import (
	"image"
	"image/color"

	"github.com/automoto/cubehop/components"
	cfg "github.com/automoto/cubehop/config"
	"github.com/automoto/cubehop/render/faces"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Layers
const (
	LayerScene ecs.LayerID = iota
	LayerHUD
)

// Each face is two triangles over four vertices; stay under the uint16
// index limit.
const maxBatchVertices = 1 << 15

var (
	whiteImage *ebiten.Image
	vertices   []ebiten.Vertex
	indices    []uint16
	meshes     []components.MeshData
)

func whiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteImage
}

// DrawScene paints every mesh as flat-shaded faces, farthest first.
func DrawScene(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	meshes = meshes[:0]
	components.Mesh.Each(e.World, func(entry *donburi.Entry) {
		meshes = append(meshes, *components.Mesh.Get(entry))
	})

	b := screen.Bounds()
	drawFaces(screen, faces.Build(meshes, camera, float64(b.Dx()), float64(b.Dy())))
}

func drawFaces(screen *ebiten.Image, fs []faces.Face) {
	src := whiteSubImage()
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}

	vertices, indices = vertices[:0], indices[:0]
	for _, f := range fs {
		if len(vertices)+4 > maxBatchVertices {
			screen.DrawTriangles(vertices, indices, src, op)
			vertices, indices = vertices[:0], indices[:0]
		}

		base := uint16(len(vertices))
		r, g, bl, a := float32(f.Color.R)/255, float32(f.Color.G)/255, float32(f.Color.B)/255, float32(f.Color.A)/255
		for _, p := range f.Points {
			vertices = append(vertices, ebiten.Vertex{
				DstX:   float32(p.X()),
				DstY:   float32(p.Y()),
				SrcX:   1,
				SrcY:   1,
				ColorR: r,
				ColorG: g,
				ColorB: bl,
				ColorA: a,
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	if len(indices) > 0 {
		screen.DrawTriangles(vertices, indices, src, op)
	}
}
