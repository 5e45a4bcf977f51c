package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/automoto/cubehop/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

//go:embed maps/*.tmx
var Maps embed.FS

// PlatformLayer is the TMX object group holding platforms. Each object's
// rectangle gives the platform's X/Z footprint in tiles; its optional float
// property "height" gives the centre height in world units.
const PlatformLayer = "platforms"

// LoadTMX reads a layout from a TMX file in fsys. One tile is one world unit
// and the map is centred on the origin.
func LoadTMX(fsys fs.FS, tmxPath string, lc config.LevelConfig) (Layout, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Layout{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return Layout{}, fmt.Errorf("load TMX %s: tile size %dx%d", tmxPath, m.TileWidth, m.TileHeight)
	}

	layout := Layout{Name: strings.TrimSuffix(path.Base(tmxPath), ".tmx")}
	tileW, tileH := float64(m.TileWidth), float64(m.TileHeight)
	halfW, halfD := float64(m.Width)/2, float64(m.Height)/2

	for _, og := range m.ObjectGroups {
		if og.Name != PlatformLayer {
			continue
		}
		for _, o := range og.Objects {
			size := mgl64.Vec3{o.Width / tileW, lc.PlatformHeight, o.Height / tileH}
			if size.X() <= 0 {
				size[0] = lc.PlatformWidth
			}
			if size.Z() <= 0 {
				size[2] = lc.PlatformDepth
			}

			y := lc.MinY
			for _, prop := range o.Properties {
				if prop.Name != "height" {
					continue
				}
				if y, err = strconv.ParseFloat(prop.Value, 64); err != nil {
					return Layout{}, fmt.Errorf("load TMX %s: object %d height: %w", tmxPath, o.ID, err)
				}
			}

			layout.Platforms = append(layout.Platforms, Platform{
				Position: mgl64.Vec3{
					(o.X+o.Width/2)/tileW - halfW,
					y,
					(o.Y+o.Height/2)/tileH - halfD,
				},
				Size: size,
			})
		}
	}

	if len(layout.Platforms) == 0 {
		return Layout{}, fmt.Errorf("load TMX %s: no objects in %q layer", tmxPath, PlatformLayer)
	}
	return layout, nil
}
