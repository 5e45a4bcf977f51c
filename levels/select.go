package levels

import (
	"errors"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/automoto/cubehop/config"
)

var ErrUnknownMap = errors.New("levels: unknown map")

// Select picks the layout named by lc.Map: a TMX path on disk, the name of
// an embedded map, or empty for a random layout seeded by lc.Seed (a zero
// seed uses the clock). It also returns the seed used, if any.
func Select(lc config.LevelConfig) (Layout, uint64, error) {
	if lc.Map == "" {
		seed := uint64(lc.Seed)
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		return Random(rand.New(rand.NewPCG(seed, seed)), lc), seed, nil
	}

	if info, err := os.Stat(lc.Map); err == nil && !info.IsDir() {
		layout, err := LoadTMX(os.DirFS(filepath.Dir(lc.Map)), filepath.Base(lc.Map), lc)
		return layout, 0, err
	}

	name := "maps/" + strings.TrimSuffix(lc.Map, ".tmx") + ".tmx"
	if _, err := fs.Stat(Maps, name); err != nil {
		return Layout{}, 0, errors.Join(ErrUnknownMap, err)
	}
	layout, err := LoadTMX(Maps, name, lc)
	return layout, 0, err
}

// Embedded lists the names of the built-in maps.
func Embedded() []string {
	entries, err := fs.ReadDir(Maps, "maps")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".tmx"))
	}
	return names
}
