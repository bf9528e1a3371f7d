// Package physics moves bodies through a level's platforms.
//
// Collision is axis-separated: a body moves along x and is clamped against
// every platform it overlaps, then does the same along y. The broadphase is a
// resolv.Space holding one object per platform; the narrowphase is an exact
// box overlap applied in platform-list order so results do not depend on the
// spatial hash.
package physics

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/entity"
)

// Broadphase tuning.
const (
	CellSize = 16

	tagPlatform = "platform"
	tagProbe    = "probe"
)

// World is the collision view of one level's platforms. It shares the
// level's platform slice, so kinematic moves made through MovePlatforms are
// seen by the level and the renderer.
type World struct {
	space     *resolv.Space
	platforms []entity.Platform
	objects   []*resolv.Object // Parallel to platforms
	probe     *resolv.Object
}

// NewWorld builds the broadphase for a level.
func NewWorld(l *entity.Level) *World {
	// One spare cell on each axis so platforms touching the far edge still
	// land inside the grid.
	w := int(math.Ceil(l.Width)) + CellSize
	h := int(math.Ceil(l.Height)) + CellSize

	world := &World{
		space:     resolv.NewSpace(w, h, CellSize, CellSize),
		platforms: l.Platforms,
		objects:   make([]*resolv.Object, len(l.Platforms)),
		probe:     resolv.NewObject(0, 0, 1, 1, tagProbe),
	}

	for i := range l.Platforms {
		p := &l.Platforms[i]
		obj := resolv.NewObject(p.X, p.Y, p.W, p.H, tagPlatform)
		obj.Data = i
		world.space.Add(obj)
		world.objects[i] = obj
	}
	world.space.Add(world.probe)

	return world
}

// MovePlatforms advances every kinematic platform and re-buckets it in the
// broadphase. Returns the number of platforms that reversed this tick.
func (w *World) MovePlatforms(dt float64) int {
	reversed := 0
	for i := range w.platforms {
		p := &w.platforms[i]
		if !p.Kinematic {
			continue
		}
		if p.Advance(dt) {
			reversed++
		}
		obj := w.objects[i]
		obj.X, obj.Y = p.X, p.Y
		obj.Update()
	}
	return reversed
}

// candidates returns, in list order, the indices of platforms that might
// overlap box. The query is padded by one pixel because resolv buckets an
// object's far edge by W-1, which can miss sub-pixel overlaps.
func (w *World) candidates(box core.Box) []int {
	w.probe.X = box.X - 1
	w.probe.Y = box.Y - 1
	w.probe.W = box.W + 2
	w.probe.H = box.H + 2
	w.probe.Update()

	check := w.probe.Check(0, 0, tagPlatform)
	if check == nil {
		return nil
	}

	idx := make([]int, 0, len(check.Objects))
	for _, obj := range check.Objects {
		if i, ok := obj.Data.(int); ok {
			idx = append(idx, i)
		}
	}
	sort.Ints(idx)

	// Compact duplicates in place
	out := idx[:0]
	for i, v := range idx {
		if i == 0 || v != idx[i-1] {
			out = append(out, v)
		}
	}
	return out
}

// GroundBelow finds the highest platform whose horizontal span covers the
// box's center and whose top is at or below the box's feet. Reports false
// when nothing is underneath.
func (w *World) GroundBelow(box core.Box) (top float64, ok bool) {
	cx := box.CenterX()
	feet := box.Bottom()
	for i := range w.platforms {
		p := &w.platforms[i]
		if cx < p.X || cx > p.Right() || p.Y < feet {
			continue
		}
		if !ok || p.Y < top {
			top, ok = p.Y, true
		}
	}
	return top, ok
}
