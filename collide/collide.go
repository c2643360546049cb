// Package collide implements occupancy-grid collision probes over figures.
package collide

import (
	"errors"
	"math"

	"github.com/spiralgen/spiralgen/core"
)

// ErrLineIndex indicates a line index outside the figure's line sequence.
var ErrLineIndex = errors.New("collide: line index out of range")

// maxGridCells caps the occupancy grid area per probe. Bounds whose area
// exceeds this cannot be indexed safely on 32-bit dimensions and are
// refused with core.ErrTooLarge instead of attempting the allocation.
const maxGridCells = uint64(math.MaxInt32)

// gridSize computes the flat grid dimensions for the figure's bounds at
// scale 1, enforcing the area cap.
func gridSize(f *core.Figure) (width uint32, cells uint64, err error) {
	bounds, err := core.FigureBounds(f, 1)
	if err != nil {
		return 0, 0, err
	}
	width, height := bounds.Size()
	cells = uint64(width) * uint64(height)
	if cells > maxGridCells {
		return 0, 0, core.ErrTooLarge
	}

	return width, cells, nil
}

// Collides reports whether the figure's rasterized path self-intersects.
//
// It sizes a fresh occupancy grid to the figure's bounds and walks the path
// at scale 1 plotting every unit cell; the first repeat visit stops the
// walk and reports a collision. The grid is flat row-major (y*width+x) and
// lives only for this probe.
//
// Complexity: O(path length) time, O(area) memory.
func Collides(f *core.Figure) (bool, error) {
	width, cells, err := gridSize(f)
	if err != nil {
		return false, err
	}

	occupied := make([]bool, cells)
	collided := false
	err = core.Walk(f, 1, false, func(p core.Coord, _ int) bool {
		cell := uint64(uint32(p.Y))*uint64(width) + uint64(uint32(p.X))
		if occupied[cell] {
			collided = true
			return false
		}
		occupied[cell] = true
		return true
	})
	if err != nil {
		return false, err
	}

	return collided, nil
}

// CollidesWith reports whether the prefix of the figure up to and including
// maxLine self-intersects, and if so which prior line owns the first cell
// hit twice.
//
// Unlike Collides, the occupancy grid stores the owning line index of each
// cell (-1 for empty), so collision-resolving strategies can reason about
// the geometry of the offending pair. The walk covers the whole figure's
// bounds (later lines still contribute to sizing) but stops, without
// collision, as soon as it reaches a line beyond maxLine.
//
// Complexity: O(path length) time, O(area) memory.
func CollidesWith(f *core.Figure, maxLine int) (collider int, collided bool, err error) {
	if err = f.Validate(); err != nil {
		return 0, false, err
	}
	if maxLine < 0 || maxLine >= len(f.Lines) {
		return 0, false, ErrLineIndex
	}
	width, cells, err := gridSize(f)
	if err != nil {
		return 0, false, err
	}

	owners := make([]int32, cells)
	for i := range owners {
		owners[i] = -1
	}
	collider = -1
	walkErr := core.Walk(f, 1, false, func(p core.Coord, line int) bool {
		if line > maxLine {
			return false
		}
		cell := uint64(uint32(p.Y))*uint64(width) + uint64(uint32(p.X))
		if owner := owners[cell]; owner >= 0 {
			collider = int(owner)
			collided = true
			return false
		}
		owners[cell] = int32(line)
		return true
	})
	if walkErr != nil {
		return 0, false, walkErr
	}

	return collider, collided, nil
}
