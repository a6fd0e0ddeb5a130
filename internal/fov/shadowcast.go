// Package fov computes visible tiles with recursive shadowcasting.
package fov

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/marshcrawl/internal/world"
)

// Opacity describes a bounded grid whose tiles may stop sight.
type Opacity interface {
	Dimensions() (width, height int)
	IsOpaque(x, y int) bool
}

// octants maps the canonical scan onto the eight octants around the origin.
var octants = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// Compute returns the tiles visible from origin within radius. The origin is
// always visible when it lies on the grid; opaque tiles that stop sight are
// visible themselves. The result never contains off-grid tiles.
func Compute(origin world.Point, radius int, grid Opacity) mapset.Set[world.Point] {
	visible := mapset.New[world.Point]()
	w, h := grid.Dimensions()
	if origin.X < 0 || origin.Y < 0 || origin.X >= w || origin.Y >= h {
		return visible
	}
	visible.Put(origin)
	if radius <= 0 {
		return visible
	}

	s := &scan{grid: grid, width: w, height: h, origin: origin, radius: radius, visible: visible}
	for oct := 0; oct < 8; oct++ {
		s.castLight(1, 1.0, 0.0, octants[0][oct], octants[1][oct], octants[2][oct], octants[3][oct])
	}
	return visible
}

type scan struct {
	grid          Opacity
	width, height int
	origin        world.Point
	radius        int
	visible       mapset.Set[world.Point]
}

func (s *scan) opaque(x, y int) bool {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return true
	}
	return s.grid.IsOpaque(x, y)
}

func (s *scan) castLight(row int, start, end float64, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := s.radius * s.radius

	for j := row; j <= s.radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)
			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			x := s.origin.X + dx*xx + dy*xy
			y := s.origin.Y + dx*yx + dy*yy

			if x >= 0 && y >= 0 && x < s.width && y < s.height && dx*dx+dy*dy <= radiusSq {
				s.visible.Put(world.Point{X: x, Y: y})
			}

			if blocked {
				if s.opaque(x, y) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if s.opaque(x, y) && j < s.radius {
				blocked = true
				s.castLight(j+1, start, lSlope, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
