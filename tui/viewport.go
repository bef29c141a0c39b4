package tui

import "github.com/golangdaddy/crossroads/road"

// viewport scales canvas units to terminal cells.
type viewport struct {
	geometry   road.Geometry
	cols, rows int
}

func newViewport(g road.Geometry, cols, rows int) viewport {
	if rows < 0 {
		rows = 0
	}
	return viewport{geometry: g, cols: cols, rows: rows}
}

// project returns the cells covered by r, clipped to the viewport. Anything
// with a visible extent covers at least one cell.
func (v viewport) project(r road.Rect) road.Rect {
	x0 := floorDiv(r.X*v.cols, v.geometry.Width)
	y0 := floorDiv(r.Y*v.rows, v.geometry.Height)
	x1 := ceilDiv(r.Right()*v.cols, v.geometry.Width)
	y1 := ceilDiv(r.Bottom()*v.rows, v.geometry.Height)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0, x1 = clamp(x0, 0, v.cols), clamp(x1, 0, v.cols)
	y0, y1 = clamp(y0, 0, v.rows), clamp(y1, 0, v.rows)
	return road.NewRect(x0, y0, x1-x0, y1-y0)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
