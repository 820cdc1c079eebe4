package main

// visitLine walks the segment from (x0, y0) to (x1, y1) with Bresenham's
// integer algorithm and calls visit for every cell on the way, endpoints
// included. Coordinates are passed through unclipped; callers decide how to
// treat out-of-bounds cells. Identical endpoints visit exactly one cell.
func visitLine(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	dy = -dy
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// clipRect normalizes the axis-aligned bounding box of p1 and p2 and clips it
// to a width×height grid. It reports ok=false when the box lies entirely
// outside the grid. Degenerate boxes collapse to a single row, column, or
// cell.
func clipRect(p1, p2 intPoint, width, height int) (x0, y0, x1, y1 int, ok bool) {
	x0, x1 = p1.x, p2.x
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	y0, y1 = p1.y, p2.y
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if x1 < 0 || y1 < 0 || x0 >= width || y0 >= height {
		return 0, 0, 0, 0, false
	}
	x0 = clampCoord(x0, 0, width-1)
	x1 = clampCoord(x1, 0, width-1)
	y0 = clampCoord(y0, 0, height-1)
	y1 = clampCoord(y1, 0, height-1)
	return x0, y0, x1, y1, true
}
