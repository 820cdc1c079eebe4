package main

// intPoint represents an integer coordinate on the simulation grid.
type intPoint struct {
	x int
	y int
}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// inBounds reports whether (x, y) indexes a cell of a width×height grid.
func inBounds(x, y, width, height int) bool {
	return x >= 0 && x < width && y >= 0 && y < height
}
