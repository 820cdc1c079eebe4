package main

import "math/rand"

// buildFiberScene paints an optical-fiber cross section centered on the grid:
// the lower-index cladding first, then the higher-index core, which relies on
// later medium draws overwriting earlier ones.
func buildFiberScene(sim *engine) {
	cx := sim.width / 2
	cy := sim.height / 2
	sim.AddMediumRect(
		intPoint{cx - fiberCladdingHalfW, cy - fiberCladdingHalfW},
		intPoint{cx + fiberCladdingHalfW, cy + fiberCladdingHalfW},
		fiberCladdingIndex)
	sim.AddMediumRect(
		intPoint{cx - fiberCoreHalfW, cy - fiberCoreHalfW},
		intPoint{cx + fiberCoreHalfW, cy + fiberCoreHalfW},
		fiberCoreIndex)
}

// scatterObstacles draws procedural obstacle segments through the engine's
// line rasterizer.
func scatterObstacles(sim *engine, rng *rand.Rand) {
	for s := 0; s < obstacleSegments; s++ {
		lengthRange := obstacleMaxLen - obstacleMinLen + 1
		if lengthRange <= 0 {
			lengthRange = 1
		}
		length := obstacleMinLen + rng.Intn(lengthRange)
		horizontal := rng.Intn(2) == 0
		x := rng.Intn(sim.width-4) + 2
		y := rng.Intn(sim.height-4) + 2
		p1 := intPoint{x: x, y: y}
		p2 := p1
		if horizontal {
			p2.x = clampCoord(x+length, 1, sim.width-2)
		} else {
			p2.y = clampCoord(y+length, 1, sim.height-2)
		}
		sim.AddObstacleLine(p1, p2)
	}
}
