package main

// stepBatch runs the CPU solver for the requested number of ticks, one unit
// of dt per tick.
func (g *Game) stepBatch(steps int) {
	if steps <= 0 {
		return
	}
	for i := 0; i < steps; i++ {
		g.sim.Step(1)
	}
}
