package main

import (
	"log"
	"math/rand"
	"time"
)

// paintTool selects what a pointer drag paints into the material map.
type paintTool int

const (
	toolObstacle paintTool = iota
	toolMedium
)

// Game wires the simulation engine to the interactive front end: pointer
// editing, batched stepping, and frame encoding for display.
type Game struct {
	sim     *engine
	encoder frameEncoder
	pixels  []byte

	tool        paintTool
	mediumIndex float64

	drawing    bool
	lastCell   intPoint
	rectAnchor intPoint

	simStepMultiplier int
	lastSimDuration   time.Duration
	peakEz            float32

	levelRand *rand.Rand
	gpuSolver *openCLFieldSolver
}

// newGame constructs a fully initialized Game instance.
func newGame() *Game {
	g := &Game{
		sim:               newEngine(w, h),
		mediumIndex:       defaultMediumIndex,
		simStepMultiplier: defaultSimMultiplier,
		levelRand:         rand.New(rand.NewSource(time.Now().UnixNano() + 1)),
	}
	if *useOpenCLFlag {
		if solver, err := newOpenCLFieldSolver(w, h); err != nil {
			log.Printf("OpenCL unavailable, using CPU solver: %v", err)
		} else {
			log.Printf("OpenCL solver enabled (device: %s)", solver.DeviceName())
			g.gpuSolver = solver
		}
	}
	g.buildScene()
	return g
}

// buildScene applies the startup presets selected by flags.
func (g *Game) buildScene() {
	if *fiberPresetFlag {
		buildFiberScene(g.sim)
	}
	if *randomObstaclesFlag {
		scatterObstacles(g.sim, g.levelRand)
	}
}

// resetScene discards all fields, obstacles, and media, then re-applies the
// startup presets.
func (g *Game) resetScene() {
	g.sim.Reset()
	g.buildScene()
}

// Update applies pointer edits and advances the simulation by the configured
// number of ticks.
func (g *Game) Update() error {
	g.handleInput()
	steps := g.simStepMultiplier
	simStart := time.Now()
	if g.gpuSolver != nil {
		if err := g.gpuSolver.Step(g.sim, steps); err != nil {
			return err
		}
	} else {
		g.stepBatch(steps)
	}
	g.lastSimDuration = time.Since(simStart)
	if *debugFlag {
		g.peakEz = g.sim.maxFieldMagnitude()
	}
	return nil
}
