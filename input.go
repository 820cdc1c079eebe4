package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleInput maps pointer and key state onto engine editing operations.
// Layout reports the grid dimensions, so cursor coordinates are already grid
// coordinates.
func (g *Game) handleInput() {
	mx, my := ebiten.CursorPosition()
	cell := intPoint{x: clampCoord(mx, 0, w-1), y: clampCoord(my, 0, h-1)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.drawing = true
		g.lastCell = cell
		g.rectAnchor = cell
		if g.tool == toolObstacle {
			g.sim.AddObstacleLine(cell, cell)
		}
	}
	if g.drawing && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.tool == toolObstacle && cell != g.lastCell {
			g.sim.AddObstacleLine(g.lastCell, cell)
			g.lastCell = cell
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.drawing && g.tool == toolMedium {
			g.sim.AddMediumRect(g.rectAnchor, cell, g.mediumIndex)
		}
		g.drawing = false
	}

	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		g.driveSource(cell)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.tool = toolObstacle
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.tool = toolMedium
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		g.mediumIndex = defaultMediumIndex
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		g.mediumIndex = altMediumIndex
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetScene()
	}

	g.handleDebugControls()
}

// driveSource hard-writes an oscillating excitation over the source footprint.
// The engine has no notion of frequency; the waveform is synthesized here from
// the engine clock and re-applied every tick.
func (g *Game) driveSource(cell intPoint) {
	strength := float32(math.Sin(2 * math.Pi * sourceFreq * g.sim.Elapsed()))
	for _, offset := range sourceFootprint {
		g.sim.AddSource(cell.x+offset.dx, cell.y+offset.dy, strength)
	}
}

// handleDebugControls processes debug overlay hotkeys.
func (g *Game) handleDebugControls() {
	if !*debugFlag {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustSimMultiplier(-simMultiplierStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustSimMultiplier(simMultiplierStep)
	}
}

// adjustSimMultiplier clamps the simulation batch size delta within bounds.
func (g *Game) adjustSimMultiplier(delta int) {
	g.simStepMultiplier += delta
	if g.simStepMultiplier < minSimMultiplier {
		g.simStepMultiplier = minSimMultiplier
	} else if g.simStepMultiplier > maxSimMultiplier {
		g.simStepMultiplier = maxSimMultiplier
	}
}

// simStepsPerSecond returns the nominal simulation steps executed each second.
func (g *Game) simStepsPerSecond() float64 {
	return defaultTPS * float64(g.simStepMultiplier)
}
