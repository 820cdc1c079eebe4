package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw expands the encoded frame into RGBA pixels and blits it, then applies
// the optional vector and debug overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.encoder.Encode(g.sim)
	if len(g.pixels) != w*h*4 {
		g.pixels = make([]byte, w*h*4)
	}
	for i, v := range frame {
		base := i * 4
		var r, gn, b int
		switch {
		case v == 0:
			if *showObstaclesFlag {
				r, gn, b = 30, 40, 80
			}
		case v >= 129:
			shade := int(v-129) * 2
			r, gn, b = shade/2, shade/2, 64+shade*3/4
		default:
			shade := int(v-1) * 2
			r, gn, b = shade, shade, shade
		}
		g.pixels[base] = byte(r)
		g.pixels[base+1] = byte(gn)
		g.pixels[base+2] = byte(b)
		g.pixels[base+3] = 255
	}
	screen.WritePixels(g.pixels)

	if *showVectorsFlag {
		g.drawFieldVectors(screen)
	}

	if *debugFlag {
		fps := ebiten.ActualFPS()
		tps := ebiten.ActualTPS()
		if tps < 0 {
			tps = 0
		}
		simMS := g.lastSimDuration.Seconds() * 1000
		tool := "obstacle"
		if g.tool == toolMedium {
			tool = "medium"
		}
		debugMsg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nSim steps: %.1f/s (mult %dx, +/-)\nSim: %.2f ms\nPeak |Ez|: %.3f\nTool: %s (n=%.2f)",
			fps, tps, g.simStepsPerSecond(), g.simStepMultiplier, simMS, g.peakEz, tool, g.mediumIndex)
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return w, h }

// drawFieldVectors overlays a down-sampled magnetic field direction plot. The
// edge samples are averaged onto cell centers for display; the overlay never
// feeds back into simulation state.
func (g *Game) drawFieldVectors(screen *ebiten.Image) {
	clr := color.RGBA{0, 255, 200, 200}
	for y := vectorOverlayStride / 2; y < h-1; y += vectorOverlayStride {
		for x := vectorOverlayStride / 2; x < w-1; x += vectorOverlayStride {
			if g.sim.material.isObstacle(x, y) {
				continue
			}
			dx := float64(g.sim.field.hxCentered(x, y)) * vectorOverlayScale
			dy := float64(g.sim.field.hyCentered(x, y)) * vectorOverlayScale
			tx := clampCoord(x+int(math.Round(dx)), 0, w-1)
			ty := clampCoord(y+int(math.Round(dy)), 0, h-1)
			drawLine(screen, x, y, tx, ty, clr)
		}
	}
}

// drawLine plots a line segment onto the screen using the shared Bresenham
// walk.
func drawLine(screen *ebiten.Image, x0, y0, x1, y1 int, clr color.Color) {
	visitLine(x0, y0, x1, y1, func(x, y int) {
		if inBounds(x, y, w, h) {
			screen.Set(x, y, clr)
		}
	})
}
