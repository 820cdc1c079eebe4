package main

import "time"

// Simulation and rendering configuration constants used throughout the
// application. These values define the grid size, the FDTD stability
// coefficients, and the interactive editing behavior.
const (
	w, h        = 256, 256
	windowScale = 3

	// courantNumber must stay below the 2-D stability limit 1/sqrt(2).
	courantNumber = 0.5
	timeScale     = 0.2
	stepCoeff     = float32(courantNumber * timeScale)

	sourceRad  = 2
	sourceFreq = 0.35

	defaultTPS           = 60.0
	defaultSimMultiplier = 4
	simMultiplierStep    = 1
	minSimMultiplier     = 1
	maxSimMultiplier     = 64

	defaultMediumIndex = 1.5
	altMediumIndex     = 2.0

	// Optical fiber preset: cladding drawn first, core second, so the core
	// overwrites the cladding where they overlap.
	fiberCladdingIndex = 1.45
	fiberCoreIndex     = 1.47
	fiberCladdingHalfW = 80
	fiberCoreHalfW     = 14

	obstacleSegments = 6
	obstacleMinLen   = 12
	obstacleMaxLen   = 80

	vectorOverlayStride = 16
	vectorOverlayScale  = 40.0

	pgoRecordDuration = 15 * time.Second
)
