package main

import "math"

// engine owns the simulation grid: the staggered field buffers, the material
// map, and the elapsed-time clock. The editing operations mutate only the
// material map (plus their documented draw-time field side effects); Step
// mutates only the field state. All methods must be called from one logical
// thread of control.
type engine struct {
	width, height int
	field         *fieldState
	material      *materialMap
	clock         float64
	k             float32
}

// newEngine allocates and initializes a simulation of the given dimensions:
// zeroed fields, vacuum permittivity, no obstacles, clock at zero.
func newEngine(width, height int) *engine {
	e := &engine{width: width, height: height, k: stepCoeff}
	e.field = newFieldState(width, height)
	e.material = newMaterialMap(width, height)
	return e
}

// checkInit panics when the engine was not built through newEngine. Using an
// uninitialized engine is a programming error, not a runtime condition.
func (e *engine) checkInit() {
	if e.field == nil || e.material == nil {
		panic("engine: used before initialization")
	}
}

// Step advances the clock by dt scaled by timeScale and runs one leapfrog
// tick: the magnetic half-update followed by the electric half-update, in
// that fixed order. The magnetic field stays half a step ahead of the
// electric field.
func (e *engine) Step(dt float64) {
	e.checkInit()
	e.clock += dt * timeScale
	e.updateMagnetic()
	e.updateElectric()
}

// updateMagnetic advances Hx and Hy from the Ez curl. Hx at (x, y+1/2) exists
// for rows [0, H-2]; Hy at (x+1/2, y) exists for columns [0, W-2]. The
// remaining edge samples are never written.
func (e *engine) updateMagnetic() {
	width := e.width
	k := e.k
	ez := e.field.ez
	hx := e.field.hx
	hy := e.field.hy
	for y := 0; y < e.height-1; y++ {
		base := y * width
		row := ez[base : base+width]
		below := ez[base+width : base+2*width]
		hxRow := hx[base : base+width]
		for x := 0; x < width; x++ {
			hxRow[x] -= k * (below[x] - row[x])
		}
	}
	for y := 0; y < e.height; y++ {
		base := y * width
		row := ez[base : base+width]
		hyRow := hy[base : base+width]
		for x := 0; x < width-1; x++ {
			hyRow[x] += k * (row[x+1] - row[x])
		}
	}
}

// updateElectric advances interior Ez samples from the H curl, scaled by the
// local permittivity, then forces Ez to zero on every obstacle cell. Boundary
// rows and columns are never written, which makes the grid edge an implicit
// fixed reflector.
func (e *engine) updateElectric() {
	width := e.width
	k := e.k
	ez := e.field.ez
	hx := e.field.hx
	hy := e.field.hy
	eps := e.material.epsilon
	for y := 1; y < e.height-1; y++ {
		base := y * width
		ezRow := ez[base : base+width]
		hxRow := hx[base : base+width]
		hxAbove := hx[base-width : base]
		hyRow := hy[base : base+width]
		epsRow := eps[base : base+width]
		for x := 1; x < width-1; x++ {
			curl := (hyRow[x] - hyRow[x-1]) - (hxRow[x] - hxAbove[x])
			ezRow[x] += k / epsRow[x] * curl
		}
	}
	for i, blocked := range e.material.obstacle {
		if blocked {
			ez[i] = 0
		}
	}
}

// Reset restores the initial state at the configured dimensions: zero fields,
// vacuum material, empty obstacle mask, clock at zero.
func (e *engine) Reset() {
	e.checkInit()
	e.field.clear()
	e.material.reset()
	e.clock = 0
}

// AddSource hard-writes Ez at (x, y) when the cell is strictly interior.
// The write overwrites any existing field value; time-varying emission is the
// caller's job, by re-invoking this every tick with a computed strength.
// Out-of-range coordinates are silently ignored.
func (e *engine) AddSource(x, y int, strength float32) {
	e.checkInit()
	if x < 1 || x >= e.width-1 || y < 1 || y >= e.height-1 {
		return
	}
	e.field.setEz(x, y, strength)
}

// AddObstacleLine rasterizes the segment between p1 and p2 and marks every
// in-bounds cell as an obstacle, resetting its permittivity to vacuum and
// zeroing its Ez immediately. Identical endpoints mark a single cell.
func (e *engine) AddObstacleLine(p1, p2 intPoint) {
	e.checkInit()
	visitLine(p1.x, p1.y, p2.x, p2.y, func(x, y int) {
		if !inBounds(x, y, e.width, e.height) {
			return
		}
		e.material.setObstacle(y*e.width + x)
		e.field.setEz(x, y, 0)
	})
}

// AddMediumRect fills the clipped bounding box of p1 and p2 with the
// permittivity derived from the refractive index, clamped to vacuum below 1.
// Later calls overwrite earlier ones, so nested shapes are drawn outermost
// first. The obstacle flag is not consulted here; obstacle priority comes
// from the per-step zeroing and the encoder.
func (e *engine) AddMediumRect(p1, p2 intPoint, refractiveIndex float64) {
	e.checkInit()
	x0, y0, x1, y1, ok := clipRect(p1, p2, e.width, e.height)
	if !ok {
		return
	}
	if refractiveIndex < 1 {
		refractiveIndex = 1
	}
	epsilon := float32(refractiveIndex * refractiveIndex)
	for y := y0; y <= y1; y++ {
		base := y * e.width
		for x := x0; x <= x1; x++ {
			e.material.setEpsilon(base+x, epsilon)
		}
	}
}

// Elapsed returns the scaled simulation time accumulated by Step.
func (e *engine) Elapsed() float64 {
	return e.clock
}

// maxFieldMagnitude scans for the peak |Ez|. Diagnostic only; the solver
// itself never traps numerical growth.
func (e *engine) maxFieldMagnitude() float32 {
	peak := float32(0)
	for _, v := range e.field.ez {
		if a := float32(math.Abs(float64(v))); a > peak {
			peak = a
		}
	}
	return peak
}
