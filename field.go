package main

// fieldState stores the three Yee-staggered field buffers used by the FDTD
// solver. Ez samples live at cell centers. Hx index (y, x) holds the sample on
// the horizontal edge between rows y and y+1, Hy index (y, x) the sample on
// the vertical edge between columns x and x+1. The dedicated accessors below
// keep that staggering direction explicit at call sites.
type fieldState struct {
	width, height int
	ez            []float32
	hx            []float32
	hy            []float32
	ezDirty       bool
}

// newFieldState allocates a fieldState with zeroed buffers.
func newFieldState(width, height int) *fieldState {
	return &fieldState{
		width: width, height: height,
		ez: make([]float32, width*height),
		hx: make([]float32, width*height),
		hy: make([]float32, width*height),
	}
}

// ezAt returns the electric field at the cell center (x, y).
func (f *fieldState) ezAt(x, y int) float32 {
	return f.ez[y*f.width+x]
}

// setEz writes the electric field at (x, y) and marks the buffer dirty so the
// GPU solver re-uploads it before the next step.
func (f *fieldState) setEz(x, y int, value float32) {
	f.ez[y*f.width+x] = value
	f.ezDirty = true
}

// hxBelow returns Hx sampled at (x, y+1/2), the edge between rows y and y+1.
func (f *fieldState) hxBelow(x, y int) float32 {
	return f.hx[y*f.width+x]
}

// hyRight returns Hy sampled at (x+1/2, y), the edge between columns x and x+1.
func (f *fieldState) hyRight(x, y int) float32 {
	return f.hy[y*f.width+x]
}

// hxCentered averages the two adjacent Hx edge samples onto the cell center
// (x, y). Display-only; never feeds back into the solver.
func (f *fieldState) hxCentered(x, y int) float32 {
	if y < 1 {
		return f.hxBelow(x, y)
	}
	return (f.hxBelow(x, y) + f.hxBelow(x, y-1)) / 2
}

// hyCentered averages the two adjacent Hy edge samples onto the cell center.
func (f *fieldState) hyCentered(x, y int) float32 {
	if x < 1 {
		return f.hyRight(x, y)
	}
	return (f.hyRight(x, y) + f.hyRight(x-1, y)) / 2
}

// clear zeroes all three buffers.
func (f *fieldState) clear() {
	for i := range f.ez {
		f.ez[i] = 0
		f.hx[i] = 0
		f.hy[i] = 0
	}
	f.ezDirty = true
}

// ezWasModified reports whether Ez changed on the host since the last upload.
func (f *fieldState) ezWasModified() bool {
	return f.ezDirty
}

// clearEzDirty acknowledges a completed device upload.
func (f *fieldState) clearEzDirty() {
	f.ezDirty = false
}
