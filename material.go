package main

// materialMap stores the per-cell relative permittivity and the obstacle mask.
// Obstacle cells mark perfect conductors: the solver forces Ez to zero there
// after every step, and the encoder reserves byte 0 for them. Only the
// rasterization operations mutate this map.
type materialMap struct {
	width, height int
	epsilon       []float32
	obstacle      []bool
	dirty         bool
}

// newMaterialMap allocates a vacuum material map (epsilon 1, no obstacles).
func newMaterialMap(width, height int) *materialMap {
	m := &materialMap{
		width: width, height: height,
		epsilon:  make([]float32, width*height),
		obstacle: make([]bool, width*height),
	}
	m.reset()
	return m
}

// reset restores vacuum everywhere and clears the obstacle mask.
func (m *materialMap) reset() {
	for i := range m.epsilon {
		m.epsilon[i] = 1
		m.obstacle[i] = false
	}
	m.dirty = true
}

// epsilonAt returns the relative permittivity of cell (x, y).
func (m *materialMap) epsilonAt(x, y int) float32 {
	return m.epsilon[y*m.width+x]
}

// isObstacle reports whether cell (x, y) is a perfect-conductor marker.
func (m *materialMap) isObstacle(x, y int) bool {
	return m.obstacle[y*m.width+x]
}

// setObstacle marks the cell at the linear index as an obstacle and resets its
// permittivity to vacuum.
func (m *materialMap) setObstacle(idx int) {
	m.obstacle[idx] = true
	m.epsilon[idx] = 1
	m.dirty = true
}

// setEpsilon overwrites the permittivity at the linear index. The obstacle
// flag is deliberately not consulted: the per-step zeroing and the encoder
// give obstacles priority regardless of the stored permittivity.
func (m *materialMap) setEpsilon(idx int, epsilon float32) {
	m.epsilon[idx] = epsilon
	m.dirty = true
}

// wasModified reports whether the map changed since the last device upload.
func (m *materialMap) wasModified() bool {
	return m.dirty
}

// clearDirty acknowledges a completed device upload.
func (m *materialMap) clearDirty() {
	m.dirty = false
}
