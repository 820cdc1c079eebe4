package main

// frameEncoder packs the simulation state into a single-channel display
// buffer, one byte per cell in row-major order. The byte contract lets a
// consumer classify material without decoding the field value:
//
//	0          obstacle (reserved)
//	1..127     field magnitude in vacuum
//	128        never emitted
//	129..255   field magnitude inside a dielectric medium
//
// The field mapping is floor(((clamp(Ez,-1,1)+1)/2)*126)+1, plus 128 when the
// cell's permittivity exceeds vacuum.
type frameEncoder struct {
	buf []byte
}

// Encode produces the byte buffer for the engine's current state. The
// returned slice is reused across calls.
func (enc *frameEncoder) Encode(e *engine) []byte {
	e.checkInit()
	size := e.width * e.height
	if len(enc.buf) != size {
		enc.buf = make([]byte, size)
	}
	ez := e.field.ez
	eps := e.material.epsilon
	obstacle := e.material.obstacle
	for i := 0; i < size; i++ {
		if obstacle[i] {
			enc.buf[i] = 0
			continue
		}
		m := ez[i]
		if m > 1 {
			m = 1
		} else if m < -1 {
			m = -1
		}
		b := byte((m+1)/2*126) + 1
		if eps[i] > 1 {
			b += 128
		}
		enc.buf[i] = b
	}
	return enc.buf
}
