package main

import "testing"

func TestEncodeFieldMapping(t *testing.T) {
	tests := []struct {
		name   string
		ez     float32
		medium bool
		want   byte
	}{
		{"negative rail", -1, false, 1},
		{"clamped below", -3, false, 1},
		{"zero field", 0, false, 64},
		{"positive rail", 1, false, 127},
		{"clamped above", 2.5, false, 127},
		{"half amplitude", 0.5, false, 95},
		{"zero field in medium", 0, true, 192},
		{"positive rail in medium", 1, true, 255},
		{"negative rail in medium", -1, true, 129},
	}
	var enc frameEncoder
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(8, 8)
			if tt.medium {
				e.AddMediumRect(intPoint{x: 3, y: 3}, intPoint{x: 3, y: 3}, 1.5)
			}
			e.field.setEz(3, 3, tt.ez)
			frame := enc.Encode(e)
			if got := frame[3*8+3]; got != tt.want {
				t.Fatalf("encoded byte = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEncodeClassifiesMaterial(t *testing.T) {
	e := newEngine(8, 8)
	e.AddMediumRect(intPoint{x: 4, y: 0}, intPoint{x: 7, y: 7}, 1.5)
	e.AddObstacleLine(intPoint{x: 0, y: 0}, intPoint{x: 0, y: 7})
	e.field.setEz(2, 2, 0.5)
	e.field.setEz(5, 2, -0.5)
	var enc frameEncoder
	frame := enc.Encode(e)
	if len(frame) != 8*8 {
		t.Fatalf("frame length = %d, want %d", len(frame), 8*8)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			v := frame[y*8+x]
			switch {
			case x == 0:
				if v != 0 {
					t.Fatalf("obstacle cell (%d,%d) encoded as %d, want 0", x, y, v)
				}
			case x >= 4:
				if v < 129 {
					t.Fatalf("medium cell (%d,%d) encoded as %d, want [129,255]", x, y, v)
				}
			default:
				if v < 1 || v > 127 {
					t.Fatalf("vacuum cell (%d,%d) encoded as %d, want [1,127]", x, y, v)
				}
			}
			if v == 128 {
				t.Fatalf("cell (%d,%d) encoded as the reserved byte 128", x, y)
			}
		}
	}
}

func TestEncodeObstaclePriorityOverMedium(t *testing.T) {
	e := newEngine(8, 8)
	e.AddObstacleLine(intPoint{x: 4, y: 4}, intPoint{x: 4, y: 4})
	// Medium painting does not consult the obstacle flag; the encoder still
	// reports the cell as an obstacle.
	e.AddMediumRect(intPoint{x: 4, y: 4}, intPoint{x: 4, y: 4}, 2)
	if got := e.material.epsilonAt(4, 4); got != 4 {
		t.Fatalf("epsilon = %v, want the medium overwrite 4", got)
	}
	var enc frameEncoder
	frame := enc.Encode(e)
	if frame[4*8+4] != 0 {
		t.Fatalf("encoded byte = %d, want obstacle 0", frame[4*8+4])
	}
}
