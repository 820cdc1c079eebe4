package main

import "testing"

func TestMediumRectOverwriteNested(t *testing.T) {
	e := newEngine(32, 32)
	outer := float32(1.5 * 1.5)
	inner := float32(2.0 * 2.0)
	e.AddMediumRect(intPoint{x: 4, y: 4}, intPoint{x: 20, y: 20}, 1.5)
	e.AddMediumRect(intPoint{x: 8, y: 8}, intPoint{x: 12, y: 12}, 2.0)

	for y := 4; y <= 20; y++ {
		for x := 4; x <= 20; x++ {
			want := outer
			if x >= 8 && x <= 12 && y >= 8 && y <= 12 {
				want = inner
			}
			if got := e.material.epsilonAt(x, y); got != want {
				t.Fatalf("epsilon at (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if got := e.material.epsilonAt(2, 2); got != 1 {
		t.Fatalf("epsilon outside the rectangles = %v, want vacuum", got)
	}
}

func TestRefractiveIndexClampedToVacuum(t *testing.T) {
	e := newEngine(16, 16)
	e.AddMediumRect(intPoint{x: 2, y: 2}, intPoint{x: 4, y: 4}, 0.5)
	for y := 2; y <= 4; y++ {
		for x := 2; x <= 4; x++ {
			if got := e.material.epsilonAt(x, y); got != 1 {
				t.Fatalf("epsilon at (%d,%d) = %v, want 1 for a sub-vacuum index", x, y, got)
			}
		}
	}
}

func TestObstacleDrawResetsCell(t *testing.T) {
	e := newEngine(16, 16)
	e.AddMediumRect(intPoint{x: 0, y: 0}, intPoint{x: 15, y: 15}, 1.5)
	e.AddSource(6, 6, 0.9)
	e.AddObstacleLine(intPoint{x: 6, y: 6}, intPoint{x: 6, y: 6})

	if !e.material.isObstacle(6, 6) {
		t.Fatal("cell not marked as obstacle")
	}
	if got := e.material.epsilonAt(6, 6); got != 1 {
		t.Fatalf("epsilon = %v, want the neutral value 1", got)
	}
	if got := e.field.ezAt(6, 6); got != 0 {
		t.Fatalf("Ez = %v, want 0 immediately after drawing", got)
	}
}

func TestMediumRectOutsideGridIsNoOp(t *testing.T) {
	e := newEngine(16, 16)
	e.AddMediumRect(intPoint{x: 20, y: 20}, intPoint{x: 30, y: 30}, 2)
	for i, eps := range e.material.epsilon {
		if eps != 1 {
			t.Fatalf("epsilon at index %d = %v, want untouched vacuum", i, eps)
		}
	}
}
