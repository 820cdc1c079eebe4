package main

import (
	"math/rand"
	"testing"
)

func TestFiberSceneLayersCoreOverCladding(t *testing.T) {
	e := newEngine(w, h)
	buildFiberScene(e)

	cx, cy := w/2, h/2
	coreEps := float32(float64(fiberCoreIndex) * float64(fiberCoreIndex))
	claddingEps := float32(float64(fiberCladdingIndex) * float64(fiberCladdingIndex))

	if got := e.material.epsilonAt(cx, cy); got != coreEps {
		t.Fatalf("core epsilon = %v, want %v", got, coreEps)
	}
	if got := e.material.epsilonAt(cx+fiberCoreHalfW+2, cy); got != claddingEps {
		t.Fatalf("cladding epsilon = %v, want %v", got, claddingEps)
	}
	if got := e.material.epsilonAt(cx+fiberCladdingHalfW+2, cy); got != 1 {
		t.Fatalf("epsilon outside the fiber = %v, want vacuum", got)
	}
}

func TestScatterObstaclesPaintsSegments(t *testing.T) {
	e := newEngine(w, h)
	rng := rand.New(rand.NewSource(7))
	scatterObstacles(e, rng)

	count := 0
	for _, blocked := range e.material.obstacle {
		if blocked {
			count++
		}
	}
	if count < obstacleSegments {
		t.Fatalf("painted %d obstacle cells, want at least one per segment", count)
	}
}
