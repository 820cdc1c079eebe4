package main

import "testing"

func collectLine(x0, y0, x1, y1 int) []intPoint {
	var cells []intPoint
	visitLine(x0, y0, x1, y1, func(x, y int) {
		cells = append(cells, intPoint{x: x, y: y})
	})
	return cells
}

func TestVisitLineCells(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []intPoint
	}{
		{
			name: "single cell",
			x0:   4, y0: 7, x1: 4, y1: 7,
			want: []intPoint{{4, 7}},
		},
		{
			name: "horizontal",
			x0:   2, y0: 3, x1: 5, y1: 3,
			want: []intPoint{{2, 3}, {3, 3}, {4, 3}, {5, 3}},
		},
		{
			name: "vertical reversed",
			x0:   1, y0: 4, x1: 1, y1: 1,
			want: []intPoint{{1, 4}, {1, 3}, {1, 2}, {1, 1}},
		},
		{
			name: "diagonal",
			x0:   0, y0: 0, x1: 3, y1: 3,
			want: []intPoint{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectLine(tt.x0, tt.y0, tt.x1, tt.y1)
			if len(got) != len(tt.want) {
				t.Fatalf("visited %d cells, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("cell %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestVisitLineConnectivity(t *testing.T) {
	cells := collectLine(3, 2, 10, 19)
	if len(cells) != 18 {
		t.Fatalf("visited %d cells, want max(dx,dy)+1 = 18", len(cells))
	}
	if cells[0] != (intPoint{x: 3, y: 2}) || cells[len(cells)-1] != (intPoint{x: 10, y: 19}) {
		t.Fatalf("endpoints not visited: first %v last %v", cells[0], cells[len(cells)-1])
	}
	for i := 1; i < len(cells); i++ {
		dx := cells[i].x - cells[i-1].x
		dy := cells[i].y - cells[i-1].y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
			t.Fatalf("cells %v and %v are not adjacent", cells[i-1], cells[i])
		}
	}
}

func TestClipRect(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2         intPoint
		wantX0, wantY0 int
		wantX1, wantY1 int
		wantOK         bool
	}{
		{"inside", intPoint{2, 3}, intPoint{5, 6}, 2, 3, 5, 6, true},
		{"swapped corners", intPoint{5, 6}, intPoint{2, 3}, 2, 3, 5, 6, true},
		{"clipped negative", intPoint{-4, -4}, intPoint{3, 3}, 0, 0, 3, 3, true},
		{"clipped positive", intPoint{8, 8}, intPoint{14, 14}, 8, 8, 9, 9, true},
		{"outside right", intPoint{12, 2}, intPoint{15, 5}, 0, 0, 0, 0, false},
		{"outside negative", intPoint{-5, -5}, intPoint{-1, -1}, 0, 0, 0, 0, false},
		{"degenerate cell", intPoint{4, 4}, intPoint{4, 4}, 4, 4, 4, 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, y0, x1, y1, ok := clipRect(tt.p1, tt.p2, 10, 10)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if x0 != tt.wantX0 || y0 != tt.wantY0 || x1 != tt.wantX1 || y1 != tt.wantY1 {
				t.Fatalf("clipped to (%d,%d)-(%d,%d), want (%d,%d)-(%d,%d)",
					x0, y0, x1, y1, tt.wantX0, tt.wantY0, tt.wantX1, tt.wantY1)
			}
		})
	}
}

func TestAddObstacleLineClipsToGrid(t *testing.T) {
	e := newEngine(16, 16)
	e.AddObstacleLine(intPoint{x: -5, y: 8}, intPoint{x: 20, y: 8})
	for x := 0; x < 16; x++ {
		if !e.material.isObstacle(x, 8) {
			t.Fatalf("cell (%d,8) not marked as obstacle", x)
		}
	}
	count := 0
	for _, blocked := range e.material.obstacle {
		if blocked {
			count++
		}
	}
	if count != 16 {
		t.Fatalf("marked %d cells, want exactly the 16 in-bounds ones", count)
	}
}
