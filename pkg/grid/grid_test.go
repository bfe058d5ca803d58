package grid

import "testing"

func containsCell(route []Cell, c Cell) bool {
	for _, cell := range route {
		if cell == c {
			return true
		}
	}
	return false
}

func adjacentSteps(route []Cell) bool {
	for i := 1; i < len(route); i++ {
		if route[i-1].Distance(route[i]) != 1 {
			return false
		}
	}
	return true
}

func TestBuildRouteVisitsCheckpointsInOrder(t *testing.T) {
	m := NewMap(20, 14, 56)
	route := m.BuildRoute()
	if route == nil {
		t.Fatal("no route on an empty map")
	}
	if route[0] != m.Entry {
		t.Errorf("route starts at %v, want entry %v", route[0], m.Entry)
	}
	if route[len(route)-1] != m.Exit {
		t.Errorf("route ends at %v, want exit %v", route[len(route)-1], m.Exit)
	}
	if !adjacentSteps(route) {
		t.Error("route has non-adjacent steps")
	}

	lastIndex := -1
	for _, cp := range m.Checkpoints {
		found := -1
		for i, cell := range route {
			if cell == cp {
				found = i
				break
			}
		}
		if found == -1 {
			t.Fatalf("checkpoint %v missing from the route", cp)
		}
		if found < lastIndex {
			t.Errorf("checkpoint %v visited out of order", cp)
		}
		lastIndex = found
	}
}

func TestOccupyReroutesAroundTower(t *testing.T) {
	m := NewMap(20, 14, 56)
	route := m.BuildRoute()

	// Block a cell the current route passes through.
	var blocked Cell
	for _, cell := range route[1 : len(route)-1] {
		if m.CanPlace(cell) {
			blocked = cell
			break
		}
	}
	if !m.Occupy(blocked) {
		t.Fatalf("could not occupy %v", blocked)
	}

	rerouted := m.BuildRoute()
	if rerouted == nil {
		t.Fatal("one tower must not seal the map")
	}
	if containsCell(rerouted, blocked) {
		t.Errorf("rerouted path still passes through occupied %v", blocked)
	}
}

func TestRouteBlockedByDetectsSeal(t *testing.T) {
	m := NewMap(20, 14, 56)

	gap := Cell{Col: 3, Row: 7}
	for row := 0; row < m.Rows; row++ {
		cell := Cell{Col: 3, Row: row}
		if cell == gap {
			continue
		}
		m.Occupy(cell)
	}

	if !m.RouteBlockedBy(gap) {
		t.Error("closing the only gap should be reported as blocking")
	}
	if tile := m.Tiles[gap]; tile.Occupied {
		t.Error("probe must not leave the cell occupied")
	}
	if m.RouteBlockedBy(Cell{Col: 10, Row: 1}) {
		t.Error("a harmless cell reported as blocking")
	}
}

func TestCanPlaceRules(t *testing.T) {
	m := NewMap(20, 14, 56)

	if m.CanPlace(m.Entry) || m.CanPlace(m.Exit) {
		t.Error("entry and exit are not buildable")
	}
	for _, cp := range m.Checkpoints {
		if m.CanPlace(cp) {
			t.Errorf("checkpoint %v is not buildable", cp)
		}
	}
	if m.CanPlace(Cell{Col: -1, Row: 0}) {
		t.Error("out of bounds cell is not buildable")
	}

	cell := Cell{Col: 5, Row: 5}
	m.Occupy(cell)
	if m.CanPlace(cell) {
		t.Error("occupied cell is not buildable")
	}
	m.Release(cell)
	if !m.CanPlace(cell) {
		t.Error("released cell should be buildable again")
	}
}

func TestPixelRoundTrip(t *testing.T) {
	cell := Cell{Col: 7, Row: 3}
	x, y := cell.ToPixel(56)
	if got := PixelToCell(x, y, 56); got != cell {
		t.Errorf("round trip gave %v, want %v", got, cell)
	}
	// The center of cell (0,0) is half a cell in.
	x, y = Cell{}.ToPixel(56)
	if x != 28 || y != 28 {
		t.Errorf("center of the origin cell = (%v, %v), want (28, 28)", x, y)
	}
}

func TestAStarShortestPathOnOpenField(t *testing.T) {
	m := NewMap(10, 10, 56)
	start := Cell{Col: 1, Row: 1}
	goal := Cell{Col: 6, Row: 4}

	path := AStar(start, goal, m)
	if path == nil {
		t.Fatal("no path on an open field")
	}
	// Manhattan distance plus the start cell.
	if want := start.Distance(goal) + 1; len(path) != want {
		t.Errorf("path length = %d, want %d", len(path), want)
	}
}

func TestAStarRespectsWalls(t *testing.T) {
	m := NewMap(10, 10, 56)
	for row := 0; row < m.Rows; row++ {
		m.Occupy(Cell{Col: 4, Row: row})
	}

	if path := AStar(Cell{Col: 1, Row: 5}, Cell{Col: 8, Row: 5}, m); path != nil {
		t.Error("path found through a solid wall")
	}
}
