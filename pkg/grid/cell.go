// pkg/grid/cell.go
package grid

// Cell — целочисленная координата клетки поля.
type Cell struct {
	Col int
	Row int
}

// Neighbors возвращает четырех ортогональных соседей клетки в границах карты.
// Диагонали и заворачивание за край поля не учитываются.
func (c Cell) Neighbors(m *Map) []Cell {
	candidates := [4]Cell{
		{Col: c.Col + 1, Row: c.Row},
		{Col: c.Col - 1, Row: c.Row},
		{Col: c.Col, Row: c.Row + 1},
		{Col: c.Col, Row: c.Row - 1},
	}
	result := make([]Cell, 0, 4)
	for _, n := range candidates {
		if m.InBounds(n) {
			result = append(result, n)
		}
	}
	return result
}

// Distance — манхэттенское расстояние между клетками (эвристика для A*).
func (c Cell) Distance(other Cell) int {
	dc := c.Col - other.Col
	dr := c.Row - other.Row
	if dc < 0 {
		dc = -dc
	}
	if dr < 0 {
		dr = -dr
	}
	return dc + dr
}

// ToPixel возвращает центр клетки в пикселях при заданном размере клетки.
func (c Cell) ToPixel(cellSize float64) (float64, float64) {
	return (float64(c.Col) + 0.5) * cellSize, (float64(c.Row) + 0.5) * cellSize
}

// PixelToCell возвращает клетку, содержащую пиксельную координату.
func PixelToCell(x, y, cellSize float64) Cell {
	return Cell{Col: int(x / cellSize), Row: int(y / cellSize)}
}
