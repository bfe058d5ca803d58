// pkg/grid/map.go
package grid

type Tile struct {
	Passable      bool // могут ли враги идти через клетку
	CanPlaceTower bool
	Occupied      bool // стоит ли на клетке башня
}

// Map — прямоугольное поле из клеток с входом, выходом и чекпоинтами.
// Враги по умолчанию идут Entry -> Checkpoints -> Exit; клетка выхода и есть база.
type Map struct {
	Cols        int
	Rows        int
	CellSize    float64
	Tiles       map[Cell]Tile
	Entry       Cell
	Exit        Cell
	Checkpoints []Cell
}

// NewMap создает поле, полностью проходимое и застраиваемое,
// с входом слева, выходом справа и двумя чекпоинтами посередине.
func NewMap(cols, rows int, cellSize float64) *Map {
	tiles := make(map[Cell]Tile, cols*rows)
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			tiles[Cell{Col: col, Row: row}] = Tile{Passable: true, CanPlaceTower: true}
		}
	}

	entry := Cell{Col: 0, Row: rows / 2}
	exit := Cell{Col: cols - 1, Row: rows / 2}
	tiles[entry] = Tile{Passable: true, CanPlaceTower: false}
	tiles[exit] = Tile{Passable: true, CanPlaceTower: false}

	m := &Map{
		Cols:     cols,
		Rows:     rows,
		CellSize: cellSize,
		Tiles:    tiles,
		Entry:    entry,
		Exit:     exit,
		Checkpoints: []Cell{
			{Col: cols / 3, Row: rows / 4},
			{Col: 2 * cols / 3, Row: 3 * rows / 4},
		},
	}
	for _, cp := range m.Checkpoints {
		m.Tiles[cp] = Tile{Passable: true, CanPlaceTower: false}
	}
	return m
}

// InBounds проверяет, что клетка лежит внутри поля.
func (m *Map) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < m.Cols && c.Row >= 0 && c.Row < m.Rows
}

// IsPassable проверяет, могут ли враги проходить через клетку.
func (m *Map) IsPassable(c Cell) bool {
	tile, ok := m.Tiles[c]
	return ok && tile.Passable && !tile.Occupied
}

// CanPlace проверяет, свободна ли клетка под постройку башни.
func (m *Map) CanPlace(c Cell) bool {
	tile, ok := m.Tiles[c]
	return ok && tile.CanPlaceTower && !tile.Occupied
}

// Occupy помечает клетку занятой башней. Возвращает false, если нельзя.
func (m *Map) Occupy(c Cell) bool {
	if !m.CanPlace(c) {
		return false
	}
	tile := m.Tiles[c]
	tile.Occupied = true
	m.Tiles[c] = tile
	return true
}

// Release освобождает клетку после сноса или гибели башни.
func (m *Map) Release(c Cell) {
	if tile, ok := m.Tiles[c]; ok {
		tile.Occupied = false
		m.Tiles[c] = tile
	}
}

// BasePosition возвращает пиксельный центр базы (клетки выхода).
func (m *Map) BasePosition() (float64, float64) {
	return m.Exit.ToPixel(m.CellSize)
}

// BuildRoute строит полный маршрут Entry -> Checkpoints -> Exit.
// Возвращает nil, если хоть один сегмент непроходим.
func (m *Map) BuildRoute() []Cell {
	route := []Cell{}
	current := m.Entry
	for _, cp := range m.Checkpoints {
		segment := AStar(current, cp, m)
		if segment == nil {
			return nil
		}
		if len(route) == 0 {
			route = segment
		} else {
			route = append(route, segment[1:]...)
		}
		current = cp
	}
	segment := AStar(current, m.Exit, m)
	if segment == nil {
		return nil
	}
	if len(route) == 0 {
		return segment
	}
	return append(route, segment[1:]...)
}

// RouteBlockedBy проверяет, перекроет ли застройка клетки маршрут врагов.
// Клетка временно помечается занятой, маршрут пересчитывается, пометка снимается.
func (m *Map) RouteBlockedBy(c Cell) bool {
	original, ok := m.Tiles[c]
	if !ok {
		return true
	}
	m.Tiles[c] = Tile{Passable: original.Passable, CanPlaceTower: original.CanPlaceTower, Occupied: true}
	defer func() {
		m.Tiles[c] = original
	}()
	return m.BuildRoute() == nil
}
