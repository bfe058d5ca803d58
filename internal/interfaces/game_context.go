// internal/interfaces/game_context.go
package interfaces

import (
	"go-elemental-defense/internal/defs"
	"go-elemental-defense/pkg/grid"
)

// PathProvider выдает маршруты и позицию базы. Ядро не владеет картой,
// оно лишь запрашивает готовые точки маршрута у внешнего поставщика.
type PathProvider interface {
	GetRoute(routeIndex int) []grid.Cell
	GetBasePosition() (float64, float64)
}

// Occupancy — контракт занятости клеток для постройки башен.
type Occupancy interface {
	CanPlace(c grid.Cell) bool
	Occupy(c grid.Cell) bool
	Release(c grid.Cell)
}

// RandSource — единственный источник случайности ядра.
// Сидируемый, чтобы тики были воспроизводимыми в тестах.
type RandSource interface {
	Float64() float64
	Intn(n int) int
	Chance(p float64) bool
	ChooseWeighted(entries []defs.SpawnEntry) string
}
