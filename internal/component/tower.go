// component/tower.go
package component

import (
	"go-elemental-defense/internal/defs"
	"go-elemental-defense/internal/types"
	"go-elemental-defense/pkg/grid"
)

// Tower — башня, привязанная к клетке поля.
type Tower struct {
	DefID   string       // ID из towers.json
	Element defs.Element
	Level   int       // 1..3, все боевые характеристики выводятся из элемента+уровня
	Cell    grid.Cell // клетка, на которой стоит башня

	// Слабая ссылка на текущую цель. Цель могла умереть или выйти из радиуса,
	// поэтому перед любым использованием она перепроверяется.
	TargetID types.EntityID

	SilenceTimer float64 // пока > 0, башня не стреляет (навык босса)

	// Кэш множителя синергий. Пересчитывается только при изменении
	// расстановки башен, никогда не сохраняется как "эффективный урон".
	SynergyMultiplier float64
	ActiveSynergies   []string // ID активных синергий (для UI)
}

// Silenced возвращает true, пока башня не может стрелять.
func (t *Tower) Silenced() bool {
	return t.SilenceTimer > 0
}
