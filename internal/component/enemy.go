package component

import (
	"go-elemental-defense/internal/defs"
	"go-elemental-defense/internal/types"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID          string // ID из enemies.json
	Archetype      defs.Archetype
	Behavior       defs.Behavior
	Priority       int            // приоритет при выборе цели башней
	AttackDamage   int            // урон по башне (с учетом масштаба волны)
	AttackCooldown float64        // секунды между ударами ближнего боя
	AttackTimer    float64        // оставшееся время до следующего удара
	EvasionChance  float64        // шанс уклонения от прямого попадания (призраки)
	CCImmunity     float64        // доля сокращения длительности контроля
	Resistance     defs.Element   // стихия, к которой есть резист ("" — нет)
	Bounty         int            // золото за убийство
	TowerTargetID  types.EntityID // цель разрушителя; проверяется на живость каждый тик
	ReachedGoal    bool           // дошел ли враг до базы
	SelfDestructed bool           // разрушитель подорвался сам (без награды)
}

// Resists возвращает true, если у врага есть резист к стихии атаки.
// К физическому урону резист не применяется никогда.
func (e *Enemy) Resists(attack defs.Element) bool {
	return attack != defs.ElementPhysical && e.Resistance == attack
}
