// internal/system/report.go
package system

import (
	"go-elemental-defense/internal/defs"
	"go-elemental-defense/internal/types"
)

// HitRecord — описание одного попадания за тик (для слоя всплывающего урона).
type HitRecord struct {
	TargetID types.EntityID
	Damage   int
	Crit     bool
	Evaded   bool
	Element  defs.Element
	Reaction defs.ReactionKind // "" — обычное попадание без реакции
	X, Y     float64
}

// DeadEnemy — враг, погибший в этом тике (для экономики и энциклопедии).
type DeadEnemy struct {
	ID      types.EntityID
	DefID   string
	Bounty  int
	Leaked  bool // дошел до базы, а не убит
	X, Y    float64
}

// DestroyedTower — башня, уничтоженная врагами в этом тике.
type DestroyedTower struct {
	ID    types.EntityID
	DefID string
}

// BossSkillEvent — применение навыка босса (для баннеров UI).
type BossSkillEvent struct {
	BossID   types.EntityID
	Skill    defs.BossSkill
	TargetID types.EntityID // башня для SILENCE, иначе 0
}

// TickReport собирает все результаты одного тика для внешнего драйвера.
// Ядро не рисует и не сохраняет — оно только возвращает факты.
type TickReport struct {
	Hits            []HitRecord
	DeadEnemies     []DeadEnemy
	DestroyedTowers []DestroyedTower
	BossSkills      []BossSkillEvent
}

// Reset очищает отчет перед новым тиком, сохраняя емкость срезов.
func (r *TickReport) Reset() {
	r.Hits = r.Hits[:0]
	r.DeadEnemies = r.DeadEnemies[:0]
	r.DestroyedTowers = r.DestroyedTowers[:0]
	r.BossSkills = r.BossSkills[:0]
}
