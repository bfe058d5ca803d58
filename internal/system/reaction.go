// internal/system/reaction.go
package system

import (
	"math"

	"go-elemental-defense/internal/component"
	"go-elemental-defense/internal/config"
	"go-elemental-defense/internal/defs"
	"go-elemental-defense/internal/entity"
	"go-elemental-defense/internal/event"
	"go-elemental-defense/internal/types"
	"go-elemental-defense/internal/utils"
)

// ReactionSystem решает, что происходит, когда стихийная атака попадает
// по врагу с элементальной меткой. Если пара (метка, стихия) есть в таблице
// реакций, реакция полностью заменяет обычное нанесение урона по главной
// цели. Если пары нет — наносится обычный урон с проверкой резиста, а
// метка перезаписывается стихией атаки.
type ReactionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewReactionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ReactionSystem {
	return &ReactionSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// ReactionResult — итог одной обработанной атаки.
type ReactionResult struct {
	Fired    bool
	Kind     defs.ReactionKind
	Damage   int // урон по главной цели
	X, Y     float64
	Affected []types.EntityID // всегда содержит главную цель
}

// ProcessAttack проводит атаку по врагу через таблицу реакций и наносит урон.
// Попадания дописываются в report. Мертвые цели молча пропускаются.
func (s *ReactionSystem) ProcessAttack(targetID types.EntityID, baseDamage int, element defs.Element, crit bool, report *TickReport) ReactionResult {
	if !s.ecs.IsEnemyAlive(targetID) {
		return ReactionResult{}
	}
	pos := s.ecs.Positions[targetID]
	if pos == nil {
		return ReactionResult{}
	}

	tag := defs.StatusNone
	if status, ok := s.ecs.Statuses[targetID]; ok {
		tag = status.Tag
	}

	reaction, ok := defs.FindReaction(tag, element)
	if !ok {
		// Реакции нет: обычный урон, метка перезаписывается стихией атаки.
		applied := ApplyDamage(s.ecs, targetID, baseDamage, element)
		s.overwriteStatus(targetID, element)
		report.Hits = append(report.Hits, HitRecord{
			TargetID: targetID, Damage: applied, Crit: crit,
			Element: element, X: pos.X, Y: pos.Y,
		})
		return ReactionResult{Damage: applied, X: pos.X, Y: pos.Y, Affected: []types.EntityID{targetID}}
	}

	result := ReactionResult{
		Fired:    true,
		Kind:     reaction.ID,
		X:        pos.X,
		Y:        pos.Y,
		Affected: []types.EntityID{targetID},
	}

	switch reaction.ID {
	case defs.ReactionMelt:
		damage := int(math.Round(float64(baseDamage) * reaction.Multiplier))
		result.Damage = ApplyDamage(s.ecs, targetID, damage, element)
		delete(s.ecs.Statuses, targetID)

	case defs.ReactionFreeze:
		damage := int(math.Round(float64(baseDamage) * reaction.Multiplier))
		result.Damage = ApplyDamage(s.ecs, targetID, damage, element)
		delete(s.ecs.Statuses, targetID)
		if ApplyFreeze(s.ecs, targetID, reaction.FreezeDuration) {
			// Заморозка — тоже метка, взаимоисключающая с остальными.
			timer := s.ecs.FreezeEffects[targetID].Timer
			s.ecs.Statuses[targetID] = &component.StatusEffect{Tag: defs.StatusFrozen, Timer: timer}
		}

	case defs.ReactionExplosion:
		result.Damage = s.explode(targetID, baseDamage, element, reaction, &result)
	}

	report.Hits = append(report.Hits, HitRecord{
		TargetID: targetID, Damage: result.Damage, Crit: crit,
		Element: element, Reaction: reaction.ID, X: pos.X, Y: pos.Y,
	})
	s.eventDispatcher.Dispatch(event.Event{Type: event.ReactionTriggered, Data: result})
	return result
}

// explode наносит урон главной цели и всем живым врагам в радиусе,
// с линейным спадом урона к краю. Вторичный урон — чистый: он не вешает
// и не перезаписывает метки и от него нельзя уклониться, но масляная
// метка у задетых сгорает.
func (s *ReactionSystem) explode(primaryID types.EntityID, baseDamage int, element defs.Element, reaction *defs.ReactionDefinition, result *ReactionResult) int {
	epicenter := s.ecs.Positions[primaryID]
	fullDamage := float64(baseDamage) * reaction.Multiplier
	radius := reaction.Radius * config.CellSize

	primaryApplied := ApplyDamage(s.ecs, primaryID, int(math.Round(fullDamage)), element)
	delete(s.ecs.Statuses, primaryID)

	for _, id := range s.ecs.SortedEnemyIDs() {
		if id == primaryID || !s.ecs.IsEnemyAlive(id) {
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		dist := utils.Dist(pos.X, pos.Y, epicenter.X, epicenter.Y)
		if dist > radius {
			continue
		}
		falloff := 1.0 - reaction.MaxFalloff*(dist/radius)
		damage := int(math.Round(fullDamage * falloff))
		ApplyDamage(s.ecs, id, damage, element)
		if status, ok := s.ecs.Statuses[id]; ok && status.Tag == defs.StatusOil {
			delete(s.ecs.Statuses, id)
		}
		result.Affected = append(result.Affected, id)
	}
	return primaryApplied
}

// overwriteStatus ставит врагу метку стихии атаки. Физическая атака метки
// не оставляет и существующую не трогает.
func (s *ReactionSystem) overwriteStatus(targetID types.EntityID, element defs.Element) {
	tag := defs.StatusForElement(element)
	if tag == defs.StatusNone {
		return
	}
	if !s.ecs.IsEnemyAlive(targetID) {
		return
	}
	s.ecs.Statuses[targetID] = &component.StatusEffect{Tag: tag, Timer: config.StatusDuration}
}
