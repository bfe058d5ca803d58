// internal/system/synergy.go
package system

import (
	"go-elemental-defense/internal/defs"
	"go-elemental-defense/internal/entity"
	"go-elemental-defense/internal/types"
	"go-elemental-defense/pkg/grid"
)

// SynergySystem пересчитывает множители синергий башен по соседству на поле.
// Синергия направленная: (огонь рядом со льдом) не дает ничего ледяной
// башне, пока нет отдельной записи (лед рядом с огнем).
// Пересчет запускается только при изменении расстановки (постройка, снос,
// апгрейд, гибель башни), не каждый тик.
type SynergySystem struct {
	ecs *entity.ECS
}

func NewSynergySystem(ecs *entity.ECS) *SynergySystem {
	return &SynergySystem{ecs: ecs}
}

// Recompute обновляет кэш синергий каждой живой башни.
// Идемпотентен: одинаковая расстановка дает одинаковые множители.
func (s *SynergySystem) Recompute() {
	index := s.buildIndex()
	for id, tower := range s.ecs.Towers {
		if !s.ecs.IsTowerAlive(id) {
			continue
		}
		multiplier, active := s.evaluate(tower.Element, tower.Cell, index)
		tower.SynergyMultiplier = multiplier
		tower.ActiveSynergies = active
	}
}

// PreviewResult — результат предпросмотра гипотетической постройки.
type PreviewResult struct {
	Synergies  []string                    // синергии, которые получит новая башня
	Multiplier float64                     // ее итоговый множитель
	Gains      map[types.EntityID][]string // синергии, которые получат соседи
	Losses     map[types.EntityID][]string // синергии, которые соседи потеряют
}

// Preview отвечает «что будет, если поставить башню стихии element на cell»,
// не трогая реального состояния: строится временный индекс с гипотетической
// башней, и для каждого соседа его список сравнивается с текущим кэшем.
func (s *SynergySystem) Preview(element defs.Element, cell grid.Cell) PreviewResult {
	index := s.buildIndex()
	index[cell] = hypotheticalEntry{element: element}

	result := PreviewResult{
		Gains:  make(map[types.EntityID][]string),
		Losses: make(map[types.EntityID][]string),
	}
	result.Multiplier, result.Synergies = s.evaluate(element, cell, index)

	for _, neighbor := range orthogonalNeighbors(cell) {
		entry, ok := index[neighbor]
		if !ok || entry.id == 0 {
			continue
		}
		tower := s.ecs.Towers[entry.id]
		_, after := s.evaluate(tower.Element, tower.Cell, index)
		gained := diffSynergies(after, tower.ActiveSynergies)
		lost := diffSynergies(tower.ActiveSynergies, after)
		if len(gained) > 0 {
			result.Gains[entry.id] = gained
		}
		if len(lost) > 0 {
			result.Losses[entry.id] = lost
		}
	}
	return result
}

type hypotheticalEntry struct {
	id      types.EntityID // 0 — гипотетическая башня
	element defs.Element
}

func (s *SynergySystem) buildIndex() map[grid.Cell]hypotheticalEntry {
	index := make(map[grid.Cell]hypotheticalEntry, len(s.ecs.Towers))
	for id, tower := range s.ecs.Towers {
		if !s.ecs.IsTowerAlive(id) {
			continue
		}
		index[tower.Cell] = hypotheticalEntry{id: id, element: tower.Element}
	}
	return index
}

// evaluate возвращает множитель и список активных синергий башни стихии
// element на клетке cell при данном индексе расстановки.
func (s *SynergySystem) evaluate(element defs.Element, cell grid.Cell, index map[grid.Cell]hypotheticalEntry) (float64, []string) {
	multiplier := 1.0
	var active []string
	for _, syn := range defs.SynergiesFor(element) {
		for _, neighbor := range orthogonalNeighbors(cell) {
			if entry, ok := index[neighbor]; ok && entry.element == syn.Requires {
				multiplier *= syn.Multiplier
				active = append(active, syn.ID)
				break // одна синергия активируется не больше одного раза
			}
		}
	}
	return multiplier, active
}

// orthogonalNeighbors возвращает четыре соседние клетки без проверки границ:
// за краем поля башен просто нет, индекс их не найдет.
func orthogonalNeighbors(c grid.Cell) [4]grid.Cell {
	return [4]grid.Cell{
		{Col: c.Col + 1, Row: c.Row},
		{Col: c.Col - 1, Row: c.Row},
		{Col: c.Col, Row: c.Row + 1},
		{Col: c.Col, Row: c.Row - 1},
	}
}

func diffSynergies(a, b []string) []string {
	var result []string
	for _, x := range a {
		found := false
		for _, y := range b {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			result = append(result, x)
		}
	}
	return result
}
