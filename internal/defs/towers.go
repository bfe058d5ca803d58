// internal/defs/towers.go
package defs

import "image/color"

// TowerLevelStats describes the derived stats of one tower level.
// Effective values are always recomputed from here, never persisted on the entity.
type TowerLevelStats struct {
	Damage     int     `json:"damage"`
	FireRate   float64 `json:"fire_rate"` // выстрелов в секунду
	Range      float64 `json:"range"`     // радиус в клетках
	SizeFactor float64 `json:"size_factor"`
	MaxHealth  int     `json:"max_health"`
	Cost       int     `json:"cost"` // цена постройки (уровень 1) или апгрейда
}

// TowerDefinition holds all the static data for a tower element.
type TowerDefinition struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Element     Element           `json:"element"`
	SlowsTarget bool              `json:"slows_target"` // ледяные снаряды замедляют цель
	Levels      []TowerLevelStats `json:"levels"`       // индекс 0 — уровень 1
	Color       color.RGBA        `json:"-"`
}

// LevelStats returns the stats for a 1-based level, clamped to the definition.
func (d *TowerDefinition) LevelStats(level int) TowerLevelStats {
	if level < 1 {
		level = 1
	}
	if level > len(d.Levels) {
		level = len(d.Levels)
	}
	return d.Levels[level-1]
}

var defaultTowers = []TowerDefinition{
	{
		ID: "TOWER_PHYSICAL", Name: "Ballista", Element: ElementPhysical,
		Color: color.RGBA{200, 200, 200, 255},
		Levels: []TowerLevelStats{
			{Damage: 14, FireRate: 1.4, Range: 3.0, SizeFactor: 0.3, MaxHealth: 120, Cost: 50},
			{Damage: 24, FireRate: 1.6, Range: 3.3, SizeFactor: 0.34, MaxHealth: 160, Cost: 60},
			{Damage: 40, FireRate: 1.8, Range: 3.6, SizeFactor: 0.38, MaxHealth: 210, Cost: 90},
		},
	},
	{
		ID: "TOWER_FIRE", Name: "Brazier", Element: ElementFire,
		Color: color.RGBA{255, 80, 40, 255},
		Levels: []TowerLevelStats{
			{Damage: 12, FireRate: 1.2, Range: 2.8, SizeFactor: 0.3, MaxHealth: 100, Cost: 60},
			{Damage: 21, FireRate: 1.35, Range: 3.1, SizeFactor: 0.34, MaxHealth: 140, Cost: 70},
			{Damage: 35, FireRate: 1.5, Range: 3.4, SizeFactor: 0.38, MaxHealth: 190, Cost: 100},
		},
	},
	{
		ID: "TOWER_ICE", Name: "Frost Spire", Element: ElementIce, SlowsTarget: true,
		Color: color.RGBA{80, 180, 255, 255},
		Levels: []TowerLevelStats{
			{Damage: 8, FireRate: 1.0, Range: 2.8, SizeFactor: 0.3, MaxHealth: 100, Cost: 60},
			{Damage: 14, FireRate: 1.1, Range: 3.1, SizeFactor: 0.34, MaxHealth: 140, Cost: 70},
			{Damage: 24, FireRate: 1.25, Range: 3.4, SizeFactor: 0.38, MaxHealth: 190, Cost: 100},
		},
	},
	{
		ID: "TOWER_LIGHTNING", Name: "Tesla Coil", Element: ElementLightning,
		Color: color.RGBA{255, 230, 80, 255},
		Levels: []TowerLevelStats{
			{Damage: 16, FireRate: 0.9, Range: 3.2, SizeFactor: 0.3, MaxHealth: 90, Cost: 70},
			{Damage: 28, FireRate: 1.0, Range: 3.5, SizeFactor: 0.34, MaxHealth: 130, Cost: 80},
			{Damage: 46, FireRate: 1.1, Range: 3.8, SizeFactor: 0.38, MaxHealth: 170, Cost: 110},
		},
	},
	{
		ID: "TOWER_OIL", Name: "Oil Press", Element: ElementOil,
		Color: color.RGBA{120, 90, 40, 255},
		Levels: []TowerLevelStats{
			{Damage: 5, FireRate: 1.6, Range: 2.6, SizeFactor: 0.3, MaxHealth: 110, Cost: 45},
			{Damage: 9, FireRate: 1.8, Range: 2.9, SizeFactor: 0.34, MaxHealth: 150, Cost: 55},
			{Damage: 15, FireRate: 2.0, Range: 3.2, SizeFactor: 0.38, MaxHealth: 200, Cost: 85},
		},
	},
}

// elementColor возвращает цвет палитры для стихии башни.
func elementColor(e Element) color.RGBA {
	for _, def := range defaultTowers {
		if def.Element == e {
			return def.Color
		}
	}
	return color.RGBA{200, 200, 200, 255}
}
