// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900

	GridCols = 20
	GridRows = 14
	CellSize = 56.0 // пиксели

	MaxDeltaTime      = 0.06
	ClickDebounceTime = 100

	BaseHealth       = 100
	DamagePerLeak    = 10 // урон базе за одного прорвавшегося врага
	StartingGold     = 150
	MaxTowerLevel    = 3
	IndicatorRadius  = 10.0
	IndicatorOffsetX = 30

	// Волны
	InitialSpawnInterval    = 1.1 // секунды между спавнами
	MinSpawnInterval        = 0.3
	SpawnIntervalDecrement  = 0.05
	EnemiesPerWave          = 6
	EnemiesIncrementPerWave = 2
	WaveHealthScale         = 1.15 // множитель здоровья за волну
	WaveAttackScale         = 1.10 // множитель атаки за волну

	// Снаряды
	ProjectileSpeed  = 320.0 // пикселей в секунду
	ProjectileRadius = 4.0
	BoundsMargin     = 48.0 // насколько снаряд может вылететь за поле до удаления

	CritChance     = 0.1
	CritMultiplier = 2.0

	// Статусы и контроль
	StatusDuration  = 4.0 // сколько живёт элементальная метка без реакции
	SlowDuration    = 2.0
	SlowFactor      = 0.5
	FreezeDuration  = 2.0
	CCDurationFloor = 0.2 // эффект короче порога считается полностью отражённым
	ResistMinDamage = 1   // урон по цели с резистом к стихии атаки

	// Ближний бой врагов
	MeleeRange = 1.5 // в клетках

	SpeedButtonOffsetX = 80
	SpeedButtonY       = 30
	SpeedButtonSize    = 18.0
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PathColor        = color.RGBA{70, 100, 120, 220}
	BuildableColor   = color.RGBA{45, 55, 70, 255}
	EntryColor       = color.RGBA{0, 255, 0, 255}
	ExitColor        = color.RGBA{255, 0, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}

	BuildStateColor    = color.RGBA{50, 205, 50, 255}
	WaveStateColor     = color.RGBA{220, 60, 60, 255}
	GameOverStateColor = color.RGBA{120, 120, 120, 255}
	EnemyColor         = color.RGBA{0, 0, 0, 255}
	BaseColor          = color.RGBA{50, 205, 50, 255}
	StrokeWidth        = 2.0

	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
)
