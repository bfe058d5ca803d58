// internal/component/projectile.go
package component

import (
	"image/color"

	"go-elemental-defense/internal/defs"
	"go-elemental-defense/internal/types"
)

// Projectile представляет летящий снаряд.
// Стихия копируется с выстрелившей башни, не с цели.
type Projectile struct {
	TargetID types.EntityID
	Speed    float64
	Damage   int
	Element  defs.Element
	Color    color.RGBA

	// Последний рассчитанный вектор скорости. Пока цель жива, он каждый тик
	// перенаводится на нее; после смерти цели сохраняется — снаряд летит
	// по прямой и промахивается, а не исчезает.
	VelX, VelY float64

	SlowsTarget  bool    // Замедляет ли этот снаряд цель
	SlowDuration float64 // На какое время замедляет
	SlowFactor   float64 // Насколько замедляет (например, 0.5)
}
