// internal/component/status_effect.go
package component

import "go-elemental-defense/internal/defs"

// StatusEffect — единственная элементальная метка врага.
// Метки взаимоисключающие: новая атака либо запускает реакцию,
// либо перезаписывает метку (последняя стихия побеждает).
type StatusEffect struct {
	Tag   defs.StatusTag
	Timer float64 // Оставшееся время жизни метки в секундах.
}

// SlowEffect indicates that an entity is slowed.
type SlowEffect struct {
	Timer      float64 // How much time is left for the effect.
	SlowFactor float64 // Multiplier for speed (e.g., 0.5 for 50% slow).
}

// FreezeEffect полностью останавливает движение врага, пока активен.
type FreezeEffect struct {
	Timer float64
}
