// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в ECS.
// Нулевое значение зарезервировано как "нет сущности".
type EntityID uint64
