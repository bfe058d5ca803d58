// internal/component/wave.go
package component

import "go-elemental-defense/pkg/grid"

// Wave — состояние текущей волны.
type Wave struct {
	Number         int
	EnemiesToSpawn int
	SpawnTimer     float64
	SpawnInterval  float64
	CurrentRoute   []grid.Cell
	BossPending    bool // босс спавнится последним в волне
}
