// component/movement.go
package component

import "go-elemental-defense/pkg/grid"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости
type Velocity struct {
	Speed     float64 // текущая скорость, пикселей в секунду
	BaseSpeed float64
}

// PathFollow — компонент следования по маршруту из клеток
type PathFollow struct {
	Cells        []grid.Cell
	CurrentIndex int
}
