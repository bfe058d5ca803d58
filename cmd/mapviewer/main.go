// cmd/mapviewer/main.go
//
// Отладочный просмотрщик поля на Raylib: сетка, маршрут, чекпоинты.
// Левый клик занимает/освобождает клетку и показывает, как перестраивается
// маршрут врагов. Правый клик сбрасывает все занятые клетки.
package main

import (
	"fmt"

	"go-elemental-defense/internal/config"
	"go-elemental-defense/pkg/grid"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	m := grid.NewMap(config.GridCols, config.GridRows, config.CellSize)
	cell := int32(config.CellSize)

	width := int32(m.Cols) * cell
	height := int32(m.Rows)*cell + 40

	rl.InitWindow(width, height, "map viewer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	route := m.BuildRoute()

	for !rl.WindowShouldClose() {
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			pos := rl.GetMousePosition()
			c := grid.PixelToCell(float64(pos.X), float64(pos.Y), config.CellSize)
			if m.InBounds(c) {
				if m.Tiles[c].Occupied {
					m.Release(c)
				} else if m.CanPlace(c) && !m.RouteBlockedBy(c) {
					m.Occupy(c)
				}
				route = m.BuildRoute()
			}
		}
		if rl.IsMouseButtonPressed(rl.MouseRightButton) {
			for c, tile := range m.Tiles {
				if tile.Occupied {
					m.Release(c)
				}
			}
			route = m.BuildRoute()
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

		for col := 0; col < m.Cols; col++ {
			for row := 0; row < m.Rows; row++ {
				c := grid.Cell{Col: col, Row: row}
				tile := m.Tiles[c]

				fill := rl.NewColor(45, 55, 70, 255)
				switch {
				case c == m.Entry:
					fill = rl.Green
				case c == m.Exit:
					fill = rl.Red
				case tile.Occupied:
					fill = rl.NewColor(120, 90, 50, 255)
				case !tile.CanPlaceTower:
					fill = rl.NewColor(70, 100, 120, 255)
				}
				rl.DrawRectangle(int32(col)*cell, int32(row)*cell, cell, cell, fill)
				rl.DrawRectangleLines(int32(col)*cell, int32(row)*cell, cell, cell, rl.NewColor(60, 60, 75, 255))
			}
		}

		for i, cp := range m.Checkpoints {
			x, y := cp.ToPixel(config.CellSize)
			rl.DrawText(fmt.Sprintf("%d", i+1), int32(x)-4, int32(y)-8, 16, rl.Yellow)
		}

		for i := 1; i < len(route); i++ {
			x1, y1 := route[i-1].ToPixel(config.CellSize)
			x2, y2 := route[i].ToPixel(config.CellSize)
			rl.DrawLineEx(rl.NewVector2(float32(x1), float32(y1)), rl.NewVector2(float32(x2), float32(y2)), 3, rl.SkyBlue)
		}

		status := fmt.Sprintf("route: %d cells | LMB toggle cell, RMB clear", len(route))
		if len(route) == 0 {
			status = "route blocked!"
		}
		rl.DrawText(status, 8, int32(m.Rows)*cell+10, 18, rl.RayWhite)

		rl.EndDrawing()
	}
}
