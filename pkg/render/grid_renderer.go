package render

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"go-elemental-defense/internal/system"
	"go-elemental-defense/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

const fontPath = "assets/fonts/arial.ttf"

// GridRenderer рисует поле и делегирует отрисовку сущностей RenderSystem.
// Статичная часть поля рендерится один раз в mapImage; динамика (маршрут,
// занятые клетки, сущности) рисуется поверх каждый кадр.
type GridRenderer struct {
	gameMap      *grid.Map
	cellSize     float64
	screenWidth  int
	screenHeight int
	fontFace     font.Face
	colors       *MapColors
	mapImage     *ebiten.Image
}

func NewGridRenderer(gameMap *grid.Map, screenWidth, screenHeight int, colors *MapColors) *GridRenderer {
	r := &GridRenderer{
		gameMap:      gameMap,
		cellSize:     gameMap.CellSize,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fontFace:     loadFontFace(),
		colors:       colors,
		mapImage:     ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderMapImage()
	return r
}

// loadFontFace загружает TTF-шрифт. Если файла нет, откатываемся
// на встроенный растровый шрифт, чтобы игра могла запуститься без ассетов.
func loadFontFace() font.Face {
	fontData, err := os.ReadFile(fontPath)
	if err != nil {
		log.Printf("font %s not found, falling back to basicfont: %v", fontPath, err)
		return basicfont.Face7x13
	}
	tt, err := opentype.Parse(fontData)
	if err != nil {
		log.Printf("cannot parse %s, falling back to basicfont: %v", fontPath, err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("cannot build face from %s, falling back to basicfont: %v", fontPath, err)
		return basicfont.Face7x13
	}
	return face
}

// RenderMapImage создает предрендеренное изображение задника.
func (r *GridRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)

	for col := 0; col < r.gameMap.Cols; col++ {
		for row := 0; row < r.gameMap.Rows; row++ {
			r.drawCellFill(r.mapImage, grid.Cell{Col: col, Row: row})
		}
	}

	// Сетка поверх заливки
	width := float32(float64(r.gameMap.Cols) * r.cellSize)
	height := float32(float64(r.gameMap.Rows) * r.cellSize)
	gridColor := color.RGBA{60, 60, 75, 255}
	for col := 0; col <= r.gameMap.Cols; col++ {
		x := float32(float64(col) * r.cellSize)
		vector.StrokeLine(r.mapImage, x, 0, x, height, 1, gridColor, false)
	}
	for row := 0; row <= r.gameMap.Rows; row++ {
		y := float32(float64(row) * r.cellSize)
		vector.StrokeLine(r.mapImage, 0, y, width, y, 1, gridColor, false)
	}

	// Номера чекпоинтов
	for i, cp := range r.gameMap.Checkpoints {
		x, y := cp.ToPixel(r.cellSize)
		label := fmt.Sprintf("%d", i+1)
		bounds := text.BoundString(r.fontFace, label)
		tw := bounds.Max.X - bounds.Min.X
		th := bounds.Max.Y - bounds.Min.Y
		text.Draw(r.mapImage, label, r.fontFace, int(x)-tw/2, int(y)+th/2, r.colors.CheckpointColor)
	}
}

func (r *GridRenderer) drawCellFill(target *ebiten.Image, cell grid.Cell) {
	tile := r.gameMap.Tiles[cell]

	var fillColor color.RGBA
	switch {
	case cell == r.gameMap.Entry:
		fillColor = r.colors.EntryColor
	case cell == r.gameMap.Exit:
		fillColor = r.colors.ExitColor
	case isCheckpoint(r.gameMap, cell):
		fillColor = r.colors.PathColor
	case tile.CanPlaceTower:
		fillColor = r.colors.BuildableColor
	default:
		fillColor = r.colors.BackgroundColor
	}

	x := float32(float64(cell.Col) * r.cellSize)
	y := float32(float64(cell.Row) * r.cellSize)
	vector.DrawFilledRect(target, x, y, float32(r.cellSize), float32(r.cellSize), fillColor, false)
}

func isCheckpoint(m *grid.Map, cell grid.Cell) bool {
	for _, cp := range m.Checkpoints {
		if cp == cell {
			return true
		}
	}
	return false
}

// Draw рисует кадр: задник, текущий маршрут, занятые клетки и сущности.
func (r *GridRenderer) Draw(screen *ebiten.Image, route []grid.Cell, renderSystem *system.RenderSystem, gameTime float64) {
	screen.DrawImage(r.mapImage, nil)

	// Маршрут подсвечивается линией по центрам клеток
	for i := 1; i < len(route); i++ {
		x1, y1 := route[i-1].ToPixel(r.cellSize)
		x2, y2 := route[i].ToPixel(r.cellSize)
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), r.colors.StrokeWidth, r.colors.PathColor, true)
	}

	// Занятые клетки затемняются, чтобы было видно, где уже стоят башни
	for cell, tile := range r.gameMap.Tiles {
		if !tile.Occupied {
			continue
		}
		x := float32(float64(cell.Col) * r.cellSize)
		y := float32(float64(cell.Row) * r.cellSize)
		vector.DrawFilledRect(screen, x, y, float32(r.cellSize), float32(r.cellSize), DarkenColor(r.colors.BuildableColor), false)
	}

	renderSystem.Draw(screen, gameTime)
}

// FontFace отдает шрифт рендерера для UI-элементов.
func (r *GridRenderer) FontFace() font.Face {
	return r.fontFace
}
