// internal/utils/math.go
package utils

import "math"

// Dist возвращает евклидово расстояние между двумя точками.
func Dist(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistSq возвращает квадрат расстояния (для сравнений без корня).
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Normalize возвращает единичный вектор направления от (x1,y1) к (x2,y2).
// Вырожденный случай нулевой длины возвращает (0,0,false):
// движение в этом тике пропускается, NaN не распространяется.
func Normalize(x1, y1, x2, y2 float64) (nx, ny float64, ok bool) {
	dx := x2 - x1
	dy := y2 - y1
	d := math.Sqrt(dx*dx + dy*dy)
	if d < 1e-9 {
		return 0, 0, false
	}
	return dx / d, dy / d, true
}

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
