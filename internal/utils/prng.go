// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-elemental-defense/internal/defs"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
// Все броски симуляции (крит, уклонение, навык босса, состав волны)
// обязаны идти через этот сервис, иначе повторяемость тиков ломается.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Chance возвращает true с вероятностью p (p вне [0,1] обрезается).
func (s *PRNGService) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.rng.Float64() < p
}

// ChooseWeighted выполняет взвешенный случайный выбор из таблицы спавна.
// Он суммирует все веса, выбирает случайное число в этом диапазоне,
// а затем находит элемент, которому соответствует это число.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}

	if totalWeight <= 0 {
		return entries[0].EnemyID
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.EnemyID
		}
		upto += entry.Weight
	}

	return entries[len(entries)-1].EnemyID
}

// DistinctInts выбирает k различных чисел из диапазона [0, n).
// Каждый слот получает не больше 4*k повторных бросков; если уникальное
// значение так и не выпало, берется наименьший неиспользованный индекс.
// Бесконечный цикл при коллизиях невозможен.
func (s *PRNGService) DistinctInts(k, n int) []int {
	if k > n {
		k = n
	}
	result := make([]int, 0, k)
	used := make(map[int]bool, k)

	for len(result) < k {
		found := false
		for attempt := 0; attempt < 4*k; attempt++ {
			v := s.Intn(n)
			if !used[v] {
				used[v] = true
				result = append(result, v)
				found = true
				break
			}
		}
		if !found {
			for v := 0; v < n; v++ {
				if !used[v] {
					used[v] = true
					result = append(result, v)
					break
				}
			}
		}
	}
	return result
}
