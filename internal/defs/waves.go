// internal/defs/waves.go
package defs

// SpawnEntry is one weighted option of a wave composition table.
type SpawnEntry struct {
	EnemyID string `json:"enemy_id"`
	Weight  int    `json:"weight"`
}

// WavePattern describes the composition of one wave band.
// Waves past the last pattern reuse the final band.
type WavePattern struct {
	FromWave         int          `json:"from_wave"`
	Entries          []SpawnEntry `json:"entries"`
	BossEvery        int          `json:"boss_every"`        // каждая N-я волна получает босса (0 — никогда)
	ResistanceChance float64      `json:"resistance_chance"` // шанс случайного резиста у врага
}

var defaultWaves = []WavePattern{
	{
		FromWave: 1,
		Entries: []SpawnEntry{
			{EnemyID: "ENEMY_NORMAL", Weight: 10},
		},
		ResistanceChance: 0,
	},
	{
		FromWave: 3,
		Entries: []SpawnEntry{
			{EnemyID: "ENEMY_NORMAL", Weight: 7},
			{EnemyID: "ENEMY_TANK", Weight: 2},
			{EnemyID: "ENEMY_BREAKER", Weight: 1},
		},
		ResistanceChance: 0.1,
	},
	{
		FromWave: 6,
		Entries: []SpawnEntry{
			{EnemyID: "ENEMY_NORMAL", Weight: 5},
			{EnemyID: "ENEMY_TANK", Weight: 3},
			{EnemyID: "ENEMY_BREAKER", Weight: 2},
			{EnemyID: "ENEMY_GHOST", Weight: 2},
		},
		BossEvery:        5,
		ResistanceChance: 0.25,
	},
}

// PatternForWave returns the composition band covering the given wave number.
func PatternForWave(wave int) WavePattern {
	best := WaveLibrary[0]
	for _, p := range WaveLibrary {
		if p.FromWave <= wave && p.FromWave >= best.FromWave {
			best = p
		}
	}
	return best
}
