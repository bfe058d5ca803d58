// internal/event/types.go
package event

const (
	WaveEnded         EventType = "WaveEnded"         // Волна закончилась
	TowerPlaced       EventType = "TowerPlaced"       // Башня построена
	TowerRemoved      EventType = "TowerRemoved"      // Башня снесена игроком
	TowerDestroyed    EventType = "TowerDestroyed"    // Башня уничтожена врагами
	EnemyDestroyed    EventType = "EnemyDestroyed"    // Враг уничтожен
	EnemyReachedBase  EventType = "EnemyReachedBase"  // Враг дошел до базы
	BossSkillUsed     EventType = "BossSkillUsed"     // Босс применил навык
	ReactionTriggered EventType = "ReactionTriggered" // Сработала элементальная реакция
)
