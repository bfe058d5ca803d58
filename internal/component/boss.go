// internal/component/boss.go
package component

// Boss — состояние навыков босса. Сами параметры навыков статичны
// и живут в определении врага (defs.BossSkillSet).
type Boss struct {
	SkillCooldown float64 // полный интервал между применениями
	SkillTimer    float64 // оставшееся время до готовности
}
