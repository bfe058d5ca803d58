// internal/config/session.go
package config

import (
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Session — настройки запуска, не являющиеся игровым балансом.
// Баланс лежит в assets/defs/*.json, сессия — в session.yaml.
type Session struct {
	Seed          int64  `yaml:"seed"`            // 0 — случайный сид
	StartFromGame bool   `yaml:"start_from_game"` // пропустить меню
	PprofAddr     string `yaml:"pprof_addr"`      // пустая строка — pprof выключен
	DefsDir       string `yaml:"defs_dir"`        // каталог с JSON-определениями
}

// DefaultSession возвращает настройки по умолчанию.
func DefaultSession() Session {
	return Session{
		Seed:          0,
		StartFromGame: true,
		PprofAddr:     "",
		DefsDir:       "",
	}
}

// LoadSession читает session.yaml. Отсутствие файла не ошибка:
// возвращаются настройки по умолчанию.
func LoadSession(path string) Session {
	session := DefaultSession()
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debug("session config not found, using defaults", "path", path)
		return session
	}
	if err := yaml.Unmarshal(data, &session); err != nil {
		log.Warn("cannot parse session config, using defaults", "path", path, "err", err)
		return DefaultSession()
	}
	log.Info("session config loaded", "path", path, "seed", session.Seed)
	return session
}
