// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// TowerLibrary is a map to hold all tower definitions, keyed by their ID.
var TowerLibrary map[string]TowerDefinition

// TowerByElement indexes the tower definitions by element.
var TowerByElement map[Element]*TowerDefinition

// EnemyLibrary is a map to hold all enemy definitions, keyed by their ID.
var EnemyLibrary map[string]EnemyDefinition

// SpellLibrary is a map to hold all spell definitions, keyed by their ID.
var SpellLibrary map[string]SpellDefinition

// WaveLibrary holds the wave composition bands, ordered by FromWave.
var WaveLibrary []WavePattern

// SynergyLibrary holds all synergy definitions, keyed by their ID.
var SynergyLibrary map[string]SynergyDefinition

func init() {
	UseDefaults()
}

// UseDefaults (re)populates every library from the built-in balance tables.
// Tests rely on this to run without data files on disk.
func UseDefaults() {
	setTowers(defaultTowers)
	setEnemies(defaultEnemies)
	setSpells(defaultSpells)
	WaveLibrary = append([]WavePattern(nil), defaultWaves...)
	setSynergies(defaultSynergies)
	rebuildReactionTable(append([]ReactionDefinition(nil), defaultReactions...))
}

func setTowers(list []TowerDefinition) {
	TowerLibrary = make(map[string]TowerDefinition, len(list))
	TowerByElement = make(map[Element]*TowerDefinition, len(list))
	for _, def := range list {
		// Цвет не сериализуется: у башен из JSON берем палитру по стихии.
		if def.Color == (color.RGBA{}) {
			def.Color = elementColor(def.Element)
		}
		TowerLibrary[def.ID] = def
	}
	for id := range TowerLibrary {
		def := TowerLibrary[id]
		TowerByElement[def.Element] = &def
	}
}

func setEnemies(list []EnemyDefinition) {
	EnemyLibrary = make(map[string]EnemyDefinition, len(list))
	for _, def := range list {
		EnemyLibrary[def.ID] = def
	}
}

func setSpells(list []SpellDefinition) {
	SpellLibrary = make(map[string]SpellDefinition, len(list))
	for _, def := range list {
		SpellLibrary[def.ID] = def
	}
}

func setSynergies(list []SynergyDefinition) {
	SynergyLibrary = make(map[string]SynergyDefinition, len(list))
	for _, def := range list {
		SynergyLibrary[def.ID] = def
	}
	rebuildSynergyIndex(list)
}

// LoadTowerDefinitions reads the tower configuration file and populates the TowerLibrary.
func LoadTowerDefinitions(path string) error {
	var list []TowerDefinition
	if err := loadJSON(path, &list); err != nil {
		return fmt.Errorf("tower definitions: %w", err)
	}
	setTowers(list)
	log.Info("loaded tower definitions", "count", len(TowerLibrary), "path", path)
	return nil
}

// LoadEnemyDefinitions reads the enemy configuration file and populates the EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	var list []EnemyDefinition
	if err := loadJSON(path, &list); err != nil {
		return fmt.Errorf("enemy definitions: %w", err)
	}
	setEnemies(list)
	log.Info("loaded enemy definitions", "count", len(EnemyLibrary), "path", path)
	return nil
}

// LoadReactionDefinitions reads the reaction table and rebuilds the lookup index.
func LoadReactionDefinitions(path string) error {
	var list []ReactionDefinition
	if err := loadJSON(path, &list); err != nil {
		return fmt.Errorf("reaction definitions: %w", err)
	}
	rebuildReactionTable(list)
	log.Info("loaded reaction definitions", "count", len(ReactionTable), "path", path)
	return nil
}

// LoadSynergyDefinitions reads the synergy table and rebuilds the source index.
func LoadSynergyDefinitions(path string) error {
	var list []SynergyDefinition
	if err := loadJSON(path, &list); err != nil {
		return fmt.Errorf("synergy definitions: %w", err)
	}
	setSynergies(list)
	log.Info("loaded synergy definitions", "count", len(SynergyLibrary), "path", path)
	return nil
}

// LoadWavePatterns reads the wave composition bands.
func LoadWavePatterns(path string) error {
	var list []WavePattern
	if err := loadJSON(path, &list); err != nil {
		return fmt.Errorf("wave patterns: %w", err)
	}
	WaveLibrary = list
	log.Info("loaded wave patterns", "count", len(WaveLibrary), "path", path)
	return nil
}

// LoadSpellDefinitions reads the spell configuration file.
func LoadSpellDefinitions(path string) error {
	var list []SpellDefinition
	if err := loadJSON(path, &list); err != nil {
		return fmt.Errorf("spell definitions: %w", err)
	}
	setSpells(list)
	log.Info("loaded spell definitions", "count", len(SpellLibrary), "path", path)
	return nil
}

func loadJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

// LoadDirectory loads every known definition file present in dir.
// Missing files keep their built-in defaults.
func LoadDirectory(dir string) error {
	loaders := []struct {
		file string
		load func(string) error
	}{
		{"towers.json", LoadTowerDefinitions},
		{"enemies.json", LoadEnemyDefinitions},
		{"reactions.json", LoadReactionDefinitions},
		{"synergies.json", LoadSynergyDefinitions},
		{"waves.json", LoadWavePatterns},
		{"spells.json", LoadSpellDefinitions},
	}
	for _, l := range loaders {
		path := filepath.Join(dir, l.file)
		if _, err := os.Stat(path); err != nil {
			log.Debug("definition file not found, keeping defaults", "path", path)
			continue
		}
		if err := l.load(path); err != nil {
			return err
		}
	}
	return nil
}
