package gamedata

import (
	"errors"

	"github.com/samdwyer/marshcrawl/internal/dice"
)

// MonsterRegistry holds loaded monster definitions and provides spawning utilities.
type MonsterRegistry struct {
	monsters    []MonsterDef
	totalWeight int
}

// NewMonsterRegistry creates a registry from loaded monster definitions.
func NewMonsterRegistry(monsters []MonsterDef) *MonsterRegistry {
	totalWeight := 0
	for _, m := range monsters {
		totalWeight += m.SpawnWeight
	}
	return &MonsterRegistry{
		monsters:    monsters,
		totalWeight: totalWeight,
	}
}

// LoadMonsterRegistry loads and creates a registry from the embedded monsters.json.
func LoadMonsterRegistry() (*MonsterRegistry, error) {
	monsters, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	if len(monsters) == 0 {
		return nil, errors.New("no monsters loaded from monsters.json")
	}
	return NewMonsterRegistry(monsters), nil
}

// SpawnRandom selects a random monster definition using weighted probability.
// Monsters with higher spawnWeight are more likely to be selected.
func (r *MonsterRegistry) SpawnRandom(rng dice.Roller) *MonsterDef {
	if r.totalWeight <= 0 || len(r.monsters) == 0 {
		return nil
	}

	// Pick a random value in the total weight range
	roll := rng.Range(0, r.totalWeight)

	// Find which monster this roll corresponds to
	cumulative := 0
	for i := range r.monsters {
		cumulative += r.monsters[i].SpawnWeight
		if roll < cumulative {
			return &r.monsters[i]
		}
	}

	// Fallback (shouldn't happen)
	return &r.monsters[0]
}

// GetByID returns the monster definition with the given ID, or nil if not found.
func (r *MonsterRegistry) GetByID(id string) *MonsterDef {
	for i := range r.monsters {
		if r.monsters[i].ID == id {
			return &r.monsters[i]
		}
	}
	return nil
}

// Count returns the number of monster kinds in the registry.
func (r *MonsterRegistry) Count() int {
	return len(r.monsters)
}

// Data bundles everything a level needs from the embedded files.
type Data struct {
	Monsters *MonsterRegistry
	Player   *PlayerDef
	Terrain  *Terrain
}

// LoadAll loads every embedded definition file.
func LoadAll() (*Data, error) {
	monsters, err := LoadMonsterRegistry()
	if err != nil {
		return nil, err
	}
	player, err := LoadPlayer()
	if err != nil {
		return nil, err
	}
	terrain, err := LoadTerrain()
	if err != nil {
		return nil, err
	}
	return &Data{Monsters: monsters, Player: player, Terrain: terrain}, nil
}
