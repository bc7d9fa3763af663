// Package balance loads optional yaml tuning overrides for the
// simulation. Fields left unset in the file keep the compiled-in
// defaults, so a balance file only needs to name what it changes.
package balance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"roomcrawler/sim"
)

// Spec mirrors the tunable subset of sim.Tuning with optional fields.
type Spec struct {
	PlayerRadius *float64 `yaml:"player_radius"`
	PlayerSpeed  *float64 `yaml:"player_speed"`
	PlayerMaxHP  *int     `yaml:"player_max_hp"`

	BulletRadius *float64 `yaml:"bullet_radius"`
	BulletSpeed  *float64 `yaml:"bullet_speed"`
	BulletTTL    *float64 `yaml:"bullet_ttl"`
	FireInterval *float64 `yaml:"fire_interval"`

	EnemyRadius *float64 `yaml:"enemy_radius"`
	EnemyHP     *float64 `yaml:"enemy_hp"`
	EnemySpeed  *float64 `yaml:"enemy_speed"`

	BossSquad  *int     `yaml:"boss_squad"`
	BossHP     *float64 `yaml:"boss_hp"`
	BossRadius *float64 `yaml:"boss_radius"`
	BossSpeed  *float64 `yaml:"boss_speed"`

	PatrolFactor   *float64 `yaml:"patrol_factor"`
	ChaseBlend     *float64 `yaml:"chase_blend"`
	ProximityRange *float64 `yaml:"proximity_range"`

	HurtInterval *float64 `yaml:"hurt_interval"`
	Knockback    *float64 `yaml:"knockback"`

	MinRooms *int `yaml:"min_rooms"`
	MaxRooms *int `yaml:"max_rooms"`
	MinSquad *int `yaml:"min_squad"`
	MaxSquad *int `yaml:"max_squad"`
}

// Load reads and parses a balance file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("balance: load %s: %w", path, err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("balance: unmarshal %s: %w", path, err)
	}
	return &spec, nil
}

// Apply copies every set field onto the tuning.
func (s *Spec) Apply(t *sim.Tuning) {
	if s == nil || t == nil {
		return
	}
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setI := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}

	setF(&t.PlayerRadius, s.PlayerRadius)
	setF(&t.PlayerSpeed, s.PlayerSpeed)
	setI(&t.PlayerMaxHP, s.PlayerMaxHP)

	setF(&t.BulletRadius, s.BulletRadius)
	setF(&t.BulletSpeed, s.BulletSpeed)
	setF(&t.BulletTTL, s.BulletTTL)
	setF(&t.FireInterval, s.FireInterval)

	setF(&t.EnemyRadius, s.EnemyRadius)
	setF(&t.EnemyHP, s.EnemyHP)
	setF(&t.EnemySpeed, s.EnemySpeed)

	setI(&t.BossSquad, s.BossSquad)
	setF(&t.BossHP, s.BossHP)
	setF(&t.BossRadius, s.BossRadius)
	setF(&t.BossSpeed, s.BossSpeed)

	setF(&t.PatrolFactor, s.PatrolFactor)
	setF(&t.ChaseBlend, s.ChaseBlend)
	setF(&t.ProximityRange, s.ProximityRange)

	setF(&t.HurtInterval, s.HurtInterval)
	setF(&t.Knockback, s.Knockback)

	setI(&t.MinRooms, s.MinRooms)
	setI(&t.MaxRooms, s.MaxRooms)
	setI(&t.MinSquad, s.MinSquad)
	setI(&t.MaxSquad, s.MaxSquad)
}
