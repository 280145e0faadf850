// Package engine resolves turn-based pet combat between two teams.
// It is purely in-memory: callers own their team copies and nothing is
// shared between battles.
package engine

import (
	"errors"
	"fmt"
)

// Stat and level bounds enforced on every constructed pet.
const (
	MinPetStats = 0
	MaxPetStats = 50
	MinPetLevel = 1
	MaxPetLevel = 3
)

// Statistics holds a pet's combat stats.
type Statistics struct {
	Attack int `json:"attack"`
	Health int `json:"health"`
}

// Clamp restricts both stats to the [min, max] range in place.
func (s *Statistics) Clamp(min, max int) {
	if s.Attack < min {
		s.Attack = min
	}
	if s.Attack > max {
		s.Attack = max
	}
	if s.Health < min {
		s.Health = min
	}
	if s.Health > max {
		s.Health = max
	}
}

// Add applies a stat buff, clamping the result to the valid range.
func (s *Statistics) Add(other Statistics) {
	s.Attack += other.Attack
	s.Health += other.Health
	s.Clamp(MinPetStats, MaxPetStats)
}

// Pet is a single combatant.
type Pet struct {
	Name  string     `json:"name"`
	Stats Statistics `json:"stats"`
	Level int        `json:"level"`
	Item  *Food      `json:"item,omitempty"`
}

// NewPet constructs a pet, validating name, level and stat bounds.
func NewPet(name string, stats Statistics, level int) (*Pet, error) {
	if name == "" {
		return nil, errors.New("pet name must not be empty")
	}
	if level < MinPetLevel || level > MaxPetLevel {
		return nil, fmt.Errorf("pet level %d outside valid range %d..%d", level, MinPetLevel, MaxPetLevel)
	}
	if stats.Attack < MinPetStats || stats.Attack > MaxPetStats ||
		stats.Health < MinPetStats || stats.Health > MaxPetStats {
		return nil, fmt.Errorf("pet stats %+v outside valid range %d..%d", stats, MinPetStats, MaxPetStats)
	}
	return &Pet{Name: name, Stats: stats, Level: level}, nil
}

// AttachItem equips a food item on the pet. Foods with an immediate
// buff (Apple) apply it on attach; held foods stay equipped and modify
// combat arithmetic.
func (p *Pet) AttachItem(f *Food) {
	if f == nil {
		return
	}
	if buff, ok := f.attachBuff(); ok {
		p.Stats.Add(buff)
		return
	}
	p.Item = f
}

// Alive reports whether the pet is still in the fight.
func (p *Pet) Alive() bool {
	return p != nil && p.Stats.Health > MinPetStats
}
