// Package battle converts client team payloads into engine teams, runs
// the turn-bounded battle driver, and assembles the wire response.
package battle

import (
	"fmt"

	"github.com/sapteams/battleapi/internal/engine"
	"github.com/sapteams/battleapi/internal/records"
)

// SimplePet is a possibly-partial pet specification from the client.
// Absent attack/health fall back to the record's base stats; an absent
// level defaults to the minimum.
type SimplePet struct {
	Name   string  `json:"name"`
	Attack *int    `json:"attack,omitempty"`
	Health *int    `json:"health,omitempty"`
	Level  *int    `json:"level,omitempty"`
	Item   *string `json:"item,omitempty"`
}

// SimpleTeam is an ordered sequence of optional pet slots. A nil entry
// is an empty slot and keeps its position.
type SimpleTeam struct {
	Name string       `json:"name"`
	Pets []*SimplePet `json:"pets"`
}

// Teams is the request envelope for a battle.
type Teams struct {
	FriendTeam SimpleTeam `json:"friend_team"`
	EnemyTeam  SimpleTeam `json:"enemy_team"`
}

// Side names which team a normalization error belongs to.
type Side string

const (
	SideFriend Side = "Friend"
	SideEnemy  Side = "Enemy"
)

// ResolutionPolicy controls how the normalizer treats pets and items
// that fail to resolve.
type ResolutionPolicy int

const (
	// BestEffort downgrades unresolvable pets and items to absent
	// instead of failing the team. This is the wire-facing policy:
	// unrecognized client data degrades gracefully.
	BestEffort ResolutionPolicy = iota
	// Strict turns any per-pet resolution miss into a team error.
	Strict
)

// Normalizer converts SimpleTeams into engine teams, resolving names
// against an injected record snapshot.
type Normalizer struct {
	snap   *records.Snapshot
	policy ResolutionPolicy
}

// NewNormalizer builds a best-effort normalizer over the snapshot.
func NewNormalizer(snap *records.Snapshot) *Normalizer {
	return &Normalizer{snap: snap, policy: BestEffort}
}

// WithPolicy returns a copy of the normalizer using the given policy.
func (n *Normalizer) WithPolicy(p ResolutionPolicy) *Normalizer {
	return &Normalizer{snap: n.snap, policy: p}
}

// TeamError identifies which side failed to convert and why.
type TeamError struct {
	Side  Side
	Cause error
}

func (e *TeamError) Error() string {
	return fmt.Sprintf("Invalid %s Team: %v", e.Side, e.Cause)
}

func (e *TeamError) Unwrap() error { return e.Cause }

// Team converts one SimpleTeam into an engine team. Per-pet failures
// are downgraded under BestEffort; team-level construction failures
// always propagate, tagged with the side.
func (n *Normalizer) Team(side Side, st SimpleTeam) (*engine.Team, error) {
	slots := make([]*engine.Pet, len(st.Pets))
	for i, sp := range st.Pets {
		if sp == nil {
			continue
		}
		pet, err := n.pet(sp)
		if err != nil {
			if n.policy == Strict {
				return nil, &TeamError{Side: side, Cause: err}
			}
			continue
		}
		slots[i] = pet
	}

	team, err := engine.NewTeam(st.Name, slots, engine.TeamSize)
	if err != nil {
		return nil, &TeamError{Side: side, Cause: err}
	}
	return team, nil
}

// pet converts one SimplePet, resolving its name and item against the
// snapshot and applying level defaults and stat clamps.
func (n *Normalizer) pet(sp *SimplePet) (*engine.Pet, error) {
	level := engine.MinPetLevel
	if sp.Level != nil {
		level = clamp(*sp.Level, engine.MinPetLevel, engine.MaxPetLevel)
	}

	rec, ok := n.snap.Pet(sp.Name, level)
	if !ok {
		return nil, fmt.Errorf("unknown pet name %q", sp.Name)
	}

	stats := engine.Statistics{Attack: rec.Attack, Health: rec.Health}
	if sp.Attack != nil {
		stats.Attack = *sp.Attack
	}
	if sp.Health != nil {
		stats.Health = *sp.Health
	}
	stats.Clamp(engine.MinPetStats, engine.MaxPetStats)

	pet, err := engine.NewPet(rec.Name, stats, level)
	if err != nil {
		return nil, err
	}

	if sp.Item != nil {
		if food, ok := n.snap.Food(*sp.Item); ok {
			pet.AttachItem(engine.NewFood(engine.FoodName(food.Name)))
		} else if n.policy == Strict {
			return nil, fmt.Errorf("unknown item %q", *sp.Item)
		}
		// BestEffort: unknown item means no item, not an error.
	}
	return pet, nil
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
