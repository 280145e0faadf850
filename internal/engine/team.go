package engine

import (
	"errors"
	"fmt"
)

// TeamSize is the fixed slot capacity of a battle team.
const TeamSize = 5

// ErrTooManySlots is returned when a team is built from more slots than
// its capacity allows.
var ErrTooManySlots = errors.New("too many slots for team")

// attack is one recorded strike, kept for digraph rendering.
type attack struct {
	Phase    int
	Attacker string
	Defender string
	Damage   int
}

// Team is an ordered, fixed-capacity sequence of pet slots. A nil slot
// is a true absence: the position is unoccupied and preserved, never
// compacted away.
type Team struct {
	Name  string `json:"name"`
	Slots []*Pet `json:"slots"`

	maxSize int
	phase   int
	history []attack
}

// NewTeam builds a team from at most maxSize slots, padding missing
// trailing positions with empty slots. Slot order is preserved.
func NewTeam(name string, slots []*Pet, maxSize int) (*Team, error) {
	if maxSize <= 0 {
		maxSize = TeamSize
	}
	if len(slots) > maxSize {
		return nil, fmt.Errorf("%w: got %d slots, capacity %d", ErrTooManySlots, len(slots), maxSize)
	}
	padded := make([]*Pet, maxSize)
	copy(padded, slots)
	return &Team{Name: name, Slots: padded, maxSize: maxSize}, nil
}

// SetName updates the team's display name.
func (t *Team) SetName(name string) error {
	if name == "" {
		return errors.New("team name must not be empty")
	}
	t.Name = name
	return nil
}

// front returns the index and pet of the first occupied slot, or -1
// and nil when the team has no pets left.
func (t *Team) front() (int, *Pet) {
	for i, p := range t.Slots {
		if p.Alive() {
			return i, p
		}
	}
	return -1, nil
}

// Alive counts occupied slots.
func (t *Team) Alive() int {
	n := 0
	for _, p := range t.Slots {
		if p.Alive() {
			n++
		}
	}
	return n
}

// clearFainted empties slots whose pets fainted, firing faint triggers.
// A Honey holder is replaced in its slot by a summoned Bee.
func (t *Team) clearFainted() {
	for i, p := range t.Slots {
		if p == nil || p.Alive() {
			continue
		}
		if p.Item != nil && p.Item.Name == FoodHoney {
			t.Slots[i] = &Pet{Name: "Bee", Stats: Statistics{Attack: 1, Health: 1}, Level: p.Level}
			continue
		}
		t.Slots[i] = nil
	}
}

// record appends a strike to the team's battle history.
func (t *Team) record(attacker, defender *Pet, damage int) {
	t.history = append(t.history, attack{
		Phase:    t.phase,
		Attacker: attacker.Name,
		Defender: defender.Name,
		Damage:   damage,
	})
}
