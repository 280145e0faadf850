package records

import "strings"

// Snapshot is a read-only in-memory view of the record tables, captured
// once at startup and shared by reference across request handlers.
// Lookups are case-insensitive. No locking: the maps are never written
// after construction.
type Snapshot struct {
	pets  map[string]map[int]PetRecord
	foods map[string]FoodRecord
}

// Snapshot loads all records into an immutable lookup structure.
func (s *Store) Snapshot() (*Snapshot, error) {
	var pets []PetRecord
	if err := s.DB.Find(&pets).Error; err != nil {
		return nil, err
	}
	var foods []FoodRecord
	if err := s.DB.Find(&foods).Error; err != nil {
		return nil, err
	}
	return BuildSnapshot(pets, foods), nil
}

// BuildSnapshot indexes the given records into a snapshot. Useful for
// tests that don't want a database behind the lookup.
func BuildSnapshot(pets []PetRecord, foods []FoodRecord) *Snapshot {
	snap := &Snapshot{
		pets:  make(map[string]map[int]PetRecord),
		foods: make(map[string]FoodRecord, len(foods)),
	}
	for _, p := range pets {
		key := strings.ToLower(p.Name)
		if snap.pets[key] == nil {
			snap.pets[key] = make(map[int]PetRecord, MaxPetLevel)
		}
		snap.pets[key][p.Level] = p
	}
	for _, f := range foods {
		snap.foods[strings.ToLower(f.Name)] = f
	}
	return snap
}

// Pet resolves a pet name at a given level.
func (sn *Snapshot) Pet(name string, level int) (PetRecord, bool) {
	levels, ok := sn.pets[strings.ToLower(name)]
	if !ok {
		return PetRecord{}, false
	}
	rec, ok := levels[level]
	return rec, ok
}

// Food resolves a consumable name.
func (sn *Snapshot) Food(name string) (FoodRecord, bool) {
	rec, ok := sn.foods[strings.ToLower(name)]
	return rec, ok
}

// Pets returns the number of distinct pet names in the snapshot.
func (sn *Snapshot) Pets() int {
	return len(sn.pets)
}

// Foods returns the number of consumables in the snapshot.
func (sn *Snapshot) Foods() int {
	return len(sn.foods)
}
