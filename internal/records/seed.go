package records

import "fmt"

// petSeed is the per-level-independent part of a pet record. Effect
// holds one format string per level.
type petSeed struct {
	Name    string
	Tier    int
	Attack  int
	Health  int
	Trigger string
	Effects [MaxPetLevel]string
}

// MaxPetLevel mirrors the engine's level cap; records exist per level.
const MaxPetLevel = 3

var petSeeds = []petSeed{
	{"Ant", 1, 2, 1, "Faint", [3]string{
		"Give a random friend +2/+1", "Give a random friend +4/+2", "Give a random friend +6/+3"}},
	{"Beaver", 1, 3, 2, "Sell", [3]string{
		"Give two random friends +1 health", "Give two random friends +2 health", "Give two random friends +3 health"}},
	{"Cricket", 1, 1, 2, "Faint", [3]string{
		"Summon one 1/1 Zombie Cricket", "Summon one 2/2 Zombie Cricket", "Summon one 3/3 Zombie Cricket"}},
	{"Duck", 1, 2, 3, "Sell", [3]string{
		"Give shop pets +1 health", "Give shop pets +2 health", "Give shop pets +3 health"}},
	{"Fish", 1, 2, 2, "Level-up", [3]string{
		"Give all friends +1/+1", "Give all friends +2/+2", "Give all friends +3/+3"}},
	{"Horse", 1, 2, 1, "Friend summoned", [3]string{
		"Give friend +1 attack until end of battle", "Give friend +2 attack until end of battle", "Give friend +3 attack until end of battle"}},
	{"Mosquito", 1, 2, 2, "Start of battle", [3]string{
		"Deal 1 damage to one random enemy", "Deal 1 damage to two random enemies", "Deal 1 damage to three random enemies"}},
	{"Otter", 1, 1, 2, "Buy", [3]string{
		"Give a random friend +1/+1", "Give two random friends +1/+1", "Give three random friends +1/+1"}},
	{"Pig", 1, 4, 1, "Sell", [3]string{
		"Gain +1 gold", "Gain +2 gold", "Gain +3 gold"}},
	{"Crab", 2, 3, 1, "Buy", [3]string{
		"Copy health from the healthiest friend", "Copy health from the healthiest friend", "Copy health from the healthiest friend"}},
	{"Dodo", 2, 3, 3, "Start of battle", [3]string{
		"Give 50% of attack to friend ahead", "Give 100% of attack to friend ahead", "Give 150% of attack to friend ahead"}},
	{"Elephant", 2, 3, 5, "Before attack", [3]string{
		"Deal 1 damage to one friend behind", "Deal 1 damage to two friends behind", "Deal 1 damage to three friends behind"}},
	{"Flamingo", 2, 4, 1, "Faint", [3]string{
		"Give the two friends behind +1/+1", "Give the two friends behind +2/+2", "Give the two friends behind +3/+3"}},
	{"Hedgehog", 2, 3, 2, "Faint", [3]string{
		"Deal 2 damage to all", "Deal 4 damage to all", "Deal 6 damage to all"}},
	{"Peacock", 2, 2, 5, "Hurt", [3]string{
		"Gain 4 attack", "Gain 8 attack", "Gain 12 attack"}},
	{"Rat", 2, 4, 5, "Faint", [3]string{
		"Summon one 1/1 Dirty Rat on the enemy team", "Summon two 1/1 Dirty Rats on the enemy team", "Summon three 1/1 Dirty Rats on the enemy team"}},
	{"Badger", 3, 6, 3, "Faint", [3]string{
		"Deal 50% attack damage to adjacent pets", "Deal 100% attack damage to adjacent pets", "Deal 150% attack damage to adjacent pets"}},
	{"Camel", 3, 2, 5, "Hurt", [3]string{
		"Give friend behind +1/+2", "Give friend behind +2/+4", "Give friend behind +3/+6"}},
	{"Dog", 3, 2, 2, "Friend summoned", [3]string{
		"Gain +2 attack or +1 health", "Gain +4 attack or +2 health", "Gain +6 attack or +3 health"}},
	{"Sheep", 3, 2, 2, "Faint", [3]string{
		"Summon two 2/2 Rams", "Summon two 4/4 Rams", "Summon two 6/6 Rams"}},
}

type foodSeed struct {
	Name     string
	Tier     int
	Holdable bool
	Effect   string
}

var foodSeeds = []foodSeed{
	{"Apple", 1, false, "Give one pet +1/+1"},
	{"Honey", 1, true, "Summon one 1/1 Bee after fainting"},
	{"Meat Bone", 2, true, "Attacks deal +2 damage"},
	{"Garlic", 3, true, "Take 2 less damage, minimum 1"},
	{"Melon", 6, true, "Take 20 less damage once"},
	{"Coconut", 6, true, "Ignore one hit"},
	{"Cupcake", 2, false, "Give one pet +3/+3 until end of battle"},
	{"Salad Bowl", 4, false, "Give two random pets +1/+1"},
}

// seed inserts the built-in record set.
func (s *Store) seed() error {
	pets := make([]PetRecord, 0, len(petSeeds)*MaxPetLevel)
	for _, ps := range petSeeds {
		for lvl := 1; lvl <= MaxPetLevel; lvl++ {
			pets = append(pets, PetRecord{
				Name:          ps.Name,
				Level:         lvl,
				Tier:          ps.Tier,
				Attack:        ps.Attack,
				Health:        ps.Health,
				Pack:          "Turtle",
				Effect:        ps.Effects[lvl-1],
				EffectTrigger: ps.Trigger,
				ImgURL:        imgURL("pets", ps.Name),
			})
		}
	}
	if err := s.DB.Create(&pets).Error; err != nil {
		return fmt.Errorf("seeding pets: %w", err)
	}

	foods := make([]FoodRecord, 0, len(foodSeeds))
	for _, fs := range foodSeeds {
		foods = append(foods, FoodRecord{
			Name:     fs.Name,
			Tier:     fs.Tier,
			Holdable: fs.Holdable,
			Effect:   fs.Effect,
			ImgURL:   imgURL("foods", fs.Name),
		})
	}
	if err := s.DB.Create(&foods).Error; err != nil {
		return fmt.Errorf("seeding foods: %w", err)
	}
	return nil
}

func imgURL(kind, name string) string {
	return fmt.Sprintf("https://superautopets.wiki.gg/images/%s/%s.png", kind, name)
}
