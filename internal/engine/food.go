package engine

// FoodName identifies a consumable the engine knows how to resolve.
type FoodName string

const (
	FoodApple    FoodName = "Apple"
	FoodHoney    FoodName = "Honey"
	FoodMeatBone FoodName = "Meat Bone"
	FoodGarlic   FoodName = "Garlic"
	FoodMelon    FoodName = "Melon"
	FoodCoconut  FoodName = "Coconut"
)

// meatBoneBonus is the flat attack bonus granted while holding a Meat Bone.
const meatBoneBonus = 2

// garlicReduction is how much incoming damage Garlic absorbs. Damage
// never drops below 1 while the holder takes a hit.
const garlicReduction = 2

// melonBlock is the damage absorbed by a Melon before it is consumed.
const melonBlock = 20

// Food is a consumable attached to a pet.
type Food struct {
	Name FoodName `json:"name"`
	// Uses counts remaining activations for single-use shields
	// (Melon, Coconut). Zero means exhausted; foods without a use
	// counter ignore it.
	Uses int `json:"uses,omitempty"`
}

// NewFood constructs a food item with its use counter primed.
func NewFood(name FoodName) *Food {
	f := &Food{Name: name}
	switch name {
	case FoodMelon, FoodCoconut:
		f.Uses = 1
	}
	return f
}

// attachBuff returns the immediate stat buff for shop-style foods, and
// whether the food is consumed on attach rather than held.
func (f *Food) attachBuff() (Statistics, bool) {
	if f.Name == FoodApple {
		return Statistics{Attack: 1, Health: 1}, true
	}
	return Statistics{}, false
}

// attackBonus is the extra damage dealt while holding this food.
func (f *Food) attackBonus() int {
	if f != nil && f.Name == FoodMeatBone {
		return meatBoneBonus
	}
	return 0
}

// absorb reduces incoming damage according to the held food, consuming
// single-use shields. Returns the damage that gets through.
func (f *Food) absorb(damage int) int {
	if f == nil || damage <= 0 {
		return damage
	}
	switch f.Name {
	case FoodGarlic:
		damage -= garlicReduction
		if damage < 1 {
			damage = 1
		}
	case FoodMelon:
		if f.Uses > 0 {
			f.Uses--
			damage -= melonBlock
			if damage < 0 {
				damage = 0
			}
		}
	case FoodCoconut:
		if f.Uses > 0 {
			f.Uses--
			damage = 0
		}
	}
	return damage
}
