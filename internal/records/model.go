// Package records owns the pet and food record database: gorm models,
// connection handling, seeding, filtered queries, and the read-only
// snapshot handed to request handlers.
package records

import "gorm.io/datatypes"

////////////////////////
// DATABASE STRUCTURES //
////////////////////////

// DatabaseModels is a list of all the structs exported here which represent tables in the database schema
var DatabaseModels = []interface{}{
	&PetRecord{},
	&FoodRecord{},
}

// PetRecord describes one pet at one level. Base stats do not change
// with level; the effect text does, so records are keyed by name+level.
type PetRecord struct {
	ID            uint   `json:"-" gorm:"primarykey"`
	Name          string `json:"name" gorm:"size:127;uniqueIndex:idx_pet_name_level"`
	Level         int    `json:"level" gorm:"uniqueIndex:idx_pet_name_level"`
	Tier          int    `json:"tier"`
	Attack        int    `json:"attack"`
	Health        int    `json:"health"`
	Pack          string `json:"pack" gorm:"size:63"`
	Effect        string `json:"effect" gorm:"size:255"`
	EffectTrigger string `json:"effect_trigger" gorm:"size:63"`
	ImgURL        string `json:"img_url" gorm:"size:255"`
}

// FoodRecord describes one consumable.
type FoodRecord struct {
	ID       uint           `json:"-" gorm:"primarykey"`
	Name     string         `json:"name" gorm:"size:127;uniqueIndex"`
	Tier     int            `json:"tier"`
	Holdable bool           `json:"holdable"`
	Effect   string         `json:"effect" gorm:"size:255"`
	Ability  datatypes.JSON `json:"ability,omitempty"`
	ImgURL   string         `json:"img_url" gorm:"size:255"`
}
