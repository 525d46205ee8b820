package models

import "time"

// Taco is a customer-composed item: a name plus one or more catalog
// ingredients. ID and CreatedAt stay zero until the taco is persisted as part
// of an order.
type Taco struct {
	ID        uint      `gorm:"primaryKey" json:"id,omitempty"`
	Name      string    `gorm:"not null" json:"name" validate:"required"`
	CreatedAt time.Time `json:"createdAt,omitempty"`

	// Ingredients is carried in memory and written through explicit
	// TacoIngredient rows inside the order transaction, not by gorm
	// association handling.
	Ingredients []Ingredient `gorm:"-" json:"ingredients" validate:"min=1"`
}

// TacoIngredient records one ingredient of a persisted taco. Position keeps
// the submitted ordering for display and is part of the key: a taco may
// repeat an ingredient (double cheese), so (taco, ingredient) alone is not
// unique.
type TacoIngredient struct {
	TacoID       uint   `gorm:"primaryKey" json:"tacoId"`
	IngredientID string `gorm:"primaryKey;size:4" json:"ingredientId"`
	Position     int    `gorm:"primaryKey" json:"position"`
}

// TacoDesign is the submitted-item payload: a display name plus the ingredient
// codes the customer picked. Codes are resolved against the catalog before
// validation; unknown codes are dropped.
type TacoDesign struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
}
