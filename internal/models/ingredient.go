package models

// IngredientType is the closed set of categories an ingredient can belong to
type IngredientType string

const (
	Wrap    IngredientType = "WRAP"
	Protein IngredientType = "PROTEIN"
	Cheese  IngredientType = "CHEESE"
	Veggie  IngredientType = "VEGGIE"
	Sauce   IngredientType = "SAUCE"
)

// Ingredient is an immutable catalog record identified by a short code.
// The catalog is seeded at startup and never written by the order flow.
type Ingredient struct {
	ID   string         `gorm:"primaryKey;size:4" json:"id"`
	Name string         `gorm:"not null" json:"name"`
	Type IngredientType `gorm:"type:varchar(10);not null" json:"type"`
}
