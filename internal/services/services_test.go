package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tacocloud/taco-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testIngredients is the seed catalog used across service tests
var testIngredients = []models.Ingredient{
	{ID: "FLTO", Name: "Flour Tortilla", Type: models.Wrap},
	{ID: "COTO", Name: "Corn Tortilla", Type: models.Wrap},
	{ID: "GRBF", Name: "Ground Beef", Type: models.Protein},
	{ID: "CARN", Name: "Carnitas", Type: models.Protein},
	{ID: "TMTO", Name: "Diced Tomatoes", Type: models.Veggie},
	{ID: "LETC", Name: "Lettuce", Type: models.Veggie},
	{ID: "CHED", Name: "Cheddar", Type: models.Cheese},
	{ID: "JACK", Name: "Monterrey Jack", Type: models.Cheese},
	{ID: "SLSA", Name: "Salsa", Type: models.Sauce},
	{ID: "SRCR", Name: "Sour Cream", Type: models.Sauce},
}

// setupTestDB opens a private in-memory database, migrates the order schema
// and seeds the ingredient catalog
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Ingredient{},
		&models.Taco{},
		&models.TacoIngredient{},
		&models.TacoOrder{},
		&models.TacoOrderTaco{},
	)
	require.NoError(t, err)

	for _, ingredient := range testIngredients {
		require.NoError(t, db.Create(&ingredient).Error)
	}
	return db
}

func buildTaco(t *testing.T, db *gorm.DB, name string, codes ...string) models.Taco {
	t.Helper()

	ingredients, err := NewIngredientService(db).ResolveAll(codes)
	require.NoError(t, err)
	return models.Taco{Name: name, Ingredients: ingredients}
}
