package services

import (
	"errors"

	"github.com/tacocloud/taco-api/internal/models"
	"gorm.io/gorm"
)

// IngredientService provides read access to the ingredient catalog and
// resolves submitted ingredient codes. The catalog is reference data: this
// service never creates, mutates, or deletes ingredients.
type IngredientService interface {
	// GetAllIngredients retrieves the full catalog
	GetAllIngredients() ([]models.Ingredient, error)
	// Resolve looks up one ingredient by its short code. An unknown code is a
	// normal outcome, not an error: the result is nil with a nil error.
	Resolve(code string) (*models.Ingredient, error)
	// ResolveAll maps submitted codes to catalog records, dropping unknown
	// codes and preserving the submitted order
	ResolveAll(codes []string) ([]models.Ingredient, error)
}

// ingredientService is the implementation of the IngredientService interface
type ingredientService struct {
	db *gorm.DB
}

// NewIngredientService creates a new instance of IngredientService
func NewIngredientService(db *gorm.DB) IngredientService {
	return &ingredientService{db: db}
}

func (s *ingredientService) GetAllIngredients() ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *ingredientService) Resolve(code string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.Where("id = ?", code).First(&ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ingredient, nil
}

func (s *ingredientService) ResolveAll(codes []string) ([]models.Ingredient, error) {
	ingredients := make([]models.Ingredient, 0, len(codes))
	for _, code := range codes {
		ingredient, err := s.Resolve(code)
		if err != nil {
			return nil, err
		}
		if ingredient == nil {
			continue
		}
		ingredients = append(ingredients, *ingredient)
	}
	return ingredients, nil
}
