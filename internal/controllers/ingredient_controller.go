package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tacocloud/taco-api/internal/models"
	"github.com/tacocloud/taco-api/internal/services"
)

// IngredientController handles HTTP requests for the ingredient catalog
type IngredientController interface {
	// GetAllIngredients lists the full catalog
	GetAllIngredients(c *gin.Context)
	// GetIngredientByID retrieves one catalog entry by its short code
	GetIngredientByID(c *gin.Context)
}

type ingredientController struct {
	service services.IngredientService
}

// NewIngredientController creates a new instance of IngredientController
func NewIngredientController(service services.IngredientService) IngredientController {
	return &ingredientController{service: service}
}

// GetAllIngredients godoc
// @Summary List ingredients
// @Description Get the full ingredient catalog, used to populate the design form
// @Tags ingredients
// @Produce json
// @Success 200 {array} models.Ingredient
// @Failure 500 {object} models.APIError
// @Router /api/v1/ingredients [get]
func (ctl *ingredientController) GetAllIngredients(ctx *gin.Context) {
	ingredients, err := ctl.service.GetAllIngredients()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve ingredients"))
		return
	}
	ctx.JSON(http.StatusOK, ingredients)
}

// GetIngredientByID godoc
// @Summary Get ingredient by code
// @Description Get a single catalog entry by its short code
// @Tags ingredients
// @Produce json
// @Param id path string true "Ingredient code"
// @Success 200 {object} models.Ingredient
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/ingredients/{id} [get]
func (ctl *ingredientController) GetIngredientByID(ctx *gin.Context) {
	ingredient, err := ctl.service.Resolve(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve ingredient"))
		return
	}
	if ingredient == nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrIngredientNotFound, "Ingredient not found"))
		return
	}
	ctx.JSON(http.StatusOK, ingredient)
}
