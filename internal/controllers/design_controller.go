package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/tacocloud/taco-api/internal/middleware"
	"github.com/tacocloud/taco-api/internal/models"
	"github.com/tacocloud/taco-api/internal/services"
	"github.com/tacocloud/taco-api/internal/validation"
)

// DesignController handles taco design submissions
type DesignController interface {
	// SubmitTaco validates a composed taco and appends it to the session's
	// in-progress order
	SubmitTaco(c *gin.Context)
}

type designController struct {
	ingredients services.IngredientService
	carts       services.CartService
	validator   *validation.Validator
}

// NewDesignController creates a new instance of DesignController
func NewDesignController(ingredients services.IngredientService, carts services.CartService, validator *validation.Validator) DesignController {
	return &designController{ingredients: ingredients, carts: carts, validator: validator}
}

// SubmitTaco godoc
// @Summary Submit a composed taco
// @Description Resolve the submitted ingredient codes (unknown codes are dropped), validate the taco and add it to the session's in-progress order
// @Tags design
// @Accept json
// @Produce json
// @Param taco body models.TacoDesign true "Taco design"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 422 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.APIError
// @Router /api/v1/design [post]
func (ctl *designController) SubmitTaco(ctx *gin.Context) {
	var design models.TacoDesign
	if err := ctx.ShouldBindJSON(&design); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	ingredients, err := ctl.ingredients.ResolveAll(design.Ingredients)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to resolve ingredients"))
		return
	}

	taco := models.Taco{Name: design.Name, Ingredients: ingredients}
	if result := ctl.validator.ValidateTaco(taco); !result.Valid() {
		ctx.JSON(http.StatusUnprocessableEntity, models.NewValidationErrorResponse(result))
		return
	}

	sessionID := middleware.GetSessionID(ctx)
	order := ctl.carts.AppendTaco(sessionID, taco)
	log.WithFields(log.Fields{
		"session_id": sessionID,
		"taco_name":  taco.Name,
	}).Info("Taco accepted into in-progress order")

	ctx.JSON(http.StatusCreated, gin.H{
		"taco":     taco,
		"cartSize": len(order.Tacos),
	})
}
