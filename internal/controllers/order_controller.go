package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/tacocloud/taco-api/internal/middleware"
	"github.com/tacocloud/taco-api/internal/models"
	"github.com/tacocloud/taco-api/internal/services"
	"github.com/tacocloud/taco-api/internal/validation"
	"gorm.io/gorm"
)

// OrderController handles order checkout and retrieval
type OrderController interface {
	// GetCurrentOrder returns the session's in-progress order
	GetCurrentOrder(c *gin.Context)
	// SubmitOrder validates the delivery/payment fields and persists the
	// session's order
	SubmitOrder(c *gin.Context)
	// GetOrderByID retrieves a persisted order
	GetOrderByID(c *gin.Context)
}

type orderController struct {
	orders    services.OrderService
	carts     services.CartService
	validator *validation.Validator
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(orders services.OrderService, carts services.CartService, validator *validation.Validator) OrderController {
	return &orderController{orders: orders, carts: carts, validator: validator}
}

// GetCurrentOrder godoc
// @Summary Get the in-progress order
// @Description Get the tacos accumulated so far in this session
// @Tags orders
// @Produce json
// @Success 200 {object} models.TacoOrder
// @Router /api/v1/orders/current [get]
func (ctl *orderController) GetCurrentOrder(ctx *gin.Context) {
	order := ctl.carts.GetOrCreate(middleware.GetSessionID(ctx))
	ctx.JSON(http.StatusOK, order)
}

// SubmitOrder godoc
// @Summary Submit the order
// @Description Validate the delivery and payment fields, then persist the order with the session's accumulated tacos. On success the session's accumulator is discarded; on failure it is kept so the client can retry.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body models.OrderForm true "Delivery and payment details"
// @Success 201 {object} models.TacoOrder
// @Failure 400 {object} models.APIError
// @Failure 422 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.APIError
// @Router /api/v1/orders [post]
func (ctl *orderController) SubmitOrder(ctx *gin.Context) {
	var form models.OrderForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	sessionID := middleware.GetSessionID(ctx)
	current := ctl.carts.GetOrCreate(sessionID)

	order := models.TacoOrder{
		DeliveryName:   form.DeliveryName,
		DeliveryStreet: form.DeliveryStreet,
		DeliveryCity:   form.DeliveryCity,
		DeliveryState:  form.DeliveryState,
		DeliveryZip:    form.DeliveryZip,
		CCNumber:       form.CCNumber,
		CCExpiration:   form.CCExpiration,
		CCCVV:          form.CCCVV,
		Tacos:          current.Tacos,
	}

	if result := ctl.validator.ValidateOrder(order); !result.Valid() {
		ctx.JSON(http.StatusUnprocessableEntity, models.NewValidationErrorResponse(result))
		return
	}

	if err := ctl.orders.PlaceOrder(&order); err != nil {
		// The accumulator stays intact so the client can retry without
		// re-entering anything
		log.WithError(err).WithField("session_id", sessionID).Error("Failed to persist order")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrOrderPersistence, "Failed to persist order"))
		return
	}

	ctl.carts.Complete(sessionID)
	log.WithFields(log.Fields{
		"session_id": sessionID,
		"order_id":   order.ID,
	}).Info("Order submitted")
	ctx.JSON(http.StatusCreated, order)
}

// GetOrderByID godoc
// @Summary Get a persisted order
// @Description Get a committed order with its tacos in submission order
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.TacoOrder
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/orders/{id} [get]
func (ctl *orderController) GetOrderByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid order ID format"))
		return
	}

	order, err := ctl.orders.GetOrderByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrOrderNotFound, "Order not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve order"))
		return
	}
	ctx.JSON(http.StatusOK, order)
}
