package services

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tacocloud/taco-api/internal/models"
	"gorm.io/gorm"
)

// OrderService persists completed orders and reads them back. Committed
// orders are append-only: there are no update or delete operations.
type OrderService interface {
	// PlaceOrder commits the order aggregate in one transaction, assigning
	// the server-generated id and placedAt timestamp
	PlaceOrder(order *models.TacoOrder) error
	// GetOrderByID reassembles a persisted order with its tacos in
	// submission order
	GetOrderByID(id uint) (*models.TacoOrder, error)
}

// orderService is the implementation of the OrderService interface
type orderService struct {
	db *gorm.DB
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{db: db}
}

// PlaceOrder writes the order header, each not-yet-persisted taco with its
// ingredient rows, and one membership row per taco. The whole fan-out runs in
// a single transaction: any failure rolls every row back and the in-memory
// aggregate is restored to its unpersisted state so the caller can retry.
func (s *orderService) PlaceOrder(order *models.TacoOrder) error {
	order.PlacedAt = time.Now()

	var newTacos []int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range order.Tacos {
			taco := &order.Tacos[i]
			if taco.ID == 0 {
				taco.CreatedAt = time.Now()
				if err := tx.Create(taco).Error; err != nil {
					return err
				}
				newTacos = append(newTacos, i)

				for pos, ingredient := range taco.Ingredients {
					link := models.TacoIngredient{
						TacoID:       taco.ID,
						IngredientID: ingredient.ID,
						Position:     pos,
					}
					if err := tx.Create(&link).Error; err != nil {
						return err
					}
				}
			}

			membership := models.TacoOrderTaco{
				TacoOrderID: order.ID,
				TacoID:      taco.ID,
				Position:    i,
			}
			if err := tx.Create(&membership).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// gorm back-fills generated keys before the rollback; clear them so
		// the aggregate does not look persisted on retry
		order.ID = 0
		order.PlacedAt = time.Time{}
		for _, i := range newTacos {
			order.Tacos[i].ID = 0
			order.Tacos[i].CreatedAt = time.Time{}
		}
		log.WithError(err).Error("Order transaction rolled back")
		return err
	}

	log.WithFields(log.Fields{
		"order_id":   order.ID,
		"taco_count": len(order.Tacos),
	}).Info("Order persisted")
	return nil
}

func (s *orderService) GetOrderByID(id uint) (*models.TacoOrder, error) {
	var order models.TacoOrder
	if err := s.db.First(&order, id).Error; err != nil {
		return nil, err
	}

	var memberships []models.TacoOrderTaco
	if err := s.db.Where("taco_order_id = ?", order.ID).Order("position").Find(&memberships).Error; err != nil {
		return nil, err
	}

	for _, membership := range memberships {
		var taco models.Taco
		if err := s.db.First(&taco, membership.TacoID).Error; err != nil {
			return nil, err
		}

		var links []models.TacoIngredient
		if err := s.db.Where("taco_id = ?", taco.ID).Order("position").Find(&links).Error; err != nil {
			return nil, err
		}
		for _, link := range links {
			var ingredient models.Ingredient
			if err := s.db.First(&ingredient, "id = ?", link.IngredientID).Error; err != nil {
				return nil, err
			}
			taco.Ingredients = append(taco.Ingredients, ingredient)
		}

		order.Tacos = append(order.Tacos, taco)
	}
	return &order, nil
}
