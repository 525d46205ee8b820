package models

import "time"

// TacoOrder is the top-level aggregate: delivery and payment details plus the
// tacos accumulated over the session. ID and PlacedAt stay zero until the
// order is committed; after that the aggregate is never updated.
type TacoOrder struct {
	ID             uint      `gorm:"primaryKey" json:"id,omitempty"`
	DeliveryName   string    `gorm:"not null" json:"deliveryName" validate:"required"`
	DeliveryStreet string    `gorm:"not null" json:"deliveryStreet" validate:"required"`
	DeliveryCity   string    `gorm:"not null" json:"deliveryCity" validate:"required"`
	DeliveryState  string    `gorm:"not null" json:"deliveryState" validate:"required"`
	DeliveryZip    string    `gorm:"not null" json:"deliveryZip" validate:"required,number"`
	CCNumber       string    `gorm:"column:cc_number;not null" json:"ccNumber" validate:"required,credit_card"`
	CCExpiration   string    `gorm:"column:cc_expiration;not null" json:"ccExpiration" validate:"required,cc_exp"`
	CCCVV          string    `gorm:"column:cc_cvv;not null" json:"ccCVV" validate:"required,len=3,number"`
	PlacedAt       time.Time `json:"placedAt,omitempty"`

	// Tacos is carried in memory and written through explicit TacoOrderTaco
	// rows inside the order transaction.
	Tacos []Taco `gorm:"-" json:"tacos"`
}

// AddTaco appends a composed taco, preserving submission order.
func (o *TacoOrder) AddTaco(taco Taco) {
	o.Tacos = append(o.Tacos, taco)
}

// TacoOrderTaco links a persisted taco to the order it belongs to. Position
// keeps the submission ordering so the aggregate reads back the way it was
// built.
type TacoOrderTaco struct {
	TacoOrderID uint `gorm:"primaryKey" json:"tacoOrderId"`
	TacoID      uint `gorm:"primaryKey" json:"tacoId"`
	Position    int  `gorm:"not null" json:"position"`
}

// OrderForm is the submitted-order payload: the eight delivery/payment fields.
// The session's accumulated tacos are attached server-side.
type OrderForm struct {
	DeliveryName   string `json:"deliveryName"`
	DeliveryStreet string `json:"deliveryStreet"`
	DeliveryCity   string `json:"deliveryCity"`
	DeliveryState  string `json:"deliveryState"`
	DeliveryZip    string `json:"deliveryZip"`
	CCNumber       string `json:"ccNumber"`
	CCExpiration   string `json:"ccExpiration"`
	CCCVV          string `json:"ccCVV"`
}
