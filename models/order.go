package models

import "time"

// OrderStatus covers the tracking stages plus the overlaid payment state.
// "paid" is written into the same field as the tracking stages, so a payment
// verification after tracking has advanced replaces the visible stage.
type OrderStatus string

const (
	StatusCreated   OrderStatus = "created"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusPickedUp  OrderStatus = "picked_up"
	StatusDelivered OrderStatus = "delivered"
	StatusPaid      OrderStatus = "paid"
)

type Order struct {
	ID           string      `json:"id" gorm:"primaryKey"`
	UserID       string      `json:"user_id" gorm:"not null;index"`
	RestaurantID string      `json:"restaurant_id" gorm:"not null"`
	Status       OrderStatus `json:"status" gorm:"not null;default:'created'"`
	TotalAmount  float64     `json:"total_amount"`
	EtaMinutes   int         `json:"eta_minutes"`
	TrackingNote string      `json:"tracking_note"`
	Items        []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID       uint   `json:"-" gorm:"primaryKey"`
	OrderID  string `json:"-" gorm:"not null;index"`
	ItemID   string `json:"item_id" gorm:"not null"`
	Quantity int    `json:"quantity" gorm:"not null"`
}
