package models

// Subscription is the notification stub's per-user delivery target.
type Subscription struct {
	UserID   string `json:"user_id" gorm:"primaryKey"`
	Endpoint string `json:"endpoint" gorm:"not null"`
	Provider string `json:"provider" gorm:"not null"`
}
