package models

type Restaurant struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Cuisine     string  `json:"cuisine"`
	Rating      float64 `json:"rating" gorm:"default:0"`
	IsOpen      bool    `json:"is_open" gorm:"default:true"`
	Description string  `json:"description"`
}

type MenuItem struct {
	ID           string  `json:"id" gorm:"primaryKey"`
	RestaurantID string  `json:"restaurant_id" gorm:"not null;index"`
	Name         string  `json:"name" gorm:"not null"`
	Price        float64 `json:"price" gorm:"not null"`
	Description  string  `json:"description"`
	Available    bool    `json:"available" gorm:"default:true"`
}
