package models

import "time"

type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IssuedToken records every token handed out. Diagnostic bookkeeping only —
// token validation is stateless and never reads this table.
type IssuedToken struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Token    string    `json:"token" gorm:"not null"`
	UserID   string    `json:"user_id" gorm:"not null;index"`
	IssuedAt time.Time `json:"issued_at"`
}
