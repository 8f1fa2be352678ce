package models

import "gorm.io/gorm"

// User represents an account holder of the tracker.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(15)" validate:"required,min=4,max=15"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(50)" validate:"required,email,max=50"`
	Password   string `gorm:"type:varchar(255)"` // bcrypt hash; no json tag for security
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
