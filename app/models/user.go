package models

import "gorm.io/gorm"

// User is the primary user model.
type User struct {
	gorm.Model
	Name     string  `gorm:"size:255;not null" json:"name"`
	Email    string  `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string  `gorm:"size:255;not null" json:"-"` // hashed, never serialised
	Role     string  `gorm:"size:50;default:user" json:"role"`
	Profile  Profile `json:"profile"`
}

// Profile holds the default shipping details for a user, used to prefill the
// checkout form.
type Profile struct {
	gorm.Model
	UserID     uint   `gorm:"not null;uniqueIndex" json:"user_id"`
	Address    string `gorm:"size:512"             json:"address"`
	City       string `gorm:"size:100"             json:"city"`
	PostalCode string `gorm:"size:20"              json:"postal_code"`
	Phone      string `gorm:"size:20"              json:"phone"`
}
