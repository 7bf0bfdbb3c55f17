package repositories

import (
	"gorm.io/gorm"

	"github.com/Austinkuria/E-commerce-Site/app/models"
	"github.com/Austinkuria/E-commerce-Site/pkg/orm"
)

// UserRepository handles database operations for User and Profile.
type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByEmail looks up a user by their email address.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := orm.DB().Model(&models.User{}).Where("email = ?", email).First(&user)
	return user, err
}

// FindByID looks up a user by primary key, with their profile attached.
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	err := orm.DB().Model(&models.User{}).Preload("Profile").Where("id = ?", id).First(&user)
	return user, err
}

// Create persists a new user together with an empty shipping profile, in one
// transaction. Every user has exactly one profile row from the moment the
// account exists; UpdateProfile only ever fills it in.
func (r *UserRepository) Create(user *models.User) error {
	return orm.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Profile{UserID: user.ID}).Error
	})
}

// Update persists changes to an existing user.
func (r *UserRepository) Update(user *models.User) error {
	return orm.DB().Save(user)
}

// FindProfile returns the profile row for a user, if one exists.
func (r *UserRepository) FindProfile(userID uint) (models.Profile, error) {
	var profile models.Profile
	err := orm.DB().Model(&models.Profile{}).Where("user_id = ?", userID).First(&profile)
	return profile, err
}

// SaveProfile inserts or updates the user's shipping profile.
func (r *UserRepository) SaveProfile(profile *models.Profile) error {
	return orm.DB().Save(profile)
}
