package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Austinkuria/E-commerce-Site/app/models"
	"github.com/Austinkuria/E-commerce-Site/app/repositories"
	"github.com/Austinkuria/E-commerce-Site/pkg/auth"
	"github.com/Austinkuria/E-commerce-Site/pkg/event"
)

// SignupInput is the validated registration form.
type SignupInput struct {
	Name                 string `json:"name"     validate:"required,max=255"`
	Email                string `json:"email"    validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=8,confirmed"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// LoginInput is the validated login form.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileInput is the validated shipping-profile form.
type ProfileInput struct {
	Address    string `json:"address"     validate:"required,address,max=512"`
	City       string `json:"city"        validate:"required,alpha_space,max=100"`
	PostalCode string `json:"postal_code" validate:"required,digits_between=4,10"`
	Phone      string `json:"phone"       validate:"nullable,phone"`
}

// AuthService handles signup, login, and profile management.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Signup registers a new shopper and returns their access token.
func (s *AuthService) Signup(in SignupInput) (models.User, string, error) {
	if _, err := s.users.FindByEmail(in.Email); err == nil {
		return models.User{}, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, "", err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, "", err
	}

	user := models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     "user",
	}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, "", err
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return models.User{}, "", err
	}

	event.FireAsync("user.registered", user.ID)
	return user, token, nil
}

// Login verifies credentials and returns a fresh access token.
func (s *AuthService) Login(in LoginInput) (models.User, string, error) {
	user, err := s.users.FindByEmail(in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, "", ErrInvalidCredentials
		}
		return models.User{}, "", err
	}

	if !auth.CheckPassword(user.Password, in.Password) {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	return user, token, err
}

// Profile returns the user with their shipping profile.
func (s *AuthService) Profile(userID uint) (models.User, error) {
	user, err := s.users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, ErrNotFound
	}
	return user, err
}

// UpdateProfile stores the user's default shipping details.
func (s *AuthService) UpdateProfile(userID uint, in ProfileInput) (models.Profile, error) {
	profile, err := s.users.FindProfile(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Profile{}, err
	}

	profile.UserID = userID
	profile.Address = in.Address
	profile.City = in.City
	profile.PostalCode = in.PostalCode
	profile.Phone = in.Phone

	err = s.users.SaveProfile(&profile)
	return profile, err
}
