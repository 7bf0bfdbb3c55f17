package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Austinkuria/E-commerce-Site/app/models"
	"github.com/Austinkuria/E-commerce-Site/pkg/database"
)

func validSignup(email string) SignupInput {
	return SignupInput{
		Name:                 "Test Shopper",
		Email:                email,
		Password:             "correct-horse",
		PasswordConfirmation: "correct-horse",
	}
}

func TestSignupCreatesUserWithProfile(t *testing.T) {
	setupDB(t)

	svc := NewAuthService()

	user, token, err := svc.Signup(validSignup("new@example.com"))
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "user", user.Role)

	// An empty shipping profile exists from the moment the account does, so
	// checkout prefill and profile updates never have to special-case a
	// missing row.
	var count int64
	require.NoError(t, database.DB.Model(&models.Profile{}).
		Where("user_id = ?", user.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)

	got, err := svc.Profile(user.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.Profile.UserID)
	require.Empty(t, got.Profile.Address)
}

func TestSignupDuplicateEmail(t *testing.T) {
	setupDB(t)

	svc := NewAuthService()

	_, _, err := svc.Signup(validSignup("taken@example.com"))
	require.NoError(t, err)

	_, _, err = svc.Signup(validSignup("taken@example.com"))
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	setupDB(t)

	svc := NewAuthService()

	_, _, err := svc.Signup(validSignup("shopper@example.com"))
	require.NoError(t, err)

	_, _, err = svc.Login(LoginInput{Email: "shopper@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	user, token, err := svc.Login(LoginInput{Email: "shopper@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "shopper@example.com", user.Email)
}
