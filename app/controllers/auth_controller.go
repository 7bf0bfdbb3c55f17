package controllers

import (
	"github.com/Austinkuria/E-commerce-Site/app/services"
	"github.com/Austinkuria/E-commerce-Site/pkg/ctx"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{service: services.NewAuthService()}
}

// Signup registers a new shopper and returns their token.
func (ac *AuthController) Signup(c *ctx.Context) {
	var in services.SignupInput
	if !c.BindJSON(&in) {
		return
	}

	user, token, err := ac.service.Signup(in)
	if err != nil {
		fail(c, err)
		return
	}

	c.Created(map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// Login verifies credentials and returns a fresh token.
func (ac *AuthController) Login(c *ctx.Context) {
	var in services.LoginInput
	if !c.BindJSON(&in) {
		return
	}

	user, token, err := ac.service.Login(in)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(map[string]interface{}{
		"user":  user,
		"token": token,
	})
}
