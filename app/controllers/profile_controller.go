package controllers

import (
	"github.com/Austinkuria/E-commerce-Site/app/services"
	"github.com/Austinkuria/E-commerce-Site/pkg/ctx"
)

type ProfileController struct {
	service *services.AuthService
}

func NewProfileController() *ProfileController {
	return &ProfileController{service: services.NewAuthService()}
}

// Show returns the authenticated user with their shipping profile.
func (pc *ProfileController) Show(c *ctx.Context) {
	user, err := pc.service.Profile(c.UserID())
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(user)
}

// Update stores the user's default shipping details.
func (pc *ProfileController) Update(c *ctx.Context) {
	var in services.ProfileInput
	if !c.BindJSON(&in) {
		return
	}

	profile, err := pc.service.UpdateProfile(c.UserID(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(profile)
}
