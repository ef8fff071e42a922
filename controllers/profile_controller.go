package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nutritrack/models"
	"nutritrack/services"
	"nutritrack/utils"
)

type ProfileController struct {
	Profiles   *services.ProfileService
	Onboarding *services.OnboardingService
}

func NewProfileController(profiles *services.ProfileService, onboarding *services.OnboardingService) *ProfileController {
	return &ProfileController{Profiles: profiles, Onboarding: onboarding}
}

func (h *ProfileController) GetProfile(c *gin.Context) {
	p, err := h.Profiles.Get(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not set up yet"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileController) UpdateProfile(c *gin.Context) {
	var input models.UserProfile
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.Profiles.Get(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	input.Onboarded = existing != nil && existing.Onboarded

	if err := h.Profiles.Save(c.Request.Context(), input); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": input, "goals": utils.CalcGoals(&input)})
}

func (h *ProfileController) GetSummary(c *gin.Context) {
	out, err := h.Profiles.Summary(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ProfileController) CompleteOnboarding(c *gin.Context) {
	draft := services.DefaultDraft()
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.Onboarding.Complete(c.Request.Context(), draft)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// PreviewOnboarding reports the wizard stage and goals for a partial draft.
func (h *ProfileController) PreviewOnboarding(c *gin.Context) {
	var patch services.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.Onboarding.Preview(patch))
}

// PreviewGoals runs the goal engine on an unsaved profile.
func PreviewGoals(c *gin.Context) {
	var p models.UserProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	timeframe := c.DefaultQuery("timeframe", utils.TimeframeDay)
	c.JSON(http.StatusOK, gin.H{
		"timeframe": timeframe,
		"goals":     utils.GoalsFor(&p, timeframe),
	})
}
