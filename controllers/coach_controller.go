package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nutritrack/services"
)

type CoachController struct {
	Svc *services.CoachService
}

func NewCoachController(svc *services.CoachService) *CoachController {
	return &CoachController{Svc: svc}
}

func (h *CoachController) Flows(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.Flows())
}

type checkInRequest struct {
	Answers []string              `json:"answers"`
	Stats   services.CheckInStats `json:"stats"`
}

func (h *CoachController) Respond(c *gin.Context) {
	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.Svc.Respond(c.Request.Context(), c.Param("flow"), req.Answers, req.Stats)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
