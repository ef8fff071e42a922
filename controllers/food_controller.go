package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nutritrack/services"
	"nutritrack/utils"
)

type FoodController struct {
	Foods *services.FoodLogService
	Coins *services.CoinService
}

func NewFoodController(foods *services.FoodLogService, coins *services.CoinService) *FoodController {
	return &FoodController{Foods: foods, Coins: coins}
}

func (h *FoodController) ListFoods(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	foods, err := h.Foods.List(c.Request.Context(), day)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// AddFood logs a food; ?planned=true plans it instead.
func (h *FoodController) AddFood(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	planned, err := strconv.ParseBool(c.DefaultQuery("planned", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid planned flag"})
		return
	}
	var input services.FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.Foods.Add(c.Request.Context(), day, input, planned)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *FoodController) ConfirmFood(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	out, err := h.Foods.Confirm(c.Request.Context(), day, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *FoodController) DeleteFood(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	if err := h.Foods.Delete(c.Request.Context(), day, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FoodController) GetSummary(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	out, err := h.Foods.Summary(c.Request.Context(), day,
		c.DefaultQuery("timeframe", utils.TimeframeDay),
		c.DefaultQuery("mode", utils.ViewLeft))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *FoodController) GetCoins(c *gin.Context) {
	n, err := h.Coins.Balance(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coins": n})
}
