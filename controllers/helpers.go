package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nutritrack/services"
	"nutritrack/utils"
)

// dayParam reads the :date path segment, replying 400 when it is malformed.
func dayParam(c *gin.Context) (time.Time, bool) {
	d, err := utils.ParseDateKey(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrInvalidDate.Error()})
		return time.Time{}, false
	}
	return d, true
}

// rangeQuery reads from/to, defaulting to the current month.
func rangeQuery(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)

	from, err := utils.ParseDateKey(c.DefaultQuery("from", utils.DateKey(first)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
		return time.Time{}, time.Time{}, false
	}
	to, err := utils.ParseDateKey(c.DefaultQuery("to", utils.DateKey(last)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
		return time.Time{}, time.Time{}, false
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrInvalidRange.Error()})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// statusFor maps service errors onto HTTP codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrFoodNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidFood),
		errors.Is(err, services.ErrInvalidRange),
		errors.Is(err, services.ErrUnknownFlow),
		errors.Is(err, utils.ErrInvalidProfile):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrBackupDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
