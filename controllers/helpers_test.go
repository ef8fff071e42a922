package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"nutritrack/services"
	"nutritrack/utils"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(fmt.Errorf("confirm: %w", services.ErrFoodNotFound)))
	assert.Equal(t, http.StatusBadRequest, statusFor(services.ErrInvalidFood))
	assert.Equal(t, http.StatusBadRequest, statusFor(fmt.Errorf("%w: age", utils.ErrInvalidProfile)))
	assert.Equal(t, http.StatusServiceUnavailable, statusFor(services.ErrBackupDisabled))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("disk on fire")))
}

func TestRangeQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		query string
		ok    bool
	}{
		{"", true},
		{"?from=2024-03-01&to=2024-03-01", true},
		{"?from=2024-3-1", false},
		{"?from=2024-03-02&to=2024-03-01", false},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/analytics"+tt.query, nil)
		_, _, ok := rangeQuery(c)
		assert.Equal(t, tt.ok, ok, tt.query)
		if !tt.ok {
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	}
}
