package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nutritrack/services"
	"nutritrack/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AnalyticsController struct {
	Svc *services.AnalyticsService
	Log *zap.Logger
}

func NewAnalyticsController(svc *services.AnalyticsService, log *zap.Logger) *AnalyticsController {
	return &AnalyticsController{Svc: svc, Log: log}
}

func (h *AnalyticsController) GetRange(c *gin.Context) {
	from, to, ok := rangeQuery(c)
	if !ok {
		return
	}
	out, err := h.Svc.Range(c.Request.Context(), from, to)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AnalyticsController) Export(c *gin.Context) {
	from, to, ok := rangeQuery(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := h.Svc.Export(c.Request.Context(), from, to, &buf); err != nil {
		h.Log.Error("export failed", zap.Error(err))
		fail(c, err)
		return
	}
	name := fmt.Sprintf("nutrition_%s_%s.xlsx", utils.DateKey(from), utils.DateKey(to))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
