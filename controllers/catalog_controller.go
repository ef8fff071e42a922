package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nutritrack/services"
)

type CatalogController struct {
	Svc *services.CatalogService
}

func NewCatalogController(svc *services.CatalogService) *CatalogController {
	return &CatalogController{Svc: svc}
}

func (h *CatalogController) Search(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.Search(c.Query("q")))
}
