package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nutritrack/services"
)

type BackupController struct {
	Svc *services.BackupService
	Log *zap.Logger
}

func NewBackupController(svc *services.BackupService, log *zap.Logger) *BackupController {
	return &BackupController{Svc: svc, Log: log}
}

func (h *BackupController) Create(c *gin.Context) {
	key, err := h.Svc.Upload(c.Request.Context())
	if err != nil {
		h.Log.Warn("backup failed", zap.Error(err))
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"key": key})
}

// Snapshot returns the backup document without uploading it.
func (h *BackupController) Snapshot(c *gin.Context) {
	snap, err := h.Svc.Snapshot(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
