package handlers

import (
	"net/http"

	"github.com/campushire/campushire/internal/auth"
	"github.com/campushire/campushire/internal/dtos"
	"github.com/campushire/campushire/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
	Logger       *zap.Logger
}

func NewApplicationHandler(apps *services.ApplicationService, logger *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{Applications: apps, Logger: logger}
}

func (h *ApplicationHandler) Applicants(c *gin.Context) {
	jobID, ok := paramID(c, "jobId")
	if !ok {
		return
	}
	apps, err := h.Applications.Applicants(auth.UserID(c), jobID, c.Query("status"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applicants": apps})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	appID, ok := paramID(c, "applicationId")
	if !ok {
		return
	}
	var req dtos.ApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status is required"})
		return
	}
	app, err := h.Applications.UpdateStatus(auth.UserID(c), appID, &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"application": app})
}

func (h *ApplicationHandler) ApplicantProfile(c *gin.Context) {
	studentID, ok := paramID(c, "studentId")
	if !ok {
		return
	}
	view, err := h.Applications.ApplicantProfile(auth.UserID(c), studentID)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ApplicationHandler) Stats(c *gin.Context) {
	jobID, ok := paramID(c, "jobId")
	if !ok {
		return
	}
	stats, err := h.Applications.Stats(auth.UserID(c), jobID)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
