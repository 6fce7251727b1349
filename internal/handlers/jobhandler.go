package handlers

import (
	"net/http"

	"github.com/campushire/campushire/internal/auth"
	"github.com/campushire/campushire/internal/dtos"
	"github.com/campushire/campushire/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependency injection, same as the other handlers
type JobHandler struct {
	Jobs   *services.JobService
	Logger *zap.Logger
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(jobs *services.JobService, logger *zap.Logger) *JobHandler {
	return &JobHandler{Jobs: jobs, Logger: logger}
}

// Publish is the POST /api/company/publish endpoint
func (h *JobHandler) Publish(c *gin.Context) {
	var req dtos.JobPublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.Jobs.Publish(auth.UserID(c), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	// Child collections are not re-joined here; GET /publish/:postId returns
	// them attached.
	c.JSON(http.StatusOK, gin.H{"job": job})
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.Jobs.List(auth.UserID(c))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "postId")
	if !ok {
		return
	}
	job, err := h.Jobs.Get(auth.UserID(c), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

func (h *JobHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "postId")
	if !ok {
		return
	}
	var req dtos.JobPublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.Jobs.Update(auth.UserID(c), id, &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "postId")
	if !ok {
		return
	}
	if err := h.Jobs.Delete(auth.UserID(c), id); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "job deleted"})
}

// Browse is the public job board: published posts only.
func (h *JobHandler) Browse(c *gin.Context) {
	jobs, err := h.Jobs.BrowsePublished(c.Query("location"), c.Query("type"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) BrowseGet(c *gin.Context) {
	id, ok := paramID(c, "jobId")
	if !ok {
		return
	}
	job, err := h.Jobs.GetPublished(id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// Apply records the authenticated student's application.
func (h *JobHandler) Apply(c *gin.Context) {
	id, ok := paramID(c, "jobId")
	if !ok {
		return
	}
	app, err := h.Jobs.Apply(auth.UserID(c), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"application": app})
}
