package handlers

import (
	"net/http"

	"github.com/campushire/campushire/internal/auth"
	"github.com/campushire/campushire/internal/dtos"
	"github.com/campushire/campushire/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	Profiles *services.ProfileService
	Logger   *zap.Logger
}

func NewProfileHandler(profiles *services.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles, Logger: logger}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	view, err := h.Profiles.Get(auth.UserID(c))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ProfileHandler) Save(c *gin.Context) {
	var req dtos.ProfileSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}
	profile, err := h.Profiles.Save(auth.UserID(c), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UploadMedia(c *gin.Context) {
	avatar, banner := openUpload(c, "avatar"), openUpload(c, "banner")
	if avatar != nil {
		defer avatar.Close()
	}
	if banner != nil {
		defer banner.Close()
	}
	profile, err := h.Profiles.UploadMedia(auth.UserID(c), avatar, banner)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) ClearMedia(c *gin.Context) {
	if err := h.Profiles.ClearMedia(auth.UserID(c), c.Query("type")); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "media cleared"})
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	var req dtos.EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "school is required"})
		return
	}
	row, err := h.Profiles.AddEducation(auth.UserID(c), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *ProfileHandler) DeleteEducation(c *gin.Context) {
	h.deleteChild(c, h.Profiles.DeleteEducation)
}

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	var req dtos.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title is required"})
		return
	}
	row, err := h.Profiles.AddExperience(auth.UserID(c), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *ProfileHandler) DeleteExperience(c *gin.Context) {
	h.deleteChild(c, h.Profiles.DeleteExperience)
}

func (h *ProfileHandler) AddCertification(c *gin.Context) {
	var req dtos.CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
		return
	}
	row, err := h.Profiles.AddCertification(auth.UserID(c), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *ProfileHandler) DeleteCertification(c *gin.Context) {
	h.deleteChild(c, h.Profiles.DeleteCertification)
}

func (h *ProfileHandler) AddSkill(c *gin.Context) {
	var req dtos.SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
		return
	}
	row, err := h.Profiles.AddSkill(auth.UserID(c), req.Name)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *ProfileHandler) DeleteSkill(c *gin.Context) {
	h.deleteChild(c, h.Profiles.RemoveSkill)
}

func (h *ProfileHandler) Public(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	view, err := h.Profiles.PublicView(id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ProfileHandler) deleteChild(c *gin.Context, del func(userID, id uint) error) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := del(auth.UserID(c), id); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
