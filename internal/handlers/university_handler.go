package handlers

import (
	"net/http"

	"github.com/campushire/campushire/internal/auth"
	"github.com/campushire/campushire/internal/dtos"
	"github.com/campushire/campushire/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UniversityHandler struct {
	Universities *services.UniversityService
	Logger       *zap.Logger
}

func NewUniversityHandler(unis *services.UniversityService, logger *zap.Logger) *UniversityHandler {
	return &UniversityHandler{Universities: unis, Logger: logger}
}

func (h *UniversityHandler) Get(c *gin.Context) {
	view, err := h.Universities.Get(auth.UserID(c))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *UniversityHandler) Save(c *gin.Context) {
	var req dtos.UniversitySaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}
	uni, err := h.Universities.Save(auth.UserID(c), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, uni)
}

func (h *UniversityHandler) UploadMedia(c *gin.Context) {
	logo, banner := openUpload(c, "logo"), openUpload(c, "banner")
	if logo != nil {
		defer logo.Close()
	}
	if banner != nil {
		defer banner.Close()
	}
	uni, err := h.Universities.UploadMedia(auth.UserID(c), logo, banner)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, uni)
}

func (h *UniversityHandler) ClearMedia(c *gin.Context) {
	if err := h.Universities.ClearMedia(auth.UserID(c), c.Query("type")); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "media cleared"})
}

func (h *UniversityHandler) AddDepartment(c *gin.Context) {
	var req dtos.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
		return
	}
	row, err := h.Universities.AddDepartment(auth.UserID(c), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *UniversityHandler) DeleteDepartment(c *gin.Context) {
	h.deleteChild(c, h.Universities.DeleteDepartment)
}

func (h *UniversityHandler) AddProgram(c *gin.Context) {
	var req dtos.ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
		return
	}
	row, err := h.Universities.AddProgram(auth.UserID(c), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *UniversityHandler) DeleteProgram(c *gin.Context) {
	h.deleteChild(c, h.Universities.DeleteProgram)
}

func (h *UniversityHandler) AddFacility(c *gin.Context) {
	var req dtos.FacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
		return
	}
	row, err := h.Universities.AddFacility(auth.UserID(c), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *UniversityHandler) DeleteFacility(c *gin.Context) {
	h.deleteChild(c, h.Universities.DeleteFacility)
}

func (h *UniversityHandler) AddPlacement(c *gin.Context) {
	var req dtos.PlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "academic_year is required"})
		return
	}
	row, err := h.Universities.AddPlacement(auth.UserID(c), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *UniversityHandler) DeletePlacement(c *gin.Context) {
	h.deleteChild(c, h.Universities.DeletePlacement)
}

func (h *UniversityHandler) AddRanking(c *gin.Context) {
	var req dtos.RankingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "agency is required"})
		return
	}
	row, err := h.Universities.AddRanking(auth.UserID(c), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *UniversityHandler) DeleteRanking(c *gin.Context) {
	h.deleteChild(c, h.Universities.DeleteRanking)
}

func (h *UniversityHandler) AddResearch(c *gin.Context) {
	var req dtos.ResearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title is required"})
		return
	}
	row, err := h.Universities.AddResearch(auth.UserID(c), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *UniversityHandler) DeleteResearch(c *gin.Context) {
	h.deleteChild(c, h.Universities.DeleteResearch)
}

func (h *UniversityHandler) Public(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	view, err := h.Universities.PublicView(id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *UniversityHandler) deleteChild(c *gin.Context, del func(userID, id uint) error) {
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
