package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/campushire/campushire/internal/auth"
	"github.com/campushire/campushire/internal/dtos"
	"github.com/campushire/campushire/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CompanyHandler struct {
	Companies *services.CompanyService
	Logger    *zap.Logger
}

func NewCompanyHandler(companies *services.CompanyService, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{Companies: companies, Logger: logger}
}

func (h *CompanyHandler) Get(c *gin.Context) {
	company, links, err := h.Companies.Get(auth.UserID(c))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company, "social_links": links})
}

func (h *CompanyHandler) Save(c *gin.Context) {
	var req dtos.CompanySaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "company name is required"})
		return
	}
	company, err := h.Companies.Save(auth.UserID(c), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) SaveSocialLinks(c *gin.Context) {
	var req dtos.SocialLinksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}
	links, action, err := h.Companies.SaveSocialLinks(auth.UserID(c), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"social_links": links, "action": action})
}

func (h *CompanyHandler) UploadMedia(c *gin.Context) {
	logo, banner := openUpload(c, "logo"), openUpload(c, "banner")
	if logo != nil {
		defer logo.Close()
	}
	if banner != nil {
		defer banner.Close()
	}
	company, err := h.Companies.UploadMedia(auth.UserID(c), logo, banner)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) ClearMedia(c *gin.Context) {
	if err := h.Companies.ClearMedia(auth.UserID(c), c.Query("type")); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "media cleared"})
}

func (h *CompanyHandler) Public(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	view, err := h.Companies.PublicView(id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// openUpload opens one named multipart file, nil when the field was absent.
func openUpload(c *gin.Context, field string) multipart.File {
	header, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	f, err := header.Open()
	if err != nil {
		return nil
	}
	return f
}
