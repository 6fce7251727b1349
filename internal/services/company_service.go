package services

import (
	"errors"
	"mime/multipart"

	"github.com/campushire/campushire/internal/dtos"
	"github.com/campushire/campushire/internal/media"
	"github.com/campushire/campushire/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompanyService struct {
	DB    *gorm.DB
	Media *media.Service
}

func NewCompanyService(db *gorm.DB, m *media.Service) *CompanyService {
	return &CompanyService{DB: db, Media: m}
}

// Get returns the caller's company row together with its social links.
func (s *CompanyService) Get(userID uint) (*models.Company, *models.CompanySocialLink, error) {
	var company models.Company
	if err := s.DB.Where("user_id = ?", userID).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	var links models.CompanySocialLink
	err := s.DB.Where("company_id = ?", company.ID).First(&links).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &company, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return &company, &links, nil
}

// Save upserts the company row keyed by user_id. Omitted fields keep their
// previously saved values; only fields present in the request are assigned
// on conflict.
func (s *CompanyService) Save(userID uint, req *dtos.CompanySaveRequest) (*models.Company, error) {
	company := models.Company{UserID: userID, Name: req.Name}

	updates := map[string]interface{}{"name": req.Name}
	assign := func(col string, v *string, dst *string) {
		if v != nil {
			updates[col] = *v
			*dst = *v
		}
	}
	assign("industry", req.Industry, &company.Industry)
	assign("company_type", req.CompanyType, &company.CompanyType)
	assign("description", req.Description, &company.Description)
	assign("headquarters", req.Headquarters, &company.Headquarters)
	assign("address", req.Address, &company.Address)
	assign("city", req.City, &company.City)
	assign("state", req.State, &company.State)
	assign("country", req.Country, &company.Country)
	assign("website", req.Website, &company.Website)
	assign("phone", req.Phone, &company.Phone)
	assign("contact_email", req.ContactEmail, &company.ContactEmail)
	if req.FoundedYear != nil {
		updates["founded_year"] = *req.FoundedYear
		company.FoundedYear = req.FoundedYear
	}

	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(updates),
	}).Create(&company).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the response reflects the merged row, not just this call's fields.
	var saved models.Company
	if err := s.DB.Where("user_id = ?", userID).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// SaveSocialLinks upserts the links row in a single conditional insert keyed
// by company_id. The action label ("saved" on first create, "updated" after)
// only feeds UX messaging.
func (s *CompanyService) SaveSocialLinks(userID uint, req *dtos.SocialLinksRequest) (*models.CompanySocialLink, string, error) {
	companyID, err := s.companyIDFor(userID)
	if err != nil {
		return nil, "", err
	}

	var existing int64
	s.DB.Model(&models.CompanySocialLink{}).Where("company_id = ?", companyID).Count(&existing)
	action := "saved"
	if existing > 0 {
		action = "updated"
	}

	links := models.CompanySocialLink{
		CompanyID: companyID,
		LinkedIn:  req.LinkedIn,
		Twitter:   req.Twitter,
		Facebook:  req.Facebook,
		Instagram: req.Instagram,
		YouTube:   req.YouTube,
		GitHub:    req.GitHub,
	}
	err = s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "company_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"linked_in": req.LinkedIn,
			"twitter":   req.Twitter,
			"facebook":  req.Facebook,
			"instagram": req.Instagram,
			"you_tube":  req.YouTube,
			"git_hub":   req.GitHub,
		}),
	}).Create(&links).Error
	if err != nil {
		return nil, "", err
	}

	var saved models.CompanySocialLink
	if err := s.DB.Where("company_id = ?", companyID).First(&saved).Error; err != nil {
		return nil, "", err
	}
	return &saved, action, nil
}

// UploadMedia processes whichever of logo/banner were provided and updates
// only those columns. The superseded files are garbage collected by the
// media pipeline.
func (s *CompanyService) UploadMedia(userID uint, logo, banner multipart.File) (*models.Company, error) {
	var company models.Company
	if err := s.DB.Where("user_id = ?", userID).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if logo != nil {
		url, err := s.Media.Replace("logo", company.ID, logo, company.LogoURL)
		if err != nil {
			return nil, ValidationError("could not process logo image: " + err.Error())
		}
		updates["logo_url"] = url
		company.LogoURL = url
	}
	if banner != nil {
		url, err := s.Media.Replace("banner", company.ID, banner, company.BannerURL)
		if err != nil {
			return nil, ValidationError("could not process banner image: " + err.Error())
		}
		updates["banner_url"] = url
		company.BannerURL = url
	}
	if len(updates) == 0 {
		return nil, ValidationError("no image provided")
	}
	if err := s.DB.Model(&models.Company{}).Where("id = ?", company.ID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// ClearMedia nulls the requested media column(s) and unlinks the old files
// best effort. kind is "logo", "banner" or "" for both.
func (s *CompanyService) ClearMedia(userID uint, kind string) error {
	var company models.Company
	if err := s.DB.Where("user_id = ?", userID).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	updates := map[string]interface{}{}
	switch kind {
	case "logo":
		updates["logo_url"] = ""
	case "banner":
		updates["banner_url"] = ""
	case "":
		updates["logo_url"] = ""
		updates["banner_url"] = ""
	default:
		return ValidationError("type must be logo or banner")
	}
	if err := s.DB.Model(&models.Company{}).Where("id = ?", company.ID).Updates(updates).Error; err != nil {
		return err
	}
	if _, ok := updates["logo_url"]; ok {
		s.Media.Remove(company.LogoURL)
	}
	if _, ok := updates["banner_url"]; ok {
		s.Media.Remove(company.BannerURL)
	}
	return nil
}

// PublicView returns a company profile by the owning user's id with contact
// fields redacted.
func (s *CompanyService) PublicView(targetUserID uint) (map[string]interface{}, error) {
	var company models.Company
	if err := s.DB.Where("user_id = ?", targetUserID).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var links models.CompanySocialLink
	hasLinks := s.DB.Where("company_id = ?", company.ID).First(&links).Error == nil

	view := map[string]interface{}{
		"id":           company.ID,
		"user_id":      company.UserID,
		"name":         company.Name,
		"industry":     company.Industry,
		"company_type": company.CompanyType,
		"founded_year": company.FoundedYear,
		"description":  company.Description,
		"headquarters": company.Headquarters,
		"city":         company.City,
		"state":        company.State,
		"country":      company.Country,
		"website":      company.Website,
		"logo_url":     company.LogoURL,
		"banner_url":   company.BannerURL,
	}
	if hasLinks {
		view["social_links"] = links
	}
	return view, nil
}

func (s *CompanyService) companyIDFor(userID uint) (uint, error) {
	var company models.Company
	err := s.DB.Select("id").Where("user_id = ?", userID).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return company.ID, nil
}
