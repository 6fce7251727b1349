package services

import (
	"errors"
	"fmt"
	"math/rand"
	"mime/multipart"

	"github.com/campushire/campushire/internal/dtos"
	"github.com/campushire/campushire/internal/media"
	"github.com/campushire/campushire/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const referralCodeAttempts = 5

type UniversityService struct {
	DB    *gorm.DB
	Media *media.Service

	// randDigits is swappable in tests to force referral-code collisions.
	randDigits func(n int) string
}

func NewUniversityService(db *gorm.DB, m *media.Service) *UniversityService {
	return &UniversityService{DB: db, Media: m, randDigits: randomDigits}
}

func randomDigits(n int) string {
	digits := make([]byte, n)
	for i := range digits {
		digits[i] = byte('0' + rand.Intn(10))
	}
	return string(digits)
}

// UniversityView aggregates the university row and its six child collections.
type UniversityView struct {
	University models.University     `json:"university"`
	Departments []models.Department  `json:"departments"`
	Programs    []models.Program     `json:"programs"`
	Facilities  []models.Facility    `json:"facilities"`
	Placements  []models.Placement   `json:"placements"`
	Rankings    []models.Ranking     `json:"rankings"`
	Research    []models.ResearchWork `json:"research"`
}

// Get returns the profile with all child collections in their natural
// orderings. A user with no university row yet gets a zero row and empty
// arrays, never an error.
func (s *UniversityService) Get(userID uint) (*UniversityView, error) {
	view := &UniversityView{
		Departments: []models.Department{},
		Programs:    []models.Program{},
		Facilities:  []models.Facility{},
		Placements:  []models.Placement{},
		Rankings:    []models.Ranking{},
		Research:    []models.ResearchWork{},
	}

	err := s.DB.Where("user_id = ?", userID).First(&view.University).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return view, nil
	}
	if err != nil {
		return nil, err
	}

	uid := view.University.ID
	if err := s.DB.Where("university_id = ?", uid).Order("name").Find(&view.Departments).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Where("university_id = ?", uid).Order("name").Find(&view.Programs).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Where("university_id = ?", uid).Order("name").Find(&view.Facilities).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Where("university_id = ?", uid).Order("academic_year DESC").Find(&view.Placements).Error; err != nil {
		return nil, err
	}
	// "year IS NULL" sorts false before true, so rows with a year come first.
	if err := s.DB.Where("university_id = ?", uid).Order("year IS NULL, year DESC").Find(&view.Rankings).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Where("university_id = ?", uid).Order("publication_year DESC, id DESC").Find(&view.Research).Error; err != nil {
		return nil, err
	}
	return view, nil
}

// Save upserts the university row. The referral code is generated on first
// creation only and preserved forever after.
func (s *UniversityService) Save(userID uint, req *dtos.UniversitySaveRequest) (*models.University, error) {
	uni := models.University{UserID: userID}
	updates := map[string]interface{}{}
	assign := func(col string, v *string, dst *string) {
		if v != nil {
			updates[col] = *v
			*dst = *v
		}
	}
	assign("name", req.Name, &uni.Name)
	assign("institution_type", req.InstitutionType, &uni.InstitutionType)
	assign("description", req.Description, &uni.Description)
	assign("website", req.Website, &uni.Website)
	assign("address", req.Address, &uni.Address)
	assign("city", req.City, &uni.City)
	assign("state", req.State, &uni.State)
	assign("country", req.Country, &uni.Country)
	assign("phone", req.Phone, &uni.Phone)
	assign("contact_email", req.ContactEmail, &uni.ContactEmail)
	if req.EstablishedYear != nil {
		updates["established_year"] = *req.EstablishedYear
		uni.EstablishedYear = req.EstablishedYear
	}

	code, err := s.generateReferralCode()
	if err != nil {
		return nil, err
	}
	uni.ReferralCode = code

	// The referral code is deliberately absent from the conflict assignments,
	// so an existing row keeps the code it was issued at creation.
	conflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: len(updates) == 0,
	}
	if len(updates) > 0 {
		conflict.DoUpdates = clause.Assignments(updates)
	}
	if err := s.DB.Clauses(conflict).Create(&uni).Error; err != nil {
		return nil, err
	}

	var saved models.University
	if err := s.DB.Where("user_id = ?", userID).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// generateReferralCode draws six random digits and retries on collision,
// bounded at five attempts. The fallback draws once more with an extra digit
// and truncates to six; a final uniqueness check turns the residual
// collision window into an error instead of a silent constraint violation.
func (s *UniversityService) generateReferralCode() (string, error) {
	for i := 0; i < referralCodeAttempts; i++ {
		code := s.randDigits(6)
		taken, err := s.codeTaken(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	fallback := s.randDigits(7)[:6]
	taken, err := s.codeTaken(fallback)
	if err != nil {
		return "", err
	}
	if taken {
		return "", fmt.Errorf("could not allocate a unique referral code")
	}
	return fallback, nil
}

func (s *UniversityService) codeTaken(code string) (bool, error) {
	var n int64
	err := s.DB.Model(&models.University{}).Where("referral_code = ?", code).Count(&n).Error
	return n > 0, err
}

// UploadMedia runs logo/banner through the shared pipeline; the previously
// stored object is deleted on replacement so no orphans accumulate.
func (s *UniversityService) UploadMedia(userID uint, logo, banner multipart.File) (*models.University, error) {
	var uni models.University
	if err := s.DB.Where("user_id = ?", userID).First(&uni).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if logo != nil {
		url, err := s.Media.Replace("logo", uni.ID, logo, uni.LogoURL)
		if err != nil {
			return nil, ValidationError("could not process logo image: " + err.Error())
		}
		updates["logo_url"] = url
		uni.LogoURL = url
	}
	if banner != nil {
		url, err := s.Media.Replace("banner", uni.ID, banner, uni.BannerURL)
		if err != nil {
			return nil, ValidationError("could not process banner image: " + err.Error())
		}
		updates["banner_url"] = url
		uni.BannerURL = url
	}
	if len(updates) == 0 {
		return nil, ValidationError("no image provided")
	}
	if err := s.DB.Model(&models.University{}).Where("id = ?", uni.ID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &uni, nil
}

func (s *UniversityService) ClearMedia(userID uint, kind string) error {
	var uni models.University
	if err := s.DB.Where("user_id = ?", userID).First(&uni).Error; err != nil {
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
	if err := s.DB.Model(&models.University{}).Where("id = ?", uni.ID).Updates(updates).Error; err != nil {
		return err
	}
	if _, ok := updates["logo_url"]; ok {
		s.Media.Remove(uni.LogoURL)
	}
	if _, ok := updates["banner_url"]; ok {
		s.Media.Remove(uni.BannerURL)
	}
	return nil
}

func (s *UniversityService) AddDepartment(userID uint, req *dtos.DepartmentRequest) (*models.Department, error) {
	uid, err := s.universityIDFor(userID)
	if err != nil {
		return nil, err
	}
	row := &models.Department{UniversityID: uid, Name: req.Name, HeadName: req.HeadName, Description: req.Description}
	if err := s.DB.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (s *UniversityService) DeleteDepartment(userID, id uint) error {
	return s.deleteChild(&models.Department{}, userID, id)
}

func (s *UniversityService) AddProgram(userID uint, req *dtos.ProgramRequest) (*models.Program, error) {
	uid, err := s.universityIDFor(userID)
	if err != nil {
		return nil, err
	}
	row := &models.Program{
		UniversityID:  uid,
		Name:          req.Name,
		Level:         req.Level,
		DurationYears: req.DurationYears,
		AnnualFees:    req.AnnualFees,
		Seats:         req.Seats,
	}
	if err := s.DB.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (s *UniversityService) DeleteProgram(userID, id uint) error {
	return s.deleteChild(&models.Program{}, userID, id)
}

// AddFacility surfaces the unique-constraint violation as a specific 400
// rather than a generic 500.
func (s *UniversityService) AddFacility(userID uint, req *dtos.FacilityRequest) (*models.Facility, error) {
	uid, err := s.universityIDFor(userID)
	if err != nil {
		return nil, err
	}
	row := &models.Facility{UniversityID: uid, Name: req.Name, Description: req.Description}
	if err := s.DB.Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ValidationError("Facility already exists")
		}
		return nil, err
	}
	return row, nil
}

func (s *UniversityService) DeleteFacility(userID, id uint) error {
	return s.deleteChild(&models.Facility{}, userID, id)
}

func (s *UniversityService) AddPlacement(userID uint, req *dtos.PlacementRequest) (*models.Placement, error) {
	uid, err := s.universityIDFor(userID)
	if err != nil {
		return nil, err
	}
	row := &models.Placement{
		UniversityID:     uid,
		AcademicYear:     req.AcademicYear,
		CompaniesVisited: req.CompaniesVisited,
		StudentsPlaced:   req.StudentsPlaced,
		HighestPackage:   req.HighestPackage,
		AveragePackage:   req.AveragePackage,
	}
	if err := s.DB.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (s *UniversityService) DeletePlacement(userID, id uint) error {
	return s.deleteChild(&models.Placement{}, userID, id)
}

func (s *UniversityService) AddRanking(userID uint, req *dtos.RankingRequest) (*models.Ranking, error) {
	uid, err := s.universityIDFor(userID)
	if err != nil {
		return nil, err
	}
	row := &models.Ranking{UniversityID: uid, Agency: req.Agency, Rank: req.Rank, Year: req.Year, Category: req.Category}
	if err := s.DB.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (s *UniversityService) DeleteRanking(userID, id uint) error {
	return s.deleteChild(&models.Ranking{}, userID, id)
}

func (s *UniversityService) AddResearch(userID uint, req *dtos.ResearchRequest) (*models.ResearchWork, error) {
	uid, err := s.universityIDFor(userID)
	if err != nil {
		return nil, err
	}
	row := &models.ResearchWork{
		UniversityID:    uid,
		Title:           req.Title,
		Authors:         req.Authors,
		PublicationYear: req.PublicationYear,
		Journal:         req.Journal,
		PaperURL:        req.PaperURL,
	}
	if err := s.DB.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (s *UniversityService) DeleteResearch(userID, id uint) error {
	return s.deleteChild(&models.ResearchWork{}, userID, id)
}

// PublicView returns a university profile by owning user id with contact
// fields redacted.
func (s *UniversityService) PublicView(targetUserID uint) (*UniversityView, error) {
	var uni models.University
	if err := s.DB.Where("user_id = ?", targetUserID).First(&uni).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	view, err := s.Get(targetUserID)
	if err != nil {
		return nil, err
	}
	view.University.Phone = ""
	view.University.ContactEmail = ""
	view.University.ReferralCode = ""
	return view, nil
}

// deleteChild re-derives the owning university id so the predicate always
// carries both the child id and the ownership chain.
func (s *UniversityService) deleteChild(model interface{}, userID, id uint) error {
	uid, err := s.universityIDFor(userID)
	if err != nil {
		return err
	}
	res := s.DB.Where("id = ? AND university_id = ?", id, uid).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UniversityService) universityIDFor(userID uint) (uint, error) {
	var uni models.University
	err := s.DB.Select("id").Where("user_id = ?", userID).First(&uni).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return uni.ID, nil
}
