package services

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/campushire/campushire/internal/dtos"
	"github.com/campushire/campushire/internal/media"
	"github.com/campushire/campushire/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileService struct {
	DB    *gorm.DB
	Media *media.Service
}

func NewProfileService(db *gorm.DB, m *media.Service) *ProfileService {
	return &ProfileService{DB: db, Media: m}
}

// StudentProfileView aggregates the profile row with its child collections.
type StudentProfileView struct {
	User           map[string]interface{} `json:"user"`
	Profile        models.Profile         `json:"profile"`
	Education      []models.Education     `json:"education"`
	Experience     []models.Experience    `json:"experience"`
	Skills         []models.UserSkill     `json:"skills"`
	Certifications []models.Certification `json:"certifications"`
}

// Get aggregates the caller's profile. A user who never saved a profile gets
// a zero-value row and empty collections, never an error.
func (s *ProfileService) Get(userID uint) (*StudentProfileView, error) {
	return s.view(userID, false)
}

// PublicView is the unauthenticated variant, keyed by the target user's id.
// Contact fields are redacted.
func (s *ProfileService) PublicView(targetUserID uint) (*StudentProfileView, error) {
	var user models.User
	if err := s.DB.First(&user, targetUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if user.Role != models.RoleStudent {
		return nil, ErrNotFound
	}
	return s.view(targetUserID, true)
}

func (s *ProfileService) view(userID uint, redact bool) (*StudentProfileView, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	view := &StudentProfileView{
		Education:      []models.Education{},
		Experience:     []models.Experience{},
		Skills:         []models.UserSkill{},
		Certifications: []models.Certification{},
	}
	view.User = map[string]interface{}{"id": user.ID, "name": user.Name}
	if !redact {
		view.User["email"] = user.Email
	}

	err := s.DB.Where("user_id = ?", userID).First(&view.Profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := s.DB.Where("user_id = ?", userID).Order("end_year DESC").Find(&view.Education).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Where("user_id = ?", userID).Order("id DESC").Find(&view.Experience).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Where("user_id = ?", userID).Preload("Skill").Find(&view.Skills).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Where("user_id = ?", userID).Order("issue_year DESC").Find(&view.Certifications).Error; err != nil {
		return nil, err
	}
	return view, nil
}

// Save upserts the profile row keyed by user_id; omitted fields keep their
// saved values.
func (s *ProfileService) Save(userID uint, req *dtos.ProfileSaveRequest) (*models.Profile, error) {
	profile := models.Profile{UserID: userID}
	updates := map[string]interface{}{}

	if req.State != nil {
		updates["state"] = *req.State
		profile.State = *req.State
	}
	if req.City != nil {
		updates["city"] = *req.City
		profile.City = *req.City
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
		profile.Bio = *req.Bio
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, ValidationError("date_of_birth must be YYYY-MM-DD")
		}
		updates["date_of_birth"] = dob
		profile.DateOfBirth = &dob
	}

	conflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: len(updates) == 0,
	}
	if len(updates) > 0 {
		conflict.DoUpdates = clause.Assignments(updates)
	}
	if err := s.DB.Clauses(conflict).Create(&profile).Error; err != nil {
		return nil, err
	}

	var saved models.Profile
	if err := s.DB.Where("user_id = ?", userID).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// UploadMedia accepts avatar and/or banner through the shared pipeline.
func (s *ProfileService) UploadMedia(userID uint, avatar, banner multipart.File) (*models.Profile, error) {
	profile, err := s.ensureProfile(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if avatar != nil {
		url, err := s.Media.Replace("avatar", userID, avatar, profile.AvatarURL)
		if err != nil {
			return nil, ValidationError("could not process avatar image: " + err.Error())
		}
		updates["avatar_url"] = url
		profile.AvatarURL = url
	}
	if banner != nil {
		url, err := s.Media.Replace("banner", userID, banner, profile.BannerURL)
		if err != nil {
			return nil, ValidationError("could not process banner image: " + err.Error())
		}
		updates["banner_url"] = url
		profile.BannerURL = url
	}
	if len(updates) == 0 {
		return nil, ValidationError("no image provided")
	}
	if err := s.DB.Model(&models.Profile{}).Where("user_id = ?", userID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// ClearMedia nulls the requested column(s) and unlinks old files best effort.
func (s *ProfileService) ClearMedia(userID uint, kind string) error {
	var profile models.Profile
	if err := s.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	updates := map[string]interface{}{}
	switch kind {
	case "avatar":
		updates["avatar_url"] = ""
	case "banner":
		updates["banner_url"] = ""
	case "":
		updates["avatar_url"] = ""
		updates["banner_url"] = ""
	default:
		return ValidationError("type must be avatar or banner")
	}
	if err := s.DB.Model(&models.Profile{}).Where("id = ?", profile.ID).Updates(updates).Error; err != nil {
		return err
	}
	if _, ok := updates["avatar_url"]; ok {
		s.Media.Remove(profile.AvatarURL)
	}
	if _, ok := updates["banner_url"]; ok {
		s.Media.Remove(profile.BannerURL)
	}
	return nil
}

func (s *ProfileService) AddEducation(userID uint, req *dtos.EducationRequest) (*models.Education, error) {
	row := &models.Education{
		UserID:       userID,
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartYear:    req.StartYear,
		EndYear:      req.EndYear,
		Grade:        req.Grade,
	}
	if err := s.DB.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (s *ProfileService) DeleteEducation(userID, id uint) error {
	return s.deleteOwned(&models.Education{}, userID, id)
}

func (s *ProfileService) AddExperience(userID uint, req *dtos.ExperienceRequest) (*models.Experience, error) {
	row := &models.Experience{
		UserID:      userID,
		Title:       req.Title,
		CompanyName: req.CompanyName,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	}
	if err := s.DB.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (s *ProfileService) DeleteExperience(userID, id uint) error {
	return s.deleteOwned(&models.Experience{}, userID, id)
}

func (s *ProfileService) AddCertification(userID uint, req *dtos.CertificationRequest) (*models.Certification, error) {
	row := &models.Certification{
		UserID:        userID,
		Name:          req.Name,
		Authority:     req.Authority,
		IssueYear:     req.IssueYear,
		CredentialURL: req.CredentialURL,
	}
	if err := s.DB.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (s *ProfileService) DeleteCertification(userID, id uint) error {
	return s.deleteOwned(&models.Certification{}, userID, id)
}

// AddSkill upserts the dictionary row by name, then grants ownership via a
// conflict-ignored join insert. Adding a skill the user already has is a
// no-op.
func (s *ProfileService) AddSkill(userID uint, name string) (*models.UserSkill, error) {
	var link models.UserSkill
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		skill := models.Skill{Name: name}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&skill).Error; err != nil {
			return err
		}
		// DoNothing leaves skill.ID zero when the name already existed.
		if skill.ID == 0 {
			if err := tx.Where("name = ?", name).First(&skill).Error; err != nil {
				return err
			}
		}
		link = models.UserSkill{UserID: userID, SkillID: skill.ID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ? AND skill_id = ?", userID, skill.ID).Preload("Skill").First(&link).Error
	})
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// RemoveSkill drops the join row only; the shared dictionary entry stays.
func (s *ProfileService) RemoveSkill(userID, userSkillID uint) error {
	return s.deleteOwned(&models.UserSkill{}, userID, userSkillID)
}

func (s *ProfileService) deleteOwned(model interface{}, userID, id uint) error {
	res := s.DB.Where("id = ? AND user_id = ?", id, userID).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ProfileService) ensureProfile(userID uint) (*models.Profile, error) {
	profile := models.Profile{UserID: userID}
	if err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&profile).Error; err != nil {
		return nil, err
	}
	var saved models.Profile
	if err := s.DB.Where("user_id = ?", userID).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}
