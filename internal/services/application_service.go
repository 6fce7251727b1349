package services

import (
	"errors"

	"github.com/campushire/campushire/internal/dtos"
	"github.com/campushire/campushire/internal/models"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB      *gorm.DB
	Profile *ProfileService
}

func NewApplicationService(db *gorm.DB, profiles *ProfileService) *ApplicationService {
	return &ApplicationService{DB: db, Profile: profiles}
}

var validApplicationStatuses = map[string]bool{
	models.ApplicationStatusApplied:     true,
	models.ApplicationStatusReviewed:    true,
	models.ApplicationStatusShortlisted: true,
	models.ApplicationStatusRejected:    true,
	models.ApplicationStatusHired:       true,
}

// Applicants lists applications for one of the caller's jobs, newest first,
// optionally filtered by status. Job ownership is verified first; a job the
// caller does not own 404s.
func (s *ApplicationService) Applicants(userID, jobID uint, status string) ([]models.JobApplication, error) {
	if err := s.ownsJob(userID, jobID); err != nil {
		return nil, err
	}
	q := s.DB.Where("job_id = ?", jobID).Preload("User").Order("applied_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var apps []models.JobApplication
	err := q.Find(&apps).Error
	return apps, err
}

// UpdateStatus moves one application through the pipeline. Ownership goes
// application -> job -> company -> caller.
func (s *ApplicationService) UpdateStatus(userID, applicationID uint, req *dtos.ApplicationStatusRequest) (*models.JobApplication, error) {
	if !validApplicationStatuses[req.Status] {
		return nil, ValidationError("status must be one of applied, reviewed, shortlisted, rejected, hired")
	}

	var app models.JobApplication
	err := s.DB.
		Joins("JOIN company_jobs ON company_jobs.id = job_applications.job_id").
		Joins("JOIN companies ON companies.id = company_jobs.company_id").
		Where("job_applications.id = ? AND companies.user_id = ?", applicationID, userID).
		First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.JobApplication{}).Where("id = ?", app.ID).
		Update("status", req.Status).Error; err != nil {
		return nil, err
	}
	app.Status = req.Status
	return &app, nil
}

// ApplicantProfile returns a student's aggregated profile, but only when
// that student has applied to at least one of the caller's jobs.
func (s *ApplicationService) ApplicantProfile(userID, studentID uint) (*StudentProfileView, error) {
	var n int64
	err := s.DB.Model(&models.JobApplication{}).
		Joins("JOIN company_jobs ON company_jobs.id = job_applications.job_id").
		Joins("JOIN companies ON companies.id = company_jobs.company_id").
		Where("job_applications.user_id = ? AND companies.user_id = ?", studentID, userID).
		Count(&n).Error
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return s.Profile.Get(studentID)
}

// Stats returns the total applications for one job plus a per-status
// breakdown.
func (s *ApplicationService) Stats(userID, jobID uint) (*dtos.ApplicationStats, error) {
	if err := s.ownsJob(userID, jobID); err != nil {
		return nil, err
	}

	type row struct {
		Status string
		N      int64
	}
	var rows []row
	err := s.DB.Model(&models.JobApplication{}).
		Select("status, COUNT(*) AS n").
		Where("job_id = ?", jobID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &dtos.ApplicationStats{ByStatus: map[string]int64{}}
	for status := range validApplicationStatuses {
		stats.ByStatus[status] = 0
	}
	for _, r := range rows {
		stats.ByStatus[r.Status] = r.N
		stats.Total += r.N
	}
	return stats, nil
}

func (s *ApplicationService) ownsJob(userID, jobID uint) error {
	var n int64
	err := s.DB.Model(&models.CompanyJob{}).
		Joins("JOIN companies ON companies.id = company_jobs.company_id").
		Where("company_jobs.id = ? AND companies.user_id = ?", jobID, userID).
		Count(&n).Error
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
