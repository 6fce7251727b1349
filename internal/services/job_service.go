package services

import (
	"errors"
	"strings"
	"time"

	"github.com/campushire/campushire/internal/dtos"
	"github.com/campushire/campushire/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

var validJobStatuses = map[string]bool{
	models.JobStatusDraft:     true,
	models.JobStatusPublished: true,
	models.JobStatusClosed:    true,
	models.JobStatusFilled:    true,
}

// Publish creates a job post plus all its child rows in one transaction, so
// a failure partway through never leaves a half-written post.
func (s *JobService) Publish(userID uint, req *dtos.JobPublishRequest) (*models.CompanyJob, error) {
	companyID, err := s.companyIDFor(userID)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.JobStatusDraft
	}
	if !validJobStatuses[status] {
		return nil, ValidationError("status must be one of draft, published, closed, filled")
	}

	job := &models.CompanyJob{
		CompanyID:       companyID,
		Title:           req.Title,
		Location:        req.Location,
		City:            req.City,
		State:           req.State,
		WorkMode:        req.WorkMode,
		PayShowBy:       req.PayShowBy,
		PayMin:          req.PayMin,
		PayMax:          req.PayMax,
		PayRate:         req.PayRate,
		HiringCount:     req.HiringCount,
		Description:     req.Description,
		EducationLevel:  req.EducationLevel,
		ExperienceLevel: req.ExperienceLevel,
		Status:          status,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(job).Error; err != nil {
			return err
		}
		return insertJobChildren(tx, job.ID, req)
	})
	if err != nil {
		return nil, err
	}
	return job, nil
}

// List returns all of the caller's job posts, newest first.
func (s *JobService) List(userID uint) ([]models.CompanyJob, error) {
	companyID, err := s.companyIDFor(userID)
	if err != nil {
		return nil, err
	}
	var jobs []models.CompanyJob
	err = s.DB.Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// Get fetches one job with its child collections. Ownership is checked via a
// join, so "not yours" and "does not exist" are indistinguishable.
func (s *JobService) Get(userID, jobID uint) (*models.CompanyJob, error) {
	var job models.CompanyJob
	err := s.DB.
		Joins("JOIN companies ON companies.id = company_jobs.company_id").
		Where("company_jobs.id = ? AND companies.user_id = ?", jobID, userID).
		Preload("JobTypes").Preload("Benefits").Preload("Languages").
		Preload("Shifts").Preload("Questions").
		First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Update rewrites the job row and replaces every child collection wholesale
// (delete-all-then-reinsert) inside one transaction.
func (s *JobService) Update(userID, jobID uint, req *dtos.JobPublishRequest) (*models.CompanyJob, error) {
	job, err := s.Get(userID, jobID)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = job.Status
	}
	if !validJobStatuses[status] {
		return nil, ValidationError("status must be one of draft, published, closed, filled")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":            req.Title,
			"location":         req.Location,
			"city":             req.City,
			"state":            req.State,
			"work_mode":        req.WorkMode,
			"pay_show_by":      req.PayShowBy,
			"pay_min":          req.PayMin,
			"pay_max":          req.PayMax,
			"pay_rate":         req.PayRate,
			"hiring_count":     req.HiringCount,
			"description":      req.Description,
			"education_level":  req.EducationLevel,
			"experience_level": req.ExperienceLevel,
			"status":           status,
		}
		if err := tx.Model(&models.CompanyJob{}).Where("id = ?", jobID).Updates(updates).Error; err != nil {
			return err
		}
		for _, child := range []interface{}{
			&models.JobType{}, &models.JobBenefit{}, &models.JobLanguage{},
			&models.JobShift{}, &models.JobQuestion{},
		} {
			if err := tx.Where("job_id = ?", jobID).Delete(child).Error; err != nil {
				return err
			}
		}
		return insertJobChildren(tx, jobID, req)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID, jobID)
}

// Delete removes one job through the same ownership join, taking the child
// rows with it. 404 covers both "not found" and "not owned".
func (s *JobService) Delete(userID, jobID uint) error {
	if _, err := s.Get(userID, jobID); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for _, child := range []interface{}{
			&models.JobType{}, &models.JobBenefit{}, &models.JobLanguage{},
			&models.JobShift{}, &models.JobQuestion{}, &models.JobApplication{},
		} {
			if err := tx.Where("job_id = ?", jobID).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.CompanyJob{}, jobID).Error
	})
}

// BrowsePublished lists published posts for the public job board, newest
// first, with optional location and job-type filters.
func (s *JobService) BrowsePublished(location, jobType string) ([]models.CompanyJob, error) {
	q := s.DB.Where("status = ?", models.JobStatusPublished).
		Preload("JobTypes").
		Order("created_at DESC")
	if location != "" {
		q = q.Where("location LIKE ? OR city LIKE ?", "%"+location+"%", "%"+location+"%")
	}
	if jobType != "" {
		q = q.Where("id IN (?)", s.DB.Model(&models.JobType{}).Select("job_id").Where("value = ?", jobType))
	}
	var jobs []models.CompanyJob
	err := q.Find(&jobs).Error
	return jobs, err
}

// GetPublished fetches one published job with children for public viewing.
func (s *JobService) GetPublished(jobID uint) (*models.CompanyJob, error) {
	var job models.CompanyJob
	err := s.DB.Where("id = ? AND status = ?", jobID, models.JobStatusPublished).
		Preload("JobTypes").Preload("Benefits").Preload("Languages").
		Preload("Shifts").Preload("Questions").
		First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Apply records a student's application to a published job. A second apply
// from the same student hits the unique index and comes back as a 400.
func (s *JobService) Apply(studentID, jobID uint) (*models.JobApplication, error) {
	if _, err := s.GetPublished(jobID); err != nil {
		return nil, err
	}
	app := &models.JobApplication{
		JobID:     jobID,
		UserID:    studentID,
		Status:    models.ApplicationStatusApplied,
		AppliedAt: time.Now(),
	}
	if err := s.DB.Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ValidationError("you have already applied to this job")
		}
		return nil, err
	}
	return app, nil
}

func (s *JobService) companyIDFor(userID uint) (uint, error) {
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

// insertJobChildren bulk inserts the array children and the screening
// questions for one job. Array values are deduplicated case-insensitively;
// question order and repeats are kept as submitted.
func insertJobChildren(tx *gorm.DB, jobID uint, req *dtos.JobPublishRequest) error {
	if vals := dedupeValues(req.JobTypes); len(vals) > 0 {
		rows := make([]models.JobType, len(vals))
		for i, v := range vals {
			rows[i] = models.JobType{JobID: jobID, Value: v}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	if vals := dedupeValues(req.Benefits); len(vals) > 0 {
		rows := make([]models.JobBenefit, len(vals))
		for i, v := range vals {
			rows[i] = models.JobBenefit{JobID: jobID, Value: v}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	if vals := dedupeValues(req.Languages); len(vals) > 0 {
		rows := make([]models.JobLanguage, len(vals))
		for i, v := range vals {
			rows[i] = models.JobLanguage{JobID: jobID, Value: v}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	if vals := dedupeValues(req.Shifts); len(vals) > 0 {
		rows := make([]models.JobShift, len(vals))
		for i, v := range vals {
			rows[i] = models.JobShift{JobID: jobID, Value: v}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	for _, q := range req.CustomQuestions {
		row := models.JobQuestion{JobID: jobID, QuestionText: q.Text, IsRequired: q.Required}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func dedupeValues(values []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
