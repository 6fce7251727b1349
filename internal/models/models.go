package models

import (
	"time"

	"gorm.io/gorm"
)

// Account roles. Colleges and schools use the university profile shape.
const (
	RoleStudent    = "student"
	RoleCompany    = "company"
	RoleUniversity = "university"
)

// Job post lifecycle. The column stays free text; the API boundary only
// accepts these values.
const (
	JobStatusDraft     = "draft"
	JobStatusPublished = "published"
	JobStatusClosed    = "closed"
	JobStatusFilled    = "filled"
)

// Application pipeline states.
const (
	ApplicationStatusApplied     = "applied"
	ApplicationStatusReviewed    = "reviewed"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusHired       = "hired"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null" json:"role"`
}

// Company is the employer profile, at most one row per user.
type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	Name         string `gorm:"not null" json:"name"`
	Industry     string `json:"industry"`
	CompanyType  string `json:"company_type"`
	FoundedYear  *int   `json:"founded_year"`
	Description  string `gorm:"type:text" json:"description"`
	Headquarters string `json:"headquarters"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	Website      string `json:"website"`
	Phone        string `json:"phone"`
	ContactEmail string `json:"contact_email"`
	LogoURL      string `json:"logo_url"`
	BannerURL    string `json:"banner_url"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Company -> Jobs -> ...
	Jobs []CompanyJob `json:"jobs,omitempty"`
}

type CompanySocialLink struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CompanyID uint `gorm:"uniqueIndex;not null" json:"company_id"`

	LinkedIn  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`
	GitHub    string `json:"github"`
}

type CompanyJob struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID uint    `gorm:"index;not null" json:"company_id"`
	Company   Company `json:"company,omitempty"`

	Title    string `gorm:"not null" json:"title"`
	Location string `json:"location"`
	City     string `json:"city"`
	State    string `json:"state"`
	WorkMode string `json:"work_mode"`

	// PayShowBy selects how compensation is displayed: "Exact Amount",
	// "Range", "Starting Amount" or "Maximum Amount".
	PayShowBy string   `json:"pay_show_by"`
	PayMin    *float64 `json:"pay_min"`
	PayMax    *float64 `json:"pay_max"`
	PayRate   string   `json:"pay_rate"`

	HiringCount     *int   `json:"hiring_count"`
	Description     string `gorm:"type:text" json:"description"`
	EducationLevel  string `json:"education_level"`
	ExperienceLevel string `json:"experience_level"`
	Status          string `gorm:"default:'draft'" json:"status"`

	JobTypes     []JobType        `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"job_types,omitempty"`
	Benefits     []JobBenefit     `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"benefits,omitempty"`
	Languages    []JobLanguage    `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"languages,omitempty"`
	Shifts       []JobShift       `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"shifts,omitempty"`
	Questions    []JobQuestion    `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"custom_questions,omitempty"`
	Applications []JobApplication `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}

type JobType struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	JobID uint   `gorm:"index;not null" json:"job_id"`
	Value string `gorm:"not null" json:"value"`
}

type JobBenefit struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	JobID uint   `gorm:"index;not null" json:"job_id"`
	Value string `gorm:"not null" json:"value"`
}

type JobLanguage struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	JobID uint   `gorm:"index;not null" json:"job_id"`
	Value string `gorm:"not null" json:"value"`
}

type JobShift struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	JobID uint   `gorm:"index;not null" json:"job_id"`
	Value string `gorm:"not null" json:"value"`
}

type JobQuestion struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	JobID        uint   `gorm:"index;not null" json:"job_id"`
	QuestionText string `gorm:"not null" json:"question_text"`
	IsRequired   bool   `json:"is_required"`
}

// JobApplication links a student to a job post. One application per student
// per job, enforced by the composite unique index.
type JobApplication struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobID     uint      `gorm:"uniqueIndex:idx_job_applicant;not null" json:"job_id"`
	UserID    uint      `gorm:"uniqueIndex:idx_job_applicant;not null" json:"user_id"`
	User      User      `json:"applicant,omitempty"`
	Status    string    `gorm:"default:'applied'" json:"status"`
	AppliedAt time.Time `json:"applied_at"`
}

// Profile is the student profile row, at most one per user.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	State       string     `json:"state"`
	City        string     `json:"city"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Bio         string     `gorm:"type:text" json:"bio"`
	AvatarURL   string     `json:"avatar_url"`
	BannerURL   string     `json:"banner_url"`
}

type Education struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	School       string `gorm:"not null" json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartYear    *int   `json:"start_year"`
	EndYear      *int   `json:"end_year"`
	Grade        string `json:"grade"`
}

type Experience struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Title       string `gorm:"not null" json:"title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `gorm:"type:text" json:"description"`
}

type Certification struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Name          string `gorm:"not null" json:"name"`
	Authority     string `json:"authority"`
	IssueYear     *int   `json:"issue_year"`
	CredentialURL string `json:"credential_url"`
}

// Skill is a shared dictionary deduplicated by name; ownership lives on
// UserSkill. Removing a UserSkill never removes the Skill.
type Skill struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type UserSkill struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	UserID  uint  `gorm:"uniqueIndex:idx_user_skill;not null" json:"user_id"`
	SkillID uint  `gorm:"uniqueIndex:idx_user_skill;not null" json:"skill_id"`
	Skill   Skill `json:"skill,omitempty"`
}

// University covers universities, colleges and schools, one row per user.
// ReferralCode is issued once on creation and never regenerated.
type University struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	Name            string `json:"name"`
	InstitutionType string `json:"institution_type"`
	EstablishedYear *int   `json:"established_year"`
	Description     string `gorm:"type:text" json:"description"`
	Website         string `json:"website"`
	Address         string `json:"address"`
	City            string `json:"city"`
	State           string `json:"state"`
	Country         string `json:"country"`
	Phone           string `json:"phone"`
	ContactEmail    string `json:"contact_email"`
	LogoURL         string `json:"logo_url"`
	BannerURL       string `json:"banner_url"`
	ReferralCode    string `gorm:"uniqueIndex;size:6" json:"referral_code"`
}

type Department struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UniversityID uint   `gorm:"index;not null" json:"university_id"`
	Name         string `gorm:"not null" json:"name"`
	HeadName     string `json:"head_name"`
	Description  string `json:"description"`
}

type Program struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	UniversityID  uint     `gorm:"index;not null" json:"university_id"`
	Name          string   `gorm:"not null" json:"name"`
	Level         string   `json:"level"`
	DurationYears *int     `json:"duration_years"`
	AnnualFees    *float64 `json:"annual_fees"`
	Seats         *int     `json:"seats"`
}

// Facility names are unique within a university; the duplicate-key error is
// surfaced to the caller as a 400.
type Facility struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UniversityID uint   `gorm:"uniqueIndex:idx_university_facility;not null" json:"university_id"`
	Name         string `gorm:"uniqueIndex:idx_university_facility;not null" json:"name"`
	Description  string `json:"description"`
}

type Placement struct {
	ID               uint     `gorm:"primaryKey" json:"id"`
	UniversityID     uint     `gorm:"index;not null" json:"university_id"`
	AcademicYear     string   `gorm:"not null" json:"academic_year"`
	CompaniesVisited *int     `json:"companies_visited"`
	StudentsPlaced   *int     `json:"students_placed"`
	HighestPackage   *float64 `json:"highest_package"`
	AveragePackage   *float64 `json:"average_package"`
}

type Ranking struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UniversityID uint   `gorm:"index;not null" json:"university_id"`
	Agency       string `gorm:"not null" json:"agency"`
	Rank         *int   `json:"rank"`
	Year         *int   `json:"year"`
	Category     string `json:"category"`
}

type ResearchWork struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	UniversityID    uint   `gorm:"index;not null" json:"university_id"`
	Title           string `gorm:"not null" json:"title"`
	Authors         string `json:"authors"`
	PublicationYear *int   `json:"publication_year"`
	Journal         string `json:"journal"`
	PaperURL        string `json:"paper_url"`
}
