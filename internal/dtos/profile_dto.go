package dtos

type ProfileSaveRequest struct {
	State       *string `json:"state"`
	City        *string `json:"city"`
	DateOfBirth *string `json:"date_of_birth"` // "2006-01-02"
	Bio         *string `json:"bio"`
}

type EducationRequest struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartYear    *int   `json:"start_year"`
	EndYear      *int   `json:"end_year"`
	Grade        string `json:"grade"`
}

type ExperienceRequest struct {
	Title       string `json:"title" binding:"required"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

type CertificationRequest struct {
	Name          string `json:"name" binding:"required"`
	Authority     string `json:"authority"`
	IssueYear     *int   `json:"issue_year"`
	CredentialURL string `json:"credential_url"`
}

type SkillRequest struct {
	Name string `json:"name" binding:"required"`
}
