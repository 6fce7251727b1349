package dtos

type UniversitySaveRequest struct {
	Name            *string `json:"name"`
	InstitutionType *string `json:"institution_type"`
	EstablishedYear *int    `json:"established_year"`
	Description     *string `json:"description"`
	Website         *string `json:"website"`
	Address         *string `json:"address"`
	City            *string `json:"city"`
	State           *string `json:"state"`
	Country         *string `json:"country"`
	Phone           *string `json:"phone"`
	ContactEmail    *string `json:"contact_email"`
}

type DepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	HeadName    string `json:"head_name"`
	Description string `json:"description"`
}

type ProgramRequest struct {
	Name          string   `json:"name" binding:"required"`
	Level         string   `json:"level"`
	DurationYears *int     `json:"duration_years"`
	AnnualFees    *float64 `json:"annual_fees"`
	Seats         *int     `json:"seats"`
}

type FacilityRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type PlacementRequest struct {
	AcademicYear     string   `json:"academic_year" binding:"required"`
	CompaniesVisited *int     `json:"companies_visited"`
	StudentsPlaced   *int     `json:"students_placed"`
	HighestPackage   *float64 `json:"highest_package"`
	AveragePackage   *float64 `json:"average_package"`
}

type RankingRequest struct {
	Agency   string `json:"agency" binding:"required"`
	Rank     *int   `json:"rank"`
	Year     *int   `json:"year"`
	Category string `json:"category"`
}

type ResearchRequest struct {
	Title           string `json:"title" binding:"required"`
	Authors         string `json:"authors"`
	PublicationYear *int   `json:"publication_year"`
	Journal         string `json:"journal"`
	PaperURL        string `json:"paper_url"`
}
