package dtos

// JobQuestionInput is one screening question on a job post.
type JobQuestionInput struct {
	Text     string `json:"text" binding:"required"`
	Required bool   `json:"required"`
}

type JobPublishRequest struct {
	Title string `json:"title" binding:"required"`

	// Optional Fields
	Location        string   `json:"location"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	WorkMode        string   `json:"work_mode"`
	PayShowBy       string   `json:"pay_show_by"`
	PayMin          *float64 `json:"pay_min"`
	PayMax          *float64 `json:"pay_max"`
	PayRate         string   `json:"pay_rate"`
	HiringCount     *int     `json:"hiring_count"`
	Description     string   `json:"description"`
	EducationLevel  string   `json:"education_level"`
	ExperienceLevel string   `json:"experience_level"`
	Status          string   `json:"status"` // Defaults to "draft" if empty

	JobTypes        []string           `json:"job_types"`
	Benefits        []string           `json:"benefits"`
	Languages       []string           `json:"languages"`
	Shifts          []string           `json:"shifts"`
	CustomQuestions []JobQuestionInput `json:"custom_questions"`
}

type ApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ApplicationStats is the per-job breakdown returned by the stats endpoint.
type ApplicationStats struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}
