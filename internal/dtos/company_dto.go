package dtos

// CompanySaveRequest carries the upsertable company fields. Pointers
// distinguish "not sent" from "sent empty" so omitted fields keep their
// previously saved values.
type CompanySaveRequest struct {
	Name string `json:"name" binding:"required"`

	Industry     *string `json:"industry"`
	CompanyType  *string `json:"company_type"`
	FoundedYear  *int    `json:"founded_year"`
	Description  *string `json:"description"`
	Headquarters *string `json:"headquarters"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Country      *string `json:"country"`
	Website      *string `json:"website"`
	Phone        *string `json:"phone"`
	ContactEmail *string `json:"contact_email"`
}

type SocialLinksRequest struct {
	LinkedIn  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`
	GitHub    string `json:"github"`
}
