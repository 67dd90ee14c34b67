package requests

// CheckNameRequest body của POST /v1/companies/check-name
type CheckNameRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
}

// SuggestNameRequest body của POST /v1/companies/suggest-name
type SuggestNameRequest struct {
	Keyword string `json:"keyword" binding:"required"`
}
