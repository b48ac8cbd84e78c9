package dto

// CreateCompanyRequest alta de financiera para ventas EMI.
type CreateCompanyRequest struct {
	Name string `json:"name"`
	Type string `json:"type"` // NBFC, Bank, StoreFinance, Other
}

// CompanyResponse representación de una financiera.
type CompanyResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Active bool   `json:"active"`
}
