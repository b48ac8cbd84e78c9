package entity

// CompanyType tipo cerrado de financiera.
type CompanyType string

const (
	CompanyNBFC         CompanyType = "NBFC"
	CompanyBank         CompanyType = "Bank"
	CompanyStoreFinance CompanyType = "StoreFinance"
	CompanyOther        CompanyType = "Other"
)

// Valid reporta si el tipo pertenece al conjunto cerrado.
func (t CompanyType) Valid() bool {
	switch t {
	case CompanyNBFC, CompanyBank, CompanyStoreFinance, CompanyOther:
		return true
	}
	return false
}

// FinanceCompany representa una financiera (NBFC, banco, etc.) que respalda
// ventas a cuotas (EMI).
type FinanceCompany struct {
	ID     string
	Name   string // único
	Type   CompanyType
	Active bool
}
