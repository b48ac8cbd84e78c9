package repository

import "github.com/vishal7007/MobileShop-api/internal/domain/entity"

// FinanceCompanyRepository define el puerto de persistencia para financieras (DIP).
type FinanceCompanyRepository interface {
	Create(company *entity.FinanceCompany) error
	GetByID(id string) (*entity.FinanceCompany, error)
	GetByName(name string) (*entity.FinanceCompany, error)
	ListActive() ([]*entity.FinanceCompany, error)
}
