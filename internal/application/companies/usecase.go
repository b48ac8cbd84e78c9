// Package companies administra el catálogo de financieras que respaldan
// ventas EMI.
package companies

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/vishal7007/MobileShop-api/internal/application/dto"
	"github.com/vishal7007/MobileShop-api/internal/domain"
	"github.com/vishal7007/MobileShop-api/internal/domain/entity"
	"github.com/vishal7007/MobileShop-api/internal/domain/repository"
)

// UseCase alta y listado de financieras.
type UseCase struct {
	companyRepo repository.FinanceCompanyRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(companyRepo repository.FinanceCompanyRepository) *UseCase {
	return &UseCase{companyRepo: companyRepo}
}

// Create registra una financiera activa. El nombre es único.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	name := strings.TrimSpace(in.Name)
	companyType := entity.CompanyType(in.Type)
	if name == "" || !companyType.Valid() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.companyRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	company := &entity.FinanceCompany{
		ID:     uuid.New().String(),
		Name:   name,
		Type:   companyType,
		Active: true,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// ListActive devuelve las financieras activas (selector del punto de venta).
func (uc *UseCase) ListActive(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.companyRepo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCompanyResponse(c))
	}
	return out, nil
}

func toCompanyResponse(c *entity.FinanceCompany) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:     c.ID,
		Name:   c.Name,
		Type:   string(c.Type),
		Active: c.Active,
	}
}
