package emi

import (
	"context"

	"github.com/vishal7007/MobileShop-api/internal/application/dto"
	"github.com/vishal7007/MobileShop-api/internal/domain/entity"
	"github.com/vishal7007/MobileShop-api/internal/domain/repository"
)

// TrackerUseCase lista los planes EMI activos con cliente y financiera,
// ordenados por próximo vencimiento.
type TrackerUseCase struct {
	emiRepo repository.EmiRepository
}

// NewTrackerUseCase construye el caso de uso.
func NewTrackerUseCase(emiRepo repository.EmiRepository) *TrackerUseCase {
	return &TrackerUseCase{emiRepo: emiRepo}
}

// List devuelve el tracker de cuotas. Los montos (cuota inicial, financiado,
// cuota mensual, tasa) solo se incluyen si el rol del solicitante puede ver
// finanzas; para employee se omiten del JSON.
func (uc *TrackerUseCase) List(ctx context.Context, role entity.Role, page dto.PageRequest) ([]dto.EmiTrackerEntry, error) {
	rows, err := uc.emiRepo.ListWithContext(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	showMoney := role.CanViewFinancials()

	entries := make([]dto.EmiTrackerEntry, 0, len(rows))
	for _, row := range rows {
		entry := dto.EmiTrackerEntry{
			SaleID:       row.Sale.ID,
			CustomerName: row.Customer.FullName,
			Phone:        row.Customer.Phone,
			CompanyName:  row.Company.Name,
			TenureMonths: row.Detail.TenureMonths,
			NextDueDate:  row.Detail.NextDueDate,
		}
		if showMoney {
			down := row.Detail.DownPayment
			financed := row.Detail.FinancedAmount
			amount := row.Detail.EmiAmount
			rate := row.Detail.InterestRate
			entry.DownPayment = &down
			entry.Financed = &financed
			entry.EmiAmount = &amount
			entry.InterestRate = &rate
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
