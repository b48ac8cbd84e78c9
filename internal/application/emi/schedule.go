package emi

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vishal7007/MobileShop-api/internal/domain/entity"
)

// daysUntilFirstDue días hasta el primer vencimiento de cuota.
const daysUntilFirstDue = 30

// NewSchedule arma el plan de cuotas de una venta financiada.
// FinancedAmount = max(0, total - cuota inicial); la cuota mensual es el
// financiado dividido en partes iguales (la tasa de interés se registra de
// forma informativa, no se capitaliza). Primer vencimiento a 30 días.
func NewSchedule(saleID, companyID string, total, downPayment decimal.Decimal, tenureMonths int, interestRate float64, now time.Time) *entity.EmiDetail {
	financed := total.Sub(downPayment)
	if financed.IsNegative() {
		financed = decimal.Zero
	}
	months := tenureMonths
	if months < 1 {
		months = 1
	}
	emiAmount := financed.Div(decimal.NewFromInt(int64(months))).Round(2)
	nextDue := now.AddDate(0, 0, daysUntilFirstDue)
	return &entity.EmiDetail{
		ID:             uuid.New().String(),
		SaleID:         saleID,
		CompanyID:      companyID,
		DownPayment:    downPayment,
		FinancedAmount: financed,
		TenureMonths:   months,
		InterestRate:   interestRate,
		EmiAmount:      emiAmount,
		NextDueDate:    &nextDue,
	}
}
