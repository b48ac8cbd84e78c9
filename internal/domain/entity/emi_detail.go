package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmiDetail plan de cuotas (EMI) asociado a una venta financiada.
// FinancedAmount = total de la venta menos la cuota inicial; EmiAmount es la
// cuota mensual resultante.
type EmiDetail struct {
	ID             string
	SaleID         string
	CompanyID      string // financiera (FinanceCompany)
	DownPayment    decimal.Decimal
	FinancedAmount decimal.Decimal
	TenureMonths   int
	InterestRate   float64 // % anual informativo; no se capitaliza en la cuota
	EmiAmount      decimal.Decimal
	NextDueDate    *time.Time
}
