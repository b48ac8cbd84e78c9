package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmiResponse plan de cuotas creado junto a una venta.
type EmiResponse struct {
	ID             string          `json:"id"`
	SaleID         string          `json:"sale_id"`
	CompanyID      string          `json:"company_id"`
	DownPayment    decimal.Decimal `json:"down_payment"`
	FinancedAmount decimal.Decimal `json:"financed_amount"`
	TenureMonths   int             `json:"tenure_months"`
	InterestRate   float64         `json:"interest_rate"`
	EmiAmount      decimal.Decimal `json:"emi_amount"`
	NextDueDate    *time.Time      `json:"next_due_date,omitempty"`
}

// EmiTrackerEntry fila del tracker de EMI. Los montos solo se incluyen para
// admin/owner; para employee van en cero y omitidos.
type EmiTrackerEntry struct {
	SaleID       string           `json:"sale_id"`
	CustomerName string           `json:"customer_name"`
	Phone        string           `json:"phone,omitempty"`
	CompanyName  string           `json:"company_name"`
	TenureMonths int              `json:"tenure_months"`
	NextDueDate  *time.Time       `json:"next_due_date,omitempty"`
	DownPayment  *decimal.Decimal `json:"down_payment,omitempty"`
	Financed     *decimal.Decimal `json:"financed_amount,omitempty"`
	EmiAmount    *decimal.Decimal `json:"emi_amount,omitempty"`
	InterestRate *float64         `json:"interest_rate,omitempty"`
}
