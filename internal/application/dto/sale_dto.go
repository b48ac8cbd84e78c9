package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest línea del carrito. UnitPrice en cero usa el precio de venta
// vigente del producto; un valor positivo lo sobreescribe para esta venta.
type SaleLineRequest struct {
	ProductID string          `json:"product_id"`
	Qty       int64           `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	IMEI      string          `json:"imei"` // opcional: override del IMEI del producto
}

// EmiRequest bloque EMI cuando payment_type es "emi".
type EmiRequest struct {
	CompanyID    string          `json:"company_id"`
	DownPayment  decimal.Decimal `json:"down_payment"`
	TenureMonths int             `json:"tenure_months"`
	InterestRate float64         `json:"interest_rate"`
}

// CreateSaleRequest checkout del punto de venta.
type CreateSaleRequest struct {
	CustomerPhone string            `json:"customer_phone"`
	CustomerName  string            `json:"customer_name"`
	PaymentType   string            `json:"payment_type"` // cash, emi
	Lines         []SaleLineRequest `json:"lines"`
	Emi           *EmiRequest       `json:"emi,omitempty"`
	Notes         string            `json:"notes"`
}

// SaleItemResponse línea vendida.
type SaleItemResponse struct {
	ProductID string          `json:"product_id"`
	IMEI      string          `json:"imei,omitempty"`
	Qty       int64           `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// SaleResponse venta confirmada.
type SaleResponse struct {
	ID           string             `json:"id"`
	SaleDatetime time.Time          `json:"sale_datetime"`
	CustomerID   string             `json:"customer_id"`
	PaymentType  string             `json:"payment_type"`
	TotalAmount  decimal.Decimal    `json:"total_amount"`
	Items        []SaleItemResponse `json:"items"`
	Emi          *EmiResponse       `json:"emi,omitempty"`
}
