package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType forma de pago cerrada.
type PaymentType string

const (
	PaymentCash PaymentType = "cash"
	PaymentEMI  PaymentType = "emi"
)

// Valid reporta si la forma de pago pertenece al conjunto cerrado.
func (p PaymentType) Valid() bool {
	return p == PaymentCash || p == PaymentEMI
}

// Sale cabecera de una venta del punto de venta.
// TotalAmount es la suma de los LineTotal de sus ítems.
type Sale struct {
	ID            string
	SaleDatetime  time.Time
	UserID        string
	CustomerID    string
	PaymentType   PaymentType
	TotalAmount   decimal.Decimal
	Notes         string
	BillImagePath string
}

// SaleItem línea de una venta. IMEI es una foto del identificador al momento
// de vender (el producto puede cambiar de IMEI después).
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	IMEI      string
	Qty       int64
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}
