package dto

import "github.com/shopspring/decimal"

// ScanBillRequest entrada del escáner de facturas: el cliente envía el texto
// que ya extrajo (OCR externo) y el nombre del archivo como fallback.
type ScanBillRequest struct {
	Text     string `json:"text"`
	Filename string `json:"filename"`
}

// ScanMatch ítem de venta que coincide con un IMEI encontrado.
type ScanMatch struct {
	SaleID       string           `json:"sale_id"`
	CustomerName string           `json:"customer_name"`
	Phone        string           `json:"phone,omitempty"`
	PaymentType  string           `json:"payment_type"`
	IMEI         string           `json:"imei"`
	Amount       *decimal.Decimal `json:"amount,omitempty"` // solo admin/owner
}

// ScanBillResponse IMEIs encontrados y ventas asociadas.
type ScanBillResponse struct {
	IMEIs   []string    `json:"imeis"`
	Matches []ScanMatch `json:"matches"`
}
