package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta manual de producto. Si InitialQty > 0 el ledger
// registra un movimiento purchase por esa cantidad.
type CreateProductRequest struct {
	SKU        string          `json:"sku"`
	IMEI       string          `json:"imei"`
	Name       string          `json:"name"`
	Category   string          `json:"category"` // phone, accessory, service
	CostPrice  decimal.Decimal `json:"cost_price"`
	SellPrice  decimal.Decimal `json:"sell_price"`
	InitialQty int64           `json:"initial_qty"`
}

// ProductResponse representación de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	SKU       string          `json:"sku,omitempty"`
	IMEI      string          `json:"imei,omitempty"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	CostPrice decimal.Decimal `json:"cost_price"`
	SellPrice decimal.Decimal `json:"sell_price"`
	QtyOnHand int64           `json:"qty_on_hand"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
