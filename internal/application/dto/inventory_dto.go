package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest movimiento manual: purchase, adjustment o return.
// Delta lleva signo; para sale se usa el flujo de ventas, no este endpoint.
type RegisterMovementRequest struct {
	ProductID string `json:"product_id"`
	Delta     int64  `json:"delta"`
	Reason    string `json:"reason"` // purchase, adjustment, return
}

// MovementResponse movimiento registrado en el ledger.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	ChangeQty int64     `json:"change_qty"`
	Reason    string    `json:"reason"`
	RefSaleID string    `json:"ref_sale_id,omitempty"`
	UserID    string    `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ImportRow fila de importación masiva de stock (CSV/Excel ya parseado por el
// cliente). Requeridos: name, category, price, qty. Opcionales: sku, imei.
type ImportRow struct {
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Qty      int64           `json:"qty"`
	IMEI     string          `json:"imei"`
}

// ImportRequest lote de filas; cada fila se procesa de forma independiente.
type ImportRequest struct {
	Rows []ImportRow `json:"rows"`
}

// ImportRowError fila rechazada con su motivo.
type ImportRowError struct {
	Row     int    `json:"row"` // índice 0-based dentro del lote
	Message string `json:"message"`
}

// ImportResponse resultado del lote: las filas hermanas de una fila mala
// igual se procesan.
type ImportResponse struct {
	Added   int              `json:"added"`
	Updated int              `json:"updated"`
	Skipped int              `json:"skipped"`
	Errors  []ImportRowError `json:"errors,omitempty"`
}

// StockSummaryResponse unidades totales y valor del stock a precio de venta.
type StockSummaryResponse struct {
	Units int64           `json:"units"`
	Value decimal.Decimal `json:"value"`
}
