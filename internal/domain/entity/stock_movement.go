package entity

import "time"

// MovementReason razón cerrada de un movimiento de stock.
type MovementReason string

const (
	ReasonPurchase   MovementReason = "purchase"
	ReasonSale       MovementReason = "sale"
	ReasonAdjustment MovementReason = "adjustment"
	ReasonReturn     MovementReason = "return"
)

// Valid reporta si la razón pertenece al conjunto cerrado.
func (r MovementReason) Valid() bool {
	switch r {
	case ReasonPurchase, ReasonSale, ReasonAdjustment, ReasonReturn:
		return true
	}
	return false
}

// StockMovement es un hecho inmutable del ledger: un cambio de cantidad de un
// producto. Append-only; nunca se actualiza ni se borra. La suma de ChangeQty
// de un producto siempre coincide con su QtyOnHand.
type StockMovement struct {
	ID        string
	ProductID string
	ChangeQty int64 // con signo: negativo para ventas, positivo para compras/devoluciones
	Reason    MovementReason
	RefSaleID string // opcional: venta que originó el movimiento
	UserID    string // opcional: usuario que ejecutó la operación
	CreatedAt time.Time
}
