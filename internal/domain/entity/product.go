package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductCategory categoría cerrada de producto.
type ProductCategory string

const (
	CategoryPhone     ProductCategory = "phone"
	CategoryAccessory ProductCategory = "accessory"
	CategoryService   ProductCategory = "service"
)

// Valid reporta si la categoría pertenece al conjunto cerrado.
func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryPhone, CategoryAccessory, CategoryService:
		return true
	}
	return false
}

// Product representa un producto de la tienda (celular, accesorio o servicio).
// QtyOnHand nunca es negativo y solo lo escribe el ledger de stock vía movimientos;
// ningún otro componente debe mutarlo directamente.
type Product struct {
	ID        string
	SKU       string
	IMEI      string // opcional; único cuando está presente (celulares)
	Name      string
	Category  ProductCategory
	CostPrice decimal.Decimal
	SellPrice decimal.Decimal
	QtyOnHand int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
