package repository

import (
	"github.com/shopspring/decimal"
	"github.com/vishal7007/MobileShop-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateQty y UpdateSellPrice existen para uso exclusivo del ledger de stock;
// Update nunca toca QtyOnHand.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByIMEI(imei string) (*entity.Product, error)
	GetBySKUAndName(sku, name string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE)
	// para re-verificar la cantidad dentro de la misma transacción.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQty(productID string, qty int64) error
	UpdateSellPrice(productID string, price decimal.Decimal) error
	List(limit, offset int) ([]*entity.Product, error)
}
