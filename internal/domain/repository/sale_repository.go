package repository

import (
	"github.com/vishal7007/MobileShop-api/internal/domain/entity"
)

// SaleItemWithContext ítem de venta acompañado de su venta y cliente, ya
// materializados (sin traversal perezoso estilo ORM).
type SaleItemWithContext struct {
	Item     entity.SaleItem
	Sale     entity.Sale
	Customer entity.Customer
}

// SaleRepository define el puerto de persistencia para ventas (DIP).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error)
	// FindItemsByIMEI busca ítems vendidos con ese IMEI, con venta y cliente
	// incluidos (lookup del escáner de facturas; fuera de la ruta de escritura).
	FindItemsByIMEI(imei string) ([]*SaleItemWithContext, error)
}

// EmiRepository define el puerto de persistencia para planes EMI (DIP).
type EmiRepository interface {
	Create(detail *entity.EmiDetail) error
	GetBySaleID(saleID string) (*entity.EmiDetail, error)
	// ListWithContext devuelve los planes con venta, cliente y financiera ya
	// materializados, ordenados por próxima fecha de vencimiento.
	ListWithContext(limit, offset int) ([]*EmiWithContext, error)
}

// EmiWithContext plan EMI con sus entidades relacionadas materializadas.
type EmiWithContext struct {
	Detail   entity.EmiDetail
	Sale     entity.Sale
	Customer entity.Customer
	Company  entity.FinanceCompany
}
