package repository

import (
	"time"

	"github.com/vishal7007/MobileShop-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia del ledger (DIP).
// Los movimientos son append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
	List(from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	// SumByProduct devuelve la suma de ChangeQty del producto (replay de auditoría).
	SumByProduct(productID string) (int64, error)
}
