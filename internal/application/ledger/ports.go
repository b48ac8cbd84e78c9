package ledger

import (
	"context"

	"github.com/vishal7007/MobileShop-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del ledger: la
// actualización de qty_on_hand y el movimiento se confirman juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
