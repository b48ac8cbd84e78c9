package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/vishal7007/MobileShop-api/internal/domain/entity"
	"github.com/vishal7007/MobileShop-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del ledger de movimientos sobre PostgreSQL.
// La tabla es append-only: este adaptador no expone UPDATE ni DELETE.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create inserta un movimiento del ledger.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, change_qty, reason, ref_sale_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, m.ChangeQty, m.Reason, m.RefSaleID, m.UserID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByProduct devuelve los movimientos de un producto, los más recientes primero.
func (r *StockMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, change_qty, reason, COALESCE(ref_sale_id, ''), COALESCE(user_id, ''), created_at
		FROM stock_movements WHERE product_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// List devuelve movimientos en el rango [from, to) opcional, los más recientes primero.
func (r *StockMovementRepo) List(from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, change_qty, reason, COALESCE(ref_sale_id, ''), COALESCE(user_id, ''), created_at
		FROM stock_movements
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
		  AND ($2::timestamptz IS NULL OR created_at < $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// SumByProduct suma los change_qty de un producto (replay de auditoría:
// siempre debe coincidir con products.qty_on_hand).
func (r *StockMovementRepo) SumByProduct(productID string) (int64, error) {
	var sum int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(change_qty), 0) FROM stock_movements WHERE product_id = $1`,
		productID).Scan(&sum)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("sum movements: %w", err)
	}
	return sum, nil
}

func scanMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.ChangeQty, &m.Reason, &m.RefSaleID, &m.UserID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
