package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vishal7007/MobileShop-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetStockSummary devuelve unidades totales en mano y su valor a precio de venta.
func (r *AnalyticsRepo) GetStockSummary(ctx context.Context) (int64, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(qty_on_hand), 0),
		       COALESCE(SUM(qty_on_hand * sell_price), 0)
		FROM products`
	var units int64
	var value decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&units, &value); err != nil {
		return 0, decimal.Zero, fmt.Errorf("stock summary: %w", err)
	}
	return units, value, nil
}

// GetSalesSummary devuelve el total vendido del rango [from, to) y su apertura cash/EMI.
func (r *AnalyticsRepo) GetSalesSummary(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0),
		       COALESCE(SUM(total_amount) FILTER (WHERE payment_type = 'cash'), 0),
		       COALESCE(SUM(total_amount) FILTER (WHERE payment_type = 'emi'), 0)
		FROM sales
		WHERE sale_datetime >= $1 AND sale_datetime < $2`
	var total, cash, emi decimal.Decimal
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&total, &cash, &emi); err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, fmt.Errorf("sales summary: %w", err)
	}
	return total, cash, emi, nil
}

// GetTopSellers devuelve los productos más vendidos del rango por unidades.
func (r *AnalyticsRepo) GetTopSellers(ctx context.Context, from, to time.Time, limit int) ([]repository.TopSellerResult, error) {
	query := `
		SELECT p.id, p.name, COALESCE(SUM(i.qty), 0), COALESCE(SUM(i.line_total), 0)
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		JOIN products p ON p.id = i.product_id
		WHERE s.sale_datetime >= $1 AND s.sale_datetime < $2
		GROUP BY p.id, p.name
		ORDER BY SUM(i.qty) DESC, p.name
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top sellers: %w", err)
	}
	defer rows.Close()
	var list []repository.TopSellerResult
	for rows.Next() {
		var t repository.TopSellerResult
		if err := rows.Scan(&t.ProductID, &t.ProductName, &t.UnitsSold, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan top seller: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
