package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopSellerResult producto más vendido en un rango de fechas.
type TopSellerResult struct {
	ProductID   string
	ProductName string
	UnitsSold   int64
	Revenue     decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para el dashboard (DIP).
// Lecturas repetidas entre escrituras devuelven resultados idénticos.
type AnalyticsRepository interface {
	// GetStockSummary devuelve unidades totales en stock y su valor a precio de venta.
	GetStockSummary(ctx context.Context) (units int64, value decimal.Decimal, err error)
	// GetSalesSummary devuelve total vendido y la apertura cash/EMI del rango [from, to).
	GetSalesSummary(ctx context.Context, from, to time.Time) (total, cash, emi decimal.Decimal, err error)
	// GetTopSellers devuelve los productos más vendidos del rango, por unidades.
	GetTopSellers(ctx context.Context, from, to time.Time, limit int) ([]TopSellerResult, error)
}
