package dto

import "github.com/shopspring/decimal"

// TopSellerDTO producto más vendido del rango.
type TopSellerDTO struct {
	ProductID   string           `json:"product_id"`
	ProductName string           `json:"product_name"`
	UnitsSold   int64            `json:"units_sold"`
	Revenue     *decimal.Decimal `json:"revenue,omitempty"` // solo admin/owner
}

// DashboardSummaryDTO resumen del dashboard para un rango de fechas.
// Los campos de ingresos solo se llenan para admin/owner.
type DashboardSummaryDTO struct {
	StockUnits   int64            `json:"stock_units"`
	StockValue   decimal.Decimal  `json:"stock_value"`
	TotalRevenue *decimal.Decimal `json:"total_revenue,omitempty"`
	CashRevenue  *decimal.Decimal `json:"cash_revenue,omitempty"`
	EmiRevenue   *decimal.Decimal `json:"emi_revenue,omitempty"`
	TopSellers   []TopSellerDTO   `json:"top_sellers"`
}
