// Package analytics contiene los casos de uso de reportes del negocio y el
// dashboard de la tienda.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vishal7007/MobileShop-api/internal/application/dto"
	"github.com/vishal7007/MobileShop-api/internal/domain/entity"
	"github.com/vishal7007/MobileShop-api/internal/domain/repository"
)

const dashboardTopSellers = 5 // número de productos en el widget de más vendidos

// DashboardUseCase genera el resumen del dashboard: stock actual, ventas del
// rango con apertura cash/EMI y los productos más vendidos.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO para el rango [from, to).
//
// Tres llamadas en paralelo:
//  1. GetStockSummary          → StockUnits + StockValue
//  2. GetSalesSummary(rango)   → TotalRevenue + CashRevenue + EmiRevenue
//  3. GetTopSellers(rango, 5)  → TopSellers
//
// Los ingresos (y el revenue por producto) solo se incluyen si el rol puede
// ver finanzas; para employee quedan fuera del JSON.
func (uc *DashboardUseCase) GetSummary(
	ctx context.Context,
	role entity.Role,
	from, to time.Time,
) (*dto.DashboardSummaryDTO, error) {
	type stockResult struct {
		units int64
		value decimal.Decimal
		err   error
	}
	type salesResult struct {
		total, cash, emi decimal.Decimal
		err              error
	}
	type topResult struct {
		rows []repository.TopSellerResult
		err  error
	}

	stockCh := make(chan stockResult, 1)
	salesCh := make(chan salesResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		units, value, err := uc.analyticsRepo.GetStockSummary(ctx)
		stockCh <- stockResult{units, value, err}
	}()
	go func() {
		total, cash, emi, err := uc.analyticsRepo.GetSalesSummary(ctx, from, to)
		salesCh <- salesResult{total, cash, emi, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetTopSellers(ctx, from, to, dashboardTopSellers)
		topCh <- topResult{rows, err}
	}()

	stock := <-stockCh
	sales := <-salesCh
	top := <-topCh

	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: resumen de stock: %w", stock.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: resumen de ventas: %w", sales.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: más vendidos: %w", top.err)
	}

	showMoney := role.CanViewFinancials()

	summary := &dto.DashboardSummaryDTO{
		StockUnits: stock.units,
		StockValue: stock.value.Round(2),
		TopSellers: make([]dto.TopSellerDTO, 0, len(top.rows)),
	}
	if showMoney {
		total := sales.total.Round(2)
		cash := sales.cash.Round(2)
		emi := sales.emi.Round(2)
		summary.TotalRevenue = &total
		summary.CashRevenue = &cash
		summary.EmiRevenue = &emi
	}
	for _, row := range top.rows {
		item := dto.TopSellerDTO{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			UnitsSold:   row.UnitsSold,
		}
		if showMoney {
			revenue := row.Revenue.Round(2)
			item.Revenue = &revenue
		}
		summary.TopSellers = append(summary.TopSellers, item)
	}
	return summary, nil
}

// DayRange devuelve [00:00 de t, 00:00 del día siguiente) en la zona de t.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// MonthRange devuelve [día 1 del mes de t, día 1 del mes siguiente) en la zona de t.
func MonthRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}
