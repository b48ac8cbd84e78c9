package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishal7007/MobileShop-api/internal/application/analytics"
	"github.com/vishal7007/MobileShop-api/internal/domain/entity"
	"github.com/vishal7007/MobileShop-api/internal/domain/repository"
)

type fakeAnalyticsRepo struct {
	stockUnits int64
	stockValue decimal.Decimal
	total      decimal.Decimal
	cash       decimal.Decimal
	emi        decimal.Decimal
	top        []repository.TopSellerResult
	err        error
}

func (r *fakeAnalyticsRepo) GetStockSummary(ctx context.Context) (int64, decimal.Decimal, error) {
	return r.stockUnits, r.stockValue, r.err
}

func (r *fakeAnalyticsRepo) GetSalesSummary(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, decimal.Decimal, error) {
	return r.total, r.cash, r.emi, r.err
}

func (r *fakeAnalyticsRepo) GetTopSellers(ctx context.Context, from, to time.Time, limit int) ([]repository.TopSellerResult, error) {
	return r.top, r.err
}

func fixtureRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{
		stockUnits: 42,
		stockValue: decimal.NewFromInt(504000),
		total:      decimal.NewFromInt(50000),
		cash:       decimal.NewFromInt(30000),
		emi:        decimal.NewFromInt(20000),
		top: []repository.TopSellerResult{
			{ProductID: "prod-a", ProductName: "Demo Phone A", UnitsSold: 4, Revenue: decimal.NewFromInt(48000)},
			{ProductID: "prod-b", ProductName: "Fast Charger", UnitsSold: 3, Revenue: decimal.NewFromInt(2000)},
		},
	}
}

func TestGetSummary_AdminVeIngresos(t *testing.T) {
	uc := analytics.NewDashboardUseCase(fixtureRepo())
	from, to := analytics.DayRange(time.Now())

	summary, err := uc.GetSummary(context.Background(), entity.RoleAdmin, from, to)
	require.NoError(t, err)

	assert.Equal(t, int64(42), summary.StockUnits)
	assert.True(t, decimal.NewFromInt(504000).Equal(summary.StockValue))
	require.NotNil(t, summary.TotalRevenue)
	assert.True(t, decimal.NewFromInt(50000).Equal(*summary.TotalRevenue))
	require.NotNil(t, summary.CashRevenue)
	assert.True(t, decimal.NewFromInt(30000).Equal(*summary.CashRevenue))
	require.NotNil(t, summary.EmiRevenue)
	assert.True(t, decimal.NewFromInt(20000).Equal(*summary.EmiRevenue))

	require.Len(t, summary.TopSellers, 2)
	assert.Equal(t, "Demo Phone A", summary.TopSellers[0].ProductName)
	require.NotNil(t, summary.TopSellers[0].Revenue)
	assert.True(t, decimal.NewFromInt(48000).Equal(*summary.TopSellers[0].Revenue))
}

func TestGetSummary_EmployeeSinIngresos(t *testing.T) {
	uc := analytics.NewDashboardUseCase(fixtureRepo())
	from, to := analytics.DayRange(time.Now())

	summary, err := uc.GetSummary(context.Background(), entity.RoleEmployee, from, to)
	require.NoError(t, err)

	// El stock sigue visible: el employee lo necesita para operar.
	assert.Equal(t, int64(42), summary.StockUnits)
	assert.Nil(t, summary.TotalRevenue)
	assert.Nil(t, summary.CashRevenue)
	assert.Nil(t, summary.EmiRevenue)
	require.Len(t, summary.TopSellers, 2)
	assert.Equal(t, int64(4), summary.TopSellers[0].UnitsSold)
	assert.Nil(t, summary.TopSellers[0].Revenue)
}

func TestGetSummary_PropagaErrorDelRepositorio(t *testing.T) {
	repo := fixtureRepo()
	repo.err = errors.New("conexión perdida")
	uc := analytics.NewDashboardUseCase(repo)
	from, to := analytics.MonthRange(time.Now())

	_, err := uc.GetSummary(context.Background(), entity.RoleOwner, from, to)
	assert.Error(t, err)
}

func TestDayRange(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	at := time.Date(2026, 8, 31, 15, 42, 0, 0, ist)

	from, to := analytics.DayRange(at)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, ist), from)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, ist), to)
}

func TestMonthRange(t *testing.T) {
	at := time.Date(2026, 12, 15, 8, 0, 0, 0, time.UTC)

	from, to := analytics.MonthRange(at)
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), to)
}
