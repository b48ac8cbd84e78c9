package scan_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishal7007/MobileShop-api/internal/application/dto"
	"github.com/vishal7007/MobileShop-api/internal/application/scan"
	"github.com/vishal7007/MobileShop-api/internal/domain/entity"
	"github.com/vishal7007/MobileShop-api/internal/domain/repository"
)

type fakeSaleRepo struct {
	byIMEI map[string][]*repository.SaleItemWithContext
}

func (r *fakeSaleRepo) Create(*entity.Sale) error                           { return nil }
func (r *fakeSaleRepo) CreateItem(*entity.SaleItem) error                   { return nil }
func (r *fakeSaleRepo) GetByID(string) (*entity.Sale, error)                { return nil, nil }
func (r *fakeSaleRepo) GetItemsBySaleID(string) ([]*entity.SaleItem, error) { return nil, nil }
func (r *fakeSaleRepo) FindItemsByIMEI(imei string) ([]*repository.SaleItemWithContext, error) {
	return r.byIMEI[imei], nil
}

func fixture() *scan.BillScanUseCase {
	repo := &fakeSaleRepo{byIMEI: map[string][]*repository.SaleItemWithContext{
		"123456789012345": {
			{
				Item:     entity.SaleItem{IMEI: "123456789012345", LineTotal: decimal.NewFromInt(12000)},
				Sale:     entity.Sale{ID: "sale-1", PaymentType: entity.PaymentEMI},
				Customer: entity.Customer{FullName: "Ravi Kumar", Phone: "9876543210"},
			},
		},
	}}
	return scan.NewBillScanUseCase(repo)
}

func TestScan_EncuentraVentaPorIMEIDelTexto(t *testing.T) {
	uc := fixture()

	resp, err := uc.Scan(context.Background(), entity.RoleAdmin, dto.ScanBillRequest{
		Text: "Factura GST\nIMEI: 123456789012345\nTotal 12000",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"123456789012345"}, resp.IMEIs)
	require.Len(t, resp.Matches, 1)
	m := resp.Matches[0]
	assert.Equal(t, "sale-1", m.SaleID)
	assert.Equal(t, "Ravi Kumar", m.CustomerName)
	assert.Equal(t, "emi", m.PaymentType)
	require.NotNil(t, m.Amount)
	assert.True(t, decimal.NewFromInt(12000).Equal(*m.Amount))
}

func TestScan_EmployeeNoVeMontos(t *testing.T) {
	uc := fixture()

	resp, err := uc.Scan(context.Background(), entity.RoleEmployee, dto.ScanBillRequest{
		Text: "IMEI 123456789012345",
	})
	require.NoError(t, err)
	require.Len(t, resp.Matches, 1)
	assert.Nil(t, resp.Matches[0].Amount)
	assert.Equal(t, "Ravi Kumar", resp.Matches[0].CustomerName)
}

func TestScan_FallbackAlNombreDeArchivo(t *testing.T) {
	uc := fixture()

	resp, err := uc.Scan(context.Background(), entity.RoleAdmin, dto.ScanBillRequest{
		Text:     "texto sin números útiles",
		Filename: "bill_123456789012345.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"123456789012345"}, resp.IMEIs)
	assert.Len(t, resp.Matches, 1)
}

func TestScan_IMEISinVentaNoEsError(t *testing.T) {
	uc := fixture()

	resp, err := uc.Scan(context.Background(), entity.RoleAdmin, dto.ScanBillRequest{
		Text: "IMEI 999999999999999 nunca vendido",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"999999999999999"}, resp.IMEIs)
	assert.Empty(t, resp.Matches)
}

func TestScan_SinIMEIsDevuelveVacio(t *testing.T) {
	uc := fixture()

	resp, err := uc.Scan(context.Background(), entity.RoleAdmin, dto.ScanBillRequest{
		Text:     "sin nada que encontrar",
		Filename: "foto.jpg",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.IMEIs)
	assert.Empty(t, resp.Matches)
}
