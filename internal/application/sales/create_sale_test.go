package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishal7007/MobileShop-api/internal/application/dto"
	"github.com/vishal7007/MobileShop-api/internal/application/sales"
	"github.com/vishal7007/MobileShop-api/internal/domain"
	"github.com/vishal7007/MobileShop-api/internal/domain/entity"
	"github.com/vishal7007/MobileShop-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct{ byID map[string]*entity.Product }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.byID[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProductRepo) GetByIMEI(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) GetBySKUAndName(string, string) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) GetByName(string) (*entity.Product, error)       { return nil, nil }
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }
func (r *fakeProductRepo) Update(*entity.Product) error                    { return nil }
func (r *fakeProductRepo) UpdateQty(id string, qty int64) error {
	if p, ok := r.byID[id]; ok {
		p.QtyOnHand = qty
	}
	return nil
}
func (r *fakeProductRepo) UpdateSellPrice(id string, price decimal.Decimal) error {
	if p, ok := r.byID[id]; ok {
		p.SellPrice = price
	}
	return nil
}
func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }

type fakeMovementRepo struct{ movements []*entity.StockMovement }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}
func (r *fakeMovementRepo) ListByProduct(string, int, int) ([]*entity.StockMovement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) List(*time.Time, *time.Time, int, int) ([]*entity.StockMovement, error) {
	return r.movements, nil
}
func (r *fakeMovementRepo) SumByProduct(string) (int64, error) { return 0, nil }

type fakeCustomerRepo struct{ customers []*entity.Customer }

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	r.customers = append(r.customers, c)
	return nil
}
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCustomerRepo) GetByPhone(phone string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCustomerRepo) List(int, int) ([]*entity.Customer, error) { return r.customers, nil }

type fakeSaleRepo struct {
	sales []*entity.Sale
	items []*entity.SaleItem
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error         { r.sales = append(r.sales, s); return nil }
func (r *fakeSaleRepo) CreateItem(i *entity.SaleItem) error { r.items = append(r.items, i); return nil }
func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}
func (r *fakeSaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	for _, i := range r.items {
		if i.SaleID == saleID {
			out = append(out, i)
		}
	}
	return out, nil
}
func (r *fakeSaleRepo) FindItemsByIMEI(string) ([]*repository.SaleItemWithContext, error) {
	return nil, nil
}

type fakeEmiRepo struct{ details []*entity.EmiDetail }

func (r *fakeEmiRepo) Create(d *entity.EmiDetail) error { r.details = append(r.details, d); return nil }
func (r *fakeEmiRepo) GetBySaleID(saleID string) (*entity.EmiDetail, error) {
	for _, d := range r.details {
		if d.SaleID == saleID {
			return d, nil
		}
	}
	return nil, nil
}
func (r *fakeEmiRepo) ListWithContext(int, int) ([]*repository.EmiWithContext, error) {
	return nil, nil
}

type fakeCompanyRepo struct{ byID map[string]*entity.FinanceCompany }

func (r *fakeCompanyRepo) Create(c *entity.FinanceCompany) error { r.byID[c.ID] = c; return nil }
func (r *fakeCompanyRepo) GetByID(id string) (*entity.FinanceCompany, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fakeCompanyRepo) GetByName(string) (*entity.FinanceCompany, error) { return nil, nil }
func (r *fakeCompanyRepo) ListActive() ([]*entity.FinanceCompany, error)    { return nil, nil }

// fakeTxRunner sin rollback: el flujo pre-verifica el stock antes de escribir,
// así que un fallo de stock no deja nada persistido ni siquiera aquí.
type fixture struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
	customers *fakeCustomerRepo
	sales     *fakeSaleRepo
	emis      *fakeEmiRepo
	companies *fakeCompanyRepo
}

func (f *fixture) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
	emiRepo repository.EmiRepository,
) error) error {
	return fn(f.products, f.movements, f.customers, f.sales, f.emis)
}

func newFixture() (*sales.CreateSaleUseCase, *fixture) {
	f := &fixture{
		products: &fakeProductRepo{byID: map[string]*entity.Product{
			"prod-a": {
				ID: "prod-a", Name: "Demo Phone A", IMEI: "123456789012345",
				Category: entity.CategoryPhone, SellPrice: decimal.NewFromInt(12000), QtyOnHand: 5,
			},
			"prod-b": {
				ID: "prod-b", Name: "Fast Charger",
				Category: entity.CategoryAccessory, SellPrice: decimal.NewFromInt(800), QtyOnHand: 20,
			},
		}},
		movements: &fakeMovementRepo{},
		customers: &fakeCustomerRepo{},
		sales:     &fakeSaleRepo{},
		emis:      &fakeEmiRepo{},
		companies: &fakeCompanyRepo{byID: map[string]*entity.FinanceCompany{
			"fin-1": {ID: "fin-1", Name: "Bajaj Finance", Type: entity.CompanyNBFC, Active: true},
			"fin-2": {ID: "fin-2", Name: "Vieja Financiera", Type: entity.CompanyOther, Active: false},
		}},
	}
	uc := sales.NewCreateSaleUseCase(f, f.companies, f.sales, f.customers, f.emis)
	return uc, f
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateSale
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_CashCompleta(t *testing.T) {
	uc, f := newFixture()

	resp, err := uc.CreateSale(context.Background(), "user-1", dto.CreateSaleRequest{
		CustomerPhone: "9876543210",
		CustomerName:  "Ravi Kumar",
		PaymentType:   "cash",
		Lines: []dto.SaleLineRequest{
			{ProductID: "prod-a", Qty: 1},
			{ProductID: "prod-b", Qty: 2},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	// total = 12000 + 2×800
	assert.True(t, decimal.NewFromInt(13600).Equal(resp.TotalAmount))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "123456789012345", resp.Items[0].IMEI, "el ítem guarda la foto del IMEI")
	assert.Nil(t, resp.Emi)

	// Stock descontado y un movimiento sale por línea referenciando la venta.
	pa, _ := f.products.GetByID("prod-a")
	pb, _ := f.products.GetByID("prod-b")
	assert.Equal(t, int64(4), pa.QtyOnHand)
	assert.Equal(t, int64(18), pb.QtyOnHand)
	require.Len(t, f.movements.movements, 2)
	for _, m := range f.movements.movements {
		assert.Equal(t, entity.ReasonSale, m.Reason)
		assert.Equal(t, resp.ID, m.RefSaleID)
	}

	// Cliente creado al vuelo.
	require.Len(t, f.customers.customers, 1)
	assert.Equal(t, "Ravi Kumar", f.customers.customers[0].FullName)
}

func TestCreateSale_ReusaClientePorTelefono(t *testing.T) {
	uc, f := newFixture()
	f.customers.customers = append(f.customers.customers, &entity.Customer{
		ID: "cust-1", FullName: "Ravi Kumar", Phone: "9876543210",
	})

	resp, err := uc.CreateSale(context.Background(), "user-1", dto.CreateSaleRequest{
		CustomerPhone: "9876543210",
		PaymentType:   "cash",
		Lines:         []dto.SaleLineRequest{{ProductID: "prod-b", Qty: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "cust-1", resp.CustomerID)
	assert.Len(t, f.customers.customers, 1, "no debe duplicar el cliente")
}

func TestCreateSale_PrecioOverride(t *testing.T) {
	uc, _ := newFixture()

	resp, err := uc.CreateSale(context.Background(), "user-1", dto.CreateSaleRequest{
		PaymentType: "cash",
		Lines:       []dto.SaleLineRequest{{ProductID: "prod-a", Qty: 1, UnitPrice: decimal.NewFromInt(11500)}},
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(11500).Equal(resp.TotalAmount))
}

// Lote corto de stock: la venta entera se cancela, sin venta, sin ítems, sin
// movimientos y con las cantidades intactas.
func TestCreateSale_StockCortoCancelaTodo(t *testing.T) {
	uc, f := newFixture()

	_, err := uc.CreateSale(context.Background(), "user-1", dto.CreateSaleRequest{
		PaymentType: "cash",
		Lines: []dto.SaleLineRequest{
			{ProductID: "prod-a", Qty: 2},
			{ProductID: "prod-b", Qty: 1000},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Empty(t, f.sales.sales)
	assert.Empty(t, f.sales.items)
	assert.Empty(t, f.movements.movements)
	pa, _ := f.products.GetByID("prod-a")
	assert.Equal(t, int64(5), pa.QtyOnHand, "la línea buena no debe haberse aplicado")
}

func TestCreateSale_EMICreaPlan(t *testing.T) {
	uc, f := newFixture()

	resp, err := uc.CreateSale(context.Background(), "user-1", dto.CreateSaleRequest{
		CustomerPhone: "9876543210",
		PaymentType:   "emi",
		Lines:         []dto.SaleLineRequest{{ProductID: "prod-a", Qty: 1}},
		Emi: &dto.EmiRequest{
			CompanyID:    "fin-1",
			DownPayment:  decimal.NewFromInt(3000),
			TenureMonths: 3,
			InterestRate: 1.5,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Emi)

	// financiado = 12000 - 3000; cuota = 9000 / 3
	assert.True(t, decimal.NewFromInt(9000).Equal(resp.Emi.FinancedAmount))
	assert.True(t, decimal.NewFromInt(3000).Equal(resp.Emi.EmiAmount))
	assert.Equal(t, 3, resp.Emi.TenureMonths)
	require.NotNil(t, resp.Emi.NextDueDate)
	require.Len(t, f.emis.details, 1)
}

func TestCreateSale_EMISinBloqueEsInvalida(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.CreateSale(context.Background(), "user-1", dto.CreateSaleRequest{
		PaymentType: "emi",
		Lines:       []dto.SaleLineRequest{{ProductID: "prod-a", Qty: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_FinancieraInactiva(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.CreateSale(context.Background(), "user-1", dto.CreateSaleRequest{
		PaymentType: "emi",
		Lines:       []dto.SaleLineRequest{{ProductID: "prod-a", Qty: 1}},
		Emi:         &dto.EmiRequest{CompanyID: "fin-2", TenureMonths: 3},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateSale_FormaDePagoInvalida(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.CreateSale(context.Background(), "user-1", dto.CreateSaleRequest{
		PaymentType: "credit-card",
		Lines:       []dto.SaleLineRequest{{ProductID: "prod-a", Qty: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetSale_IncluyeItemsYEmi(t *testing.T) {
	uc, _ := newFixture()

	created, err := uc.CreateSale(context.Background(), "user-1", dto.CreateSaleRequest{
		PaymentType: "emi",
		Lines:       []dto.SaleLineRequest{{ProductID: "prod-a", Qty: 1}},
		Emi:         &dto.EmiRequest{CompanyID: "fin-1", TenureMonths: 6},
	})
	require.NoError(t, err)

	got, err := uc.GetSale(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
	require.NotNil(t, got.Emi)
	assert.Equal(t, created.Emi.ID, got.Emi.ID)
}

func TestGetSale_NoExiste(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.GetSale(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
