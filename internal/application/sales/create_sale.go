package sales

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vishal7007/MobileShop-api/internal/application/dto"
	"github.com/vishal7007/MobileShop-api/internal/application/emi"
	"github.com/vishal7007/MobileShop-api/internal/application/ledger"
	"github.com/vishal7007/MobileShop-api/internal/domain"
	"github.com/vishal7007/MobileShop-api/internal/domain/entity"
	"github.com/vishal7007/MobileShop-api/internal/domain/repository"
)

// CreateSaleUseCase ejecuta el checkout del punto de venta: valida las líneas,
// resuelve el cliente, descuenta stock vía ledger y guarda venta, ítems y plan
// EMI en una sola transacción.
type CreateSaleUseCase struct {
	txRunner     TxRunner
	companyRepo  repository.FinanceCompanyRepository
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	emiRepo      repository.EmiRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner TxRunner,
	companyRepo repository.FinanceCompanyRepository,
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	emiRepo repository.EmiRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:     txRunner,
		companyRepo:  companyRepo,
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		emiRepo:      emiRepo,
	}
}

// CreateSale valida la solicitud, y dentro de una transacción: resuelve o crea
// el cliente, aplica el lote de venta contra el ledger (todo-o-nada), persiste
// cabecera e ítems y el plan EMI si aplica. Un faltante de stock en cualquier
// línea cancela la venta completa sin efectos.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	payType := entity.PaymentType(in.PaymentType)
	if !payType.Valid() || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Validar el bloque EMI fuera de la tx (solo lectura).
	var company *entity.FinanceCompany
	if payType == entity.PaymentEMI {
		if in.Emi == nil || in.Emi.CompanyID == "" || in.Emi.TenureMonths < 1 || in.Emi.DownPayment.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		var err error
		company, err = uc.companyRepo.GetByID(in.Emi.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil || !company.Active {
			return nil, domain.ErrNotFound
		}
	}

	lines := make([]ledger.SaleLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, ledger.SaleLine{
			ProductID: l.ProductID,
			Qty:       l.Qty,
			UnitPrice: l.UnitPrice,
			IMEI:      strings.TrimSpace(l.IMEI),
		})
	}

	now := time.Now()
	saleID := uuid.New().String() // referencia de los movimientos sale (ref_sale_id)
	var sale *entity.Sale
	var items []*entity.SaleItem
	var emiDetail *entity.EmiDetail

	err := uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		customerRepo repository.CustomerRepository,
		saleRepo repository.SaleRepository,
		emiRepo repository.EmiRepository,
	) error {
		// 1) Descuento de stock: pre-verifica todas las líneas y aplica después.
		resolved, total, err := ledger.ApplySaleBatchInTx(productRepo, movementRepo, lines, userID, saleID, now)
		if err != nil {
			return err
		}

		// 2) Cliente: buscar por teléfono o crear al vuelo.
		customer, err := resolveCustomer(customerRepo, in.CustomerPhone, in.CustomerName, now)
		if err != nil {
			return err
		}

		// 3) Cabecera de la venta.
		sale = &entity.Sale{
			ID:           saleID,
			SaleDatetime: now,
			UserID:       userID,
			CustomerID:   customer.ID,
			PaymentType:  payType,
			TotalAmount:  total,
			Notes:        in.Notes,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		// 4) Ítems con los precios efectivos que resolvió el ledger.
		for _, line := range resolved {
			item := &entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    saleID,
				ProductID: line.Product.ID,
				IMEI:      line.IMEI,
				Qty:       line.Qty,
				UnitPrice: line.UnitPrice,
				LineTotal: line.LineTotal,
			}
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
			items = append(items, item)
		}

		// 5) Plan EMI si la venta es financiada.
		if payType == entity.PaymentEMI {
			emiDetail = emi.NewSchedule(saleID, company.ID, total, in.Emi.DownPayment, in.Emi.TenureMonths, in.Emi.InterestRate, now)
			if err := emiRepo.Create(emiDetail); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items, emiDetail), nil
}

// resolveCustomer busca por teléfono y crea el cliente si no existe.
func resolveCustomer(customerRepo repository.CustomerRepository, phone, name string, now time.Time) (*entity.Customer, error) {
	phone = strings.TrimSpace(phone)
	name = strings.TrimSpace(name)
	if phone != "" {
		customer, err := customerRepo.GetByPhone(phone)
		if err != nil {
			return nil, err
		}
		if customer != nil {
			return customer, nil
		}
	}
	fullName := name
	if fullName == "" {
		fullName = phone
	}
	if fullName == "" {
		fullName = "Unknown"
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		FullName:  fullName,
		Phone:     phone,
		CreatedAt: now,
	}
	if err := customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetSale devuelve una venta con sus ítems y su plan EMI si existe.
func (uc *CreateSaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItemsBySaleID(id)
	if err != nil {
		return nil, err
	}
	emiDetail, err := uc.emiRepo.GetBySaleID(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items, emiDetail), nil
}

func toSaleResponse(sale *entity.Sale, items []*entity.SaleItem, emiDetail *entity.EmiDetail) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:           sale.ID,
		SaleDatetime: sale.SaleDatetime,
		CustomerID:   sale.CustomerID,
		PaymentType:  string(sale.PaymentType),
		TotalAmount:  sale.TotalAmount,
		Items:        make([]dto.SaleItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductID: item.ProductID,
			IMEI:      item.IMEI,
			Qty:       item.Qty,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		})
	}
	if emiDetail != nil {
		resp.Emi = &dto.EmiResponse{
			ID:             emiDetail.ID,
			SaleID:         emiDetail.SaleID,
			CompanyID:      emiDetail.CompanyID,
			DownPayment:    emiDetail.DownPayment,
			FinancedAmount: emiDetail.FinancedAmount,
			TenureMonths:   emiDetail.TenureMonths,
			InterestRate:   emiDetail.InterestRate,
			EmiAmount:      emiDetail.EmiAmount,
			NextDueDate:    emiDetail.NextDueDate,
		}
	}
	return resp
}
