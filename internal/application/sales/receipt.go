package sales

import (
	"context"

	"github.com/vishal7007/MobileShop-api/internal/domain"
	"github.com/vishal7007/MobileShop-api/internal/domain/repository"
)

// ReceiptUseCase genera el recibo imprimible de una venta (representación
// gráfica para el cliente; no toca el ledger).
type ReceiptUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	generator    ReceiptGenerator
	shopName     string
	currency     string
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	generator ReceiptGenerator,
	shopName, currency string,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		generator:    generator,
		shopName:     shopName,
		currency:     currency,
	}
}

// Receipt materializa la venta con ítems y cliente y devuelve el PDF.
func (uc *ReceiptUseCase) Receipt(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItemsBySaleID(saleID)
	if err != nil {
		return nil, err
	}
	customerName, phone := "", ""
	if customer, err := uc.customerRepo.GetByID(sale.CustomerID); err == nil && customer != nil {
		customerName = customer.FullName
		phone = customer.Phone
	}

	data := ReceiptData{
		ShopName:     uc.shopName,
		Currency:     uc.currency,
		SaleID:       sale.ID,
		SaleDatetime: sale.SaleDatetime,
		CustomerName: customerName,
		Phone:        phone,
		PaymentType:  string(sale.PaymentType),
		Total:        sale.TotalAmount,
	}
	for _, item := range items {
		name := item.ProductID
		if product, err := uc.productRepo.GetByID(item.ProductID); err == nil && product != nil {
			name = product.Name
		}
		data.Lines = append(data.Lines, ReceiptLine{
			Name:      name,
			IMEI:      item.IMEI,
			Qty:       item.Qty,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		})
	}
	return uc.generator.Generate(data)
}
