package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vishal7007/MobileShop-api/internal/domain/repository"
)

// TxRunner abre la transacción del checkout: descuento de stock, venta, ítems
// y plan EMI se confirman juntos o ninguno.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		customerRepo repository.CustomerRepository,
		saleRepo repository.SaleRepository,
		emiRepo repository.EmiRepository,
	) error) error
}

// ReceiptData datos ya materializados para el recibo de una venta.
type ReceiptData struct {
	ShopName     string
	Currency     string
	SaleID       string
	SaleDatetime time.Time
	CustomerName string
	Phone        string
	PaymentType  string
	Lines        []ReceiptLine
	Total        decimal.Decimal
}

// ReceiptLine línea del recibo.
type ReceiptLine struct {
	Name      string
	IMEI      string
	Qty       int64
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// ReceiptGenerator genera la representación imprimible (PDF) de una venta.
type ReceiptGenerator interface {
	Generate(data ReceiptData) ([]byte, error)
}
