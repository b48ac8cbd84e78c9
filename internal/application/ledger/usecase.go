package ledger

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vishal7007/MobileShop-api/internal/application/dto"
	"github.com/vishal7007/MobileShop-api/internal/domain"
	"github.com/vishal7007/MobileShop-api/internal/domain/entity"
	"github.com/vishal7007/MobileShop-api/internal/domain/repository"
)

// StockLedger es el único escritor de qty_on_hand. Cada operación abre una
// transacción corta, bloquea la fila del producto (SELECT FOR UPDATE),
// re-verifica la cantidad y registra el movimiento en el mismo commit.
type StockLedger struct {
	txRunner  TxRunner
	products  repository.ProductRepository       // lecturas fuera de tx
	movements repository.StockMovementRepository // lecturas fuera de tx
}

// NewStockLedger construye el ledger.
func NewStockLedger(txRunner TxRunner, products repository.ProductRepository, movements repository.StockMovementRepository) *StockLedger {
	return &StockLedger{txRunner: txRunner, products: products, movements: movements}
}

// ApplyMovement aplica un delta con signo al stock de un producto y registra
// el movimiento, de forma atómica. Falla con InsufficientStockError si el
// resultado sería negativo; en ese caso no queda ningún efecto parcial.
func (l *StockLedger) ApplyMovement(ctx context.Context, productID string, delta int64, reason entity.MovementReason, userID, refSaleID string) (*entity.StockMovement, error) {
	if productID == "" || delta == 0 || !reason.Valid() {
		return nil, domain.ErrInvalidInput
	}
	var mov *entity.StockMovement
	err := l.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		var err error
		mov, err = applyMovementLocked(productRepo, movementRepo, productID, delta, reason, userID, refSaleID, time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// AdjustStock corrige el stock con un delta libre de signo; la razón siempre
// es adjustment y la invariante de no-negatividad sigue vigente.
func (l *StockLedger) AdjustStock(ctx context.Context, productID string, delta int64, userID string) (*entity.StockMovement, error) {
	return l.ApplyMovement(ctx, productID, delta, entity.ReasonAdjustment, userID, "")
}

// applyMovementLocked bloquea la fila del producto, re-verifica la cantidad
// dentro de la tx y persiste el nuevo qty_on_hand junto con el movimiento.
func applyMovementLocked(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	productID string, delta int64, reason entity.MovementReason,
	userID, refSaleID string, now time.Time,
) (*entity.StockMovement, error) {
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	newQty := product.QtyOnHand + delta
	if newQty < 0 {
		return nil, &domain.InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Requested:   -delta,
			Available:   product.QtyOnHand,
		}
	}
	if err := productRepo.UpdateQty(productID, newQty); err != nil {
		return nil, err
	}
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: productID,
		ChangeQty: delta,
		Reason:    reason,
		RefSaleID: refSaleID,
		UserID:    userID,
		CreatedAt: now,
	}
	if err := movementRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// SaleLine línea de venta a aplicar contra el stock. UnitPrice en cero usa el
// precio de venta vigente del producto.
type SaleLine struct {
	ProductID string
	Qty       int64
	UnitPrice decimal.Decimal
	IMEI      string
}

// ResolvedLine línea validada con producto, precio efectivo y total calculado.
type ResolvedLine struct {
	Product   *entity.Product
	Qty       int64
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
	IMEI      string
}

// ApplySaleBatchInTx valida TODAS las líneas contra el stock bloqueado antes
// de aplicar cualquier cambio (todo-o-nada): si una línea queda corta, el
// caller recibe InsufficientStockError y el rollback de su tx deja el ledger
// intacto. Deja un movimiento sale por línea referenciando la venta y
// devuelve las líneas resueltas y el total.
//
// Se ejecuta con los repositorios de la transacción del caller (flujo de
// ventas), igual que el resto de escrituras de esa venta.
func ApplySaleBatchInTx(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	lines []SaleLine, userID, saleID string, now time.Time,
) ([]ResolvedLine, decimal.Decimal, error) {
	if len(lines) == 0 || saleID == "" {
		return nil, decimal.Zero, domain.ErrInvalidInput
	}

	// Total pedido por producto: un producto repetido en varias líneas consume
	// del mismo saldo, así que la verificación va contra el acumulado.
	requested := make(map[string]int64, len(lines))
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.ProductID == "" || line.Qty <= 0 || line.UnitPrice.IsNegative() {
			return nil, decimal.Zero, domain.ErrInvalidInput
		}
		if _, ok := requested[line.ProductID]; !ok {
			ids = append(ids, line.ProductID)
		}
		requested[line.ProductID] += line.Qty
	}
	// Bloquear siempre en orden de ID: dos ventas concurrentes sobre los mismos
	// productos toman los locks en el mismo orden y ninguna queda en deadlock.
	sort.Strings(ids)

	// Fase 1: bloquear cada producto una sola vez y pre-verificar el acumulado.
	// Nada se escribe aún.
	products := make(map[string]*entity.Product, len(ids))
	for _, id := range ids {
		product, err := productRepo.GetForUpdate(id)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if product == nil {
			return nil, decimal.Zero, domain.ErrNotFound
		}
		if product.QtyOnHand < requested[id] {
			return nil, decimal.Zero, &domain.InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Requested:   requested[id],
				Available:   product.QtyOnHand,
			}
		}
		products[id] = product
	}

	resolved := make([]ResolvedLine, 0, len(lines))
	for _, line := range lines {
		product := products[line.ProductID]
		unitPrice := line.UnitPrice
		if unitPrice.IsZero() {
			unitPrice = product.SellPrice
		}
		imei := line.IMEI
		if imei == "" {
			imei = product.IMEI
		}
		resolved = append(resolved, ResolvedLine{
			Product:   product,
			Qty:       line.Qty,
			UnitPrice: unitPrice,
			LineTotal: unitPrice.Mul(decimal.NewFromInt(line.Qty)),
			IMEI:      imei,
		})
	}

	// Fase 2: un decremento acumulado por producto y un movimiento sale por
	// línea; las filas siguen bloqueadas.
	for _, id := range ids {
		if err := productRepo.UpdateQty(id, products[id].QtyOnHand-requested[id]); err != nil {
			return nil, decimal.Zero, err
		}
	}
	total := decimal.Zero
	for _, line := range resolved {
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: line.Product.ID,
			ChangeQty: -line.Qty,
			Reason:    entity.ReasonSale,
			RefSaleID: saleID,
			UserID:    userID,
			CreatedAt: now,
		}
		if err := movementRepo.Create(mov); err != nil {
			return nil, decimal.Zero, err
		}
		total = total.Add(line.LineTotal)
	}
	return resolved, total, nil
}

// ImportPurchase procesa una fila de importación masiva. Política de matching:
// IMEI exacto, luego (SKU, name), luego solo name; si nada coincide se crea el
// producto. Con qty > 0 registra un movimiento purchase. Si el producto
// existente no tiene precio de venta, adopta el de la fila (un precio ya
// fijado nunca se pisa).
func (l *StockLedger) ImportPurchase(ctx context.Context, row dto.ImportRow, userID string) (*entity.Product, bool, error) {
	row.Name = strings.TrimSpace(row.Name)
	row.SKU = strings.TrimSpace(row.SKU)
	row.IMEI = strings.TrimSpace(row.IMEI)
	if row.Name == "" {
		return nil, false, domain.ErrInvalidInput
	}
	if row.Qty < 0 || row.Price.IsNegative() {
		return nil, false, domain.ErrInvalidInput
	}
	category := entity.ProductCategory(row.Category)
	if row.Category == "" {
		category = entity.CategoryPhone
	}
	if !category.Valid() {
		return nil, false, domain.ErrInvalidInput
	}

	var out *entity.Product
	var created bool
	err := l.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		product, err := matchImportRow(productRepo, row)
		if err != nil {
			return err
		}
		now := time.Now()

		if product == nil {
			product = &entity.Product{
				ID:        uuid.New().String(),
				SKU:       row.SKU,
				IMEI:      row.IMEI,
				Name:      row.Name,
				Category:  category,
				CostPrice: row.Price,
				SellPrice: row.Price,
				QtyOnHand: row.Qty,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := productRepo.Create(product); err != nil {
				return err
			}
			created = true
		} else {
			// Re-bloquear por ID: el match se hizo sin lock.
			product, err = productRepo.GetForUpdate(product.ID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if err := productRepo.UpdateQty(product.ID, product.QtyOnHand+row.Qty); err != nil {
				return err
			}
			product.QtyOnHand += row.Qty
			if product.SellPrice.IsZero() && row.Price.IsPositive() {
				if err := productRepo.UpdateSellPrice(product.ID, row.Price); err != nil {
					return err
				}
				product.SellPrice = row.Price
			}
		}

		if row.Qty > 0 {
			mov := &entity.StockMovement{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				ChangeQty: row.Qty,
				Reason:    entity.ReasonPurchase,
				UserID:    userID,
				CreatedAt: now,
			}
			if err := movementRepo.Create(mov); err != nil {
				return err
			}
		}
		out = product
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, created, nil
}

// matchImportRow aplica la política de matching canónica de la importación.
func matchImportRow(productRepo repository.ProductRepository, row dto.ImportRow) (*entity.Product, error) {
	if row.IMEI != "" {
		if p, err := productRepo.GetByIMEI(row.IMEI); err != nil || p != nil {
			return p, err
		}
	}
	if row.SKU != "" {
		if p, err := productRepo.GetBySKUAndName(row.SKU, row.Name); err != nil || p != nil {
			return p, err
		}
	}
	return productRepo.GetByName(row.Name)
}

// ImportRows procesa un lote de filas de forma independiente: una fila mala se
// salta y se reporta, las hermanas siguen (a diferencia de las ventas, que son
// todo-o-nada).
func (l *StockLedger) ImportRows(ctx context.Context, rows []dto.ImportRow, userID string) *dto.ImportResponse {
	resp := &dto.ImportResponse{}
	for i, row := range rows {
		_, created, err := l.ImportPurchase(ctx, row, userID)
		if err != nil {
			resp.Skipped++
			resp.Errors = append(resp.Errors, dto.ImportRowError{Row: i, Message: err.Error()})
			continue
		}
		if created {
			resp.Added++
		} else {
			resp.Updated++
		}
	}
	return resp
}

// CreateProduct alta manual de producto. La cantidad inicial entra al ledger
// como un movimiento purchase dentro de la misma transacción.
func (l *StockLedger) CreateProduct(ctx context.Context, in dto.CreateProductRequest, userID string) (*entity.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || in.InitialQty < 0 || in.SellPrice.IsNegative() || in.CostPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	category := entity.ProductCategory(in.Category)
	if in.Category == "" {
		category = entity.CategoryPhone
	}
	if !category.Valid() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		SKU:       strings.TrimSpace(in.SKU),
		IMEI:      strings.TrimSpace(in.IMEI),
		Name:      in.Name,
		Category:  category,
		CostPrice: in.CostPrice,
		SellPrice: in.SellPrice,
		QtyOnHand: in.InitialQty,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := l.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if in.InitialQty > 0 {
			mov := &entity.StockMovement{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				ChangeQty: in.InitialQty,
				Reason:    entity.ReasonPurchase,
				UserID:    userID,
				CreatedAt: now,
			}
			return movementRepo.Create(mov)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct lectura simple por ID.
func (l *StockLedger) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := l.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// ListProducts listado paginado.
func (l *StockLedger) ListProducts(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	return l.products.List(limit, offset)
}

// ListMovements log de auditoría del ledger, más reciente primero.
func (l *StockLedger) ListMovements(ctx context.Context, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return l.movements.List(from, to, limit, offset)
}

// ListProductMovements historia de un producto, más reciente primero.
func (l *StockLedger) ListProductMovements(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	return l.movements.ListByProduct(productID, limit, offset)
}
