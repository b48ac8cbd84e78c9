package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/vishal7007/MobileShop-api/internal/domain"
	"github.com/vishal7007/MobileShop-api/internal/domain/entity"
	"github.com/vishal7007/MobileShop-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, imei, name, category, cost_price, sell_price, qty_on_hand, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.IMEI, &p.Name, &p.Category,
		&p.CostPrice, &p.SellPrice, &p.QtyOnHand, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, imei, name, category, cost_price, sell_price, qty_on_hand, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.IMEI, product.Name, product.Category,
		product.CostPrice, product.SellPrice, product.QtyOnHand, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByIMEI obtiene un producto por IMEI (único cuando no es vacío).
func (r *ProductRepo) GetByIMEI(imei string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE imei = $1 AND imei <> ''`, imei))
	if err != nil {
		return nil, fmt.Errorf("get product by imei: %w", err)
	}
	return p, nil
}

// GetBySKUAndName obtiene un producto por la pareja SKU + nombre.
func (r *ProductRepo) GetBySKUAndName(sku, name string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE sku = $1 AND name = $2 LIMIT 1`, sku, name))
	if err != nil {
		return nil, fmt.Errorf("get product by sku+name: %w", err)
	}
	return p, nil
}

// GetByName obtiene un producto por nombre exacto (el más antiguo si hay varios).
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE name = $1 ORDER BY created_at LIMIT 1`, name))
	if err != nil {
		return nil, fmt.Errorf("get product by name: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene un producto bloqueando la fila (SELECT ... FOR UPDATE).
// Solo tiene sentido dentro de una transacción; el ledger lo usa para
// re-verificar la cantidad antes de escribir.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// Update actualiza datos del producto. Nunca toca qty_on_hand: la cantidad solo
// cambia vía movimientos del ledger.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET sku = $2, imei = $3, name = $4, category = $5, cost_price = $6, sell_price = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.IMEI, product.Name, product.Category,
		product.CostPrice, product.SellPrice, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQty escribe la nueva cantidad en mano (uso exclusivo del ledger).
func (r *ProductRepo) UpdateQty(productID string, qty int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET qty_on_hand = $2, updated_at = now() WHERE id = $1`,
		productID, qty,
	)
	if err != nil {
		return fmt.Errorf("update product qty: %w", err)
	}
	return nil
}

// UpdateSellPrice actualiza solo el precio de venta (adopción de precio en importaciones).
func (r *ProductRepo) UpdateSellPrice(productID string, price decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET sell_price = $2, updated_at = now() WHERE id = $1`,
		productID, price,
	)
	if err != nil {
		return fmt.Errorf("update product sell price: %w", err)
	}
	return nil
}

// List lista productos con paginación, los más recientes primero.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.IMEI, &p.Name, &p.Category,
			&p.CostPrice, &p.SellPrice, &p.QtyOnHand, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
