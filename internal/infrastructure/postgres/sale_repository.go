package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vishal7007/MobileShop-api/internal/domain"
	"github.com/vishal7007/MobileShop-api/internal/domain/entity"
	"github.com/vishal7007/MobileShop-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de una venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, sale_datetime, user_id, customer_id, payment_type, total_amount, notes, bill_image_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.SaleDatetime, sale.UserID, sale.CustomerID,
		sale.PaymentType, sale.TotalAmount, sale.Notes, sale.BillImagePath,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, imei, qty, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.IMEI, item.Qty, item.UnitPrice, item.LineTotal,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, sale_datetime, user_id, customer_id, payment_type, total_amount, notes, bill_image_path
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.SaleDatetime, &s.UserID, &s.CustomerID,
		&s.PaymentType, &s.TotalAmount, &s.Notes, &s.BillImagePath,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetItemsBySaleID devuelve las líneas de una venta en orden de inserción.
func (r *SaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, imei, qty, unit_price, line_total
		FROM sale_items WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var i entity.SaleItem
		if err := rows.Scan(&i.ID, &i.SaleID, &i.ProductID, &i.IMEI, &i.Qty, &i.UnitPrice, &i.LineTotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// FindItemsByIMEI busca las líneas vendidas con ese IMEI con venta y cliente
// materializados en un solo JOIN (lookup del escáner de facturas).
func (r *SaleRepo) FindItemsByIMEI(imei string) ([]*repository.SaleItemWithContext, error) {
	query := `
		SELECT
			i.id, i.sale_id, i.product_id, i.imei, i.qty, i.unit_price, i.line_total,
			s.id, s.sale_datetime, s.user_id, s.customer_id, s.payment_type, s.total_amount, s.notes, s.bill_image_path,
			c.id, c.full_name, c.phone, c.email, c.govt_id, c.notes, c.created_at
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		JOIN customers c ON c.id = s.customer_id
		WHERE i.imei = $1
		ORDER BY s.sale_datetime DESC`
	rows, err := r.q.Query(context.Background(), query, imei)
	if err != nil {
		return nil, fmt.Errorf("find sale items by imei: %w", err)
	}
	defer rows.Close()
	var list []*repository.SaleItemWithContext
	for rows.Next() {
		var row repository.SaleItemWithContext
		if err := rows.Scan(
			&row.Item.ID, &row.Item.SaleID, &row.Item.ProductID, &row.Item.IMEI,
			&row.Item.Qty, &row.Item.UnitPrice, &row.Item.LineTotal,
			&row.Sale.ID, &row.Sale.SaleDatetime, &row.Sale.UserID, &row.Sale.CustomerID,
			&row.Sale.PaymentType, &row.Sale.TotalAmount, &row.Sale.Notes, &row.Sale.BillImagePath,
			&row.Customer.ID, &row.Customer.FullName, &row.Customer.Phone,
			&row.Customer.Email, &row.Customer.GovtID, &row.Customer.Notes, &row.Customer.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale item with context: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
