package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vishal7007/MobileShop-api/internal/domain/entity"
	"github.com/vishal7007/MobileShop-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, full_name, phone, email, govt_id, notes, created_at`

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para clientes. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.FullName, &c.Phone, &c.Email, &c.GovtID, &c.Notes, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Create persiste un cliente.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, full_name, phone, email, govt_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.FullName, c.Phone, c.Email, c.GovtID, c.Notes, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(context.Background(),
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// GetByPhone obtiene un cliente por teléfono (el más antiguo si hay varios).
func (r *CustomerRepo) GetByPhone(phone string) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(context.Background(),
		`SELECT `+customerColumns+` FROM customers WHERE phone = $1 ORDER BY created_at LIMIT 1`, phone))
	if err != nil {
		return nil, fmt.Errorf("get customer by phone: %w", err)
	}
	return c, nil
}

// List lista clientes con paginación, los más recientes primero.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+customerColumns+` FROM customers ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.FullName, &c.Phone, &c.Email, &c.GovtID, &c.Notes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
