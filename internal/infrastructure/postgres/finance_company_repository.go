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

var _ repository.FinanceCompanyRepository = (*FinanceCompanyRepo)(nil)

// FinanceCompanyRepo implementación del puerto FinanceCompanyRepository sobre PostgreSQL.
type FinanceCompanyRepo struct {
	q Querier
}

// NewFinanceCompanyRepository construye el adaptador de persistencia para financieras. Pasar pool o tx (Querier).
func NewFinanceCompanyRepository(q Querier) *FinanceCompanyRepo {
	return &FinanceCompanyRepo{q: q}
}

// Create persiste una financiera. El nombre es único.
func (r *FinanceCompanyRepo) Create(c *entity.FinanceCompany) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO finance_companies (id, name, type, active) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.Type, c.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert finance company: %w", err)
	}
	return nil
}

// GetByID obtiene una financiera por ID.
func (r *FinanceCompanyRepo) GetByID(id string) (*entity.FinanceCompany, error) {
	var c entity.FinanceCompany
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, type, active FROM finance_companies WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Type, &c.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get finance company: %w", err)
	}
	return &c, nil
}

// GetByName obtiene una financiera por nombre exacto.
func (r *FinanceCompanyRepo) GetByName(name string) (*entity.FinanceCompany, error) {
	var c entity.FinanceCompany
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, type, active FROM finance_companies WHERE name = $1`, name).
		Scan(&c.ID, &c.Name, &c.Type, &c.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get finance company by name: %w", err)
	}
	return &c, nil
}

// ListActive lista las financieras activas por nombre (selector del punto de venta).
func (r *FinanceCompanyRepo) ListActive() ([]*entity.FinanceCompany, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, type, active FROM finance_companies WHERE active ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list finance companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.FinanceCompany
	for rows.Next() {
		var c entity.FinanceCompany
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Active); err != nil {
			return nil, fmt.Errorf("scan finance company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
