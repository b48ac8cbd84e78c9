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

var _ repository.EmiRepository = (*EmiRepo)(nil)

// EmiRepo implementación del puerto EmiRepository sobre PostgreSQL.
type EmiRepo struct {
	q Querier
}

// NewEmiRepository construye el adaptador de persistencia para planes EMI. Pasar pool o tx (Querier).
func NewEmiRepository(q Querier) *EmiRepo {
	return &EmiRepo{q: q}
}

// Create persiste el plan de cuotas de una venta. Una venta tiene a lo sumo un plan.
func (r *EmiRepo) Create(d *entity.EmiDetail) error {
	query := `
		INSERT INTO emi_details (id, sale_id, company_id, down_payment, financed_amount, tenure_months, interest_rate, emi_amount, next_due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.SaleID, d.CompanyID, d.DownPayment, d.FinancedAmount,
		d.TenureMonths, d.InterestRate, d.EmiAmount, d.NextDueDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert emi detail: %w", err)
	}
	return nil
}

// GetBySaleID obtiene el plan EMI de una venta, nil si es una venta de contado.
func (r *EmiRepo) GetBySaleID(saleID string) (*entity.EmiDetail, error) {
	query := `
		SELECT id, sale_id, company_id, down_payment, financed_amount, tenure_months, interest_rate, emi_amount, next_due_date
		FROM emi_details WHERE sale_id = $1`
	var d entity.EmiDetail
	err := r.q.QueryRow(context.Background(), query, saleID).Scan(
		&d.ID, &d.SaleID, &d.CompanyID, &d.DownPayment, &d.FinancedAmount,
		&d.TenureMonths, &d.InterestRate, &d.EmiAmount, &d.NextDueDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get emi detail: %w", err)
	}
	return &d, nil
}

// ListWithContext devuelve los planes con venta, cliente y financiera en un
// solo JOIN, ordenados por próximo vencimiento (NULL al final).
func (r *EmiRepo) ListWithContext(limit, offset int) ([]*repository.EmiWithContext, error) {
	query := `
		SELECT
			e.id, e.sale_id, e.company_id, e.down_payment, e.financed_amount, e.tenure_months, e.interest_rate, e.emi_amount, e.next_due_date,
			s.id, s.sale_datetime, s.user_id, s.customer_id, s.payment_type, s.total_amount, s.notes, s.bill_image_path,
			c.id, c.full_name, c.phone, c.email, c.govt_id, c.notes, c.created_at,
			f.id, f.name, f.type, f.active
		FROM emi_details e
		JOIN sales s ON s.id = e.sale_id
		JOIN customers c ON c.id = s.customer_id
		JOIN finance_companies f ON f.id = e.company_id
		ORDER BY e.next_due_date NULLS LAST, s.sale_datetime DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list emi details: %w", err)
	}
	defer rows.Close()
	var list []*repository.EmiWithContext
	for rows.Next() {
		var row repository.EmiWithContext
		if err := rows.Scan(
			&row.Detail.ID, &row.Detail.SaleID, &row.Detail.CompanyID,
			&row.Detail.DownPayment, &row.Detail.FinancedAmount, &row.Detail.TenureMonths,
			&row.Detail.InterestRate, &row.Detail.EmiAmount, &row.Detail.NextDueDate,
			&row.Sale.ID, &row.Sale.SaleDatetime, &row.Sale.UserID, &row.Sale.CustomerID,
			&row.Sale.PaymentType, &row.Sale.TotalAmount, &row.Sale.Notes, &row.Sale.BillImagePath,
			&row.Customer.ID, &row.Customer.FullName, &row.Customer.Phone,
			&row.Customer.Email, &row.Customer.GovtID, &row.Customer.Notes, &row.Customer.CreatedAt,
			&row.Company.ID, &row.Company.Name, &row.Company.Type, &row.Company.Active,
		); err != nil {
			return nil, fmt.Errorf("scan emi with context: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
