package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/billing-api/internal/domain/entity"
	"github.com/tu-usuario/billing-api/internal/domain/repository"
)

var _ repository.BillingRepository = (*BillingRepo)(nil)

// BillingRepo implementación de BillingRepository. A diferencia de los
// repos simples necesita el pool (no un Querier) porque cabecera y líneas
// se escriben dentro de una misma transacción.
type BillingRepo struct {
	pool *pgxpool.Pool
}

// NewBillingRepository construye el adaptador con el pool.
func NewBillingRepository(pool *pgxpool.Pool) *BillingRepo {
	return &BillingRepo{pool: pool}
}

// Create persiste la cabecera y todas las líneas en una transacción:
// o se inserta el agregado completo o nada.
func (r *BillingRepo) Create(billing *entity.Billing) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := insertBilling(ctx, tx, billing); err != nil {
		return err
	}
	if err := insertLines(ctx, tx, billing); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una factura con sus líneas. Retorna (nil, nil) si no existe.
func (r *BillingRepo) GetByID(id string) (*entity.Billing, error) {
	query := `
		SELECT id, customer_id, invoice_number, date, due_date, total_amount, currency, created_at, updated_at
		FROM billings WHERE id = $1`
	var b entity.Billing
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.CustomerID, &b.InvoiceNumber, &b.Date, &b.DueDate,
		&b.TotalAmount, &b.Currency, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get billing: %w", err)
	}
	lines, err := r.linesByBillingIDs([]string{b.ID})
	if err != nil {
		return nil, err
	}
	b.Lines = lines[b.ID]
	return &b, nil
}

// List lista facturas con paginación en orden de creación, cada una con
// sus líneas.
func (r *BillingRepo) List(limit, offset int) ([]*entity.Billing, error) {
	query := `
		SELECT id, customer_id, invoice_number, date, due_date, total_amount, currency, created_at, updated_at
		FROM billings ORDER BY created_at LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list billings: %w", err)
	}
	defer rows.Close()

	var list []*entity.Billing
	var ids []string
	for rows.Next() {
		var b entity.Billing
		if err := rows.Scan(&b.ID, &b.CustomerID, &b.InvoiceNumber, &b.Date, &b.DueDate,
			&b.TotalAmount, &b.Currency, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan billing: %w", err)
		}
		list = append(list, &b)
		ids = append(ids, b.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}
	lines, err := r.linesByBillingIDs(ids)
	if err != nil {
		return nil, err
	}
	for _, b := range list {
		b.Lines = lines[b.ID]
	}
	return list, nil
}

// Update actualiza los campos escalares de la cabecera y reemplaza el
// conjunto de líneas, todo en una transacción.
func (r *BillingRepo) Update(billing *entity.Billing) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		UPDATE billings
		SET customer_id = $2, invoice_number = $3, date = $4, due_date = $5,
		    total_amount = $6, currency = $7, updated_at = $8
		WHERE id = $1`
	_, err = tx.Exec(ctx, query,
		billing.ID, billing.CustomerID, billing.InvoiceNumber, billing.Date,
		billing.DueDate, billing.TotalAmount, billing.Currency, billing.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update billing: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM billing_lines WHERE billing_id = $1`, billing.ID); err != nil {
		return fmt.Errorf("delete billing lines: %w", err)
	}
	if err := insertLines(ctx, tx, billing); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Delete elimina la cabecera; las líneas caen por el FK ON DELETE CASCADE.
func (r *BillingRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM billings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete billing: %w", err)
	}
	return nil
}

func insertBilling(ctx context.Context, tx pgx.Tx, billing *entity.Billing) error {
	query := `
		INSERT INTO billings (id, customer_id, invoice_number, date, due_date, total_amount, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := tx.Exec(ctx, query,
		billing.ID, billing.CustomerID, billing.InvoiceNumber, billing.Date,
		billing.DueDate, billing.TotalAmount, billing.Currency,
		billing.CreatedAt, billing.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice number already exists: %w", err)
		}
		return fmt.Errorf("insert billing: %w", err)
	}
	return nil
}

func insertLines(ctx context.Context, tx pgx.Tx, billing *entity.Billing) error {
	query := `
		INSERT INTO billing_lines (id, billing_id, product_id, description, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, l := range billing.Lines {
		_, err := tx.Exec(ctx, query,
			l.ID, l.BillingID, l.ProductID, l.Description,
			l.Quantity, l.UnitPrice, l.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert billing line: %w", err)
		}
	}
	return nil
}

// linesByBillingIDs carga las líneas de un conjunto de facturas en una
// sola consulta, indexadas por billing_id y en orden de inserción.
func (r *BillingRepo) linesByBillingIDs(ids []string) (map[string][]*entity.BillingLine, error) {
	query := `
		SELECT id, billing_id, product_id, description, quantity, unit_price, subtotal
		FROM billing_lines WHERE billing_id = ANY($1) ORDER BY id`
	rows, err := r.pool.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("list billing lines: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]*entity.BillingLine, len(ids))
	for rows.Next() {
		var l entity.BillingLine
		if err := rows.Scan(&l.ID, &l.BillingID, &l.ProductID, &l.Description,
			&l.Quantity, &l.UnitPrice, &l.Subtotal); err != nil {
			return nil, fmt.Errorf("scan billing line: %w", err)
		}
		out[l.BillingID] = append(out[l.BillingID], &l)
	}
	return out, rows.Err()
}
