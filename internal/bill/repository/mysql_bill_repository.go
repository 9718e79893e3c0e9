package repository

import (
	"context"
	"database/sql"
	"fmt"

	"rajubill/internal/domain"
	"rajubill/internal/errors"
)

// MySQLBillRepository is the optional server-side backend behind the same
// contract as the file store. Switch with DB_ENABLED.
type MySQLBillRepository struct {
	db *sql.DB
}

func NewMySQLBillRepository(db *sql.DB) *MySQLBillRepository {
	return &MySQLBillRepository{db: db}
}

func (r *MySQLBillRepository) ListAll(ctx context.Context) ([]domain.Bill, error) {
	query := `
		SELECT id, date, orderNumber, customer, broker, mill, product,
		       rate, weight, bags, termsAndConditions, createdAt
		FROM Bills
		ORDER BY createdAt
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		// Unreadable storage reads as an empty sequence.
		return nil, nil
	}
	defer rows.Close()

	var bills []domain.Bill
	for rows.Next() {
		var b domain.Bill
		err := rows.Scan(
			&b.ID, &b.Date, &b.OrderNumber, &b.Customer, &b.Broker, &b.Mill,
			&b.Product, &b.Rate, &b.Weight, &b.Bags, &b.TermsAndConditions,
			&b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning bill row: %w", err)
		}
		bills = append(bills, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bill rows: %w", err)
	}

	return bills, nil
}

func (r *MySQLBillRepository) GetByID(ctx context.Context, id string) (*domain.Bill, error) {
	query := `
		SELECT id, date, orderNumber, customer, broker, mill, product,
		       rate, weight, bags, termsAndConditions, createdAt
		FROM Bills
		WHERE id = ?
	`

	var b domain.Bill
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.Date, &b.OrderNumber, &b.Customer, &b.Broker, &b.Mill,
		&b.Product, &b.Rate, &b.Weight, &b.Bags, &b.TermsAndConditions,
		&b.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("bill with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying bill by id: %w", err)
	}

	return &b, nil
}

func (r *MySQLBillRepository) Insert(ctx context.Context, bill domain.Bill) error {
	query := `
		INSERT INTO Bills (id, date, orderNumber, customer, broker, mill,
		                   product, rate, weight, bags, termsAndConditions, createdAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		bill.ID, bill.Date, bill.OrderNumber, bill.Customer, bill.Broker,
		bill.Mill, bill.Product, bill.Rate, bill.Weight, bill.Bags,
		bill.TermsAndConditions, bill.CreatedAt,
	)
	if err != nil {
		return errors.NewStorageUnavailableError("inserting bill", err)
	}
	return nil
}

func (r *MySQLBillRepository) Replace(ctx context.Context, bill domain.Bill) error {
	query := `
		UPDATE Bills
		SET date = ?, orderNumber = ?, customer = ?, broker = ?, mill = ?,
		    product = ?, rate = ?, weight = ?, bags = ?, termsAndConditions = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		bill.Date, bill.OrderNumber, bill.Customer, bill.Broker, bill.Mill,
		bill.Product, bill.Rate, bill.Weight, bill.Bags,
		bill.TermsAndConditions, bill.ID,
	)
	if err != nil {
		return errors.NewStorageUnavailableError("updating bill", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("bill with id %s not found", bill.ID))
	}
	return nil
}

func (r *MySQLBillRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM Bills WHERE id = ?`, id)
	if err != nil {
		return errors.NewStorageUnavailableError("deleting bill", err)
	}
	return nil
}
