package database

import (
	"database/sql"
	"time"

	"github.com/ashuraya1989-cyber/assyrian-church/app/models"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(s rowScanner) (*models.Payment, error) {
	p := &models.Payment{}
	var method string
	var paidUntil time.Time
	err := s.Scan(
		&p.ID, &p.FamilyID, &p.MonthlyFee, &p.AnnualFee, &p.AmountPaid,
		&paidUntil, &method, &p.Reference, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.PaidUntil = formatDate(paidUntil)
	p.Method = models.PaymentMethod(method)
	return p, nil
}

// ListPayments returns a family's payment history, newest first. Equal
// creation timestamps fall back to id order so the result is deterministic.
func ListPayments(db *sql.DB, familyID string) ([]*models.Payment, error) {
	rows, err := db.Query(`SELECT id, family_id, monthly_fee, annual_fee, amount_paid, paid_until,
			  method, reference, created_at, updated_at
			  FROM payments WHERE family_id = $1
			  ORDER BY created_at DESC, id DESC`, familyID)
	if err != nil {
		return nil, storeErr("list payments", err)
	}
	defer rows.Close()

	payments := []*models.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, storeErr("scan payment", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list payments", err)
	}
	return payments, nil
}

// GetPayment loads one payment. Returns ErrNotFound for an unknown id.
func GetPayment(db *sql.DB, id string) (*models.Payment, error) {
	row := db.QueryRow(`SELECT id, family_id, monthly_fee, annual_fee, amount_paid, paid_until,
			  method, reference, created_at, updated_at
			  FROM payments WHERE id = $1`, id)
	p, err := scanPayment(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get payment", err)
	}
	return p, nil
}

func validatePayment(p *models.Payment) error {
	if p.FamilyID == "" {
		return validationErr("a family must be selected")
	}
	if p.MonthlyFee < 0 || p.AnnualFee < 0 || p.AmountPaid < 0 {
		return validationErr("amounts cannot be negative")
	}
	if p.PaidUntil == "" {
		return validationErr("paid-until date is required")
	}
	if _, err := time.Parse("2006-01-02", p.PaidUntil); err != nil {
		return validationErr("paid-until must be a date on the form YYYY-MM-DD")
	}
	if !p.Method.Valid() {
		return validationErr("unknown payment method %q", p.Method)
	}
	return nil
}

// CreatePayment registers a new dues settlement and returns its id. The fee
// snapshot on the payment is whatever the caller supplied; it is frozen from
// here on.
func CreatePayment(db *sql.DB, p *models.Payment) (string, error) {
	if err := validatePayment(p); err != nil {
		return "", err
	}

	err := db.QueryRow(`INSERT INTO payments
			(family_id, monthly_fee, annual_fee, amount_paid, paid_until, method, reference)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at, updated_at`,
		p.FamilyID, p.MonthlyFee, p.AnnualFee, p.AmountPaid, p.PaidUntil,
		string(p.Method), p.Reference,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return "", storeErr("insert payment", err)
	}
	return p.ID, nil
}

// UpdatePayment edits an existing payment and refreshes its update timestamp.
func UpdatePayment(db *sql.DB, p *models.Payment) error {
	if err := validatePayment(p); err != nil {
		return err
	}

	res, err := db.Exec(`UPDATE payments SET
			family_id = $1, monthly_fee = $2, annual_fee = $3, amount_paid = $4,
			paid_until = $5, method = $6, reference = $7, updated_at = NOW()
			WHERE id = $8`,
		p.FamilyID, p.MonthlyFee, p.AnnualFee, p.AmountPaid, p.PaidUntil,
		string(p.Method), p.Reference, p.ID,
	)
	if err != nil {
		return storeErr("update payment", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr("update payment", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
