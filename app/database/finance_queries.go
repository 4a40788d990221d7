package database

import (
	"database/sql"
	"time"

	"github.com/ashuraya1989-cyber/assyrian-church/app/models"
)

// ListIncomeByMonth aggregates the income ledger per month name.
func ListIncomeByMonth(db *sql.DB) ([]*models.MonthTotal, error) {
	return listMonthTotals(db, `SELECT month, COALESCE(SUM(total), 0) FROM incomes GROUP BY month`)
}

// ListExpensesByMonth aggregates the expense ledger per month name.
func ListExpensesByMonth(db *sql.DB) ([]*models.MonthTotal, error) {
	return listMonthTotals(db, `SELECT month, COALESCE(SUM(total), 0) FROM expenses GROUP BY month`)
}

func listMonthTotals(db *sql.DB, query string) ([]*models.MonthTotal, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, storeErr("aggregate by month", err)
	}
	defer rows.Close()

	totals := []*models.MonthTotal{}
	for rows.Next() {
		t := &models.MonthTotal{}
		if err := rows.Scan(&t.Month, &t.Total); err != nil {
			return nil, storeErr("scan month total", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("aggregate by month", err)
	}
	return totals, nil
}

// ListExpenses returns expense rows newest first, optionally filtered to one
// month.
func ListExpenses(db *sql.DB, month string) ([]*models.Expense, error) {
	query := `SELECT id, month, week, rent, breakfast, bills, other, total,
			  comment, reported_by, date, created_at
			  FROM expenses`
	args := []interface{}{}
	if month != "" {
		query += ` WHERE month = $1`
		args = append(args, month)
	}
	query += ` ORDER BY date DESC, created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, storeErr("list expenses", err)
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		e := &models.Expense{}
		err := rows.Scan(&e.ID, &e.Month, &e.Week, &e.Rent, &e.Breakfast, &e.Bills,
			&e.Other, &e.Total, &e.Comment, &e.ReportedBy, &e.Date, &e.CreatedAt)
		if err != nil {
			return nil, storeErr("scan expense", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list expenses", err)
	}
	return expenses, nil
}

func validateExpense(e *models.Expense) error {
	if !models.ValidMonth(e.Month) {
		return validationErr("unknown month %q", e.Month)
	}
	if e.Week < 1 || e.Week > 5 {
		return validationErr("week must be between 1 and 5")
	}
	if e.Rent < 0 || e.Breakfast < 0 || e.Bills < 0 || e.Other < 0 {
		return validationErr("amounts cannot be negative")
	}
	return nil
}

// CreateExpense inserts one weekly row; Total is recomputed server-side.
func CreateExpense(db *sql.DB, e *models.Expense) error {
	if err := validateExpense(e); err != nil {
		return err
	}
	e.Total = e.SumCategories()
	if e.Date.IsZero() {
		e.Date = time.Now()
	}

	err := db.QueryRow(`INSERT INTO expenses
			(month, week, rent, breakfast, bills, other, total, comment, reported_by, date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id, created_at`,
		e.Month, e.Week, e.Rent, e.Breakfast, e.Bills, e.Other, e.Total,
		e.Comment, e.ReportedBy, e.Date,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return storeErr("insert expense", err)
	}
	return nil
}

// UpdateExpense replaces one row's figures; Total is recomputed server-side.
func UpdateExpense(db *sql.DB, e *models.Expense) error {
	if err := validateExpense(e); err != nil {
		return err
	}
	e.Total = e.SumCategories()

	res, err := db.Exec(`UPDATE expenses SET
			month = $1, week = $2, rent = $3, breakfast = $4, bills = $5, other = $6,
			total = $7, comment = $8, reported_by = $9, date = $10
			WHERE id = $11`,
		e.Month, e.Week, e.Rent, e.Breakfast, e.Bills, e.Other, e.Total,
		e.Comment, e.ReportedBy, e.Date, e.ID,
	)
	if err != nil {
		return storeErr("update expense", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr("update expense", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteExpense removes one row. Unknown ids return ErrNotFound.
func DeleteExpense(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete expense", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr("delete expense", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SummarizeExpenses aggregates a month's (or all months') rows per category.
func SummarizeExpenses(db *sql.DB, month string) ([]*models.ExpenseMonthSummary, error) {
	query := `SELECT month, COALESCE(SUM(rent), 0), COALESCE(SUM(breakfast), 0),
			  COALESCE(SUM(bills), 0), COALESCE(SUM(other), 0), COALESCE(SUM(total), 0)
			  FROM expenses`
	args := []interface{}{}
	if month != "" {
		query += ` WHERE month = $1`
		args = append(args, month)
	}
	query += ` GROUP BY month`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, storeErr("summarize expenses", err)
	}
	defer rows.Close()

	summaries := []*models.ExpenseMonthSummary{}
	for rows.Next() {
		s := &models.ExpenseMonthSummary{}
		if err := rows.Scan(&s.Month, &s.Rent, &s.Breakfast, &s.Bills, &s.Other, &s.Total); err != nil {
			return nil, storeErr("scan expense summary", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("summarize expenses", err)
	}
	return summaries, nil
}

// ListIncomes returns income rows newest first, optionally for one month.
func ListIncomes(db *sql.DB, month string) ([]*models.IncomeRecord, error) {
	query := `SELECT id, month, total, note, date, created_at FROM incomes`
	args := []interface{}{}
	if month != "" {
		query += ` WHERE month = $1`
		args = append(args, month)
	}
	query += ` ORDER BY date DESC, created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, storeErr("list incomes", err)
	}
	defer rows.Close()

	incomes := []*models.IncomeRecord{}
	for rows.Next() {
		r := &models.IncomeRecord{}
		if err := rows.Scan(&r.ID, &r.Month, &r.Total, &r.Note, &r.Date, &r.CreatedAt); err != nil {
			return nil, storeErr("scan income", err)
		}
		incomes = append(incomes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list incomes", err)
	}
	return incomes, nil
}

// CreateIncome inserts one income ledger row.
func CreateIncome(db *sql.DB, r *models.IncomeRecord) error {
	if !models.ValidMonth(r.Month) {
		return validationErr("unknown month %q", r.Month)
	}
	if r.Total < 0 {
		return validationErr("amounts cannot be negative")
	}
	if r.Date.IsZero() {
		r.Date = time.Now()
	}

	err := db.QueryRow(`INSERT INTO incomes (month, total, note, date)
			VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		r.Month, r.Total, r.Note, r.Date,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return storeErr("insert income", err)
	}
	return nil
}

// GetDashboardStats returns the association's overall totals.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := db.QueryRow(`SELECT COALESCE(SUM(total), 0) FROM incomes`).Scan(&stats.TotalIncome)
	if err != nil {
		return nil, storeErr("sum income", err)
	}

	err = db.QueryRow(`SELECT COALESCE(SUM(total), 0) FROM expenses`).Scan(&stats.TotalExpenses)
	if err != nil {
		return nil, storeErr("sum expenses", err)
	}
	stats.Net = stats.TotalIncome - stats.TotalExpenses

	err = db.QueryRow(`SELECT COUNT(*) FROM families`).Scan(&stats.FamilyCount)
	if err != nil {
		return nil, storeErr("count families", err)
	}

	// Members = named adults + registered children.
	err = db.QueryRow(`SELECT
			COALESCE(SUM((first_adult_name <> '')::int + (second_adult_name <> '')::int), 0)
			FROM families`).Scan(&stats.MemberCount)
	if err != nil {
		return nil, storeErr("count adults", err)
	}
	var children int
	if err := db.QueryRow(`SELECT COUNT(*) FROM children`).Scan(&children); err != nil {
		return nil, storeErr("count children", err)
	}
	stats.MemberCount += children

	return stats, nil
}
