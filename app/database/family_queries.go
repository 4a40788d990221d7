package database

import (
	"database/sql"
	"strings"
	"time"

	"github.com/ashuraya1989-cyber/assyrian-church/app/models"
)

// ListFamilies returns all families ordered by surname, each with its
// children (in position order) and its payments (newest first). search, when
// non-empty, filters on surname, adult names and city.
func ListFamilies(db *sql.DB, search string) ([]*models.Family, error) {
	query := `SELECT id, surname, first_adult_name, first_adult_id_number, first_adult_fee,
			  second_adult_name, second_adult_id_number, second_adult_fee,
			  mobile, email, address, city, postal_code, created_at, updated_at
			  FROM families`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE surname ILIKE $1 OR first_adult_name ILIKE $1 OR second_adult_name ILIKE $1 OR city ILIKE $1`
		args = append(args, "%"+strings.TrimSpace(search)+"%")
	}
	query += ` ORDER BY surname ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, storeErr("list families", err)
	}
	defer rows.Close()

	families := []*models.Family{}
	byID := map[string]*models.Family{}
	for rows.Next() {
		f := &models.Family{}
		err := rows.Scan(
			&f.ID, &f.Surname, &f.FirstAdultName, &f.FirstAdultIDNumber, &f.FirstAdultFee,
			&f.SecondAdultName, &f.SecondAdultIDNumber, &f.SecondAdultFee,
			&f.Mobile, &f.Email, &f.Address, &f.City, &f.PostalCode,
			&f.CreatedAt, &f.UpdatedAt,
		)
		if err != nil {
			return nil, storeErr("scan family", err)
		}
		f.Children = []*models.Child{}
		f.Payments = []*models.Payment{}
		families = append(families, f)
		byID[f.ID] = f
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list families", err)
	}

	if err := attachChildren(db, byID); err != nil {
		return nil, err
	}
	if err := attachPayments(db, byID); err != nil {
		return nil, err
	}
	return families, nil
}

func attachChildren(db *sql.DB, families map[string]*models.Family) error {
	rows, err := db.Query(`SELECT id, family_id, position, name, id_number, monthly_fee, created_at
			  FROM children ORDER BY family_id, position`)
	if err != nil {
		return storeErr("list children", err)
	}
	defer rows.Close()

	for rows.Next() {
		c := &models.Child{}
		if err := rows.Scan(&c.ID, &c.FamilyID, &c.Position, &c.Name, &c.IDNumber, &c.MonthlyFee, &c.CreatedAt); err != nil {
			return storeErr("scan child", err)
		}
		if f, ok := families[c.FamilyID]; ok {
			f.Children = append(f.Children, c)
		}
	}
	if err := rows.Err(); err != nil {
		return storeErr("list children", err)
	}
	return nil
}

func attachPayments(db *sql.DB, families map[string]*models.Family) error {
	rows, err := db.Query(`SELECT id, family_id, monthly_fee, annual_fee, amount_paid, paid_until,
			  method, reference, created_at, updated_at
			  FROM payments ORDER BY family_id, created_at DESC, id DESC`)
	if err != nil {
		return storeErr("list payments", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return storeErr("scan payment", err)
		}
		if f, ok := families[p.FamilyID]; ok {
			f.Payments = append(f.Payments, p)
		}
	}
	if err := rows.Err(); err != nil {
		return storeErr("list payments", err)
	}
	return nil
}

// GetFamily loads one family with its children in position order. Returns
// ErrNotFound when the id is unknown.
func GetFamily(db *sql.DB, id string) (*models.Family, error) {
	f := &models.Family{}
	query := `SELECT id, surname, first_adult_name, first_adult_id_number, first_adult_fee,
			  second_adult_name, second_adult_id_number, second_adult_fee,
			  mobile, email, address, city, postal_code, created_at, updated_at
			  FROM families WHERE id = $1`

	err := db.QueryRow(query, id).Scan(
		&f.ID, &f.Surname, &f.FirstAdultName, &f.FirstAdultIDNumber, &f.FirstAdultFee,
		&f.SecondAdultName, &f.SecondAdultIDNumber, &f.SecondAdultFee,
		&f.Mobile, &f.Email, &f.Address, &f.City, &f.PostalCode,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get family", err)
	}

	rows, err := db.Query(`SELECT id, family_id, position, name, id_number, monthly_fee, created_at
			  FROM children WHERE family_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, storeErr("get family children", err)
	}
	defer rows.Close()

	f.Children = []*models.Child{}
	for rows.Next() {
		c := &models.Child{}
		if err := rows.Scan(&c.ID, &c.FamilyID, &c.Position, &c.Name, &c.IDNumber, &c.MonthlyFee, &c.CreatedAt); err != nil {
			return nil, storeErr("scan child", err)
		}
		f.Children = append(f.Children, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("get family children", err)
	}
	return f, nil
}

func validateFamily(f *models.Family) error {
	if !f.HasAdult() {
		return validationErr("at least one adult name (first or second) is required")
	}
	if len(f.Children) > models.MaxChildrenPerFamily {
		return validationErr("a family can have at most %d children", models.MaxChildrenPerFamily)
	}
	return nil
}

// UpsertFamilyWithChildren saves the family and replaces its child list in a
// single transaction, mirroring the composite write the backend used to do in
// a stored procedure. Children are renumbered 1..N in the order given so the
// stored positions stay dense. Returns the family id.
func UpsertFamilyWithChildren(db *sql.DB, f *models.Family) (string, error) {
	if err := validateFamily(f); err != nil {
		return "", err
	}

	tx, err := db.Begin()
	if err != nil {
		return "", storeErr("begin upsert family", err)
	}
	defer tx.Rollback()

	if f.ID == "" {
		err = tx.QueryRow(`INSERT INTO families
				(surname, first_adult_name, first_adult_id_number, first_adult_fee,
				 second_adult_name, second_adult_id_number, second_adult_fee,
				 mobile, email, address, city, postal_code)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
				RETURNING id`,
			f.Surname, f.FirstAdultName, f.FirstAdultIDNumber, f.FirstAdultFee,
			f.SecondAdultName, f.SecondAdultIDNumber, f.SecondAdultFee,
			f.Mobile, f.Email, f.Address, f.City, f.PostalCode,
		).Scan(&f.ID)
		if err != nil {
			return "", storeErr("insert family", err)
		}
	} else {
		res, err := tx.Exec(`UPDATE families SET
				surname = $1, first_adult_name = $2, first_adult_id_number = $3, first_adult_fee = $4,
				second_adult_name = $5, second_adult_id_number = $6, second_adult_fee = $7,
				mobile = $8, email = $9, address = $10, city = $11, postal_code = $12,
				updated_at = NOW()
				WHERE id = $13`,
			f.Surname, f.FirstAdultName, f.FirstAdultIDNumber, f.FirstAdultFee,
			f.SecondAdultName, f.SecondAdultIDNumber, f.SecondAdultFee,
			f.Mobile, f.Email, f.Address, f.City, f.PostalCode, f.ID,
		)
		if err != nil {
			return "", storeErr("update family", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return "", storeErr("update family", err)
		}
		if n == 0 {
			return "", ErrNotFound
		}
		if _, err := tx.Exec(`DELETE FROM children WHERE family_id = $1`, f.ID); err != nil {
			return "", storeErr("replace children", err)
		}
	}

	for i, c := range f.Children {
		c.FamilyID = f.ID
		c.Position = i + 1
		err := tx.QueryRow(`INSERT INTO children (family_id, position, name, id_number, monthly_fee)
				VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
			c.FamilyID, c.Position, c.Name, c.IDNumber, c.MonthlyFee,
		).Scan(&c.ID, &c.CreatedAt)
		if err != nil {
			return "", storeErr("insert child", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", storeErr("commit upsert family", err)
	}
	return f.ID, nil
}

// DeleteFamily removes a family; children and payments go with it via the
// foreign keys. Deleting an id that no longer exists returns ErrNotFound.
func DeleteFamily(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM families WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete family", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr("delete family", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountFamilies returns the number of registered families.
func CountFamilies(db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM families`).Scan(&n); err != nil {
		return 0, storeErr("count families", err)
	}
	return n, nil
}

// formatDate renders a scanned DATE column as an ISO calendar date. Time of
// day is never significant to the business logic.
func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
