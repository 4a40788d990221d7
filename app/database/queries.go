package database

import (
	"database/sql"

	"github.com/ashuraya1989-cyber/assyrian-church/app/models"
	"golang.org/x/crypto/bcrypt"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `
		SELECT r.id, r.name
		FROM roles r
		JOIN user_roles ur ON r.id = ur.role_id
		WHERE ur.user_id = $1
	`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, &role)
	}
	return roles, rows.Err()
}

// CreateUser inserts an operator account with the given role, hashing the
// plaintext password on the way in.
func CreateUser(db *sql.DB, user *models.User, roleName string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), 14)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return storeErr("begin create user", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(`INSERT INTO users (email, password, first_name, last_name, is_active)
			VALUES ($1, $2, $3, $4, true)
			RETURNING id, created_at, updated_at`,
		user.Email, string(hashed), user.FirstName, user.LastName,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return storeErr("insert user", err)
	}

	_, err = tx.Exec(`INSERT INTO user_roles (user_id, role_id)
			SELECT $1, id FROM roles WHERE name = $2`, user.ID, roleName)
	if err != nil {
		return storeErr("assign role", err)
	}

	return tx.Commit()
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}
