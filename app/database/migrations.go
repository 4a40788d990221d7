package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema when missing and applies incremental
// updates. Everything here is idempotent so it runs on every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	tables := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(64) UNIQUE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			role_id UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
			PRIMARY KEY (user_id, role_id)
		)`,
		`CREATE TABLE IF NOT EXISTS families (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			surname VARCHAR(255) NOT NULL,
			first_adult_name VARCHAR(255) NOT NULL DEFAULT '',
			first_adult_id_number VARCHAR(12) NOT NULL DEFAULT '',
			first_adult_fee BIGINT NOT NULL DEFAULT 200,
			second_adult_name VARCHAR(255) NOT NULL DEFAULT '',
			second_adult_id_number VARCHAR(12) NOT NULL DEFAULT '',
			second_adult_fee BIGINT NOT NULL DEFAULT 200,
			mobile VARCHAR(20) NOT NULL DEFAULT '',
			email VARCHAR(255) NOT NULL DEFAULT '',
			address VARCHAR(255) NOT NULL DEFAULT '',
			city VARCHAR(255) NOT NULL DEFAULT '',
			postal_code VARCHAR(10) NOT NULL DEFAULT '',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS children (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			family_id UUID NOT NULL REFERENCES families(id) ON DELETE CASCADE,
			position INT NOT NULL,
			name VARCHAR(255) NOT NULL DEFAULT '',
			id_number VARCHAR(12) NOT NULL DEFAULT '',
			monthly_fee BIGINT NOT NULL DEFAULT 100,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			UNIQUE (family_id, position)
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			family_id UUID NOT NULL REFERENCES families(id) ON DELETE CASCADE,
			monthly_fee BIGINT NOT NULL,
			annual_fee BIGINT NOT NULL,
			amount_paid BIGINT NOT NULL,
			paid_until DATE NOT NULL,
			method VARCHAR(20) NOT NULL,
			reference TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS incomes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			month VARCHAR(20) NOT NULL,
			total BIGINT NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			date DATE NOT NULL DEFAULT CURRENT_DATE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			month VARCHAR(20) NOT NULL,
			week INT NOT NULL DEFAULT 1,
			rent BIGINT NOT NULL DEFAULT 0,
			breakfast BIGINT NOT NULL DEFAULT 0,
			bills BIGINT NOT NULL DEFAULT 0,
			other BIGINT NOT NULL DEFAULT 0,
			total BIGINT NOT NULL,
			comment TEXT NOT NULL DEFAULT '',
			reported_by VARCHAR(255) NOT NULL DEFAULT '',
			date DATE NOT NULL DEFAULT CURRENT_DATE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS app_settings (
			key VARCHAR(64) PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	}

	for _, q := range tables {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating tables: %v", err)
			return err
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_families_surname ON families(surname)`,
		`CREATE INDEX IF NOT EXISTS idx_children_family_id ON children(family_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_family_id ON payments(family_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_created_at ON payments(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_month ON expenses(month)`,
		`CREATE INDEX IF NOT EXISTS idx_incomes_month ON incomes(month)`,
	}

	for _, q := range indexes {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error running index migration: %v", err)
			// Continue, duplicate index errors are harmless across PG versions
		}
	}

	seeds := []string{
		`INSERT INTO roles (name) VALUES ('admin') ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO roles (name) VALUES ('treasurer') ON CONFLICT (name) DO NOTHING`,
	}

	for _, q := range seeds {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error seeding roles: %v", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
