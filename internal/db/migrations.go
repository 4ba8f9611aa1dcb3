package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_role') THEN
			CREATE TYPE user_role AS ENUM ('Charterer', 'Carrier', 'Broker');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_status') THEN
			CREATE TYPE user_status AS ENUM ('active', 'disabled');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'cargo_type') THEN
			CREATE TYPE cargo_type AS ENUM (
				'General Cargo',
				'Special Cargo',
				'Dangerous Goods',
				'Temperature Sensitive Cargo',
				'Perishable Goods',
				'Live Animals'
			);
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'currency') THEN
			CREATE TYPE currency AS ENUM ('USD', 'EUR', 'RUB', 'GBP', 'CNY');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'payment_status') THEN
			CREATE TYPE payment_status AS ENUM (
				'Paid',
				'Pending',
				'Overdue',
				'Cancelled',
				'Refunded',
				'Partially Paid',
				'Partially Refunded',
				'Partially Paid & Overdue',
				'Partially Refunded & Overdue'
			);
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'contract_status') THEN
			CREATE TYPE contract_status AS ENUM ('Pending', 'Signed', 'Cancelled');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(120) NOT NULL,
		full_name VARCHAR(100) NOT NULL,
		company VARCHAR(100) NOT NULL,
		role user_role NOT NULL,
		reputation NUMERIC(5,2) NOT NULL DEFAULT 50.0 CHECK (reputation >= 0),
		password_hash TEXT NOT NULL,
		status user_status NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_email ON users (email);`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		partner_id BIGINT NOT NULL REFERENCES users(id),
		order_number BIGINT NOT NULL,
		order_date TIMESTAMPTZ NOT NULL,
		aircraft_type VARCHAR(64) NOT NULL,
		flight_number VARCHAR(16) NOT NULL,
		departure_date TIMESTAMPTZ NOT NULL,
		departure_city VARCHAR(100) NOT NULL,
		departure_airport VARCHAR(100) NOT NULL,
		departure_cargo_type cargo_type NOT NULL,
		departure_cargo_weight NUMERIC(12,2) NOT NULL,
		departure_cargo_volume NUMERIC(12,2) NOT NULL,
		arrival_date TIMESTAMPTZ NOT NULL,
		arrival_city VARCHAR(100) NOT NULL,
		arrival_airport VARCHAR(100) NOT NULL,
		arrival_cargo_type cargo_type NOT NULL,
		arrival_cargo_weight NUMERIC(12,2) NOT NULL,
		arrival_cargo_volume NUMERIC(12,2) NOT NULL,
		round_trip BOOLEAN NOT NULL,
		price NUMERIC(14,2) NOT NULL,
		currency currency NOT NULL,
		payment_status payment_status NOT NULL,
		contract_id BIGINT,
		order_status VARCHAR(32) NOT NULL,
		empty_leg_match BOOLEAN NOT NULL,
		CONSTRAINT chk_orders_distinct_parties CHECK (user_id <> partner_id)
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_orders_number ON orders (order_number);`,
	`CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders (user_id);`,
	`CREATE INDEX IF NOT EXISTS idx_orders_partner_id ON orders (partner_id);`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders(id),
		charterer_id BIGINT NOT NULL REFERENCES users(id),
		carrier_id BIGINT NOT NULL REFERENCES users(id),
		contract_date TIMESTAMPTZ NOT NULL,
		effective_from TIMESTAMPTZ NOT NULL,
		effective_to TIMESTAMPTZ,
		status contract_status NOT NULL DEFAULT 'Pending',
		file_url TEXT,
		terms_summary TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT chk_contracts_distinct_parties CHECK (charterer_id <> carrier_id),
		CONSTRAINT chk_contracts_effective_range CHECK (effective_to IS NULL OR effective_to >= effective_from)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_charterer_id ON contracts (charterer_id);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_carrier_id ON contracts (carrier_id);`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_orders_contract') THEN
			ALTER TABLE orders ADD CONSTRAINT fk_orders_contract FOREIGN KEY (contract_id) REFERENCES contracts(id);
		END IF;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
