package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'car_type') THEN
			CREATE TYPE car_type AS ENUM ('electric', 'gas');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'trip_status') THEN
			CREATE TYPE trip_status AS ENUM ('idle', 'heading_to_pickup', 'on_highway', 'rest_stop', 'completed');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'app_role') THEN
			CREATE TYPE app_role AS ENUM ('admin', 'driver');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'expense_category') THEN
			CREATE TYPE expense_category AS ENUM ('fuel', 'charging', 'toll', 'commission', 'repair', 'maintenance', 'other');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role app_role NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS cars (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		plate_number VARCHAR(32) NOT NULL UNIQUE,
		model VARCHAR(128) NOT NULL,
		year INT NOT NULL,
		car_type car_type NOT NULL DEFAULT 'gas',
		mileage NUMERIC NOT NULL DEFAULT 0,
		current_charge_percent NUMERIC,
		battery_health NUMERIC,
		fuel_level NUMERIC,
		oil_change_mileage NUMERIC,
		last_oil_change_mileage NUMERIC,
		health_score NUMERIC DEFAULT 100,
		status trip_status NOT NULL DEFAULT 'idle',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_cars_status ON cars (status);`,
	`CREATE TABLE IF NOT EXISTS drivers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		phone VARCHAR(32),
		email VARCHAR(255),
		status VARCHAR(32) NOT NULL DEFAULT 'available',
		hours_driven_today NUMERIC NOT NULL DEFAULT 0,
		license_uploaded BOOLEAN NOT NULL DEFAULT FALSE,
		permit_uploaded BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_drivers_status ON drivers (status);`,
	`CREATE TABLE IF NOT EXISTS routes (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		origin VARCHAR(255) NOT NULL,
		destination VARCHAR(255) NOT NULL,
		distance_km NUMERIC NOT NULL,
		base_price NUMERIC NOT NULL,
		estimated_tolls NUMERIC NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS preorders (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		customer_name VARCHAR(255) NOT NULL,
		customer_phone VARCHAR(64),
		customer_address TEXT,
		route_id UUID REFERENCES routes(id) ON DELETE SET NULL,
		assigned_car_id UUID REFERENCES cars(id) ON DELETE SET NULL,
		assigned_driver_id UUID REFERENCES drivers(id) ON DELETE SET NULL,
		scheduled_date DATE NOT NULL,
		scheduled_time VARCHAR(16) NOT NULL,
		status VARCHAR(32) NOT NULL DEFAULT 'pending',
		notes TEXT,
		payment_proof_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_preorders_status ON preorders (status);`,
	`CREATE INDEX IF NOT EXISTS idx_preorders_scheduled_date ON preorders (scheduled_date);`,
	`CREATE TABLE IF NOT EXISTS trips (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		car_id UUID NOT NULL REFERENCES cars(id),
		driver_id UUID REFERENCES drivers(id) ON DELETE SET NULL,
		route_id UUID REFERENCES routes(id) ON DELETE SET NULL,
		preorder_id UUID REFERENCES preorders(id) ON DELETE SET NULL,
		status trip_status NOT NULL DEFAULT 'idle',
		started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		completed_at TIMESTAMPTZ,
		total_fare NUMERIC,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_status ON trips (status);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_car_id ON trips (car_id);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_completed_at ON trips (completed_at);`,
	`CREATE TABLE IF NOT EXISTS ledger (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		entry_type VARCHAR(16) NOT NULL,
		category expense_category,
		amount NUMERIC NOT NULL,
		description TEXT,
		car_id UUID REFERENCES cars(id) ON DELETE SET NULL,
		driver_id UUID REFERENCES drivers(id) ON DELETE SET NULL,
		trip_id UUID REFERENCES trips(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_ledger_entry_type ON ledger (entry_type);`,
	`CREATE INDEX IF NOT EXISTS idx_ledger_created_at ON ledger (created_at);`,
	`CREATE TABLE IF NOT EXISTS energy_logs (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		car_id UUID NOT NULL REFERENCES cars(id) ON DELETE CASCADE,
		log_type VARCHAR(16) NOT NULL,
		location VARCHAR(255),
		amount NUMERIC NOT NULL,
		cost NUMERIC NOT NULL,
		kwh NUMERIC,
		price_per_unit NUMERIC,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_energy_logs_car_id ON energy_logs (car_id);`,
	`CREATE TABLE IF NOT EXISTS maintenance_logs (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		car_id UUID NOT NULL REFERENCES cars(id) ON DELETE CASCADE,
		maintenance_type VARCHAR(64) NOT NULL,
		cost NUMERIC NOT NULL DEFAULT 0,
		description TEXT,
		mileage_at_service NUMERIC,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_maintenance_logs_car_id ON maintenance_logs (car_id);`,
	`CREATE TABLE IF NOT EXISTS payment_methods (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(128) NOT NULL,
		account_name VARCHAR(255),
		account_number VARCHAR(128),
		qr_code_url TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS vehicle_locations (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		car_id UUID NOT NULL REFERENCES cars(id) ON DELETE CASCADE,
		latitude NUMERIC NOT NULL,
		longitude NUMERIC NOT NULL,
		heading NUMERIC NOT NULL DEFAULT 0,
		speed NUMERIC NOT NULL DEFAULT 0,
		accuracy NUMERIC NOT NULL DEFAULT 0,
		recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicle_locations_trip_id ON vehicle_locations (trip_id, recorded_at DESC);`,
	`CREATE OR REPLACE FUNCTION set_row_updated_at()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_cars_updated_at') THEN
			CREATE TRIGGER trg_cars_updated_at
				BEFORE UPDATE ON cars
				FOR EACH ROW
				EXECUTE PROCEDURE set_row_updated_at();
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_drivers_updated_at') THEN
			CREATE TRIGGER trg_drivers_updated_at
				BEFORE UPDATE ON drivers
				FOR EACH ROW
				EXECUTE PROCEDURE set_row_updated_at();
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
