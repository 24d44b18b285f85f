package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// schemaDDL diez tablas con IDs uuid en texto. Los FKs son RESTRICT: un puerto o
// planta referenciado por schedules no se puede borrar desde la DB, igual que el
// chequeo explícito del caso de uso.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL,
		role VARCHAR(50) NOT NULL,
		verified BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id TEXT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		location VARCHAR(255),
		contact VARCHAR(255),
		status VARCHAR(50) DEFAULT 'active',
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS ports (
		id TEXT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		capacity INTEGER NOT NULL,
		current_stock INTEGER DEFAULT 0,
		location VARCHAR(255),
		status VARCHAR(50) DEFAULT 'operational',
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS plants (
		id TEXT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		capacity INTEGER NOT NULL,
		current_stock INTEGER DEFAULT 0,
		location VARCHAR(255),
		status VARCHAR(50) DEFAULT 'operational',
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS vessels (
		id TEXT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		capacity INTEGER NOT NULL,
		status VARCHAR(50) DEFAULT 'available',
		current_location VARCHAR(255),
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS rakes (
		id TEXT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		capacity INTEGER NOT NULL,
		status VARCHAR(50) DEFAULT 'available',
		current_location VARCHAR(255),
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS schedules (
		id TEXT PRIMARY KEY,
		type VARCHAR(50) NOT NULL,
		supplier_id TEXT REFERENCES suppliers(id) ON DELETE RESTRICT,
		port_id TEXT REFERENCES ports(id) ON DELETE RESTRICT,
		plant_id TEXT REFERENCES plants(id) ON DELETE RESTRICT,
		vessel_id TEXT REFERENCES vessels(id) ON DELETE RESTRICT,
		rake_id TEXT REFERENCES rakes(id) ON DELETE RESTRICT,
		quantity INTEGER NOT NULL,
		scheduled_date DATE NOT NULL,
		status VARCHAR(50) DEFAULT 'scheduled',
		created_by VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS stock_levels (
		id TEXT PRIMARY KEY,
		port_id TEXT REFERENCES ports(id) ON DELETE RESTRICT,
		plant_id TEXT REFERENCES plants(id) ON DELETE RESTRICT,
		stock_level INTEGER NOT NULL,
		timestamp TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS user_activities (
		id TEXT PRIMARY KEY,
		user_email VARCHAR(255) NOT NULL,
		action VARCHAR(255) NOT NULL,
		details TEXT,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS uploaded_files (
		id TEXT PRIMARY KEY,
		filename VARCHAR(255) NOT NULL,
		file_type VARCHAR(50) NOT NULL,
		uploaded_by VARCHAR(255) NOT NULL,
		file_path VARCHAR(500) NOT NULL,
		uploaded_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
}

// EnsureSchema crea las tablas si no existen. Idempotente.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, ddl := range schemaDDL {
		if _, err := pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("crear schema: %w", err)
		}
	}
	return nil
}

// Seed puebla los datos por defecto cuando las tablas están vacías: usuarios
// owner/manager/admin, Default Supplier, Port X/Y, Plant 1/2, Default Vessel,
// Default Rake y tres schedules de muestra. Idempotente por tabla.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	if empty, err := tableEmpty(ctx, pool, "users"); err != nil {
		return err
	} else if empty {
		defaultUsers := []struct{ email, password, name, role string }{
			{"owner@example.com", "owner123", "System Owner", "owner"},
			{"manager@example.com", "manager123", "Supply Chain Manager", "manager"},
			{"admin@example.com", "admin123", "System Administrator", "admin"},
		}
		for _, u := range defaultUsers {
			hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash de contraseña seed: %w", err)
			}
			_, err = pool.Exec(ctx,
				`INSERT INTO users (id, email, password_hash, name, role, verified, created_at)
				 VALUES ($1, $2, $3, $4, $5, TRUE, $6)`,
				uuid.New().String(), u.email, string(hash), u.name, u.role, time.Now())
			if err != nil {
				return fmt.Errorf("seed users: %w", err)
			}
		}
	}

	supplierID := uuid.New().String()
	if empty, err := tableEmpty(ctx, pool, "suppliers"); err != nil {
		return err
	} else if empty {
		_, err = pool.Exec(ctx,
			`INSERT INTO suppliers (id, name, created_at) VALUES ($1, 'Default Supplier', $2)`,
			supplierID, time.Now())
		if err != nil {
			return fmt.Errorf("seed suppliers: %w", err)
		}
	} else {
		if err := pool.QueryRow(ctx, `SELECT id FROM suppliers ORDER BY created_at LIMIT 1`).Scan(&supplierID); err != nil {
			return fmt.Errorf("seed suppliers: %w", err)
		}
	}

	// Los schedules de muestra solo se insertan cuando puertos y plantas se
	// sembraron en esta misma corrida (necesitan los IDs recién generados).
	freshLocations := true

	portXID, portYID := uuid.New().String(), uuid.New().String()
	if empty, err := tableEmpty(ctx, pool, "ports"); err != nil {
		return err
	} else if empty {
		_, err = pool.Exec(ctx,
			`INSERT INTO ports (id, name, capacity, current_stock, created_at)
			 VALUES ($1, 'Port X', 10000, 5000, $3), ($2, 'Port Y', 15000, 8000, $3)`,
			portXID, portYID, time.Now())
		if err != nil {
			return fmt.Errorf("seed ports: %w", err)
		}
	} else {
		freshLocations = false
	}

	plant1ID := uuid.New().String()
	if empty, err := tableEmpty(ctx, pool, "plants"); err != nil {
		return err
	} else if empty {
		_, err = pool.Exec(ctx,
			`INSERT INTO plants (id, name, capacity, current_stock, created_at)
			 VALUES ($1, 'Plant 1', 5000, 2000, $3), ($2, 'Plant 2', 7000, 3000, $3)`,
			plant1ID, uuid.New().String(), time.Now())
		if err != nil {
			return fmt.Errorf("seed plants: %w", err)
		}
	} else {
		freshLocations = false
	}

	vesselID := uuid.New().String()
	if empty, err := tableEmpty(ctx, pool, "vessels"); err != nil {
		return err
	} else if empty {
		_, err = pool.Exec(ctx,
			`INSERT INTO vessels (id, name, capacity, created_at) VALUES ($1, 'Default Vessel', 5000, $2)`,
			vesselID, time.Now())
		if err != nil {
			return fmt.Errorf("seed vessels: %w", err)
		}
	} else {
		freshLocations = false
	}

	rakeID := uuid.New().String()
	if empty, err := tableEmpty(ctx, pool, "rakes"); err != nil {
		return err
	} else if empty {
		_, err = pool.Exec(ctx,
			`INSERT INTO rakes (id, name, capacity, created_at) VALUES ($1, 'Default Rake', 2500, $2)`,
			rakeID, time.Now())
		if err != nil {
			return fmt.Errorf("seed rakes: %w", err)
		}
	} else {
		freshLocations = false
	}

	if empty, err := tableEmpty(ctx, pool, "schedules"); err != nil {
		return err
	} else if empty && freshLocations {
		now := time.Now()
		samples := []struct {
			typ               string
			portID            string
			plantID, rakeID   *string
			vesselID          *string
			quantity          int
			scheduledDate     time.Time
			status, createdBy string
		}{
			{"vessel-to-port", portXID, nil, nil, &vesselID, 5000, now.AddDate(0, 0, 5), "scheduled", "system"},
			{"port-to-plant", portYID, &plant1ID, &rakeID, nil, 2000, now.AddDate(0, 0, -10), "completed", "system"},
			{"vessel-to-port", portYID, nil, nil, &vesselID, 7500, now.AddDate(0, 0, 2), "in-progress", "system"},
		}
		for _, s := range samples {
			_, err := pool.Exec(ctx,
				`INSERT INTO schedules (id, type, supplier_id, port_id, plant_id, vessel_id, rake_id,
					quantity, scheduled_date, status, created_by, created_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
				uuid.New().String(), s.typ, supplierID, s.portID, s.plantID, s.vesselID, s.rakeID,
				s.quantity, s.scheduledDate, s.status, s.createdBy, now)
			if err != nil {
				return fmt.Errorf("seed schedules: %w", err)
			}
		}
	}
	return nil
}

func tableEmpty(ctx context.Context, pool *pgxpool.Pool, table string) (bool, error) {
	var n int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		return false, fmt.Errorf("contar %s: %w", table, err)
	}
	return n == 0, nil
}
