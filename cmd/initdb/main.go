// initdb crea el esquema de la base y siembra los datos por defecto (usuarios
// owner/manager/admin, ubicaciones y schedules de muestra). Idempotente.
//
// Uso: go run ./cmd/initdb [--locations-csv ruta/ubicaciones.csv]
//
// El CSV opcional agrega puertos y plantas adicionales, con columnas:
//
//	type,name,capacity,location
//
// Se toleran archivos en Latin-1 (ISO-8859-1), frecuentes en exportes viejos
// de planillas.
package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/logitrack-api/internal/infrastructure/postgres"
	"github.com/jhoicas/logitrack-api/pkg/config"
	"github.com/jhoicas/logitrack-api/pkg/logger"
)

func main() {
	csvPath := flag.String("locations-csv", "", "CSV opcional de puertos/plantas adicionales")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}
	if err := postgres.Seed(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("sembrar datos por defecto")
	}
	log.Info().Msg("esquema y datos por defecto listos")

	if *csvPath == "" {
		return
	}
	n, err := importLocations(ctx, pool, *csvPath)
	if err != nil {
		log.Fatal().Err(err).Str("csv", *csvPath).Msg("importar ubicaciones")
	}
	log.Info().Int("ubicaciones", n).Str("csv", *csvPath).Msg("CSV importado")
}

// importLocations inserta puertos y plantas desde un CSV con encabezado
// type,name,capacity,location. Devuelve la cantidad insertada.
func importLocations(ctx context.Context, pool *pgxpool.Pool, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("abrir CSV: %w", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return 0, fmt.Errorf("leer CSV: %w", err)
	}
	if !utf8.Valid(raw) {
		raw, _, err = transform.Bytes(charmap.ISO8859_1.NewDecoder(), raw)
		if err != nil {
			return 0, fmt.Errorf("decodificar Latin-1: %w", err)
		}
	}

	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("parsear CSV: %w", err)
	}

	inserted := 0
	for i, rec := range records {
		if i == 0 && len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "type") {
			continue // encabezado
		}
		if len(rec) < 3 {
			return inserted, fmt.Errorf("fila %d: se esperan al menos type,name,capacity", i+1)
		}
		typ := strings.ToLower(strings.TrimSpace(rec[0]))
		name := strings.TrimSpace(rec[1])
		capacity, err := strconv.Atoi(strings.TrimSpace(rec[2]))
		if err != nil || capacity <= 0 || name == "" {
			return inserted, fmt.Errorf("fila %d: nombre y capacidad positiva requeridos", i+1)
		}
		location := ""
		if len(rec) > 3 {
			location = strings.TrimSpace(rec[3])
		}

		var table string
		switch typ {
		case "port":
			table = "ports"
		case "plant":
			table = "plants"
		default:
			return inserted, fmt.Errorf("fila %d: type debe ser port o plant, no %q", i+1, typ)
		}
		_, err = pool.Exec(ctx,
			`INSERT INTO `+table+` (id, name, capacity, current_stock, location, status, created_at)
			 VALUES ($1, $2, $3, 0, $4, 'operational', $5)`,
			uuid.New().String(), name, capacity, location, time.Now())
		if err != nil {
			return inserted, fmt.Errorf("insertar %s %q: %w", typ, name, err)
		}
		inserted++
	}
	return inserted, nil
}
