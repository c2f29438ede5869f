package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"vue-production/internal/config"
	"vue-production/internal/storage"
)

type Storage struct {
	db *sql.DB
}

func New(cfg config.Config) (*Storage, error) {
	const op = "storage.postgres.New"

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// Init создает таблицы, если их еще нет. Безопасно гонять на каждом
// старте. Русские имена колонок в events и parts оставлены как в
// существующей базе.
func (s *Storage) Init(ctx context.Context) error {
	const op = "storage.postgres.Init"

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS production_plan (
			id SERIAL PRIMARY KEY,
			part_name VARCHAR(255) NOT NULL,
			planned_quantity INTEGER NOT NULL CHECK (planned_quantity > 0),
			machine_number INTEGER NOT NULL CHECK (machine_number > 0),
			start_time TIMESTAMP NOT NULL,
			end_time TIMESTAMP NOT NULL,
			CHECK (end_time > start_time)
		)`,
		`CREATE TABLE IF NOT EXISTS production (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL UNIQUE REFERENCES production_plan(id),
			part_number VARCHAR(255),
			actual_quantity INTEGER NOT NULL CHECK (actual_quantity > 0),
			bubble_count INTEGER DEFAULT 0 CHECK (bubble_count >= 0),
			underfill_count INTEGER DEFAULT 0 CHECK (underfill_count >= 0),
			inclusion_count INTEGER DEFAULT 0 CHECK (inclusion_count >= 0),
			defect_count INTEGER DEFAULT 0,
			actual_start_time TIMESTAMP NOT NULL,
			actual_end_time TIMESTAMP NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			CHECK (actual_end_time > actual_start_time)
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			event_id SERIAL PRIMARY KEY,
			event_name VARCHAR(255) NOT NULL,
			batch INTEGER NOT NULL REFERENCES production_plan(id),
			"Фактические время начала события" TIMESTAMP NOT NULL,
			"Фактические время конца события" TIMESTAMP NOT NULL,
			"Time_group" VARCHAR(50) NOT NULL CHECK ("Time_group" IN ('Planned pause time', 'Utilization hours', 'Breakdown time')),
			responsible VARCHAR(50) CHECK (responsible IS NULL OR responsible IN ('FMNTC', 'Production', 'Engineering', 'DMNTC')),
			comments TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS parts (
			"Наименование детали" VARCHAR(255) NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// wrapConstraint подменяет нарушения ограничений Postgres (класс 23)
// на storage.ErrConstraint, чтобы хендлеры не разбирали коды драйвера.
func wrapConstraint(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		return fmt.Errorf("%w: %s", storage.ErrConstraint, pqErr.Message)
	}
	return err
}
