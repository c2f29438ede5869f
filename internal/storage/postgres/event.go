package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"vue-production/internal/storage"
)

func (s *Storage) SaveEvent(ctx context.Context, details storage.EventDetails) (int64, error) {
	const op = "storage.postgres.SaveEvent"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer tx.Rollback()

	var batchID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM production_plan WHERE id = $1`, details.BatchID).Scan(&batchID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, storage.ErrOrderNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	stmt := `INSERT INTO events
	         (event_name, batch, "Фактические время начала события", "Фактические время конца события",
	          "Time_group", responsible, comments)
	         VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING event_id`

	var eventID int64
	err = tx.QueryRowContext(ctx, stmt,
		details.Name,
		details.BatchID,
		details.StartTime,
		details.EndTime,
		details.TimeGroup,
		details.Responsible,
		details.Comments,
	).Scan(&eventID)
	if err != nil {
		return 0, fmt.Errorf("%s: Ошибка при сохранении события: %w", op, wrapConstraint(err))
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit: %w", op, err)
	}

	return eventID, nil
}

// DeleteEvent удаляет событие и возвращает id батча, которому оно
// принадлежало — хендлеру он нужен для обновленного списка.
func (s *Storage) DeleteEvent(ctx context.Context, eventID int64) (int64, error) {
	const op = "storage.postgres.DeleteEvent"

	var batchID int64
	err := s.db.QueryRowContext(ctx, `SELECT batch FROM events WHERE event_id = $1`, eventID).Scan(&batchID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, storage.ErrEventNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var deletedID int64
	err = s.db.QueryRowContext(ctx, `DELETE FROM events WHERE event_id = $1 RETURNING event_id`, eventID).Scan(&deletedID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, storage.ErrEventNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%s: Ошибка при удалении события: %w", op, err)
	}

	return batchID, nil
}

func (s *Storage) ListEvents(ctx context.Context, batchID int64) ([]*storage.Event, error) {
	const op = "storage.postgres.ListEvents"

	stmt := `SELECT event_id, event_name,
	                "Фактические время начала события", "Фактические время конца события",
	                "Time_group", responsible, comments
	         FROM events
	         WHERE batch = $1
	         ORDER BY "Фактические время начала события" DESC`

	rows, err := s.db.QueryContext(ctx, stmt, batchID)
	if err != nil {
		return nil, fmt.Errorf("%s: Ошибка при получении событий: %w", op, err)
	}
	defer rows.Close()

	var events []*storage.Event
	for rows.Next() {
		var event storage.Event
		event.BatchID = batchID

		err := rows.Scan(
			&event.ID,
			&event.Name,
			&event.StartTime,
			&event.EndTime,
			&event.TimeGroup,
			&event.Responsible,
			&event.Comments,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строк %w", op, err)
		}

		events = append(events, &event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка сканирования строк %w", op, err)
	}

	return events, nil
}
