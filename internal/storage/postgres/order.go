package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"vue-production/internal/storage"
)

func (s *Storage) SaveOrder(ctx context.Context, details storage.OrderDetails) (int64, error) {
	const op = "storage.postgres.SaveOrder"

	stmt := `INSERT INTO production_plan (part_name, planned_quantity, machine_number, start_time, end_time)
	         VALUES ($1, $2, $3, $4, $5) RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, stmt,
		details.PartName,
		details.PlannedQuantity,
		details.MachineNumber,
		details.StartTime,
		details.EndTime,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: Ошибка при сохранении плана: %w", op, wrapConstraint(err))
	}

	return id, nil
}

func (s *Storage) UpdateOrder(ctx context.Context, id int64, details storage.OrderDetails) error {
	const op = "storage.postgres.UpdateOrder"

	stmt := `UPDATE production_plan
	         SET part_name = $1, planned_quantity = $2, machine_number = $3, start_time = $4, end_time = $5
	         WHERE id = $6 RETURNING id`

	var updatedID int64
	err := s.db.QueryRowContext(ctx, stmt,
		details.PartName,
		details.PlannedQuantity,
		details.MachineNumber,
		details.StartTime,
		details.EndTime,
		id,
	).Scan(&updatedID)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("%s: Ошибка при обновлении плана: %w", op, wrapConstraint(err))
	}

	return nil
}

// DeleteOrder удаляет план вместе с зависимыми строками в одной
// транзакции: сначала события, потом отчет, потом сам план.
func (s *Storage) DeleteOrder(ctx context.Context, id int64) (int64, error) {
	const op = "storage.postgres.DeleteOrder"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer tx.Rollback()

	var existingID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM production_plan WHERE id = $1`, id).Scan(&existingID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, storage.ErrOrderNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM events WHERE batch = $1`, id); err != nil {
		return 0, fmt.Errorf("%s: Ошибка при удалении событий: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM production WHERE order_id = $1`, id); err != nil {
		return 0, fmt.Errorf("%s: Ошибка при удалении отчета: %w", op, err)
	}

	var deletedID int64
	err = tx.QueryRowContext(ctx, `DELETE FROM production_plan WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		return 0, fmt.Errorf("%s: Ошибка при удалении плана: %w", op, wrapConstraint(err))
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit: %w", op, err)
	}

	return deletedID, nil
}

func (s *Storage) GetOrder(ctx context.Context, id int64) (*storage.Order, error) {
	const op = "storage.postgres.GetOrder"

	stmt := `SELECT id, part_name, planned_quantity, machine_number, start_time, end_time
	         FROM production_plan WHERE id = $1`

	var order storage.Order
	err := s.db.QueryRowContext(ctx, stmt, id).Scan(
		&order.ID,
		&order.PartName,
		&order.PlannedQuantity,
		&order.MachineNumber,
		&order.StartTime,
		&order.EndTime,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &order, nil
}

// ListOrders отдает планы от новых к старым с производными флагами
// наличия отчета и события Utilization hours. Без фильтра — 10
// последних записей.
func (s *Storage) ListOrders(ctx context.Context, filter storage.OrderFilter) ([]*storage.OrderRow, error) {
	const op = "storage.postgres.ListOrders"

	stmt := `
		SELECT
			pp.id,
			pp.part_name,
			pp.planned_quantity,
			pp.machine_number,
			pp.start_time,
			pp.end_time,
			p.id IS NOT NULL AS has_report,
			EXISTS (
				SELECT 1 FROM events e
				WHERE e.batch = pp.id AND e."Time_group" = 'Utilization hours'
			) AS has_utilization_event
		FROM production_plan pp
		LEFT JOIN production p ON pp.id = p.order_id`

	var args []interface{}

	if filter.Empty() {
		stmt += ` ORDER BY pp.id DESC LIMIT 10`
	} else {
		where := ""
		if !filter.From.IsZero() {
			args = append(args, filter.From)
			where = fmt.Sprintf(" WHERE pp.start_time >= $%d", len(args))
		}
		if !filter.To.IsZero() {
			args = append(args, filter.To)
			cond := fmt.Sprintf("pp.start_time <= $%d", len(args))
			if where == "" {
				where = " WHERE " + cond
			} else {
				where += " AND " + cond
			}
		}
		stmt += where + ` ORDER BY pp.start_time DESC, pp.id DESC`
	}

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: Ошибка при получении списка планов: %w", op, err)
	}
	defer rows.Close()

	var orders []*storage.OrderRow
	for rows.Next() {
		var row storage.OrderRow

		err := rows.Scan(
			&row.ID,
			&row.PartName,
			&row.PlannedQuantity,
			&row.MachineNumber,
			&row.StartTime,
			&row.EndTime,
			&row.HasReport,
			&row.HasUtilizationEvent,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строк %w", op, err)
		}

		orders = append(orders, &row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка сканирования строк %w", op, err)
	}

	return orders, nil
}
