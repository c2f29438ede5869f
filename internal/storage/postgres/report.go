package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"vue-production/internal/storage"
)

// GetReportByOrder возвращает отчет по заказу или nil, если отчета
// еще нет.
func (s *Storage) GetReportByOrder(ctx context.Context, orderID int64) (*storage.Report, error) {
	const op = "storage.postgres.GetReportByOrder"

	stmt := `SELECT id, order_id, part_number, actual_quantity, bubble_count, underfill_count,
	                inclusion_count, defect_count, actual_start_time, actual_end_time
	         FROM production WHERE order_id = $1`

	var report storage.Report
	err := s.db.QueryRowContext(ctx, stmt, orderID).Scan(
		&report.ID,
		&report.OrderID,
		&report.PartNumber,
		&report.ActualQuantity,
		&report.BubbleCount,
		&report.UnderfillCount,
		&report.InclusionCount,
		&report.DefectCount,
		&report.ActualStartTime,
		&report.ActualEndTime,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &report, nil
}

// SaveReport сохраняет отчет по заказу: обновляет существующий или
// вставляет новый, на заказ всегда остается ровно один отчет.
// Возвращает id отчета и признак, была ли строка создана.
func (s *Storage) SaveReport(ctx context.Context, details storage.ReportDetails) (int64, bool, error) {
	const op = "storage.postgres.SaveReport"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer tx.Rollback()

	var orderID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM production_plan WHERE id = $1`, details.OrderID).Scan(&orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, storage.ErrOrderNotFound
	}
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", op, err)
	}

	var existingID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM production WHERE order_id = $1`, details.OrderID).Scan(&existingID)
	exists := err == nil
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, false, fmt.Errorf("%s: %w", op, err)
	}

	var reportID int64
	if exists {
		stmt := `UPDATE production
		         SET part_number = $1, actual_quantity = $2, bubble_count = $3, underfill_count = $4,
		             inclusion_count = $5, defect_count = $6, actual_start_time = $7, actual_end_time = $8
		         WHERE order_id = $9 RETURNING id`

		err = tx.QueryRowContext(ctx, stmt,
			details.PartNumber,
			details.ActualQuantity,
			details.BubbleCount,
			details.UnderfillCount,
			details.InclusionCount,
			details.DefectCount,
			details.ActualStartTime,
			details.ActualEndTime,
			details.OrderID,
		).Scan(&reportID)
	} else {
		stmt := `INSERT INTO production
		         (order_id, part_number, actual_quantity, bubble_count, underfill_count,
		          inclusion_count, defect_count, actual_start_time, actual_end_time)
		         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`

		err = tx.QueryRowContext(ctx, stmt,
			details.OrderID,
			details.PartNumber,
			details.ActualQuantity,
			details.BubbleCount,
			details.UnderfillCount,
			details.InclusionCount,
			details.DefectCount,
			details.ActualStartTime,
			details.ActualEndTime,
		).Scan(&reportID)
	}
	if err != nil {
		return 0, false, fmt.Errorf("%s: Ошибка при сохранении отчета: %w", op, wrapConstraint(err))
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("%s: commit: %w", op, err)
	}

	return reportID, !exists, nil
}
