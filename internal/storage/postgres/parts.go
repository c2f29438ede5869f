package postgres

import (
	"context"
	"fmt"
)

// GetParts — справочник деталей для выпадающего списка на форме плана.
func (s *Storage) GetParts(ctx context.Context) ([]string, error) {
	const op = "storage.postgres.GetParts"

	stmt := `SELECT "Наименование детали" FROM parts ORDER BY "Наименование детали"`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: Ошибка при получении списка деталей: %w", op, err)
	}
	defer rows.Close()

	var parts []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строк %w", op, err)
		}
		parts = append(parts, name)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка сканирования строк %w", op, err)
	}

	return parts, nil
}
