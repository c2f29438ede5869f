package storage

import "time"

type Order struct {
	ID              int64
	PartName        string
	PlannedQuantity int
	MachineNumber   int
	StartTime       time.Time
	EndTime         time.Time
}

// OrderRow — строка списка заказов с производными флагами,
// считаются в запросе, в таблицах не хранятся.
type OrderRow struct {
	Order
	HasReport           bool
	HasUtilizationEvent bool
}

// OrderDetails — провалидированные данные для вставки/обновления плана.
type OrderDetails struct {
	PartName        string
	PlannedQuantity int
	MachineNumber   int
	StartTime       time.Time
	EndTime         time.Time
}

// OrderFilter ограничивает список по pp.start_time, обе границы
// включительно. Нулевые значения — фильтра нет, отдаются 10 последних.
type OrderFilter struct {
	From time.Time
	To   time.Time
}

func (f OrderFilter) Empty() bool {
	return f.From.IsZero() && f.To.IsZero()
}
