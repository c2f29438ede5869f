package storage

import "time"

// Report — единственный отчет по заказу (UNIQUE(order_id)).
type Report struct {
	ID              int64
	OrderID         int64
	PartNumber      *string
	ActualQuantity  int
	BubbleCount     int
	UnderfillCount  int
	InclusionCount  int
	DefectCount     int
	ActualStartTime time.Time
	ActualEndTime   time.Time
}

// ReportDetails — провалидированные данные для upsert отчета.
// DefectCount всегда пересчитан как сумма трех счетчиков брака,
// что бы ни прислал клиент.
type ReportDetails struct {
	OrderID         int64
	PartNumber      *string
	ActualQuantity  int
	BubbleCount     int
	UnderfillCount  int
	InclusionCount  int
	DefectCount     int
	ActualStartTime time.Time
	ActualEndTime   time.Time
}
