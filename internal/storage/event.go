package storage

import "time"

type Event struct {
	ID          int64
	Name        string
	BatchID     int64
	StartTime   time.Time
	EndTime     time.Time
	TimeGroup   string
	Responsible *string
	Comments    *string
}

// EventDetails — провалидированные данные события. Responsible
// заполнен только для группы Breakdown time, для остальных групп
// валидация сбрасывает его в nil.
type EventDetails struct {
	Name        string
	BatchID     int64
	StartTime   time.Time
	EndTime     time.Time
	TimeGroup   string
	Responsible *string
	Comments    *string
}
