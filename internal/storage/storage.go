package storage

import "errors"

// Ошибки уровня хранилища, хендлеры различают их через errors.Is.
var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEventNotFound = errors.New("event not found")
	ErrConstraint    = errors.New("constraint violation")
)

// Форматы времени на границе API: на входе всегда InputTimeLayout,
// в списках и деталях отдаём DisplayTimeLayout.
const (
	InputTimeLayout   = "2006-01-02T15:04"
	DisplayTimeLayout = "2006-01-02 15:04"
	DateLayout        = "2006-01-02"
)

const (
	TimeGroupPlannedPause = "Planned pause time"
	TimeGroupUtilization  = "Utilization hours"
	TimeGroupBreakdown    = "Breakdown time"
)

var TimeGroups = []string{TimeGroupPlannedPause, TimeGroupUtilization, TimeGroupBreakdown}

// Ответственные стороны для событий группы Breakdown time.
var Responsibles = []string{"FMNTC", "Production", "Engineering", "DMNTC"}
