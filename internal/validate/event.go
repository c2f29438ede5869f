package validate

import (
	"slices"

	"vue-production/internal/storage"
)

type EventForm struct {
	BatchID         any `json:"batch_id"`
	EventName       any `json:"event_name"`
	ActualStartTime any `json:"actual_start_time"`
	ActualEndTime   any `json:"actual_end_time"`
	TimeGroup       any `json:"time_group"`
	Responsible     any `json:"responsible"`
	Comments        any `json:"comments"`
}

// Event проверяет событие смены. Ответственный обязателен только для
// группы Breakdown time; для остальных групп присланное значение
// сбрасывается в nil независимо от того, что прислал клиент.
func Event(form EventForm) (*storage.EventDetails, *Error) {
	if text(form.BatchID) == "" {
		return nil, fail("ID батча не указан")
	}

	eventName := text(form.EventName)
	if eventName == "" {
		return nil, fail("Название события не может быть пустым")
	}

	startStr := text(form.ActualStartTime)
	if startStr == "" {
		return nil, fail("Время начала события не может быть пустым")
	}

	endStr := text(form.ActualEndTime)
	if endStr == "" {
		return nil, fail("Время окончания события не может быть пустым")
	}

	batchID, ok := parseInt(form.BatchID)
	if !ok || batchID <= 0 {
		return nil, fail("Неверный формат числового значения")
	}

	startTime, ok := parseTime(startStr)
	if !ok {
		return nil, fail(ErrBadTimeFormat)
	}

	endTime, ok := parseTime(endStr)
	if !ok {
		return nil, fail(ErrBadTimeFormat)
	}

	if !endTime.After(startTime) {
		return nil, fail("Время окончания должно быть позже времени начала")
	}

	timeGroup := text(form.TimeGroup)
	if !slices.Contains(storage.TimeGroups, timeGroup) {
		return nil, fail("Неверная группа времени")
	}

	var responsible *string
	if timeGroup == storage.TimeGroupBreakdown {
		resp := text(form.Responsible)
		if resp == "" {
			return nil, fail("Для Breakdown time необходимо указать ответственного")
		}
		if !slices.Contains(storage.Responsibles, resp) {
			return nil, fail("Неверное значение ответственного")
		}
		responsible = &resp
	}

	var comments *string
	if c := text(form.Comments); c != "" {
		comments = &c
	}

	return &storage.EventDetails{
		Name:        eventName,
		BatchID:     int64(batchID),
		StartTime:   startTime,
		EndTime:     endTime,
		TimeGroup:   timeGroup,
		Responsible: responsible,
		Comments:    comments,
	}, nil
}
