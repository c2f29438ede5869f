package validate

import "vue-production/internal/storage"

type ReportForm struct {
	OrderID         any `json:"order_id"`
	PartNumber      any `json:"part_number"`
	ActualQuantity  any `json:"actual_quantity"`
	BubbleCount     any `json:"bubble_count"`
	UnderfillCount  any `json:"underfill_count"`
	InclusionCount  any `json:"inclusion_count"`
	ActualStartTime any `json:"actual_start_time"`
	ActualEndTime   any `json:"actual_end_time"`
}

// Report проверяет отчет по производству. Итоговый defect_count
// всегда пересчитывается из трех счетчиков брака, присланное клиентом
// значение игнорируется.
func Report(form ReportForm) (*storage.ReportDetails, *Error) {
	if text(form.OrderID) == "" {
		return nil, fail("ID заказа не указан")
	}

	if text(form.ActualQuantity) == "" {
		return nil, fail("Фактическое количество не может быть пустым")
	}

	startStr := text(form.ActualStartTime)
	if startStr == "" {
		return nil, fail("Фактическое время начала не может быть пустым")
	}

	endStr := text(form.ActualEndTime)
	if endStr == "" {
		return nil, fail("Фактическое время окончания не может быть пустым")
	}

	orderID, ok := parseInt(form.OrderID)
	if !ok || orderID <= 0 {
		return nil, fail("Неверный формат числового значения")
	}

	actualQuantity, ok := parseInt(form.ActualQuantity)
	if !ok {
		return nil, fail("Неверный формат числового значения")
	}
	if actualQuantity <= 0 {
		return nil, fail("Фактическое количество должно быть положительным числом")
	}

	bubble, verr := defectCount(form.BubbleCount)
	if verr != nil {
		return nil, verr
	}
	underfill, verr := defectCount(form.UnderfillCount)
	if verr != nil {
		return nil, verr
	}
	inclusion, verr := defectCount(form.InclusionCount)
	if verr != nil {
		return nil, verr
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
		return nil, fail("Фактическое время окончания должно быть позже времени начала")
	}

	var partNumber *string
	if pn := text(form.PartNumber); pn != "" {
		partNumber = &pn
	}

	return &storage.ReportDetails{
		OrderID:         int64(orderID),
		PartNumber:      partNumber,
		ActualQuantity:  actualQuantity,
		BubbleCount:     bubble,
		UnderfillCount:  underfill,
		InclusionCount:  inclusion,
		DefectCount:     bubble + underfill + inclusion,
		ActualStartTime: startTime,
		ActualEndTime:   endTime,
	}, nil
}

// defectCount — счетчик брака: отсутствующий считается нулем,
// отрицательный не принимается.
func defectCount(v any) (int, *Error) {
	if text(v) == "" {
		return 0, nil
	}

	n, ok := parseInt(v)
	if !ok {
		return 0, fail("Неверный формат числового значения")
	}
	if n < 0 {
		return 0, fail("Количество брака не может быть отрицательным")
	}

	return n, nil
}
