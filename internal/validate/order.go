package validate

import "vue-production/internal/storage"

type OrderForm struct {
	PartName        any `json:"part_name"`
	PlannedQuantity any `json:"planned_quantity"`
	MachineNumber   any `json:"machine_number"`
	StartTime       any `json:"start_time"`
	EndTime         any `json:"end_time"`
}

// Order проверяет план производства: обязательность полей, числовые
// значения, диапазоны и порядок времен — в этом порядке.
func Order(form OrderForm) (*storage.OrderDetails, *Error) {
	partName := text(form.PartName)
	if partName == "" {
		return nil, fail("Part name не может быть пустым")
	}

	if text(form.PlannedQuantity) == "" {
		return nil, fail("Planned quantity не может быть пустым")
	}

	if text(form.MachineNumber) == "" {
		return nil, fail("Machine number не может быть пустым")
	}

	startStr := text(form.StartTime)
	if startStr == "" {
		return nil, fail("Start time не может быть пустым")
	}

	endStr := text(form.EndTime)
	if endStr == "" {
		return nil, fail("End time не может быть пустым")
	}

	plannedQuantity, ok := parseInt(form.PlannedQuantity)
	if !ok {
		return nil, fail("Planned quantity должен быть числом")
	}
	if plannedQuantity <= 0 {
		return nil, fail("Planned quantity должен быть положительным числом")
	}

	machineNumber, ok := parseInt(form.MachineNumber)
	if !ok {
		return nil, fail("Machine number должен быть числом")
	}
	if machineNumber <= 0 {
		return nil, fail("Machine number должен быть положительным числом")
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
		return nil, fail("End time должен быть позже start time")
	}

	return &storage.OrderDetails{
		PartName:        partName,
		PlannedQuantity: plannedQuantity,
		MachineNumber:   machineNumber,
		StartTime:       startTime,
		EndTime:         endTime,
	}, nil
}
