package validate

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderForm() OrderForm {
	return OrderForm{
		PartName:        "Bracket-A",
		PlannedQuantity: "100",
		MachineNumber:   "3",
		StartTime:       "2024-01-01T08:00",
		EndTime:         "2024-01-01T16:00",
	}
}

func TestOrder_Valid(t *testing.T) {
	details, verr := Order(validOrderForm())
	require.Nil(t, verr)

	assert.Equal(t, "Bracket-A", details.PartName)
	assert.Equal(t, 100, details.PlannedQuantity)
	assert.Equal(t, 3, details.MachineNumber)
	assert.Equal(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), details.StartTime)
	assert.Equal(t, time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC), details.EndTime)
}

// Числа могут приходить и как JSON-числа, не только строками
func TestOrder_NumericFields(t *testing.T) {
	form := validOrderForm()
	form.PlannedQuantity = json.Number("100")
	form.MachineNumber = json.Number("3")

	details, verr := Order(form)
	require.Nil(t, verr)
	assert.Equal(t, 100, details.PlannedQuantity)
	assert.Equal(t, 3, details.MachineNumber)
}

func TestOrder_TrimsPartName(t *testing.T) {
	form := validOrderForm()
	form.PartName = "  Bracket-A  "

	details, verr := Order(form)
	require.Nil(t, verr)
	assert.Equal(t, "Bracket-A", details.PartName)
}

func TestOrder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*OrderForm)
		wantMsg string
	}{
		{
			name:    "пустое имя детали",
			mutate:  func(f *OrderForm) { f.PartName = "   " },
			wantMsg: "Part name не может быть пустым",
		},
		{
			name:    "нет имени детали",
			mutate:  func(f *OrderForm) { f.PartName = nil },
			wantMsg: "Part name не может быть пустым",
		},
		{
			name:    "нет количества",
			mutate:  func(f *OrderForm) { f.PlannedQuantity = "" },
			wantMsg: "Planned quantity не может быть пустым",
		},
		{
			name:    "количество не число",
			mutate:  func(f *OrderForm) { f.PlannedQuantity = "abc" },
			wantMsg: "Planned quantity должен быть числом",
		},
		{
			name:    "количество не положительное",
			mutate:  func(f *OrderForm) { f.PlannedQuantity = "0" },
			wantMsg: "Planned quantity должен быть положительным числом",
		},
		{
			name:    "станок не число",
			mutate:  func(f *OrderForm) { f.MachineNumber = "x1" },
			wantMsg: "Machine number должен быть числом",
		},
		{
			name:    "станок отрицательный",
			mutate:  func(f *OrderForm) { f.MachineNumber = "-2" },
			wantMsg: "Machine number должен быть положительным числом",
		},
		{
			name:    "нет времени начала",
			mutate:  func(f *OrderForm) { f.StartTime = nil },
			wantMsg: "Start time не может быть пустым",
		},
		{
			name:    "неверный формат времени",
			mutate:  func(f *OrderForm) { f.StartTime = "01.01.2024 08:00" },
			wantMsg: ErrBadTimeFormat,
		},
		{
			name: "конец раньше начала",
			mutate: func(f *OrderForm) {
				f.StartTime = "2024-01-01T16:00"
				f.EndTime = "2024-01-01T08:00"
			},
			wantMsg: "End time должен быть позже start time",
		},
		{
			name: "конец равен началу",
			mutate: func(f *OrderForm) {
				f.StartTime = "2024-01-01T08:00"
				f.EndTime = "2024-01-01T08:00"
			},
			wantMsg: "End time должен быть позже start time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validOrderForm()
			tt.mutate(&form)

			details, verr := Order(form)
			require.NotNil(t, verr)
			assert.Nil(t, details)
			assert.Equal(t, tt.wantMsg, verr.Message)
		})
	}
}
