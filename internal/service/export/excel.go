package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"vue-production/internal/storage"
)

type OrdersStorage interface {
	ListOrders(ctx context.Context, filter storage.OrderFilter) ([]*storage.OrderRow, error)
}

type ExportService struct {
	storage OrdersStorage
}

func NewExportService(storage OrdersStorage) *ExportService {
	return &ExportService{storage: storage}
}

// OrdersReport собирает xlsx по планам производства за период.
func (s *ExportService) OrdersReport(ctx context.Context, filter storage.OrderFilter) ([]byte, error) {
	orders, err := s.storage.ListOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("fetch data: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Отчет производства"
	f.SetSheetName("Sheet1", sheet)

	// Жирная шапка с заливкой
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	headers := []string{"ID", "Деталь", "План, шт", "Станок", "Начало", "Конец", "Отчет", "Утилизация"}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}

	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	for rowIdx, order := range orders {
		rowNum := rowIdx + 2

		f.SetCellValue(sheet, cellName(1, rowNum), order.ID)
		f.SetCellValue(sheet, cellName(2, rowNum), order.PartName)
		f.SetCellValue(sheet, cellName(3, rowNum), order.PlannedQuantity)
		f.SetCellValue(sheet, cellName(4, rowNum), order.MachineNumber)
		f.SetCellValue(sheet, cellName(5, rowNum), order.StartTime.Format(storage.DisplayTimeLayout))
		f.SetCellValue(sheet, cellName(6, rowNum), order.EndTime.Format(storage.DisplayTimeLayout))
		f.SetCellValue(sheet, cellName(7, rowNum), yesNo(order.HasReport))
		f.SetCellValue(sheet, cellName(8, rowNum), yesNo(order.HasUtilizationEvent))
	}

	// Закрепляем первую строку
	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	})

	f.SetColWidth(sheet, "A", "H", 15)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}

func yesNo(v bool) string {
	if v {
		return "да"
	}
	return "нет"
}
