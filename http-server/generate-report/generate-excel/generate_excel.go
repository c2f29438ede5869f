package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"vue-production/internal/storage"
)

type ExcelGenerator interface {
	OrdersReport(ctx context.Context, filter storage.OrderFilter) ([]byte, error)
}

// GenerateReportExcel выгружает планы за период в xlsx. Без параметров
// берется период с начала текущего месяца по сегодня.
func GenerateReportExcel(log *slog.Logger, gen ExcelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.GenerateReportExcel"

		fromStr := r.URL.Query().Get("start_date")
		toStr := r.URL.Query().Get("end_date")

		now := time.Now()
		startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

		fDate, err := time.Parse(storage.DateLayout, fromStr)
		if err != nil && fromStr != "" {
			http.Error(w, "invalid start_date", http.StatusBadRequest)
			return
		}
		if fromStr == "" {
			fDate = startOfMonth
		}

		tDate, err := time.Parse(storage.DateLayout, toStr)
		if err != nil && toStr != "" {
			http.Error(w, "invalid end_date", http.StatusBadRequest)
			return
		}
		if toStr == "" {
			tDate = now
		} else {
			tDate = tDate.Add(24*time.Hour - time.Second)
		}

		filter := storage.OrderFilter{
			From: fDate,
			To:   tDate,
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second) // На Excel можно побольше времени
		defer cancel()

		excelBytes, err := gen.OrdersReport(ctx, filter)
		if err != nil {
			log.Error("failed to generate excel", "op", op, "err", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("Production_Report_%s.xlsx", time.Now().Format("2006-01-02_150405"))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(excelBytes)
	}
}
