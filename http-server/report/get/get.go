package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"golang.org/x/sync/errgroup"

	"vue-production/internal/storage"
)

type ReportPageProvider interface {
	GetOrder(ctx context.Context, id int64) (*storage.Order, error)
	GetReportByOrder(ctx context.Context, orderID int64) (*storage.Report, error)
}

type OrderData struct {
	ID              int64  `json:"id"`
	PartName        string `json:"part_name"`
	PlannedQuantity int    `json:"planned_quantity"`
	MachineNumber   int    `json:"machine_number"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
}

type ReportData struct {
	ID              int64   `json:"id"`
	PartNumber      *string `json:"part_number"`
	ActualQuantity  int     `json:"actual_quantity"`
	BubbleCount     int     `json:"bubble_count"`
	UnderfillCount  int     `json:"underfill_count"`
	InclusionCount  int     `json:"inclusion_count"`
	DefectCount     int     `json:"defect_count"`
	ActualStartTime string  `json:"actual_start_time"`
	ActualEndTime   string  `json:"actual_end_time"`
}

type Response struct {
	Success bool        `json:"success"`
	Order   *OrderData  `json:"order,omitempty"`
	Report  *ReportData `json:"report"`
	Error   string      `json:"error,omitempty"`
}

// GetReportPage — данные для страницы отчета: план и его отчет, если
// отчет уже есть. Обе выборки идут параллельно.
func GetReportPage(log *slog.Logger, provider ReportPageProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.get.GetReportPage"

		idStr := chi.URLParam(r, "id")
		orderID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var order *storage.Order
		var report *storage.Report

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			order, err = provider.GetOrder(gctx, orderID)
			return err
		})
		g.Go(func() error {
			var err error
			report, err = provider.GetReportByOrder(gctx, orderID)
			return err
		})

		if err := g.Wait(); err != nil {
			if errors.Is(err, storage.ErrOrderNotFound) {
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, Response{Error: "Заказ не найден"})
				return
			}
			log.Error("Ошибка при получении данных отчета", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Ошибка подключения к базе данных"})
			return
		}

		resp := Response{
			Success: true,
			Order: &OrderData{
				ID:              order.ID,
				PartName:        order.PartName,
				PlannedQuantity: order.PlannedQuantity,
				MachineNumber:   order.MachineNumber,
				StartTime:       order.StartTime.Format(storage.DisplayTimeLayout),
				EndTime:         order.EndTime.Format(storage.DisplayTimeLayout),
			},
		}

		if report != nil {
			// времена в формате формы, чтобы подставить их в input
			resp.Report = &ReportData{
				ID:              report.ID,
				PartNumber:      report.PartNumber,
				ActualQuantity:  report.ActualQuantity,
				BubbleCount:     report.BubbleCount,
				UnderfillCount:  report.UnderfillCount,
				InclusionCount:  report.InclusionCount,
				DefectCount:     report.DefectCount,
				ActualStartTime: report.ActualStartTime.Format(storage.InputTimeLayout),
				ActualEndTime:   report.ActualEndTime.Format(storage.InputTimeLayout),
			}
		}

		render.JSON(w, r, resp)
	}
}
