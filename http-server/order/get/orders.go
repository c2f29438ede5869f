package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"vue-production/internal/storage"
)

type OrderLister interface {
	ListOrders(ctx context.Context, filter storage.OrderFilter) ([]*storage.OrderRow, error)
}

type OrderRow struct {
	ID                  int64  `json:"id"`
	PartName            string `json:"part_name"`
	PlannedQuantity     int    `json:"planned_quantity"`
	MachineNumber       int    `json:"machine_number"`
	StartTime           string `json:"start_time"`
	EndTime             string `json:"end_time"`
	HasReport           bool   `json:"has_report"`
	HasUtilizationEvent bool   `json:"has_utilization_event"`
}

type Response struct {
	Success bool       `json:"success"`
	Count   int        `json:"count"`
	Data    []OrderRow `json:"data"`
	Error   string     `json:"error,omitempty"`
}

// GetOrders отдает список планов: без параметров — 10 последних, с
// start_date/end_date (YYYY-MM-DD) — все планы, чье плановое начало
// попадает в диапазон включительно.
func GetOrders(log *slog.Logger, lister OrderLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.order.get.GetOrders"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var filter storage.OrderFilter

		if startDate := r.URL.Query().Get("start_date"); startDate != "" {
			from, err := time.Parse(storage.DateLayout, startDate)
			if err != nil {
				log.Error("Неверный формат start_date", slog.String("error", err.Error()))
				w.WriteHeader(http.StatusBadRequest)
				render.JSON(w, r, Response{Error: "Неверный формат даты. Используйте YYYY-MM-DD"})
				return
			}
			filter.From = from
		}

		if endDate := r.URL.Query().Get("end_date"); endDate != "" {
			to, err := time.Parse(storage.DateLayout, endDate)
			if err != nil {
				log.Error("Неверный формат end_date", slog.String("error", err.Error()))
				w.WriteHeader(http.StatusBadRequest)
				render.JSON(w, r, Response{Error: "Неверный формат даты. Используйте YYYY-MM-DD"})
				return
			}
			// включительно до конца дня
			filter.To = to.Add(24*time.Hour - time.Second)
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		orders, err := lister.ListOrders(ctx, filter)
		if err != nil {
			log.Error("Ошибка при получении списка планов", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Ошибка подключения к базе данных"})
			return
		}

		rows := make([]OrderRow, 0, len(orders))
		for _, order := range orders {
			rows = append(rows, OrderRow{
				ID:                  order.ID,
				PartName:            order.PartName,
				PlannedQuantity:     order.PlannedQuantity,
				MachineNumber:       order.MachineNumber,
				StartTime:           order.StartTime.Format(storage.DisplayTimeLayout),
				EndTime:             order.EndTime.Format(storage.DisplayTimeLayout),
				HasReport:           order.HasReport,
				HasUtilizationEvent: order.HasUtilizationEvent,
			})
		}

		render.JSON(w, r, Response{
			Success: true,
			Count:   len(rows),
			Data:    rows,
		})
	}
}
