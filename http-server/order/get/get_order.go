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

	"vue-production/internal/storage"
)

type OrderProvider interface {
	GetOrder(ctx context.Context, id int64) (*storage.Order, error)
}

type OrderData struct {
	ID              int64  `json:"id"`
	PartName        string `json:"part_name"`
	PlannedQuantity int    `json:"planned_quantity"`
	MachineNumber   int    `json:"machine_number"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
}

type OrderResponse struct {
	Success bool       `json:"success"`
	Data    *OrderData `json:"data,omitempty"`
	Error   string     `json:"error,omitempty"`
}

// GetOrder — данные одного плана для страницы редактирования, времена
// в формате формы, чтобы их можно было подставить обратно в input.
func GetOrder(log *slog.Logger, provider OrderProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.order.get.GetOrder"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		order, err := provider.GetOrder(ctx, id)
		if errors.Is(err, storage.ErrOrderNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, OrderResponse{Error: "Запись не найдена"})
			return
		}
		if err != nil {
			log.Error("Ошибка при получении записи", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, OrderResponse{Error: "Ошибка подключения к базе данных"})
			return
		}

		render.JSON(w, r, OrderResponse{
			Success: true,
			Data: &OrderData{
				ID:              order.ID,
				PartName:        order.PartName,
				PlannedQuantity: order.PlannedQuantity,
				MachineNumber:   order.MachineNumber,
				StartTime:       order.StartTime.Format(storage.InputTimeLayout),
				EndTime:         order.EndTime.Format(storage.InputTimeLayout),
			},
		})
	}
}
