package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"vue-production/internal/storage"
	"vue-production/internal/validate"
)

type OrderUpdater interface {
	UpdateOrder(ctx context.Context, id int64, details storage.OrderDetails) error
}

type OrderData struct {
	ID              int64  `json:"id"`
	PartName        string `json:"part_name"`
	PlannedQuantity int    `json:"planned_quantity"`
	MachineNumber   int    `json:"machine_number"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
}

type Response struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Data    *OrderData `json:"data,omitempty"`
	Error   string     `json:"error,omitempty"`
}

// UpdateOrder обновляет план целиком по id.
func UpdateOrder(log *slog.Logger, updater OrderUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.order.update.UpdateOrder"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var form validate.OrderForm
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&form); err != nil {
			log.Error("Неверный JSON", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, Response{Error: "Неверные данные"})
			return
		}

		details, verr := validate.Order(form)
		if verr != nil {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, Response{Error: verr.Message})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = updater.UpdateOrder(ctx, id, *details)
		if errors.Is(err, storage.ErrOrderNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, Response{Error: "Запись не найдена"})
			return
		}
		if err != nil {
			log.Error("Ошибка при обновлении плана", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Ошибка при обновлении данных"})
			return
		}

		log.Info("Обновлен план производства", slog.Int64("id", id))

		render.JSON(w, r, Response{
			Success: true,
			Message: fmt.Sprintf("Данные успешно обновлены (ID: %d)", id),
			Data: &OrderData{
				ID:              id,
				PartName:        details.PartName,
				PlannedQuantity: details.PlannedQuantity,
				MachineNumber:   details.MachineNumber,
				StartTime:       details.StartTime.Format(storage.DisplayTimeLayout),
				EndTime:         details.EndTime.Format(storage.DisplayTimeLayout),
			},
		})
	}
}
