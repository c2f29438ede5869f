package save

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"vue-production/internal/storage"
	"vue-production/internal/validate"
)

type OrderSaver interface {
	SaveOrder(ctx context.Context, details storage.OrderDetails) (int64, error)
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

// SaveOrder создает новый план производства.
func SaveOrder(log *slog.Logger, saver OrderSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.order.save.SaveOrder"

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

		id, err := saver.SaveOrder(ctx, *details)
		if err != nil {
			log.Error("Ошибка при сохранении плана", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Ошибка при сохранении данных"})
			return
		}

		log.Info("Добавлен план производства", slog.Int64("id", id))

		render.JSON(w, r, Response{
			Success: true,
			Message: fmt.Sprintf("Данные успешно сохранены (ID: %d)", id),
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
