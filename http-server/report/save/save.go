package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"vue-production/internal/storage"
	"vue-production/internal/validate"
)

type ReportSaver interface {
	SaveReport(ctx context.Context, details storage.ReportDetails) (int64, bool, error)
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Created bool   `json:"created"`
	Error   string `json:"error,omitempty"`
}

// SaveReport сохраняет отчет по производству: обновляет существующий
// или создает новый для заказа.
func SaveReport(log *slog.Logger, saver ReportSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.save.SaveReport"

		var form validate.ReportForm
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&form); err != nil {
			log.Error("Неверный JSON", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, Response{Error: "Неверные данные"})
			return
		}

		details, verr := validate.Report(form)
		if verr != nil {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, Response{Error: verr.Message})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		reportID, created, err := saver.SaveReport(ctx, *details)
		if errors.Is(err, storage.ErrOrderNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, Response{Error: "Заказ не найден"})
			return
		}
		if err != nil {
			log.Error("Ошибка при сохранении отчета", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Ошибка при сохранении отчета"})
			return
		}

		action := "обновлен"
		if created {
			action = "сохранен"
		}

		log.Info("Отчет по производству "+action,
			slog.Int64("report_id", reportID),
			slog.Int64("order_id", details.OrderID),
		)

		render.JSON(w, r, Response{
			Success: true,
			Message: fmt.Sprintf("Отчет по производству успешно %s (ID отчета: %d)", action, reportID),
			Created: created,
		})
	}
}
