package delete

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"vue-production/internal/storage"
)

type OrderDeleter interface {
	DeleteOrder(ctx context.Context, id int64) (int64, error)
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// DeleteOrder удаляет план вместе с его отчетом и событиями.
func DeleteOrder(log *slog.Logger, deleter OrderDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.order.delete.DeleteOrder"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		deletedID, err := deleter.DeleteOrder(ctx, id)
		if errors.Is(err, storage.ErrOrderNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, Response{Error: "Запись не найдена"})
			return
		}
		if err != nil {
			log.Error("Ошибка при удалении плана", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Ошибка при удалении данных"})
			return
		}

		log.Info("Удален план производства", slog.Int64("id", deletedID))

		render.JSON(w, r, Response{
			Success: true,
			Message: fmt.Sprintf("Запись с ID %d успешно удалена", deletedID),
		})
	}
}
