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

type EventDeleter interface {
	DeleteEvent(ctx context.Context, eventID int64) (int64, error)
	ListEvents(ctx context.Context, batchID int64) ([]*storage.Event, error)
}

type EventRow struct {
	EventID         int64   `json:"event_id"`
	EventName       string  `json:"event_name"`
	ActualStartTime string  `json:"actual_start_time"`
	ActualEndTime   string  `json:"actual_end_time"`
	TimeGroup       string  `json:"time_group"`
	Responsible     *string `json:"responsible"`
	Comments        *string `json:"comments"`
}

type Response struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Events  []EventRow `json:"events,omitempty"`
	Error   string     `json:"error,omitempty"`
}

// DeleteEvent удаляет событие и возвращает обновленный список событий
// батча, которому оно принадлежало.
func DeleteEvent(log *slog.Logger, deleter EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.delete.DeleteEvent"

		idStr := chi.URLParam(r, "id")
		eventID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		batchID, err := deleter.DeleteEvent(ctx, eventID)
		if errors.Is(err, storage.ErrEventNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, Response{Error: "Событие не найдено"})
			return
		}
		if err != nil {
			log.Error("Ошибка при удалении события", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Ошибка при удалении события"})
			return
		}

		log.Info("Удалено событие", slog.Int64("event_id", eventID))

		events, err := deleter.ListEvents(ctx, batchID)
		if err != nil {
			log.Error("Ошибка при получении событий", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Ошибка при получении событий"})
			return
		}

		rows := make([]EventRow, 0, len(events))
		for _, event := range events {
			rows = append(rows, EventRow{
				EventID:         event.ID,
				EventName:       event.Name,
				ActualStartTime: event.StartTime.Format(storage.DisplayTimeLayout),
				ActualEndTime:   event.EndTime.Format(storage.DisplayTimeLayout),
				TimeGroup:       event.TimeGroup,
				Responsible:     event.Responsible,
				Comments:        event.Comments,
			})
		}

		render.JSON(w, r, Response{
			Success: true,
			Message: fmt.Sprintf("Событие с ID %d успешно удалено", eventID),
			Events:  rows,
		})
	}
}
