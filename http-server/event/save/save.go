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

type EventSaver interface {
	SaveEvent(ctx context.Context, details storage.EventDetails) (int64, error)
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

// SaveEvent добавляет событие и возвращает обновленный список событий
// батча.
func SaveEvent(log *slog.Logger, saver EventSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.save.SaveEvent"

		var form validate.EventForm
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&form); err != nil {
			log.Error("Неверный JSON", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, Response{Error: "Неверные данные"})
			return
		}

		details, verr := validate.Event(form)
		if verr != nil {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, Response{Error: verr.Message})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		eventID, err := saver.SaveEvent(ctx, *details)
		if errors.Is(err, storage.ErrOrderNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, Response{Error: "Батч не найден"})
			return
		}
		if err != nil {
			log.Error("Ошибка при сохранении события", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Ошибка при сохранении события"})
			return
		}

		log.Info("Событие сохранено",
			slog.Int64("event_id", eventID),
			slog.Int64("batch_id", details.BatchID),
		)

		events, err := saver.ListEvents(ctx, details.BatchID)
		if err != nil {
			log.Error("Ошибка при получении событий", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Ошибка при получении событий"})
			return
		}

		render.JSON(w, r, Response{
			Success: true,
			Message: fmt.Sprintf("Событие успешно сохранено (ID: %d)", eventID),
			Events:  eventRows(events),
		})
	}
}

func eventRows(events []*storage.Event) []EventRow {
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
	return rows
}
