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

type EventPageProvider interface {
	GetOrder(ctx context.Context, id int64) (*storage.Order, error)
	ListEvents(ctx context.Context, batchID int64) ([]*storage.Event, error)
}

type BatchData struct {
	ID              int64  `json:"id"`
	PartName        string `json:"part_name"`
	PlannedQuantity int    `json:"planned_quantity"`
	MachineNumber   int    `json:"machine_number"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
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
	Batch   *BatchData `json:"batch,omitempty"`
	Events  []EventRow `json:"events"`
	Error   string     `json:"error,omitempty"`
}

// GetEvents — данные для страницы событий: батч и его события от
// поздних к ранним. Обе выборки идут параллельно.
func GetEvents(log *slog.Logger, provider EventPageProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.get.GetEvents"

		idStr := chi.URLParam(r, "id")
		batchID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var batch *storage.Order
		var events []*storage.Event

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			batch, err = provider.GetOrder(gctx, batchID)
			return err
		})
		g.Go(func() error {
			var err error
			events, err = provider.ListEvents(gctx, batchID)
			return err
		})

		if err := g.Wait(); err != nil {
			if errors.Is(err, storage.ErrOrderNotFound) {
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, Response{Error: "Батч не найден"})
				return
			}
			log.Error("Ошибка при получении данных событий", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Ошибка подключения к базе данных"})
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
			Batch: &BatchData{
				ID:              batch.ID,
				PartName:        batch.PartName,
				PlannedQuantity: batch.PlannedQuantity,
				MachineNumber:   batch.MachineNumber,
				StartTime:       batch.StartTime.Format(storage.DisplayTimeLayout),
				EndTime:         batch.EndTime.Format(storage.DisplayTimeLayout),
			},
			Events: rows,
		})
	}
}
