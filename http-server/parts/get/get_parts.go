package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

type PartsProvider interface {
	GetParts(ctx context.Context) ([]string, error)
}

type Response struct {
	Success bool     `json:"success"`
	Parts   []string `json:"parts"`
	Error   string   `json:"error,omitempty"`
}

func GetParts(log *slog.Logger, provider PartsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.parts.GetParts"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		parts, err := provider.GetParts(ctx)
		if err != nil {
			log.Error("Ошибка при получении списка деталей", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Ошибка подключения к базе данных"})
			return
		}

		if parts == nil {
			parts = []string{}
		}

		render.JSON(w, r, Response{
			Success: true,
			Parts:   parts,
		})
	}
}
