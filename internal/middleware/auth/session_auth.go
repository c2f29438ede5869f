package auth

import (
	"context"
	"net/http"

	"github.com/go-chi/render"
)

const SessionCookie = "session_token"

type contextKey struct{}

var usernameKey contextKey

type Sessions interface {
	Username(token string) (string, bool)
}

// RequireSession пускает дальше только запросы с живой сессией и кладет
// имя пользователя в контекст запроса.
func RequireSession(sessions Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				unauthorized(w, r)
				return
			}

			username, ok := sessions.Username(cookie.Value)
			if !ok {
				unauthorized(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), usernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Username достает имя пользователя, положенное RequireSession.
func Username(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusUnauthorized)
	render.JSON(w, r, map[string]interface{}{
		"success": false,
		"error":   "Требуется авторизация",
	})
}
