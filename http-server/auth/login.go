package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"vue-production/internal/auth"
	mw "vue-production/internal/middleware/auth"
)

type Response struct {
	Success  bool   `json:"success"`
	Username string `json:"username,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Login принимает форму входа и выдает сессионную куку.
func Login(log *slog.Logger, checker auth.CredentialChecker, sessions *auth.SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.Login"

		if err := r.ParseForm(); err != nil {
			log.Error("Неверная форма входа", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, Response{Error: "Неверные данные формы"})
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")

		if !checker.Verify(username, password) {
			log.Warn("Неудачная попытка входа", slog.String("op", op), slog.String("username", username))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, Response{Error: "Неверный логин или пароль"})
			return
		}

		token := sessions.Create(username)

		http.SetCookie(w, &http.Cookie{
			Name:     mw.SessionCookie,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		log.Info("Пользователь вошел в систему", slog.String("username", username))

		render.JSON(w, r, Response{
			Success:  true,
			Username: username,
		})
	}
}

// Logout гасит сессию и куку.
func Logout(log *slog.Logger, sessions *auth.SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(mw.SessionCookie)
		if err == nil {
			if username, ok := sessions.Username(cookie.Value); ok {
				log.Info("Пользователь вышел из системы", slog.String("username", username))
			}
			sessions.Revoke(cookie.Value)
		}

		http.SetCookie(w, &http.Cookie{
			Name:     mw.SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})

		render.JSON(w, r, Response{Success: true})
	}
}
