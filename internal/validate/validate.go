// Package validate собирает проверки входных данных для планов,
// отчетов и событий в одном месте: каждое правило возвращает свое
// сообщение, до хранилища невалидный ввод не доходит.
package validate

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"vue-production/internal/storage"
)

const ErrBadTimeFormat = "Неверный формат времени. Используйте YYYY-MM-DDTHH:MM"

// Error — ошибка валидации с готовым сообщением для пользователя.
// Хендлеры отдают его как есть со статусом 400.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func fail(message string) *Error {
	return &Error{Message: message}
}

// text приводит значение формы к строке с обрезанными пробелами.
// Поля приходят как any: формы Vue шлют строки, JSON-клиенты — числа.
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	}
	return ""
}

// parseInt разбирает целое из строки или JSON-числа.
func parseInt(v any) (int, bool) {
	switch t := v.(type) {
	case json.Number:
		n, err := strconv.Atoi(t.String())
		return n, err == nil
	case float64:
		if t != float64(int(t)) {
			return 0, false
		}
		return int(t), true
	case int:
		return t, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		return n, err == nil
	}
	return 0, false
}

func parseTime(s string) (time.Time, bool) {
	t, err := time.Parse(storage.InputTimeLayout, s)
	return t, err == nil
}
