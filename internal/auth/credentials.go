package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CredentialChecker проверяет пару логин/пароль. За интерфейсом можно
// спрятать любой источник учетных записей, сервер об этом не знает.
type CredentialChecker interface {
	Verify(username, password string) bool
}

// StaticChecker — единственная пара из конфига. Пароль может храниться
// как bcrypt-хеш, тогда сравнение идет через bcrypt.
type StaticChecker struct {
	login    string
	password string
}

func NewStaticChecker(login, password string) *StaticChecker {
	return &StaticChecker{login: login, password: password}
}

func (c *StaticChecker) Verify(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(c.login)) != 1 {
		return false
	}

	if isBcryptHash(c.password) {
		return bcrypt.CompareHashAndPassword([]byte(c.password), []byte(password)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(password), []byte(c.password)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
