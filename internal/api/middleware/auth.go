package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
)

const (
	// RoleHeader заголовок с ролью вызывающего
	RoleHeader = "X-Role"

	RoleAdmin  = "admin"
	RoleRenter = "renter"
)

const (
	msgMissingRole = "отсутствует роль пользователя"
	msgInvalidRole = "неизвестная роль, ожидается admin или renter"
	msgAdminOnly   = "операция доступна только администратору"
)

type contextKey string

const roleKey contextKey = "role"

// Auth читает роль из заголовка X-Role и кладет ее в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := strings.ToLower(strings.TrimSpace(r.Header.Get(RoleHeader)))
		if role == "" {
			handlers.RespondUnauthorized(w, msgMissingRole)
			return
		}
		if role != RoleAdmin && role != RoleRenter {
			handlers.RespondUnauthorized(w, msgInvalidRole)
			return
		}

		ctx := context.WithValue(r.Context(), roleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin пропускает только запросы с ролью admin. Ставится после Auth
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := GetRole(r.Context())
		if !ok || role != RoleAdmin {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetRole возвращает роль, сохраненную Auth
func GetRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleKey).(string)
	return role, ok
}
