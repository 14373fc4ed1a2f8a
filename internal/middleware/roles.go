package middleware

import (
	"net/http"

	"profkom/internal/models"
)

// AdminGate пропускает только администраторов: роль admin либо email с
// подстрокой "admin". Подстрочная проверка — наследие старого клиента,
// держим её до переезда всех учёток на роли.
// ДОЛЖЕН стоять ПОСЛЕ JWTAuth, чтобы payload уже был в контексте.
func AdminGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, _ := r.Context().Value(ContextEmail).(string)
		role, ok := r.Context().Value(ContextRole).(string)
		if !ok || !models.IsAdminIdentity(email, role) {
			http.Error(w, "Доступ запрещён", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func OnlyRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			value := r.Context().Value(ContextRole)
			userRole, ok := value.(string)
			if !ok || userRole != role {
				http.Error(w, "Доступ запрещён", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
