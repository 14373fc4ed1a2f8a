package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func adminGateStatus(t *testing.T, email, role string) int {
	t.Helper()

	handler := AdminGate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/overview", nil)
	ctx := context.WithValue(req.Context(), ContextEmail, email)
	ctx = context.WithValue(ctx, ContextRole, role)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))
	return rec.Code
}

func TestAdminGate_UserDenied(t *testing.T) {
	if code := adminGateStatus(t, "user@co.com", "user"); code != http.StatusForbidden {
		t.Errorf("обычный пользователь должен получать 403, получено %d", code)
	}
}

func TestAdminGate_AdminEmailGranted(t *testing.T) {
	if code := adminGateStatus(t, "admin@co.com", "user"); code != http.StatusOK {
		t.Errorf("email с подстрокой admin должен пропускаться, получено %d", code)
	}
}

func TestAdminGate_AdminRoleGranted(t *testing.T) {
	if code := adminGateStatus(t, "user@co.com", "admin"); code != http.StatusOK {
		t.Errorf("роль admin должна пропускаться, получено %d", code)
	}
}

func TestAdminGate_NoIdentityDenied(t *testing.T) {
	handler := AdminGate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/overview", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("без контекста аутентификации должен быть отказ, получено %d", rec.Code)
	}
}
