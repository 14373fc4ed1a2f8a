package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"profkom/internal/apperrors"
	"profkom/internal/models"
)

// Мок-репозиторий профилей (заглушка)
type mockProfileRepo struct {
	profiles map[string]*models.Profile // по email
	tokens   map[string]string          // userID -> refresh token
	nextID   int
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{
		profiles: make(map[string]*models.Profile),
		tokens:   make(map[string]string),
	}
}

func (m *mockProfileRepo) Create(_ context.Context, p *models.Profile) (*models.Profile, error) {
	m.nextID++
	cp := *p
	cp.ID = fmt.Sprintf("user-%d", m.nextID)
	m.profiles[cp.Email] = &cp
	out := cp
	return &out, nil
}

func (m *mockProfileRepo) GetByID(_ context.Context, id string) (*models.Profile, error) {
	for _, p := range m.profiles {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockProfileRepo) GetByEmail(_ context.Context, email string) (*models.Profile, error) {
	p, ok := m.profiles[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockProfileRepo) IsEmailTaken(_ context.Context, email string) (bool, error) {
	_, exists := m.profiles[email]
	return exists, nil
}

func (m *mockProfileRepo) UpdateFields(_ context.Context, id string, input *models.UpdateProfileRequest) (*models.Profile, error) {
	for _, p := range m.profiles {
		if p.ID == id {
			if input.FirstName != nil {
				p.FirstName = input.FirstName
			}
			if input.LastName != nil {
				p.LastName = input.LastName
			}
			if input.Email != nil {
				p.Email = *input.Email
			}
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockProfileRepo) SaveRefreshToken(_ context.Context, userID, token string) error {
	m.tokens[userID] = token
	return nil
}

func (m *mockProfileRepo) IsRefreshTokenValid(_ context.Context, userID, token string) (bool, error) {
	return m.tokens[userID] == token, nil
}

func (m *mockProfileRepo) DeleteRefreshToken(_ context.Context, userID, _ string) error {
	delete(m.tokens, userID)
	return nil
}

func TestRegisterUser(t *testing.T) {
	repo := newMockProfileRepo()
	service := NewAuthService(repo)

	profile, err := service.RegisterUser(context.Background(), RegisterInput{
		Email:           "test@example.com",
		Password:        "secret",
		PasswordConfirm: "secret",
		FirstName:       "Тест",
	})
	if err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}

	if profile.Role != models.RoleUser {
		t.Errorf("профиль должен создаваться с ролью user, получено %q", profile.Role)
	}

	saved := repo.profiles["test@example.com"]
	if saved == nil || saved.PasswordHash == "" || saved.PasswordHash == "secret" {
		t.Fatal("пароль не захеширован или профиль не сохранён")
	}
}

func TestRegisterUser_PasswordMismatch(t *testing.T) {
	repo := newMockProfileRepo()
	service := NewAuthService(repo)

	_, err := service.RegisterUser(context.Background(), RegisterInput{
		Email:           "test@example.com",
		Password:        "secret",
		PasswordConfirm: "другой",
	})
	if !apperrors.IsValidation(err) {
		t.Fatalf("ожидалась ValidationError при несовпадении паролей, получено %v", err)
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	repo := newMockProfileRepo()
	service := NewAuthService(repo)

	input := RegisterInput{Email: "test@example.com", Password: "secret", PasswordConfirm: "secret"}
	if _, err := service.RegisterUser(context.Background(), input); err != nil {
		t.Fatalf("первая регистрация должна пройти: %v", err)
	}
	if _, err := service.RegisterUser(context.Background(), input); err == nil {
		t.Fatal("ожидалась ошибка для повторного email")
	}
}

func TestLoginUser_Success(t *testing.T) {
	repo := newMockProfileRepo()
	service := NewAuthService(repo)

	if _, err := service.RegisterUser(context.Background(), RegisterInput{
		Email: "test@example.com", Password: "secret", PasswordConfirm: "secret",
	}); err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}

	access, refresh, profile, err := service.LoginUser(
		context.Background(), "test@example.com", "secret", "mysecret", 15*time.Minute, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}

	if access == "" || refresh == "" {
		t.Fatal("токены не сгенерированы")
	}
	if profile == nil || profile.Email != "test@example.com" {
		t.Fatal("логин должен возвращать профиль")
	}
}

func TestLoginUser_Fail(t *testing.T) {
	repo := newMockProfileRepo()
	service := NewAuthService(repo)

	_, _, _, err := service.LoginUser(context.Background(), "unknown@example.com", "pass", "secret", time.Minute, time.Hour)
	if err == nil {
		t.Fatal("ожидалась ошибка при логине несуществующего пользователя")
	}
}

func TestIsAdminIdentity(t *testing.T) {
	cases := []struct {
		email string
		role  string
		want  bool
	}{
		{"user@co.com", "user", false},
		{"admin@co.com", "user", true},
		{"user@co.com", "admin", true},
		{"someone@co.com", "", false},
	}

	for _, c := range cases {
		if got := models.IsAdminIdentity(c.email, c.role); got != c.want {
			t.Errorf("IsAdminIdentity(%q, %q) = %v, ожидалось %v", c.email, c.role, got, c.want)
		}
	}
}
