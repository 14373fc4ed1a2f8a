package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"profkom/internal/apperrors"
	"profkom/internal/logger"
	"profkom/internal/models"
	"profkom/internal/repository"
	"profkom/internal/utils"

	"go.uber.org/zap"
)

type AuthService struct {
	repo repository.ProfileRepo
}

func NewAuthService(repo repository.ProfileRepo) *AuthService {
	return &AuthService{repo: repo}
}

type RegisterInput struct {
	Email           string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
}

// RegisterUser создаёт профиль с ролью user. Профиль появляется неявно
// при регистрации — отдельного шага создания нет.
func (s *AuthService) RegisterUser(ctx context.Context, input RegisterInput) (*models.Profile, error) {
	log := logger.WithCtx(ctx)
	log.Info("Регистрация пользователя (service)", zap.String("email", input.Email))

	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" {
		return nil, apperrors.Validation("email", "email обязателен")
	}
	if strings.TrimSpace(input.Password) == "" {
		return nil, apperrors.Validation("password", "пароль обязателен")
	}
	if input.Password != input.PasswordConfirm {
		return nil, apperrors.Validation("password_confirm", "пароли не совпадают")
	}

	if exists, err := s.repo.IsEmailTaken(ctx, email); exists || err != nil {
		if err != nil {
			log.Error("Ошибка проверки email", zap.Error(err))
			return nil, err
		}
		return nil, errors.New("адрес электронной почты уже зарегистрирован")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		log.Error("Ошибка хеширования пароля", zap.Error(err))
		return nil, err
	}

	p := &models.Profile{
		FirstName:    optStr(input.FirstName),
		LastName:     optStr(input.LastName),
		Email:        email,
		Role:         models.RoleUser,
		PasswordHash: hashed,
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		log.Error("Ошибка создания профиля", zap.Error(err))
		return nil, err
	}
	log.Info("Пользователь зарегистрирован (service)", zap.String("email", email))
	return created, nil
}

// LoginUser проверяет пароль и возвращает пару токенов вместе с профилем.
func (s *AuthService) LoginUser(
	ctx context.Context,
	email, password, jwtSecret string,
	accessTTL, refreshTTL time.Duration,
) (string, string, *models.Profile, error) {
	log := logger.WithCtx(ctx)
	log.Info("Попытка входа (service)", zap.String("email", email))

	profile, err := s.repo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		log.Warn("Пользователь не найден (service)", zap.String("email", email), zap.Error(err))
		return "", "", nil, errors.New("пользователь не найден")
	}

	if !utils.CheckPasswordHash(password, profile.PasswordHash) {
		log.Warn("Неверный пароль (service)", zap.String("email", email))
		return "", "", nil, errors.New("неверный пароль")
	}

	accessToken, err := utils.GenerateToken(jwtSecret, profile.ID, profile.Email, profile.Role, accessTTL, "access")
	if err != nil {
		log.Error("Ошибка генерации access-токена", zap.Error(err))
		return "", "", nil, err
	}

	refreshToken, err := utils.GenerateToken(jwtSecret, profile.ID, profile.Email, profile.Role, refreshTTL, "refresh")
	if err != nil {
		log.Error("Ошибка генерации refresh-токена", zap.Error(err))
		return "", "", nil, err
	}

	if err := s.repo.SaveRefreshToken(ctx, profile.ID, refreshToken); err != nil {
		log.Error("Ошибка сохранения refresh-токена", zap.Error(err))
		return "", "", nil, err
	}

	log.Info("Вход выполнен (service)", zap.String("email", email))
	return accessToken, refreshToken, profile, nil
}

// LoginUserTokens выпускает новую пару токенов для уже загруженного профиля
// (ротация refresh-токена).
func (s *AuthService) LoginUserTokens(
	ctx context.Context,
	profile *models.Profile,
	jwtSecret string,
	accessTTL, refreshTTL time.Duration,
) (string, string, *models.Profile, error) {
	log := logger.WithCtx(ctx)

	accessToken, err := utils.GenerateToken(jwtSecret, profile.ID, profile.Email, profile.Role, accessTTL, "access")
	if err != nil {
		log.Error("Ошибка генерации access-токена", zap.Error(err))
		return "", "", nil, err
	}

	refreshToken, err := utils.GenerateToken(jwtSecret, profile.ID, profile.Email, profile.Role, refreshTTL, "refresh")
	if err != nil {
		log.Error("Ошибка генерации refresh-токена", zap.Error(err))
		return "", "", nil, err
	}

	if err := s.repo.SaveRefreshToken(ctx, profile.ID, refreshToken); err != nil {
		log.Error("Ошибка сохранения refresh-токена", zap.Error(err))
		return "", "", nil, err
	}

	return accessToken, refreshToken, profile, nil
}

func (s *AuthService) ValidateRefreshToken(ctx context.Context, userID, token string) (bool, error) {
	logger.WithCtx(ctx).Debug("Проверка refresh токена (service)", zap.String("user_id", userID))
	return s.repo.IsRefreshTokenValid(ctx, userID, token)
}

func (s *AuthService) Logout(ctx context.Context, userID, token string) error {
	logger.WithCtx(ctx).Info("Выход пользователя (service)", zap.String("user_id", userID))
	return s.repo.DeleteRefreshToken(ctx, userID, token)
}

// GetProfile — чтение профиля без побочных эффектов.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	p, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		logger.WithCtx(ctx).Warn("Профиль не найден (service)", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, input *models.UpdateProfileRequest) (*models.Profile, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление профиля (service)", zap.String("user_id", userID))

	p, err := s.repo.UpdateFields(ctx, userID, input)
	if err != nil {
		log.Error("Ошибка обновления профиля (repo)", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func optStr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
