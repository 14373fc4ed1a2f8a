package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"profkom/internal/config"
	"profkom/internal/logger"
	"profkom/internal/middleware"
	"profkom/internal/models"
	"profkom/internal/services"
	helpers "profkom/internal/utils/helpres"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

type registerRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Profile      *models.Profile `json:"profile"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Register godoc
// @Summary Регистрация нового пользователя
// @Description Профиль создаётся неявно при регистрации, роль всегда user
// @Tags auth
// @Accept json
// @Produce json
// @Param input body registerRequest true "Данные регистрации"
// @Success 201 {object} models.Profile
// @Failure 400 {string} string "Ошибка валидации"
// @Router /api/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в Register", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	logger.WithCtx(r.Context()).Info("Регистрация пользователя", zap.String("email", req.Email))

	profile, err := h.authService.RegisterUser(r.Context(), services.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
	})
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка регистрации пользователя", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	helpers.JSON(w, http.StatusCreated, profile)
}

// Login godoc
// @Summary Авторизация пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginRequest true "Данные для входа"
// @Success 200 {object} loginResponse
// @Failure 401 {string} string "Неверный логин или пароль"
// @Router /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в Login", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	accessTTL, _ := time.ParseDuration(h.cfg.AccessTokenTTL)
	refreshTTL, _ := time.ParseDuration(h.cfg.RefreshTokenTTL)

	access, refresh, profile, err := h.authService.LoginUser(
		r.Context(), req.Email, req.Password, h.cfg.JWTSecret, accessTTL, refreshTTL,
	)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("Неудачный вход", zap.String("email", req.Email), zap.Error(err))
		helpers.Error(w, http.StatusUnauthorized, "Неверный логин или пароль")
		return
	}

	helpers.JSON(w, http.StatusOK, loginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Profile:      profile,
	})
}

// Refresh godoc
// @Summary Обновление пары токенов
// @Tags auth
// @Accept json
// @Produce json
// @Param input body refreshRequest true "Refresh-токен"
// @Success 200 {object} loginResponse
// @Failure 401 {string} string "Неверный или просроченный токен"
// @Router /api/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(req.RefreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid || claims["token_type"] != "refresh" {
		logger.WithCtx(r.Context()).Warn("Refresh: невалидный токен", zap.Error(err))
		helpers.Error(w, http.StatusUnauthorized, "Неверный или просроченный токен")
		return
	}

	userID, _ := claims["user_id"].(string)
	valid, err := h.authService.ValidateRefreshToken(r.Context(), userID, req.RefreshToken)
	if err != nil || !valid {
		logger.WithCtx(r.Context()).Warn("Refresh: токен не найден", zap.String("user_id", userID))
		helpers.Error(w, http.StatusUnauthorized, "Неверный или просроченный токен")
		return
	}

	profile, err := h.authService.GetProfile(r.Context(), userID)
	if err != nil {
		helpers.Error(w, http.StatusUnauthorized, "Пользователь не найден")
		return
	}

	// ротация: старый токен гасим, выдаём новую пару
	_ = h.authService.Logout(r.Context(), userID, req.RefreshToken)

	accessTTL, _ := time.ParseDuration(h.cfg.AccessTokenTTL)
	refreshTTL, _ := time.ParseDuration(h.cfg.RefreshTokenTTL)

	access, refresh, profile, err := h.authService.LoginUserTokens(r.Context(), profile, h.cfg.JWTSecret, accessTTL, refreshTTL)
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Ошибка выпуска токенов")
		return
	}

	helpers.JSON(w, http.StatusOK, loginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Profile:      profile,
	})
}

// Logout godoc
// @Summary Выход (отзыв refresh-токена)
// @Tags auth
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body refreshRequest true "Refresh-токен"
// @Success 200 {string} string "Выход выполнен"
// @Router /api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	userID, _ := r.Context().Value(middleware.ContextUserID).(string)
	if err := h.authService.Logout(r.Context(), userID, req.RefreshToken); err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка выхода", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка выхода")
		return
	}

	helpers.JSON(w, http.StatusOK, "Выход выполнен")
}

// Profile godoc
// @Summary Профиль текущего пользователя
// @Tags profile
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 404 {string} string "Не найдено"
// @Router /api/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(middleware.ContextUserID).(string)

	profile, err := h.authService.GetProfile(r.Context(), userID)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Обновление профиля текущего пользователя
// @Tags profile
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.UpdateProfileRequest true "Изменяемые поля"
// @Success 200 {object} models.Profile
// @Router /api/profile [patch]
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	userID, _ := r.Context().Value(middleware.ContextUserID).(string)

	profile, err := h.authService.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, profile)
}
