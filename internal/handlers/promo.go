package handlers

import (
	"net/http"

	"profkom/internal/logger"
	"profkom/internal/services"
	helpers "profkom/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type PromoHandler struct {
	svc services.PromoService
}

func NewPromoHandler(svc services.PromoService) *PromoHandler {
	return &PromoHandler{svc: svc}
}

// GetAll godoc
// @Summary Список активных промокодов
// @Tags promos
// @Produce json
// @Param search query string false "Подстрока в названии, описании или партнёре"
// @Param category query string false "Категория (точное совпадение, all — все)"
// @Success 200 {array} models.Promo
// @Router /api/promos [get]
func (h *PromoHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка получения промокодов", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения промокодов")
		return
	}

	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")
	filtered := services.FilterPromos(list, search, category)

	helpers.JSON(w, http.StatusOK, filtered)
}

// GetByID godoc
// @Summary Промокод по ID
// @Description Возвращает активный промокод и фиксирует использование
// @Tags promos
// @Produce json
// @Param id path string true "ID промокода"
// @Success 200 {object} models.Promo
// @Failure 404 {string} string "Не найдено"
// @Router /api/promos/{id} [get]
func (h *PromoHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("Промокод не получен", zap.String("id", id), zap.Error(err))
		helpers.Error(w, http.StatusNotFound, "Промокод не найден")
		return
	}

	helpers.JSON(w, http.StatusOK, p)
}

// CopyCode godoc
// @Summary Код промокода для буфера обмена
// @Description Возвращает код как есть и фиксирует использование
// @Tags promos
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID промокода"
// @Success 200 {object} map[string]string
// @Failure 404 {string} string "Не найдено"
// @Router /api/promos/{id}/copy [post]
func (h *PromoHandler) CopyCode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	code, err := h.svc.CopyCode(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("Код промокода не получен", zap.String("id", id), zap.Error(err))
		helpers.Error(w, http.StatusNotFound, "Промокод не найден")
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]string{"code": code})
}
