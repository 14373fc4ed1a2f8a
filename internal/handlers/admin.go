package handlers

import (
	"encoding/json"
	"net/http"

	"profkom/internal/logger"
	"profkom/internal/middleware"
	"profkom/internal/models"
	"profkom/internal/services"
	helpers "profkom/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type AdminHandler struct {
	svc *services.AdminService
}

func NewAdminHandler(svc *services.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// adminResponse — мутированная сущность плюс перечитанное состояние админки.
type adminResponse struct {
	Entity   interface{}             `json:"entity,omitempty"`
	Snapshot *services.AdminSnapshot `json:"snapshot"`
}

func creatorFromCtx(r *http.Request) *string {
	if userID, ok := r.Context().Value(middleware.ContextUserID).(string); ok && userID != "" {
		return &userID
	}
	return nil
}

// Overview godoc
// @Summary Состояние админки: оба списка и словари категорий
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} services.AdminSnapshot
// @Router /api/admin/overview [get]
func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Overview(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка загрузки админки", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка загрузки данных")
		return
	}
	helpers.JSON(w, http.StatusOK, snap)
}

// CreateArticle godoc
// @Summary Создать статью (только admin)
// @Tags admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreateArticleRequest true "Данные статьи"
// @Success 201 {object} adminResponse
// @Failure 400 {string} string "Ошибка валидации"
// @Router /api/admin/articles [post]
func (h *AdminHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	snap, article, err := h.svc.CreateArticle(r.Context(), creatorFromCtx(r), req)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusCreated, adminResponse{Entity: article, Snapshot: snap})
}

// UpdateArticle godoc
// @Summary Обновить статью (только admin)
// @Tags admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID статьи"
// @Param input body models.UpdateArticleRequest true "Изменяемые поля"
// @Success 200 {object} adminResponse
// @Failure 404 {string} string "Не найдено"
// @Router /api/admin/articles/{id} [patch]
func (h *AdminHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	snap, article, err := h.svc.UpdateArticle(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, adminResponse{Entity: article, Snapshot: snap})
}

// DeleteArticle godoc
// @Summary Удалить статью (только admin)
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID статьи"
// @Success 200 {object} adminResponse
// @Router /api/admin/articles/{id} [delete]
func (h *AdminHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.DeleteArticle(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, adminResponse{Snapshot: snap})
}

// CreatePromo godoc
// @Summary Создать промокод (только admin)
// @Tags admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreatePromoRequest true "Данные промокода"
// @Success 201 {object} adminResponse
// @Failure 400 {string} string "Ошибка валидации"
// @Router /api/admin/promos [post]
func (h *AdminHandler) CreatePromo(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePromoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	snap, promo, err := h.svc.CreatePromo(r.Context(), creatorFromCtx(r), req)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusCreated, adminResponse{Entity: promo, Snapshot: snap})
}

// UpdatePromo godoc
// @Summary Обновить промокод (только admin)
// @Tags admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID промокода"
// @Param input body models.UpdatePromoRequest true "Изменяемые поля"
// @Success 200 {object} adminResponse
// @Failure 404 {string} string "Не найдено"
// @Router /api/admin/promos/{id} [patch]
func (h *AdminHandler) UpdatePromo(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePromoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	snap, promo, err := h.svc.UpdatePromo(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, adminResponse{Entity: promo, Snapshot: snap})
}

// DeletePromo godoc
// @Summary Удалить промокод (только admin)
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID промокода"
// @Success 200 {object} adminResponse
// @Router /api/admin/promos/{id} [delete]
func (h *AdminHandler) DeletePromo(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.DeletePromo(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, adminResponse{Snapshot: snap})
}
