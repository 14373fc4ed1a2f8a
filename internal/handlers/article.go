package handlers

import (
	"net/http"

	"profkom/internal/logger"
	"profkom/internal/services"
	helpers "profkom/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ArticleHandler struct {
	svc services.ArticleService
}

func NewArticleHandler(svc services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// GetAll godoc
// @Summary Список опубликованных статей
// @Description Фильтры search и category применяются к уже загруженной коллекции
// @Tags articles
// @Produce json
// @Param search query string false "Подстрока в заголовке или тексте"
// @Param category query string false "Категория (точное совпадение, all — все)"
// @Success 200 {array} models.Article
// @Router /api/articles [get]
func (h *ArticleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка получения статей", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения статей")
		return
	}

	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")
	filtered := services.FilterArticles(list, search, category)

	helpers.JSON(w, http.StatusOK, filtered)
}

// GetByID godoc
// @Summary Статья по ID
// @Description Возвращает опубликованную статью со счётчиком просмотров и фиксирует просмотр
// @Tags articles
// @Produce json
// @Param id path string true "ID статьи"
// @Success 200 {object} models.Article
// @Failure 404 {string} string "Не найдено"
// @Router /api/articles/{id} [get]
func (h *ArticleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		// для детальной страницы "нет строки" и сбой шлюза неразличимы:
		// клиент в обоих случаях уходит обратно на список
		logger.WithCtx(r.Context()).Warn("Статья не получена", zap.String("id", id), zap.Error(err))
		helpers.Error(w, http.StatusNotFound, "Статья не найдена")
		return
	}

	helpers.JSON(w, http.StatusOK, a)
}
