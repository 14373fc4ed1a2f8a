package handlers

import (
	"net/http"

	"profkom/internal/config"
	"profkom/internal/logger"
	"profkom/internal/services"

	"go.uber.org/zap"
)

type FeedHandler struct {
	articles services.ArticleService
	cfg      *config.Config
}

func NewFeedHandler(articles services.ArticleService, cfg *config.Config) *FeedHandler {
	return &FeedHandler{articles: articles, cfg: cfg}
}

// Articles godoc
// @Summary RSS-лента опубликованных статей
// @Tags feed
// @Produce xml
// @Success 200 {string} string "RSS 2.0"
// @Router /feed.xml [get]
func (h *FeedHandler) Articles(w http.ResponseWriter, r *http.Request) {
	list, err := h.articles.List(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка сборки RSS-ленты", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	rss, err := services.BuildArticlesFeed(list, h.cfg)
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка генерации RSS", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	_, _ = w.Write([]byte(rss))
}
