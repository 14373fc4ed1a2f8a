package handlers

import (
	"net/http"

	"profkom/internal/logger"
	"profkom/internal/services"
	helpers "profkom/internal/utils/helpres"

	"go.uber.org/zap"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Portal godoc
// @Summary Сводка портала
// @Description Всего статей, всего промокодов, статей за неделю
// @Tags stats
// @Produce json
// @Success 200 {object} models.PortalStats
// @Router /api/stats [get]
func (h *StatsHandler) Portal(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Portal(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка получения сводки", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения сводки")
		return
	}

	helpers.JSON(w, http.StatusOK, stats)
}
