package services

import (
	"context"

	"profkom/internal/logger"
	"profkom/internal/models"
	"profkom/internal/repository"

	"go.uber.org/zap"
)

type StatsService struct {
	articles repository.ArticleRepo
	promos   repository.PromoRepo
}

func NewStatsService(articles repository.ArticleRepo, promos repository.PromoRepo) *StatsService {
	return &StatsService{articles: articles, promos: promos}
}

// Portal собирает сводку: всего публикаций, всего активных промокодов,
// статей за последнюю неделю.
func (s *StatsService) Portal(ctx context.Context) (*models.PortalStats, error) {
	log := logger.WithCtx(ctx)

	articlesTotal, err := s.articles.CountPublished(ctx)
	if err != nil {
		log.Error("Ошибка подсчёта статей", zap.Error(err))
		return nil, err
	}
	promosTotal, err := s.promos.CountActive(ctx)
	if err != nil {
		log.Error("Ошибка подсчёта промокодов", zap.Error(err))
		return nil, err
	}
	weekly, err := s.articles.CountPublishedSince(ctx, 7)
	if err != nil {
		log.Error("Ошибка подсчёта статей за неделю", zap.Error(err))
		return nil, err
	}

	return &models.PortalStats{
		ArticlesTotal:  articlesTotal,
		PromosTotal:    promosTotal,
		ArticlesWeekly: weekly,
	}, nil
}
