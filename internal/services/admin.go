package services

import (
	"context"
	"sync"

	"profkom/internal/logger"
	"profkom/internal/models"

	"go.uber.org/zap"
)

// AdminSnapshot — состояние админки после мутации: оба списка перечитаны
// из БД целиком, словари категорий слиты с накопленными за сессию.
type AdminSnapshot struct {
	Articles          []*models.Article `json:"articles"`
	Promos            []*models.Promo   `json:"promos"`
	ArticleCategories []string          `json:"article_categories"`
	PromoCategories   []string          `json:"promo_categories"`
}

// AdminService — последовательный, нетранзакционный поток мутаций:
// валидация -> мутация -> безусловная перезагрузка обоих списков.
// При ошибке мутации перезагрузка не выполняется и словари не меняются.
type AdminService struct {
	articles ArticleService
	promos   PromoService

	mu          sync.Mutex
	articleCats map[string]struct{}
	promoCats   map[string]struct{}
}

func NewAdminService(articles ArticleService, promos PromoService) *AdminService {
	return &AdminService{
		articles:    articles,
		promos:      promos,
		articleCats: make(map[string]struct{}),
		promoCats:   make(map[string]struct{}),
	}
}

func (s *AdminService) CreateArticle(ctx context.Context, createdBy *string, req models.CreateArticleRequest) (*AdminSnapshot, *models.Article, error) {
	a, err := s.articles.Create(ctx, createdBy, req)
	if err != nil {
		return nil, nil, err
	}
	snap, err := s.reload(ctx)
	return snap, a, err
}

func (s *AdminService) UpdateArticle(ctx context.Context, id string, req models.UpdateArticleRequest) (*AdminSnapshot, *models.Article, error) {
	a, err := s.articles.Update(ctx, id, req)
	if err != nil {
		return nil, nil, err
	}
	snap, err := s.reload(ctx)
	return snap, a, err
}

func (s *AdminService) DeleteArticle(ctx context.Context, id string) (*AdminSnapshot, error) {
	if err := s.articles.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.reload(ctx)
}

func (s *AdminService) CreatePromo(ctx context.Context, createdBy *string, req models.CreatePromoRequest) (*AdminSnapshot, *models.Promo, error) {
	p, err := s.promos.Create(ctx, createdBy, req)
	if err != nil {
		return nil, nil, err
	}
	snap, err := s.reload(ctx)
	return snap, p, err
}

func (s *AdminService) UpdatePromo(ctx context.Context, id string, req models.UpdatePromoRequest) (*AdminSnapshot, *models.Promo, error) {
	p, err := s.promos.Update(ctx, id, req)
	if err != nil {
		return nil, nil, err
	}
	snap, err := s.reload(ctx)
	return snap, p, err
}

func (s *AdminService) DeletePromo(ctx context.Context, id string) (*AdminSnapshot, error) {
	if err := s.promos.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.reload(ctx)
}

// Overview — та же перезагрузка без мутации, для первого рендера админки.
func (s *AdminService) Overview(ctx context.Context) (*AdminSnapshot, error) {
	return s.reload(ctx)
}

// reload перечитывает обе коллекции и доливает свежие категории в словари
// сессии. Категории за время жизни сервиса только добавляются.
func (s *AdminService) reload(ctx context.Context) (*AdminSnapshot, error) {
	log := logger.WithCtx(ctx)

	articles, err := s.articles.List(ctx)
	if err != nil {
		log.Error("Ошибка перезагрузки статей", zap.Error(err))
		return nil, err
	}
	promos, err := s.promos.List(ctx)
	if err != nil {
		log.Error("Ошибка перезагрузки промокодов", zap.Error(err))
		return nil, err
	}

	s.mu.Lock()
	for _, c := range ArticleCategories(articles) {
		s.articleCats[c] = struct{}{}
	}
	for _, c := range PromoCategories(promos) {
		s.promoCats[c] = struct{}{}
	}
	articleCats := sortedKeys(s.articleCats)
	promoCats := sortedKeys(s.promoCats)
	s.mu.Unlock()

	return &AdminSnapshot{
		Articles:          articles,
		Promos:            promos,
		ArticleCategories: articleCats,
		PromoCategories:   promoCats,
	}, nil
}
