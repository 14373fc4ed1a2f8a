package services

import (
	"context"
	"strings"

	"profkom/internal/apperrors"
	"profkom/internal/logger"
	"profkom/internal/models"
	"profkom/internal/repository"
	"profkom/internal/utils"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type ArticleService interface {
	List(ctx context.Context) ([]*models.Article, error)
	Get(ctx context.Context, id string) (*models.Article, error)
	Create(ctx context.Context, createdBy *string, req models.CreateArticleRequest) (*models.Article, error)
	Update(ctx context.Context, id string, req models.UpdateArticleRequest) (*models.Article, error)
	Delete(ctx context.Context, id string) error
}

type articleService struct {
	repo   repository.ArticleRepo
	policy *bluemonday.Policy
}

func NewArticleService(repo repository.ArticleRepo) ArticleService {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	return &articleService{repo: repo, policy: p}
}

// List возвращает только опубликованные статьи, новые первыми.
func (s *articleService) List(ctx context.Context) ([]*models.Article, error) {
	log := logger.WithCtx(ctx)
	list, err := s.repo.ListPublished(ctx)
	if err != nil {
		log.Error("Ошибка получения списка статей (repo)", zap.Error(err))
		return nil, err
	}
	log.Debug("Список статей получен", zap.Int("count", len(list)))
	return list, nil
}

// Get возвращает опубликованную статью с числом просмотров и фиксирует
// просмотр. Ошибка записи события только логируется — чтение она не роняет.
func (s *articleService) Get(ctx context.Context, id string) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	a, err := s.repo.GetPublishedByID(ctx, id)
	if err != nil {
		log.Warn("Статья не найдена (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	views, err := s.repo.CountViews(ctx, id)
	if err != nil {
		log.Warn("Ошибка подсчёта просмотров", zap.String("id", id), zap.Error(err))
		views = 0
	}
	a.Views = &views

	if err := s.repo.RecordView(ctx, id); err != nil {
		log.Warn("Ошибка записи просмотра", zap.String("id", id), zap.Error(err))
	}

	return a, nil
}

func (s *articleService) Create(ctx context.Context, createdBy *string, req models.CreateArticleRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание статьи",
		zap.String("title", strings.TrimSpace(req.Title)),
		zap.String("category", req.Category),
	)

	if err := validateArticleFields(req.Title, req.Content, req.Category, req.Author); err != nil {
		log.Warn("Валидация не пройдена", zap.Error(err))
		return nil, err
	}

	a := &models.Article{
		Title:      strings.TrimSpace(req.Title),
		Content:    s.policy.Sanitize(utils.FormatTextWithLineBreaks(req.Content)),
		Category:   strings.TrimSpace(req.Category),
		Author:     strings.TrimSpace(req.Author),
		ImageURL:   optURL(req.ImageURL),
		ArticleURL: optURL(req.ArticleURL),
		// в текущем потоке админки статья публикуется сразу
		Published: true,
		CreatedBy: createdBy,
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		log.Error("Ошибка создания статьи (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Статья создана", zap.String("id", created.ID))
	return created, nil
}

func (s *articleService) Update(ctx context.Context, id string, req models.UpdateArticleRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление статьи", zap.String("id", id))

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Статья для обновления не найдена (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		a.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		a.Content = s.policy.Sanitize(utils.FormatTextWithLineBreaks(*req.Content))
	}
	if req.Category != nil {
		a.Category = strings.TrimSpace(*req.Category)
	}
	if req.Author != nil {
		a.Author = strings.TrimSpace(*req.Author)
	}
	if req.ImageURL != nil {
		a.ImageURL = optURL(*req.ImageURL)
	}
	if req.ArticleURL != nil {
		a.ArticleURL = optURL(*req.ArticleURL)
	}
	if req.Published != nil {
		a.Published = *req.Published
	}

	if err := validateArticleFields(a.Title, a.Content, a.Category, a.Author); err != nil {
		log.Warn("Валидация не пройдена", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.Update(ctx, a)
	if err != nil {
		log.Error("Ошибка обновления статьи (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("Статья обновлена", zap.String("id", id))
	return updated, nil
}

func (s *articleService) Delete(ctx context.Context, id string) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление статьи", zap.String("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления статьи (repo)", zap.String("id", id), zap.Error(err))
		return err
	}

	log.Info("Статья удалена", zap.String("id", id))
	return nil
}

func validateArticleFields(title, content, category, author string) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.Validation("title", "заголовок обязателен")
	}
	if strings.TrimSpace(content) == "" {
		return apperrors.Validation("content", "текст статьи обязателен")
	}
	if strings.TrimSpace(category) == "" {
		return apperrors.Validation("category", "категория обязательна")
	}
	if strings.TrimSpace(author) == "" {
		return apperrors.Validation("author", "автор обязателен")
	}
	return nil
}

// optURL — пустая строка превращается в NULL, непустая нормализуется
// до абсолютной https-ссылки.
func optURL(raw string) *string {
	normalized := utils.NormalizeExternalURL(raw)
	if normalized == "" {
		return nil
	}
	return &normalized
}
