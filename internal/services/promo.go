package services

import (
	"context"
	"strings"
	"time"

	"profkom/internal/apperrors"
	"profkom/internal/logger"
	"profkom/internal/models"
	"profkom/internal/repository"
	"profkom/internal/utils"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type PromoService interface {
	List(ctx context.Context) ([]*models.Promo, error)
	Get(ctx context.Context, id string) (*models.Promo, error)
	CopyCode(ctx context.Context, id string) (string, error)
	Create(ctx context.Context, createdBy *string, req models.CreatePromoRequest) (*models.Promo, error)
	Update(ctx context.Context, id string, req models.UpdatePromoRequest) (*models.Promo, error)
	Delete(ctx context.Context, id string) error
}

type promoService struct {
	repo   repository.PromoRepo
	policy *bluemonday.Policy
}

func NewPromoService(repo repository.PromoRepo) PromoService {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	return &promoService{repo: repo, policy: p}
}

// List возвращает только активные промокоды, новые первыми.
func (s *promoService) List(ctx context.Context) ([]*models.Promo, error) {
	log := logger.WithCtx(ctx)
	list, err := s.repo.ListActive(ctx)
	if err != nil {
		log.Error("Ошибка получения списка промокодов (repo)", zap.Error(err))
		return nil, err
	}
	for _, p := range list {
		p.DiscountLabel = utils.FormatDiscount(p.Discount)
	}
	log.Debug("Список промокодов получен", zap.Int("count", len(list)))
	return list, nil
}

// Get возвращает активный промокод и фиксирует использование. Счётчик на
// объект не навешивается — в отличие от статей. Ошибка записи события
// только логируется.
func (s *promoService) Get(ctx context.Context, id string) (*models.Promo, error) {
	log := logger.WithCtx(ctx)

	p, err := s.repo.GetActiveByID(ctx, id)
	if err != nil {
		log.Warn("Промокод не найден (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	p.DiscountLabel = utils.FormatDiscount(p.Discount)

	if err := s.repo.RecordUsage(ctx, id); err != nil {
		log.Warn("Ошибка записи использования промокода", zap.String("id", id), zap.Error(err))
	}

	return p, nil
}

// CopyCode отдаёт строку кода для буфера обмена и фиксирует использование.
func (s *promoService) CopyCode(ctx context.Context, id string) (string, error) {
	log := logger.WithCtx(ctx)

	p, err := s.repo.GetActiveByID(ctx, id)
	if err != nil {
		log.Warn("Промокод для копирования не найден (repo)", zap.String("id", id), zap.Error(err))
		return "", err
	}

	if err := s.repo.RecordUsage(ctx, id); err != nil {
		log.Warn("Ошибка записи использования промокода", zap.String("id", id), zap.Error(err))
	}

	log.Info("Код промокода скопирован", zap.String("id", id))
	return p.Code, nil
}

func (s *promoService) Create(ctx context.Context, createdBy *string, req models.CreatePromoRequest) (*models.Promo, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание промокода",
		zap.String("title", strings.TrimSpace(req.Title)),
		zap.String("partner", req.Partner),
	)

	if err := validatePromoFields(req.Title, req.Description, req.Code, req.Discount, req.Partner, req.Category); err != nil {
		log.Warn("Валидация не пройдена", zap.Error(err))
		return nil, err
	}

	validUntil, err := parseValidUntil(req.ValidUntil)
	if err != nil {
		log.Warn("Валидация не пройдена: дата", zap.String("valid_until", req.ValidUntil), zap.Error(err))
		return nil, err
	}

	p := &models.Promo{
		Title:       strings.TrimSpace(req.Title),
		Description: s.policy.Sanitize(utils.FormatTextWithLineBreaks(req.Description)),
		Code:        strings.TrimSpace(req.Code),
		Discount:    strings.TrimSpace(req.Discount),
		ValidUntil:  validUntil,
		Partner:     strings.TrimSpace(req.Partner),
		Category:    strings.TrimSpace(req.Category),
		ImageURL:    optURL(req.ImageURL),
		WebsiteURL:  optURL(req.WebsiteURL),
		// зеркально статьям: промокод активен сразу после создания
		Active:    true,
		CreatedBy: createdBy,
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		log.Error("Ошибка создания промокода (repo)", zap.Error(err))
		return nil, err
	}
	created.DiscountLabel = utils.FormatDiscount(created.Discount)

	log.Info("Промокод создан", zap.String("id", created.ID))
	return created, nil
}

func (s *promoService) Update(ctx context.Context, id string, req models.UpdatePromoRequest) (*models.Promo, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление промокода", zap.String("id", id))

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Промокод для обновления не найден (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		p.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		p.Description = s.policy.Sanitize(utils.FormatTextWithLineBreaks(*req.Description))
	}
	if req.Code != nil {
		p.Code = strings.TrimSpace(*req.Code)
	}
	if req.Discount != nil {
		p.Discount = strings.TrimSpace(*req.Discount)
	}
	if req.ValidUntil != nil {
		validUntil, err := parseValidUntil(*req.ValidUntil)
		if err != nil {
			log.Warn("Валидация не пройдена: дата", zap.String("id", id), zap.Error(err))
			return nil, err
		}
		p.ValidUntil = validUntil
	}
	if req.Partner != nil {
		p.Partner = strings.TrimSpace(*req.Partner)
	}
	if req.Category != nil {
		p.Category = strings.TrimSpace(*req.Category)
	}
	if req.ImageURL != nil {
		p.ImageURL = optURL(*req.ImageURL)
	}
	if req.WebsiteURL != nil {
		p.WebsiteURL = optURL(*req.WebsiteURL)
	}
	if req.Active != nil {
		p.Active = *req.Active
	}

	if err := validatePromoFields(p.Title, p.Description, p.Code, p.Discount, p.Partner, p.Category); err != nil {
		log.Warn("Валидация не пройдена", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		log.Error("Ошибка обновления промокода (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	updated.DiscountLabel = utils.FormatDiscount(updated.Discount)

	log.Info("Промокод обновлён", zap.String("id", id))
	return updated, nil
}

func (s *promoService) Delete(ctx context.Context, id string) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление промокода", zap.String("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления промокода (repo)", zap.String("id", id), zap.Error(err))
		return err
	}

	log.Info("Промокод удалён", zap.String("id", id))
	return nil
}

func validatePromoFields(title, description, code, discount, partner, category string) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.Validation("title", "название обязательно")
	}
	if strings.TrimSpace(description) == "" {
		return apperrors.Validation("description", "описание обязательно")
	}
	if strings.TrimSpace(code) == "" {
		return apperrors.Validation("code", "код обязателен")
	}
	if strings.TrimSpace(discount) == "" {
		return apperrors.Validation("discount", "скидка обязательна")
	}
	if strings.TrimSpace(partner) == "" {
		return apperrors.Validation("partner", "партнёр обязателен")
	}
	if strings.TrimSpace(category) == "" {
		return apperrors.Validation("category", "категория обязательна")
	}
	return nil
}

func parseValidUntil(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, apperrors.Validation("valid_until", "дата окончания обязательна")
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, apperrors.Validation("valid_until", "ожидается дата в формате ГГГГ-ММ-ДД")
	}
	return t, nil
}
