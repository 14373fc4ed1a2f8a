package services

import (
	"context"
	"testing"

	"profkom/internal/models"
)

func newTestAdminService() (*AdminService, *mockArticleRepo, *mockPromoRepo) {
	articleRepo := newMockArticleRepo()
	promoRepo := newMockPromoRepo()
	svc := NewAdminService(NewArticleService(articleRepo), NewPromoService(promoRepo))
	return svc, articleRepo, promoRepo
}

func articleReq(title, category string) models.CreateArticleRequest {
	return models.CreateArticleRequest{
		Title:    title,
		Content:  "<p>Текст</p>",
		Category: category,
		Author:   "Профком",
	}
}

func TestAdminService_MutationReloadsBothLists(t *testing.T) {
	svc, _, _ := newTestAdminService()

	if _, _, err := svc.CreatePromo(context.Background(), nil, validPromoRequest()); err != nil {
		t.Fatalf("ошибка создания промокода: %v", err)
	}

	snap, _, err := svc.CreateArticle(context.Background(), nil, articleReq("Статья", "Новости"))
	if err != nil {
		t.Fatalf("ошибка создания статьи: %v", err)
	}

	// после мутации статьи перечитываются обе коллекции
	if len(snap.Articles) != 1 {
		t.Errorf("ожидалась 1 статья в снимке, получено %d", len(snap.Articles))
	}
	if len(snap.Promos) != 1 {
		t.Errorf("ожидался 1 промокод в снимке, получено %d", len(snap.Promos))
	}
}

func TestAdminService_VocabularyOnlyGrows(t *testing.T) {
	svc, _, _ := newTestAdminService()

	snap, created, err := svc.CreateArticle(context.Background(), nil, articleReq("Статья", "Льготы"))
	if err != nil {
		t.Fatalf("ошибка создания: %v", err)
	}
	if len(snap.ArticleCategories) != 1 || snap.ArticleCategories[0] != "Льготы" {
		t.Fatalf("словарь категорий не пополнился: %v", snap.ArticleCategories)
	}

	// после удаления единственной статьи категория остаётся в словаре сессии
	snap, err = svc.DeleteArticle(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("ошибка удаления: %v", err)
	}
	if len(snap.Articles) != 0 {
		t.Fatalf("статья должна быть удалена")
	}
	if len(snap.ArticleCategories) != 1 || snap.ArticleCategories[0] != "Льготы" {
		t.Errorf("категории за сессию только добавляются: %v", snap.ArticleCategories)
	}
}

func TestAdminService_FailedMutationLeavesVocabularyUntouched(t *testing.T) {
	svc, _, _ := newTestAdminService()

	// невалидный запрос — мутация не дойдёт до БД
	_, _, err := svc.CreateArticle(context.Background(), nil, articleReq("", "Новая категория"))
	if err == nil {
		t.Fatal("ожидалась ошибка валидации")
	}

	snap, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("ошибка обзора: %v", err)
	}
	if len(snap.ArticleCategories) != 0 {
		t.Errorf("после неудачной мутации словарь должен остаться пустым: %v", snap.ArticleCategories)
	}
}

func TestAdminService_ReloadFailurePropagates(t *testing.T) {
	svc, articleRepo, _ := newTestAdminService()

	articleRepo.failList = true

	if _, err := svc.Overview(context.Background()); err == nil {
		t.Fatal("ошибка перезагрузки списка должна подниматься наверх")
	}
}
