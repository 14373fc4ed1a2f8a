package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"profkom/internal/apperrors"
	"profkom/internal/models"
)

// Мок-репозиторий статей (заглушка)
type mockArticleRepo struct {
	articles []*models.Article
	views    map[string]int64
	nextID   int
	failList bool
}

func newMockArticleRepo() *mockArticleRepo {
	return &mockArticleRepo{views: make(map[string]int64)}
}

func (m *mockArticleRepo) ListPublished(_ context.Context) ([]*models.Article, error) {
	if m.failList {
		return nil, errors.New("db down")
	}
	var out []*models.Article
	// новые первыми, как сортировка по created_at DESC
	for i := len(m.articles) - 1; i >= 0; i-- {
		if m.articles[i].Published {
			out = append(out, m.articles[i])
		}
	}
	return out, nil
}

func (m *mockArticleRepo) GetPublishedByID(_ context.Context, id string) (*models.Article, error) {
	for _, a := range m.articles {
		if a.ID == id && a.Published {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockArticleRepo) GetByID(_ context.Context, id string) (*models.Article, error) {
	for _, a := range m.articles {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockArticleRepo) Create(_ context.Context, a *models.Article) (*models.Article, error) {
	m.nextID++
	cp := *a
	cp.ID = fmt.Sprintf("article-%d", m.nextID)
	m.articles = append(m.articles, &cp)
	out := cp
	return &out, nil
}

func (m *mockArticleRepo) Update(_ context.Context, a *models.Article) (*models.Article, error) {
	for i, old := range m.articles {
		if old.ID == a.ID {
			cp := *a
			m.articles[i] = &cp
			out := cp
			return &out, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockArticleRepo) Delete(_ context.Context, id string) error {
	for i, a := range m.articles {
		if a.ID == id {
			m.articles = append(m.articles[:i], m.articles[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockArticleRepo) CountViews(_ context.Context, articleID string) (int64, error) {
	return m.views[articleID], nil
}

func (m *mockArticleRepo) RecordView(_ context.Context, articleID string) error {
	m.views[articleID]++
	return nil
}

func (m *mockArticleRepo) CountPublished(_ context.Context) (int, error) {
	n := 0
	for _, a := range m.articles {
		if a.Published {
			n++
		}
	}
	return n, nil
}

func (m *mockArticleRepo) CountPublishedSince(_ context.Context, _ int) (int, error) {
	return 0, nil
}

func TestArticleService_CreateThenList(t *testing.T) {
	repo := newMockArticleRepo()
	svc := NewArticleService(repo)

	created, err := svc.Create(context.Background(), nil, models.CreateArticleRequest{
		Title:    "Новые льготы",
		Content:  "<p>Подробности</p>",
		Category: "Льготы",
		Author:   "Профком",
	})
	if err != nil {
		t.Fatalf("ошибка создания статьи: %v", err)
	}
	if !created.Published {
		t.Fatal("статья должна публиковаться сразу при создании")
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("ошибка получения списка: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("ожидалась 1 статья, получено %d", len(list))
	}
	a := list[0]
	if a.Title != "Новые льготы" || a.Category != "Льготы" || a.Author != "Профком" {
		t.Errorf("созданная статья не совпадает с запросом: %+v", a)
	}
}

func TestArticleService_CreateValidation(t *testing.T) {
	repo := newMockArticleRepo()
	svc := NewArticleService(repo)

	_, err := svc.Create(context.Background(), nil, models.CreateArticleRequest{
		Title:    "   ",
		Content:  "Текст",
		Category: "Льготы",
		Author:   "Профком",
	})
	if err == nil {
		t.Fatal("ожидалась ошибка валидации для пустого заголовка")
	}
	if !apperrors.IsValidation(err) {
		t.Fatalf("ожидалась ValidationError, получено %T", err)
	}
	if len(repo.articles) != 0 {
		t.Fatal("при ошибке валидации БД не должна трогаться")
	}
}

func TestArticleService_CreateFormatsPlainText(t *testing.T) {
	repo := newMockArticleRepo()
	svc := NewArticleService(repo)

	created, err := svc.Create(context.Background(), nil, models.CreateArticleRequest{
		Title:    "Объявление",
		Content:  "Первая строка\n\nВторая строка",
		Category: "Новости",
		Author:   "Профком",
	})
	if err != nil {
		t.Fatalf("ошибка создания: %v", err)
	}
	if created.Content != "<p>Первая строка</p><p>Вторая строка</p>" {
		t.Errorf("обычный текст должен разбиваться на абзацы, получено %q", created.Content)
	}
}

func TestArticleService_CreateNormalizesURLs(t *testing.T) {
	repo := newMockArticleRepo()
	svc := NewArticleService(repo)

	created, err := svc.Create(context.Background(), nil, models.CreateArticleRequest{
		Title:      "Ссылки",
		Content:    "<p>Текст</p>",
		Category:   "Новости",
		Author:     "Профком",
		ArticleURL: "example.com/full",
	})
	if err != nil {
		t.Fatalf("ошибка создания: %v", err)
	}
	if created.ArticleURL == nil || *created.ArticleURL != "https://example.com/full" {
		t.Errorf("ссылка без схемы должна получать https://, получено %v", created.ArticleURL)
	}
}

func TestArticleService_GetRecordsViewAndDecoratesCount(t *testing.T) {
	repo := newMockArticleRepo()
	svc := NewArticleService(repo)

	created, _ := svc.Create(context.Background(), nil, models.CreateArticleRequest{
		Title: "Статья", Content: "<p>Текст</p>", Category: "Новости", Author: "Профком",
	})

	first, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("ошибка чтения статьи: %v", err)
	}
	if first.Views == nil {
		t.Fatal("счётчик просмотров должен заполняться при детальном чтении")
	}

	second, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("ошибка повторного чтения: %v", err)
	}

	// счётчик монотонный: второй вызов видит минимум на один просмотр больше
	if *second.Views < *first.Views+1 {
		t.Errorf("ожидался рост счётчика: первый=%d, второй=%d", *first.Views, *second.Views)
	}
}

func TestArticleService_GetNotFound(t *testing.T) {
	repo := newMockArticleRepo()
	svc := NewArticleService(repo)

	_, err := svc.Get(context.Background(), "нет-такого")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("ожидалась ErrNotFound, получено %v", err)
	}
}

func TestArticleService_UnpublishedHiddenFromList(t *testing.T) {
	repo := newMockArticleRepo()
	svc := NewArticleService(repo)

	created, _ := svc.Create(context.Background(), nil, models.CreateArticleRequest{
		Title: "Черновик", Content: "<p>Текст</p>", Category: "Новости", Author: "Профком",
	})

	published := false
	if _, err := svc.Update(context.Background(), created.ID, models.UpdateArticleRequest{Published: &published}); err != nil {
		t.Fatalf("ошибка снятия с публикации: %v", err)
	}

	list, _ := svc.List(context.Background())
	if len(list) != 0 {
		t.Errorf("снятая с публикации статья не должна попадать в список")
	}

	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("детальное чтение скрытой статьи должно давать ErrNotFound, получено %v", err)
	}
}
