package services

import (
	"reflect"
	"strings"
	"testing"

	"profkom/internal/models"
)

func testArticles() []*models.Article {
	return []*models.Article{
		{ID: "1", Title: "Новые льготы", Content: "Подробности о льготах", Category: "Льготы"},
		{ID: "2", Title: "Отчёт за квартал", Content: "Финансовый отчёт", Category: "Отчёты"},
		{ID: "3", Title: "Экскурсия", Content: "Поездка выходного дня, льготы на билеты", Category: "Досуг"},
		{ID: "4", Title: "Без категории", Content: "Текст", Category: "  "},
	}
}

func TestArticleCategories_SortedDistinct(t *testing.T) {
	got := ArticleCategories(testArticles())
	want := []string{"Досуг", "Льготы", "Отчёты"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("получено %v, ожидалось %v", got, want)
	}
}

func TestFilterArticles_AllCategoryIsIdentity(t *testing.T) {
	list := testArticles()

	got := FilterArticles(list, "", CategoryAll)
	if len(got) != len(list) {
		t.Fatalf("категория all должна вернуть всю коллекцию: получено %d из %d", len(got), len(list))
	}
	for i := range list {
		if got[i].ID != list[i].ID {
			t.Errorf("порядок должен сохраняться: позиция %d — %s вместо %s", i, got[i].ID, list[i].ID)
		}
	}
}

func TestFilterArticles_CategoryExactMatch(t *testing.T) {
	got := FilterArticles(testArticles(), "", "Льготы")
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("ожидалась одна статья с категорией Льготы, получено %d", len(got))
	}

	// регистр значим
	if got := FilterArticles(testArticles(), "", "льготы"); len(got) != 0 {
		t.Errorf("сравнение категории должно быть чувствительно к регистру")
	}
}

func TestFilterArticles_SearchSubstring(t *testing.T) {
	got := FilterArticles(testArticles(), "ЛЬГОТЫ", CategoryAll)

	if len(got) != 2 {
		t.Fatalf("ожидалось 2 статьи, получено %d", len(got))
	}
	for _, a := range got {
		haystack := strings.ToLower(a.Title + " " + a.Content)
		if !strings.Contains(haystack, "льготы") {
			t.Errorf("статья %s не содержит искомую подстроку", a.ID)
		}
	}
}

func TestFilterArticles_SearchAndCategoryCombined(t *testing.T) {
	got := FilterArticles(testArticles(), "льготы", "Досуг")
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("ожидалась статья 3, получено %v", got)
	}
}

func TestFilterPromos_SearchByPartner(t *testing.T) {
	promos := []*models.Promo{
		{ID: "1", Title: "Скидка", Description: "На абонемент", Partner: "FitnessPro", Category: "Спорт"},
		{ID: "2", Title: "Кофе", Description: "Второй в подарок", Partner: "CoffeeLab", Category: "Еда"},
	}

	got := FilterPromos(promos, "fitness", CategoryAll)
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("поиск по партнёру не сработал: %v", got)
	}
}

func TestPromoCategories(t *testing.T) {
	promos := []*models.Promo{
		{Category: "Спорт"},
		{Category: "Еда"},
		{Category: "Спорт"},
		{Category: ""},
	}

	got := PromoCategories(promos)
	want := []string{"Еда", "Спорт"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("получено %v, ожидалось %v", got, want)
	}
}
