package services

import (
	"sort"
	"strings"

	"profkom/internal/models"
)

// CategoryAll — сентинел «все категории» для фильтра.
const CategoryAll = "all"

// ArticleCategories возвращает отсортированный набор различных непустых
// категорий коллекции. Чистая функция, без I/O.
func ArticleCategories(list []*models.Article) []string {
	seen := make(map[string]struct{})
	for _, a := range list {
		c := strings.TrimSpace(a.Category)
		if c == "" {
			continue
		}
		seen[c] = struct{}{}
	}
	return sortedKeys(seen)
}

// PromoCategories — то же для промокодов.
func PromoCategories(list []*models.Promo) []string {
	seen := make(map[string]struct{})
	for _, p := range list {
		c := strings.TrimSpace(p.Category)
		if c == "" {
			continue
		}
		seen[c] = struct{}{}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// FilterArticles фильтрует уже загруженную коллекцию: категория — точное
// совпадение (или "all"), поисковая строка — подстрока без учёта регистра
// по заголовку и тексту. Порядок входа сохраняется.
func FilterArticles(list []*models.Article, searchTerm, category string) []*models.Article {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	out := make([]*models.Article, 0, len(list))
	for _, a := range list {
		if category != "" && category != CategoryAll && a.Category != category {
			continue
		}
		if term != "" {
			haystack := strings.ToLower(a.Title + " " + a.Content)
			if !strings.Contains(haystack, term) {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// FilterPromos — то же для промокодов; поиск по заголовку, описанию и партнёру.
func FilterPromos(list []*models.Promo, searchTerm, category string) []*models.Promo {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	out := make([]*models.Promo, 0, len(list))
	for _, p := range list {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if term != "" {
			haystack := strings.ToLower(p.Title + " " + p.Description + " " + p.Partner)
			if !strings.Contains(haystack, term) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
