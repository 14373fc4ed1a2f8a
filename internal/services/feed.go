package services

import (
	"fmt"
	"time"

	"profkom/internal/config"
	"profkom/internal/models"

	"github.com/gorilla/feeds"
)

// BuildArticlesFeed собирает RSS 2.0 из опубликованных статей.
func BuildArticlesFeed(articles []*models.Article, cfg *config.Config) (string, error) {
	feed := &feeds.Feed{
		Title:       cfg.FeedTitle,
		Link:        &feeds.Link{Href: cfg.SiteURL},
		Description: cfg.FeedDescription,
		Created:     time.Now(),
	}

	feed.Items = make([]*feeds.Item, 0, len(articles))
	for _, a := range articles {
		link := fmt.Sprintf("%s/articles/%s", cfg.SiteURL, a.ID)
		if a.ArticleURL != nil && *a.ArticleURL != "" {
			link = *a.ArticleURL
		}

		description := a.Content
		if len(description) > 500 {
			description = description[:500] + "..."
		}

		feed.Items = append(feed.Items, &feeds.Item{
			Title:       a.Title,
			Link:        &feeds.Link{Href: link},
			Id:          fmt.Sprintf("%s/articles/%s", cfg.SiteURL, a.ID),
			Description: description,
			Author:      &feeds.Author{Name: a.Author},
			Created:     a.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		return "", fmt.Errorf("генерация RSS: %w", err)
	}
	return rss, nil
}
