package models

import "time"

type Article struct {
	ID         string    `db:"id"          json:"id"`
	Title      string    `db:"title"       json:"title"`
	Content    string    `db:"content"     json:"content"`
	Category   string    `db:"category"    json:"category"`
	Author     string    `db:"author"      json:"author"`
	ImageURL   *string   `db:"image_url"   json:"image_url,omitempty"`
	ArticleURL *string   `db:"article_url" json:"article_url,omitempty"`
	Published  bool      `db:"published"   json:"published"`
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"  json:"updated_at"`
	CreatedBy  *string   `db:"created_by"  json:"created_by,omitempty"`

	// Views не хранится в строке статьи — считается по таблице article_views
	// и заполняется только при выборке одной статьи.
	Views *int64 `db:"-" json:"views,omitempty"`
}

// swagger:model CreateArticleRequest
type CreateArticleRequest struct {
	Title      string `json:"title"       example:"Новые льготы для сотрудников"`
	Content    string `json:"content"     example:"<p>Текст статьи</p>"`
	Category   string `json:"category"    example:"Льготы"`
	Author     string `json:"author"      example:"Профком"`
	ImageURL   string `json:"image_url"   example:"https://example.com/img.png"`
	ArticleURL string `json:"article_url" example:"example.com/full-article"`
}

// swagger:model UpdateArticleRequest
type UpdateArticleRequest struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	Category   *string `json:"category,omitempty"`
	Author     *string `json:"author,omitempty"`
	ImageURL   *string `json:"image_url,omitempty"`
	ArticleURL *string `json:"article_url,omitempty"`
	Published  *bool   `json:"published,omitempty"`
}
