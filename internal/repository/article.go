package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"profkom/internal/apperrors"
	"profkom/internal/models"
)

type ArticleRepo interface {
	ListPublished(ctx context.Context) ([]*models.Article, error)
	GetPublishedByID(ctx context.Context, id string) (*models.Article, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	Create(ctx context.Context, a *models.Article) (*models.Article, error)
	Update(ctx context.Context, a *models.Article) (*models.Article, error)
	Delete(ctx context.Context, id string) error
	CountViews(ctx context.Context, articleID string) (int64, error)
	RecordView(ctx context.Context, articleID string) error
	CountPublished(ctx context.Context) (int, error)
	CountPublishedSince(ctx context.Context, days int) (int, error)
}

type articleRepo struct{ db *pgxpool.Pool }

func NewArticleRepo(db *pgxpool.Pool) ArticleRepo { return &articleRepo{db: db} }

const articleColumns = `id, title, content, category, author, image_url, article_url, published, created_at, updated_at, created_by`

func scanArticle(row pgx.Row) (*models.Article, error) {
	var a models.Article
	err := row.Scan(
		&a.ID, &a.Title, &a.Content, &a.Category, &a.Author,
		&a.ImageURL, &a.ArticleURL, &a.Published,
		&a.CreatedAt, &a.UpdatedAt, &a.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *articleRepo) ListPublished(ctx context.Context) ([]*models.Article, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE published = true ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *articleRepo) GetPublishedByID(ctx context.Context, id string) (*models.Article, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE id = $1 AND published = true`, id)
	a, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	return a, err
}

func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	a, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	return a, err
}

func (r *articleRepo) Create(ctx context.Context, a *models.Article) (*models.Article, error) {
	const q = `
		INSERT INTO articles (title, content, category, author, image_url, article_url, published, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING ` + articleColumns
	row := r.db.QueryRow(ctx, q,
		a.Title, a.Content, a.Category, a.Author,
		a.ImageURL, a.ArticleURL, a.Published, a.CreatedBy,
	)
	return scanArticle(row)
}

func (r *articleRepo) Update(ctx context.Context, a *models.Article) (*models.Article, error) {
	const q = `
		UPDATE articles
		SET title=$1, content=$2, category=$3, author=$4,
		    image_url=$5, article_url=$6, published=$7,
		    updated_at=NOW()
		WHERE id=$8
		RETURNING ` + articleColumns
	row := r.db.QueryRow(ctx, q,
		a.Title, a.Content, a.Category, a.Author,
		a.ImageURL, a.ArticleURL, a.Published, a.ID,
	)
	out, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	return out, err
}

func (r *articleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	return err
}

func (r *articleRepo) CountViews(ctx context.Context, articleID string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM article_views WHERE article_id = $1`, articleID).Scan(&n)
	return n, err
}

func (r *articleRepo) RecordView(ctx context.Context, articleID string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO article_views (article_id) VALUES ($1)`, articleID)
	return err
}

func (r *articleRepo) CountPublished(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM articles WHERE published = true`).Scan(&n)
	return n, err
}

func (r *articleRepo) CountPublishedSince(ctx context.Context, days int) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM articles WHERE published = true AND created_at >= NOW() - make_interval(days => $1)`,
		days).Scan(&n)
	return n, err
}
