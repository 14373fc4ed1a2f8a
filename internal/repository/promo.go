package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"profkom/internal/apperrors"
	"profkom/internal/models"
)

type PromoRepo interface {
	ListActive(ctx context.Context) ([]*models.Promo, error)
	GetActiveByID(ctx context.Context, id string) (*models.Promo, error)
	GetByID(ctx context.Context, id string) (*models.Promo, error)
	Create(ctx context.Context, p *models.Promo) (*models.Promo, error)
	Update(ctx context.Context, p *models.Promo) (*models.Promo, error)
	Delete(ctx context.Context, id string) error
	RecordUsage(ctx context.Context, promoID string) error
	CountActive(ctx context.Context) (int, error)
}

type promoRepo struct{ db *pgxpool.Pool }

func NewPromoRepo(db *pgxpool.Pool) PromoRepo { return &promoRepo{db: db} }

const promoColumns = `id, title, description, code, discount, valid_until, partner, category, image_url, website_url, active, created_at, updated_at, created_by`

func scanPromo(row pgx.Row) (*models.Promo, error) {
	var p models.Promo
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Code, &p.Discount,
		&p.ValidUntil, &p.Partner, &p.Category,
		&p.ImageURL, &p.WebsiteURL, &p.Active,
		&p.CreatedAt, &p.UpdatedAt, &p.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *promoRepo) ListActive(ctx context.Context) ([]*models.Promo, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+promoColumns+` FROM promos WHERE active = true ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Promo
	for rows.Next() {
		p, err := scanPromo(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *promoRepo) GetActiveByID(ctx context.Context, id string) (*models.Promo, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+promoColumns+` FROM promos WHERE id = $1 AND active = true`, id)
	p, err := scanPromo(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	return p, err
}

func (r *promoRepo) GetByID(ctx context.Context, id string) (*models.Promo, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+promoColumns+` FROM promos WHERE id = $1`, id)
	p, err := scanPromo(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	return p, err
}

func (r *promoRepo) Create(ctx context.Context, p *models.Promo) (*models.Promo, error) {
	const q = `
		INSERT INTO promos (title, description, code, discount, valid_until, partner, category, image_url, website_url, active, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING ` + promoColumns
	row := r.db.QueryRow(ctx, q,
		p.Title, p.Description, p.Code, p.Discount, p.ValidUntil,
		p.Partner, p.Category, p.ImageURL, p.WebsiteURL, p.Active, p.CreatedBy,
	)
	return scanPromo(row)
}

func (r *promoRepo) Update(ctx context.Context, p *models.Promo) (*models.Promo, error) {
	const q = `
		UPDATE promos
		SET title=$1, description=$2, code=$3, discount=$4, valid_until=$5,
		    partner=$6, category=$7, image_url=$8, website_url=$9, active=$10,
		    updated_at=NOW()
		WHERE id=$11
		RETURNING ` + promoColumns
	row := r.db.QueryRow(ctx, q,
		p.Title, p.Description, p.Code, p.Discount, p.ValidUntil,
		p.Partner, p.Category, p.ImageURL, p.WebsiteURL, p.Active, p.ID,
	)
	out, err := scanPromo(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	return out, err
}

func (r *promoRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM promos WHERE id = $1`, id)
	return err
}

func (r *promoRepo) RecordUsage(ctx context.Context, promoID string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO promo_usage (promo_id) VALUES ($1)`, promoID)
	return err
}

func (r *promoRepo) CountActive(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM promos WHERE active = true`).Scan(&n)
	return n, err
}
