package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"profkom/internal/apperrors"
	"profkom/internal/models"
)

type ProfileRepo interface {
	Create(ctx context.Context, p *models.Profile) (*models.Profile, error)
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	UpdateFields(ctx context.Context, id string, input *models.UpdateProfileRequest) (*models.Profile, error)
	SaveRefreshToken(ctx context.Context, userID, token string) error
	IsRefreshTokenValid(ctx context.Context, userID, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, userID, token string) error
}

type profileRepo struct{ db *pgxpool.Pool }

func NewProfileRepo(db *pgxpool.Pool) ProfileRepo { return &profileRepo{db: db} }

const profileColumns = `id, first_name, last_name, email, role, password_hash, created_at, updated_at`

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Role,
		&p.PasswordHash, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Create(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	const q = `
		INSERT INTO profiles (first_name, last_name, email, role, password_hash)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING ` + profileColumns
	row := r.db.QueryRow(ctx, q, p.FirstName, p.LastName, p.Email, p.Role, p.PasswordHash)
	return scanProfile(row)
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	p, err := scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	return p, err
}

func (r *profileRepo) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE email = $1`, email)
	p, err := scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	return p, err
}

func (r *profileRepo) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM profiles WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *profileRepo) UpdateFields(ctx context.Context, id string, input *models.UpdateProfileRequest) (*models.Profile, error) {
	const q = `
		UPDATE profiles
		SET first_name = COALESCE($1, first_name),
		    last_name  = COALESCE($2, last_name),
		    email      = COALESCE($3, email),
		    updated_at = NOW()
		WHERE id = $4
		RETURNING ` + profileColumns
	row := r.db.QueryRow(ctx, q, input.FirstName, input.LastName, input.Email, id)
	p, err := scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	return p, err
}

func (r *profileRepo) SaveRefreshToken(ctx context.Context, userID, token string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO refresh_tokens (user_id, token) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, token)
	return err
}

func (r *profileRepo) IsRefreshTokenValid(ctx context.Context, userID, token string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE user_id = $1 AND token = $2)`,
		userID, token).Scan(&exists)
	return exists, err
}

func (r *profileRepo) DeleteRefreshToken(ctx context.Context, userID, token string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM refresh_tokens WHERE user_id = $1 AND token = $2`,
		userID, token)
	return err
}
