package profile

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(ctx context.Context, email, passwordHash, fullName, role string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO profiles (email, password_hash, full_name, role)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, email, passwordHash, fullName, role).Scan(&id)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return "", ErrEmailTaken
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*Profile, error) {
	return s.get(ctx, `WHERE email = $1`, email)
}

func (s *Store) GetByID(ctx context.Context, id string) (*Profile, error) {
	return s.get(ctx, `WHERE id = $1`, id)
}

func (s *Store) get(ctx context.Context, where string, arg any) (*Profile, error) {
	var p Profile
	err := s.DB.QueryRow(ctx, `
    SELECT id, email, password_hash, full_name, role, created_at
    FROM profiles
  `+where, arg).Scan(&p.ID, &p.Email, &p.PasswordHash, &p.FullName, &p.Role, &p.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) Update(ctx context.Context, id, fullName string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE profiles
    SET full_name = $2
    WHERE id = $1
  `, id, fullName)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE profiles
    SET password_hash = $2
    WHERE id = $1
  `, id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM profiles
    WHERE id = $1
  `, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
