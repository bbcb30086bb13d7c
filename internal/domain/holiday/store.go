package holiday

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context) ([]Holiday, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, date, created_at
    FROM holidays
    ORDER BY date
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []Holiday
	for rows.Next() {
		var h Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date, &h.CreatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

func (s *Store) Create(ctx context.Context, name string, date time.Time) (string, error) {
	var id string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO holidays (name, date)
    VALUES ($1, $2)
    RETURNING id
  `, name, date).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, id, name string, date time.Time) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE holidays
    SET name = $2, date = $3
    WHERE id = $1
  `, id, name, date)
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
    DELETE FROM holidays
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

func (s *Store) Get(ctx context.Context, id string) (*Holiday, error) {
	var h Holiday
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, date, created_at
    FROM holidays
    WHERE id = $1
  `, id).Scan(&h.ID, &h.Name, &h.Date, &h.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}
