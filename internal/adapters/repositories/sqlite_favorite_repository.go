package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-planner-service/internal/domain"
	"strings"
)

// SQLite-backed implementation of the FavoriteRepository port.
type SqliteFavoriteRepository struct{ DB *sql.DB }

func NewSqliteFavoriteRepository(db *sql.DB) *SqliteFavoriteRepository {
	return &SqliteFavoriteRepository{DB: db}
}

// Return all favorites in insertion order.
func (s *SqliteFavoriteRepository) ListFavorites(ctx context.Context) ([]domain.Favorite, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite favorite repository: DB is nil")
	}

	query := `
	SELECT id, name, address, lat, lng
	FROM favorites
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list favorites: query favorites table: %w", err)
	}
	defer rows.Close()

	favs := make([]domain.Favorite, 0, 16)
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.ID, &f.Name, &f.Address, &f.Location.Lat, &f.Location.Lng); err != nil {
			return nil, fmt.Errorf("list favorites: scan row: %w", err)
		}
		favs = append(favs, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list favorites: row iteration: %w", err)
	}

	return favs, nil
}

func (s *SqliteFavoriteRepository) GetFavorite(ctx context.Context, id int64) (domain.Favorite, error) {
	if s.DB == nil {
		return domain.Favorite{}, errors.New("sqlite favorite repository: DB is nil")
	}

	var f domain.Favorite
	err := s.DB.QueryRowContext(ctx, `
	SELECT id, name, address, lat, lng
	FROM favorites
	WHERE id = ?;
	`, id).Scan(&f.ID, &f.Name, &f.Address, &f.Location.Lat, &f.Location.Lng)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Favorite{}, domain.ErrFavoriteNotFound
	}
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("get favorite id=%d: %w", id, err)
	}

	return f, nil
}

// Store f and return it with its assigned id.
func (s *SqliteFavoriteRepository) AddFavorite(ctx context.Context, f domain.Favorite) (domain.Favorite, error) {
	if s.DB == nil {
		return domain.Favorite{}, errors.New("sqlite favorite repository: DB is nil")
	}

	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return domain.Favorite{}, errors.New("add favorite: name cannot be empty")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("add favorite: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM favorites WHERE name = ?;`, f.Name).Scan(&exists)
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("add favorite: check name: %w", err)
	}
	if exists > 0 {
		return domain.Favorite{}, fmt.Errorf("add favorite %q: %w", f.Name, domain.ErrDuplicateFavorite)
	}

	result, err := tx.ExecContext(ctx, `
	INSERT INTO favorites (name, address, lat, lng)
	VALUES (?, ?, ?, ?);
	`, f.Name, f.Address, f.Location.Lat, f.Location.Lng)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return domain.Favorite{}, fmt.Errorf("add favorite %q: %w", f.Name, domain.ErrDuplicateFavorite)
		}
		return domain.Favorite{}, fmt.Errorf("add favorite: insert: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("add favorite: last insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Favorite{}, fmt.Errorf("add favorite: commit tx: %w", err)
	}

	f.ID = id
	return f, nil
}

func (s *SqliteFavoriteRepository) RemoveFavorite(ctx context.Context, id int64) error {
	if s.DB == nil {
		return errors.New("sqlite favorite repository: DB is nil")
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM favorites WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("remove favorite id=%d: %w", id, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove favorite id=%d: rows affected: %w", id, err)
	}
	if n == 0 {
		return domain.ErrFavoriteNotFound
	}

	return nil
}
