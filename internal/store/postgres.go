package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PostgresStore is the durable entity store. Replace operations run as
// delete-all-then-insert-all inside one transaction: callers always pass
// the complete desired collection. A crash between BEGIN and COMMIT
// cannot lose data, but the pattern is deliberately not a diff/merge.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) ListCasinos(ctx context.Context) ([]Casino, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, rank, rank_class, name, logo, rating, stars, url,
			is_new, has_vpn, vpn_tooltip, bonus, features, button_text
		FROM casinos
		ORDER BY rank ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list casinos: %w", err)
	}
	defer rows.Close()

	items := make([]Casino, 0)
	for rows.Next() {
		var c Casino
		var bonus, features []byte
		if err := rows.Scan(&c.ID, &c.Rank, &c.RankClass, &c.Name, &c.Logo, &c.Rating, &c.Stars,
			&c.URL, &c.IsNew, &c.HasVPN, &c.VPNTooltip, &bonus, &features, &c.ButtonText); err != nil {
			return nil, fmt.Errorf("scan casino: %w", err)
		}
		if err := json.Unmarshal(bonus, &c.Bonus); err != nil {
			return nil, fmt.Errorf("decode casino bonus: %w", err)
		}
		if err := json.Unmarshal(features, &c.Features); err != nil {
			return nil, fmt.Errorf("decode casino features: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list casinos: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) ReplaceCasinos(ctx context.Context, items []Casino) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace casinos: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM casinos`); err != nil {
		return fmt.Errorf("clear casinos: %w", err)
	}
	for _, c := range items {
		if err := insertCasino(ctx, tx, c); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace casinos: %w", err)
	}
	return nil
}

func (s *PostgresStore) InsertCasino(ctx context.Context, c Casino) (Casino, error) {
	if err := insertCasino(ctx, s.db, c); err != nil {
		return Casino{}, err
	}
	return c, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertCasino(ctx context.Context, db execer, c Casino) error {
	bonus, err := json.Marshal(c.Bonus)
	if err != nil {
		return fmt.Errorf("encode casino bonus: %w", err)
	}
	features, err := json.Marshal(c.Features)
	if err != nil {
		return fmt.Errorf("encode casino features: %w", err)
	}
	if _, err := db.ExecContext(ctx, `
		INSERT INTO casinos (id, rank, rank_class, name, logo, rating, stars, url,
			is_new, has_vpn, vpn_tooltip, bonus, features, button_text)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`, c.ID, c.Rank, c.RankClass, c.Name, c.Logo, c.Rating, c.Stars, c.URL,
		c.IsNew, c.HasVPN, c.VPNTooltip, bonus, features, c.ButtonText); err != nil {
		return fmt.Errorf("insert casino %d: %w", c.ID, err)
	}
	return nil
}

func (s *PostgresStore) UpdateCasino(ctx context.Context, c Casino) (Casino, error) {
	bonus, err := json.Marshal(c.Bonus)
	if err != nil {
		return Casino{}, fmt.Errorf("encode casino bonus: %w", err)
	}
	features, err := json.Marshal(c.Features)
	if err != nil {
		return Casino{}, fmt.Errorf("encode casino features: %w", err)
	}
	result, err := s.db.ExecContext(ctx, `
		UPDATE casinos
		SET rank=$2, rank_class=$3, name=$4, logo=$5, rating=$6, stars=$7, url=$8,
			is_new=$9, has_vpn=$10, vpn_tooltip=$11, bonus=$12, features=$13, button_text=$14
		WHERE id=$1
	`, c.ID, c.Rank, c.RankClass, c.Name, c.Logo, c.Rating, c.Stars, c.URL,
		c.IsNew, c.HasVPN, c.VPNTooltip, bonus, features, c.ButtonText)
	if err != nil {
		return Casino{}, fmt.Errorf("update casino %d: %w", c.ID, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return Casino{}, ErrNotFound
	}
	return c, nil
}

func (s *PostgresStore) DeleteCasino(ctx context.Context, id int) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM casinos WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete casino %d: %w", id, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListBillboards(ctx context.Context) ([]Billboard, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, subtitle, description, button_text, button_url,
			background_image, is_active, sort_order
		FROM billboards
		ORDER BY sort_order ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list billboards: %w", err)
	}
	defer rows.Close()

	items := make([]Billboard, 0)
	for rows.Next() {
		var b Billboard
		if err := rows.Scan(&b.ID, &b.Title, &b.Subtitle, &b.Description, &b.ButtonText,
			&b.ButtonURL, &b.BackgroundImage, &b.IsActive, &b.Order); err != nil {
			return nil, fmt.Errorf("scan billboard: %w", err)
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list billboards: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) ReplaceBillboards(ctx context.Context, items []Billboard) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace billboards: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM billboards`); err != nil {
		return fmt.Errorf("clear billboards: %w", err)
	}
	for _, b := range items {
		if err := insertBillboard(ctx, tx, b); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace billboards: %w", err)
	}
	return nil
}

func (s *PostgresStore) InsertBillboard(ctx context.Context, b Billboard) (Billboard, error) {
	if err := insertBillboard(ctx, s.db, b); err != nil {
		return Billboard{}, err
	}
	return b, nil
}

func insertBillboard(ctx context.Context, db execer, b Billboard) error {
	if _, err := db.ExecContext(ctx, `
		INSERT INTO billboards (id, title, subtitle, description, button_text,
			button_url, background_image, is_active, sort_order)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`, b.ID, b.Title, b.Subtitle, b.Description, b.ButtonText,
		b.ButtonURL, b.BackgroundImage, b.IsActive, b.Order); err != nil {
		return fmt.Errorf("insert billboard %d: %w", b.ID, err)
	}
	return nil
}

func (s *PostgresStore) UpdateBillboard(ctx context.Context, b Billboard) (Billboard, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE billboards
		SET title=$2, subtitle=$3, description=$4, button_text=$5,
			button_url=$6, background_image=$7, is_active=$8, sort_order=$9
		WHERE id=$1
	`, b.ID, b.Title, b.Subtitle, b.Description, b.ButtonText,
		b.ButtonURL, b.BackgroundImage, b.IsActive, b.Order)
	if err != nil {
		return Billboard{}, fmt.Errorf("update billboard %d: %w", b.ID, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return Billboard{}, ErrNotFound
	}
	return b, nil
}

func (s *PostgresStore) DeleteBillboard(ctx context.Context, id int) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM billboards WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete billboard %d: %w", id, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

// IsNotFound reports whether err is the store's missing-row condition,
// from either this package or database/sql.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, sql.ErrNoRows)
}
