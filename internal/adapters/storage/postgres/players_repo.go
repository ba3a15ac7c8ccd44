package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pocket-pets/internal/domain/players"
)

type PlayersRepo struct {
	db *sql.DB
}

func NewPlayersRepo(db *sql.DB) *PlayersRepo {
	return &PlayersRepo{db: db}
}

func (r *PlayersRepo) Create(ctx context.Context, p players.Player) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO players (
			id, name,
			currency, experience, level,
			pet_count, item_count,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		p.Name,
		p.Currency,
		p.Experience,
		p.Level,
		p.PetCount,
		p.ItemCount,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PlayersRepo) Update(ctx context.Context, p players.Player) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE players
		SET
			name = $2,
			currency = $3,
			experience = $4,
			level = $5,
			pet_count = $6,
			item_count = $7,
			updated_at = $8
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Currency,
		p.Experience,
		p.Level,
		p.PetCount,
		p.ItemCount,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return players.ErrNotFound
	}
	return nil
}

func (r *PlayersRepo) GetByID(ctx context.Context, id string) (players.Player, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return players.Player{}, players.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name,
			currency, experience, level,
			pet_count, item_count,
			created_at, updated_at
		FROM players
		WHERE id = $1
	`, id)

	var p players.Player
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Currency,
		&p.Experience,
		&p.Level,
		&p.PetCount,
		&p.ItemCount,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return players.Player{}, players.ErrNotFound
		}
		return players.Player{}, err
	}

	return p, nil
}
