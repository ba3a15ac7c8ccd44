package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pocket-pets/internal/domain/care"
)

type CareRepo struct {
	db *sql.DB
}

func NewCareRepo(db *sql.DB) *CareRepo {
	return &CareRepo{db: db}
}

// Append solo inserta; la tabla care_history no tiene UPDATE ni DELETE.
func (r *CareRepo) Append(ctx context.Context, e care.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO care_history (
			id, pet_id, player_id,
			action, note,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		e.ID,
		e.PetID,
		e.PlayerID,
		string(e.Action),
		e.Note,
		e.CreatedAt,
	)
	return err
}

func (r *CareRepo) ListByPet(ctx context.Context, petID string) ([]care.Entry, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, pet_id, player_id,
			action, note,
			created_at
		FROM care_history
		WHERE pet_id = $1
		ORDER BY created_at ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]care.Entry, 0)
	for rows.Next() {
		var e care.Entry
		var action string
		if err := rows.Scan(
			&e.ID,
			&e.PetID,
			&e.PlayerID,
			&action,
			&e.Note,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		e.Action = care.Action(action)
		out = append(out, e)
	}

	return out, rows.Err()
}
