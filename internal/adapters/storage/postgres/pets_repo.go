package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pocket-pets/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, owner_id,
			name, rarity, level, status,
			health, happiness, energy, hunger,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		p.ID,
		p.OwnerID,
		p.Name,
		string(p.Rarity),
		p.Level,
		string(p.Status),
		p.Health,
		p.Happiness,
		p.Energy,
		p.Hunger,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			rarity = $3,
			level = $4,
			status = $5,
			health = $6,
			happiness = $7,
			energy = $8,
			hunger = $9,
			updated_at = $10
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		string(p.Rarity),
		p.Level,
		string(p.Status),
		p.Health,
		p.Happiness,
		p.Energy,
		p.Hunger,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, owner_id,
			name, rarity, level, status,
			health, happiness, energy, hunger,
			created_at, updated_at
		FROM pets
		WHERE id = $1
	`, id)

	return scanPet(row.Scan)
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_id,
			name, rarity, level, status,
			health, happiness, energy, hunger,
			created_at, updated_at
		FROM pets
		WHERE owner_id = $1
		ORDER BY created_at ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func scanPet(scan func(dest ...any) error) (pets.Pet, error) {
	var p pets.Pet
	var rarity, status string
	if err := scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&rarity,
		&p.Level,
		&status,
		&p.Health,
		&p.Happiness,
		&p.Energy,
		&p.Hunger,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}

	p.Rarity = pets.Rarity(rarity)
	p.Status = pets.Status(status)
	return p, nil
}
