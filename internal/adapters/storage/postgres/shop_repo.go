package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pocket-pets/internal/domain/shop"
)

type ShopRepo struct {
	db *sql.DB
}

func NewShopRepo(db *sql.DB) *ShopRepo {
	return &ShopRepo{db: db}
}

func (r *ShopRepo) Create(ctx context.Context, it shop.Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO shop_items (
			id, name, kind, price, created_at
		) VALUES ($1,$2,$3,$4,$5)
	`,
		it.ID,
		it.Name,
		string(it.Kind),
		it.Price,
		it.CreatedAt,
	)
	return err
}

func (r *ShopRepo) GetByID(ctx context.Context, id string) (shop.Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return shop.Item{}, shop.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, kind, price, created_at
		FROM shop_items
		WHERE id = $1
	`, id)

	var it shop.Item
	var kind string
	if err := row.Scan(&it.ID, &it.Name, &kind, &it.Price, &it.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return shop.Item{}, shop.ErrNotFound
		}
		return shop.Item{}, err
	}
	it.Kind = shop.Kind(kind)

	return it, nil
}

func (r *ShopRepo) List(ctx context.Context) ([]shop.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, kind, price, created_at
		FROM shop_items
		ORDER BY price ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]shop.Item, 0)
	for rows.Next() {
		var it shop.Item
		var kind string
		if err := rows.Scan(&it.ID, &it.Name, &kind, &it.Price, &it.CreatedAt); err != nil {
			return nil, err
		}
		it.Kind = shop.Kind(kind)
		out = append(out, it)
	}

	return out, rows.Err()
}
