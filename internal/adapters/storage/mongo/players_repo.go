package mongo

import (
	"context"
	"errors"
	"time"

	"pocket-pets/internal/domain/players"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type playerDoc struct {
	ID         string    `bson:"_id"`
	Name       string    `bson:"name"`
	Currency   int       `bson:"currency"`
	Experience int       `bson:"experience"`
	Level      int       `bson:"level"`
	PetCount   int       `bson:"pet_count"`
	ItemCount  int       `bson:"item_count"`
	CreatedAt  time.Time `bson:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at"`
}

type PlayersRepo struct {
	col *mongo.Collection
}

func NewPlayersRepo(db *mongo.Database) *PlayersRepo {
	return &PlayersRepo{col: db.Collection("players")}
}

func (r *PlayersRepo) Create(ctx context.Context, p players.Player) error {
	_, err := r.col.InsertOne(ctx, toPlayerDoc(p))
	if mongo.IsDuplicateKeyError(err) {
		return errors.New("player already exists")
	}
	return err
}

func (r *PlayersRepo) Update(ctx context.Context, p players.Player) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, toPlayerDoc(p))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return players.ErrNotFound
	}
	return nil
}

func (r *PlayersRepo) GetByID(ctx context.Context, id string) (players.Player, error) {
	var doc playerDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return players.Player{}, players.ErrNotFound
		}
		return players.Player{}, err
	}
	return fromPlayerDoc(doc), nil
}

func toPlayerDoc(p players.Player) playerDoc {
	return playerDoc{
		ID:         p.ID,
		Name:       p.Name,
		Currency:   p.Currency,
		Experience: p.Experience,
		Level:      p.Level,
		PetCount:   p.PetCount,
		ItemCount:  p.ItemCount,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func fromPlayerDoc(d playerDoc) players.Player {
	return players.Player{
		ID:         d.ID,
		Name:       d.Name,
		Currency:   d.Currency,
		Experience: d.Experience,
		Level:      d.Level,
		PetCount:   d.PetCount,
		ItemCount:  d.ItemCount,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
