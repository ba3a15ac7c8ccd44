package mongo

import (
	"context"
	"errors"
	"time"

	"pocket-pets/internal/domain/pets"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type petDoc struct {
	ID        string    `bson:"_id"`
	OwnerID   string    `bson:"owner_id"`
	Name      string    `bson:"name"`
	Rarity    string    `bson:"rarity"`
	Level     int       `bson:"level"`
	Status    string    `bson:"status"`
	Health    int       `bson:"health"`
	Happiness int       `bson:"happiness"`
	Energy    int       `bson:"energy"`
	Hunger    int       `bson:"hunger"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type PetsRepo struct {
	col *mongo.Collection
}

func NewPetsRepo(db *mongo.Database) *PetsRepo {
	return &PetsRepo{col: db.Collection("pets")}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.col.InsertOne(ctx, toPetDoc(p))
	if mongo.IsDuplicateKeyError(err) {
		return errors.New("pet already exists")
	}
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, toPetDoc(p))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	var doc petDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return fromPetDoc(doc), nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	cur, err := r.col.Find(ctx, bson.M{"owner_id": ownerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]pets.Pet, 0)
	for cur.Next(ctx) {
		var doc petDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, fromPetDoc(doc))
	}

	return out, cur.Err()
}

func toPetDoc(p pets.Pet) petDoc {
	return petDoc{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Rarity:    string(p.Rarity),
		Level:     p.Level,
		Status:    string(p.Status),
		Health:    p.Health,
		Happiness: p.Happiness,
		Energy:    p.Energy,
		Hunger:    p.Hunger,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func fromPetDoc(d petDoc) pets.Pet {
	return pets.Pet{
		ID:        d.ID,
		OwnerID:   d.OwnerID,
		Name:      d.Name,
		Rarity:    pets.Rarity(d.Rarity),
		Level:     d.Level,
		Status:    pets.Status(d.Status),
		Health:    d.Health,
		Happiness: d.Happiness,
		Energy:    d.Energy,
		Hunger:    d.Hunger,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
