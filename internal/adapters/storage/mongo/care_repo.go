package mongo

import (
	"context"
	"time"

	"pocket-pets/internal/domain/care"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type careDoc struct {
	ID        string    `bson:"_id"`
	PetID     string    `bson:"pet_id"`
	PlayerID  string    `bson:"player_id"`
	Action    string    `bson:"action"`
	Note      string    `bson:"note,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

type CareRepo struct {
	col *mongo.Collection
}

func NewCareRepo(db *mongo.Database) *CareRepo {
	return &CareRepo{col: db.Collection("care_history")}
}

// Append inserta y nada más: la colección es un log inmutable.
func (r *CareRepo) Append(ctx context.Context, e care.Entry) error {
	_, err := r.col.InsertOne(ctx, careDoc{
		ID:        e.ID,
		PetID:     e.PetID,
		PlayerID:  e.PlayerID,
		Action:    string(e.Action),
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	})
	return err
}

func (r *CareRepo) ListByPet(ctx context.Context, petID string) ([]care.Entry, error) {
	cur, err := r.col.Find(ctx, bson.M{"pet_id": petID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]care.Entry, 0)
	for cur.Next(ctx) {
		var doc careDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, care.Entry{
			ID:        doc.ID,
			PetID:     doc.PetID,
			PlayerID:  doc.PlayerID,
			Action:    care.Action(doc.Action),
			Note:      doc.Note,
			CreatedAt: doc.CreatedAt,
		})
	}

	return out, cur.Err()
}
