package mongo

import (
	"context"
	"errors"
	"time"

	"pocket-pets/internal/domain/shop"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type itemDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Kind      string    `bson:"kind"`
	Price     int       `bson:"price"`
	CreatedAt time.Time `bson:"created_at"`
}

type ShopRepo struct {
	col *mongo.Collection
}

func NewShopRepo(db *mongo.Database) *ShopRepo {
	return &ShopRepo{col: db.Collection("shop_items")}
}

func (r *ShopRepo) Create(ctx context.Context, it shop.Item) error {
	_, err := r.col.InsertOne(ctx, itemDoc{
		ID:        it.ID,
		Name:      it.Name,
		Kind:      string(it.Kind),
		Price:     it.Price,
		CreatedAt: it.CreatedAt,
	})
	if mongo.IsDuplicateKeyError(err) {
		return errors.New("item already exists")
	}
	return err
}

func (r *ShopRepo) GetByID(ctx context.Context, id string) (shop.Item, error) {
	var doc itemDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return shop.Item{}, shop.ErrNotFound
		}
		return shop.Item{}, err
	}
	return fromItemDoc(doc), nil
}

func (r *ShopRepo) List(ctx context.Context) ([]shop.Item, error) {
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "price", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]shop.Item, 0)
	for cur.Next(ctx) {
		var doc itemDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, fromItemDoc(doc))
	}

	return out, cur.Err()
}

func fromItemDoc(d itemDoc) shop.Item {
	return shop.Item{
		ID:        d.ID,
		Name:      d.Name,
		Kind:      shop.Kind(d.Kind),
		Price:     d.Price,
		CreatedAt: d.CreatedAt,
	}
}
