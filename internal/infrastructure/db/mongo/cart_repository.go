package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/app2/products-catalog/internal/core/domain"
)

// The collection keeps the original table name of the purchase ledger.
const chartCollection = "chart"

type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{coll: db.Collection(chartCollection)}
}

type mongoCartEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"user_id"`
	QtdItens   int                `bson:"qtd_itens"`
	TotalValue float64            `bson:"total_value"`
	CreatedAt  int64              `bson:"created_at"`
}

func (r *CartRepository) Create(ctx context.Context, entry *domain.CartEntry) error {
	doc := mongoCartEntry{
		UserID:     entry.UserID,
		QtdItens:   entry.QtdItens,
		TotalValue: entry.TotalValue,
		CreatedAt:  entry.CreatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert cart entry: %w", err)
	}
	return nil
}

func (r *CartRepository) FindAll(ctx context.Context) ([]domain.CartEntry, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find cart entries: %w", err)
	}
	defer cursor.Close(ctx)

	entries := make([]domain.CartEntry, 0)
	for cursor.Next(ctx) {
		var me mongoCartEntry
		if err := cursor.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode cart entry: %w", err)
		}
		entries = append(entries, domain.CartEntry{
			ID:         me.ID.Hex(),
			UserID:     me.UserID,
			QtdItens:   me.QtdItens,
			TotalValue: me.TotalValue,
			CreatedAt:  unixToTime(me.CreatedAt),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart entries: %w", err)
	}
	return entries, nil
}
