package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/minhng-ct/commerce-bot/internal/models"
	"github.com/minhng-ct/commerce-bot/internal/repo/leadstore"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type leadDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Phone     string             `bson:"phone"`
	Email     string             `bson:"email,omitempty"`
	Message   string             `bson:"message,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

type leadRepo struct {
	collection *mongo.Collection
}

func NewLeadRepository(db *DB) leadstore.Store {
	return &leadRepo{
		collection: db.Database.Collection("leads"),
	}
}

func (r *leadRepo) Capture(ctx context.Context, in models.LeadInput) (*models.Lead, error) {
	doc := leadDoc{
		ID:        primitive.NewObjectID(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert lead: %w", err)
	}

	return &models.Lead{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		Phone:     doc.Phone,
		Email:     doc.Email,
		Message:   doc.Message,
		CreatedAt: doc.CreatedAt,
	}, nil
}

func (r *leadRepo) Kind() string {
	return leadstore.KindMongo
}
