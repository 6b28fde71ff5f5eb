package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/communitywatch/backend/internal/models"
	"github.com/communitywatch/backend/internal/repository"
)

type reportsRepo struct{ col *mongo.Collection }

func NewReports(db *mongo.Database) repository.Reports {
	return &reportsRepo{col: db.Collection("reports")}
}

func (r *reportsRepo) Create(ctx context.Context, rep models.Report) (models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rep.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, rep); err != nil {
		return models.Report{}, err
	}
	return rep, nil
}

func (r *reportsRepo) List(ctx context.Context, typeFilter string) ([]models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{}
	if typeFilter != "" {
		filter["type"] = typeFilter
	}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Report{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
