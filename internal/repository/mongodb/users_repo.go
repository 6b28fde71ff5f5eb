package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/communitywatch/backend/internal/models"
	"github.com/communitywatch/backend/internal/repository"
)

const opTimeout = 5 * time.Second

type usersRepo struct{ col *mongo.Collection }

func NewUsers(db *mongo.Database) repository.Users {
	return &usersRepo{col: db.Collection("users")}
}

func (r *usersRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	u.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, u); err != nil {
		// the unique indexes reject the insert if a concurrent signup won
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, repository.ErrDuplicate
		}
		return models.User{}, err
	}
	return u, nil
}

func (r *usersRepo) FindByUsername(ctx context.Context, username string) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var u models.User
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, repository.ErrNotFound
	}
	return u, err
}

func (r *usersRepo) FindByIdentity(ctx context.Context, username, email, phone string) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"username": username},
		{"email": email},
		{"phone": phone},
	}}
	var u models.User
	err := r.col.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, repository.ErrNotFound
	}
	return u, err
}
