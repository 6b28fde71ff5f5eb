package mongodb

import (
	"go.mongodb.org/mongo-driver/mongo"

	repo "github.com/communitywatch/backend/internal/repository"
)

type Repositories struct {
	Users   repo.Users
	Reports repo.Reports
}

func NewRepositories(db *mongo.Database) Repositories {
	return Repositories{
		Users:   NewUsers(db),
		Reports: NewReports(db),
	}
}
