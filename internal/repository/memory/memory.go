// Package memory holds in-memory repositories mirroring the mongodb
// semantics, including the unique-identity guard. Tests run the services
// and handlers against these instead of a live database.
package memory

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/communitywatch/backend/internal/models"
	"github.com/communitywatch/backend/internal/repository"
)

type Users struct {
	mu    sync.Mutex
	users []models.User
}

func NewUsers() *Users { return &Users{} }

func (r *Users) Create(_ context.Context, u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.users {
		if ex.Username == u.Username || ex.Email == u.Email || ex.Phone == u.Phone {
			return models.User{}, repository.ErrDuplicate
		}
	}
	u.ID = primitive.NewObjectID()
	r.users = append(r.users, u)
	return u, nil
}

func (r *Users) FindByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func (r *Users) FindByIdentity(_ context.Context, username, email, phone string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username || u.Email == email || u.Phone == phone {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

// Len reports the number of stored users.
func (r *Users) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type Reports struct {
	mu      sync.Mutex
	reports []models.Report
}

func NewReports() *Reports { return &Reports{} }

func (r *Reports) Create(_ context.Context, rep models.Report) (models.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep.ID = primitive.NewObjectID()
	r.reports = append(r.reports, rep)
	return rep, nil
}

func (r *Reports) List(_ context.Context, typeFilter string) ([]models.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Report{}
	for _, rep := range r.reports {
		if typeFilter == "" || rep.Type == typeFilter {
			out = append(out, rep)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// Len reports the number of stored reports.
func (r *Reports) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}
