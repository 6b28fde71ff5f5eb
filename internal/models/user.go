package models

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/communitywatch/backend/internal/api/validate"
)

var (
	phoneRe = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string             `bson:"fullName" json:"fullName"`
	Username     string             `bson:"username" json:"username"`
	Phone        string             `bson:"phone" json:"phone"`
	Email        string             `bson:"email" json:"email"`
	Location     string             `bson:"location" json:"location"`
	PasswordHash string             `bson:"password" json:"-"`
}

// Validate checks the profile fields; the password is validated by the
// auth service since only its hash lives on the entity.
func (u *User) Validate() error {
	var errs validate.Errs
	for _, e := range []*validate.ErrField{
		validate.Required("fullName", u.FullName),
		validate.Required("username", u.Username),
		validate.Required("phone", u.Phone),
		validate.Required("email", u.Email),
		validate.Required("location", u.Location),
		validate.Match("phone", u.Phone, phoneRe, "enter a valid phone number, e.g. +1234567890"),
		validate.Match("email", u.Email, emailRe, "enter a valid email address"),
	} {
		if e != nil {
			errs = append(errs, *e)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
