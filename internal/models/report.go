package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/communitywatch/backend/internal/api/validate"
)

type Report struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type        string             `bson:"type" json:"type"`
	Location    string             `bson:"location" json:"location"`
	Description string             `bson:"description" json:"description"`
	Contact     string             `bson:"contact" json:"contact"`
	Severity    string             `bson:"severity" json:"severity"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

// Validate requires all submission fields; the schema itself keeps them
// optional so historical documents with gaps still load.
func (r *Report) Validate() error {
	var errs validate.Errs
	for _, e := range []*validate.ErrField{
		validate.Required("type", r.Type),
		validate.Required("location", r.Location),
		validate.Required("description", r.Description),
		validate.Required("contact", r.Contact),
		validate.Required("severity", r.Severity),
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
