package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ModeOnline  = "online"
	ModeOffline = "offline"
	ModeHybrid  = "hybrid"
)

type Event struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Slug        string             `json:"slug" bson:"slug"`
	Description string             `json:"description" bson:"description"`
	Overview    string             `json:"overview" bson:"overview"`
	Image       string             `json:"image" bson:"image"`
	Venue       string             `json:"venue" bson:"venue"`
	Location    string             `json:"location" bson:"location"`
	Date        string             `json:"date" bson:"date"`
	Time        string             `json:"time" bson:"time"`
	Mode        string             `json:"mode" bson:"mode"`
	Audience    string             `json:"audience" bson:"audience"`
	Agenda      []string           `json:"agenda" bson:"agenda"`
	Organizer   string             `json:"organizer" bson:"organizer"`
	Tags        []string           `json:"tags" bson:"tags"`
	CreatedBy   string             `json:"created_by,omitempty" bson:"created_by,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

type UpdateEventParams struct {
	Title       *string
	Description *string
	Overview    *string
	Image       *string
	Venue       *string
	Location    *string
	Date        *string
	Time        *string
	Mode        *string
	Audience    *string
	Agenda      []string
	Organizer   *string
	Tags        []string
}
