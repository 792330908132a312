package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service tags a shelter can advertise. The set is open (seed data carries
// extras like "groceries" and "warming"); these are the ones the match
// scorer knows about.
const (
	ServiceMeals        = "meals"
	ServiceBeds         = "beds"
	ServiceMedical      = "medical"
	ServiceCounseling   = "counseling"
	ServiceChildcare    = "childcare"
	ServiceJobPlacement = "job-placement"
)

// Feature tags used by the requirement bonuses.
const (
	TagAccessible     = "accessible"
	TagPetFriendly    = "pet-friendly"
	TagFamilyFriendly = "family-friendly"
	TagVeteransOnly   = "veterans-only"
)

type Shelter struct {
	DocID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID          int                `bson:"id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Address     string             `bson:"address" json:"address"`
	Lat         *float64           `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng         *float64           `bson:"lng,omitempty" json:"lng,omitempty"`
	Capacity    int                `bson:"capacity" json:"capacity"`
	Current     int                `bson:"current" json:"current"`
	Rating      float64            `bson:"rating" json:"rating"`
	Distance    float64            `bson:"distance" json:"distance"` // miles from city center, seed data
	Services    []string           `bson:"services" json:"services"`
	Tags        []string           `bson:"tags" json:"tags"`
	Hours       string             `bson:"hours" json:"hours"`
	Phone       string             `bson:"phone" json:"phone"`
	Description string             `bson:"description" json:"description"`
	LastUpdated string             `bson:"lastUpdated" json:"lastUpdated"`
}

// HasService reports whether the shelter advertises the given service tag.
func (s *Shelter) HasService(service string) bool {
	for _, svc := range s.Services {
		if svc == service {
			return true
		}
	}
	return false
}

// HasTag reports whether the shelter carries the given feature tag.
func (s *Shelter) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
