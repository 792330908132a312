package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash *string            `bson:"passwordHash,omitempty" json:"-"`
	Role         string             `bson:"role" json:"role"` // user, admin
	Avatar       *string            `bson:"avatar" json:"avatar"`
	JoinedAt     int64              `bson:"joinedAt" json:"joinedAt"`
	Preferences  Preferences        `bson:"preferences" json:"preferences"`
	Bookmarks    []int              `bson:"bookmarks" json:"bookmarks"`
	CheckIns     []CheckIn          `bson:"checkIns" json:"checkIns"`
}

// Preferences is saved wholesale from the onboarding wizard. Unknown or
// missing flags decode as false/zero.
type Preferences struct {
	NeedsMeals      bool `bson:"needsMeals" json:"needsMeals"`
	NeedsShelter    bool `bson:"needsShelter" json:"needsShelter"`
	NeedsMedical    bool `bson:"needsMedical" json:"needsMedical"`
	NeedsCounseling bool `bson:"needsCounseling" json:"needsCounseling"`
	NeedsChildcare  bool `bson:"needsChildcare" json:"needsChildcare"`
	NeedsEmployment bool `bson:"needsEmployment" json:"needsEmployment"`

	RequiresWheelchair  bool `bson:"requiresWheelchair" json:"requiresWheelchair"`
	RequiresPetFriendly bool `bson:"requiresPetFriendly" json:"requiresPetFriendly"`
	RequiresFamily      bool `bson:"requiresFamily" json:"requiresFamily"`
	RequiresVeteran     bool `bson:"requiresVeteran" json:"requiresVeteran"`

	UseGPS      bool    `bson:"useGPS" json:"useGPS"`
	MaxDistance float64 `bson:"maxDistance" json:"maxDistance"` // miles
}

type CheckIn struct {
	ShelterID int   `bson:"shelterId" json:"shelterId"`
	Date      int64 `bson:"date" json:"date"`
}

// UserSummary is the public shape returned by user listings.
type UserSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Avatar   *string `json:"avatar"`
	JoinedAt int64   `json:"joinedAt"`
}
