package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type MealPlan struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
	Week   string             `bson:"week" json:"week"` // ISO week start, YYYY-MM-DD
	Days   []MealPlanDay      `bson:"days" json:"days"`
}

type MealPlanDay struct {
	Day       string   `bson:"day" json:"day"`
	Breakfast string   `bson:"breakfast" json:"breakfast"`
	Lunch     string   `bson:"lunch" json:"lunch"`
	Dinner    string   `bson:"dinner" json:"dinner"`
	Snacks    []string `bson:"snacks" json:"snacks"`
}
