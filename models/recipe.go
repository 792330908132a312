package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Recipe struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	Ingredients   []string           `bson:"ingredients" json:"ingredients"`
	Instructions  []string           `bson:"instructions" json:"instructions"`
	NutritionInfo *NutritionInfo     `bson:"nutritionInfo,omitempty" json:"nutritionInfo,omitempty"`
	IsPublic      bool               `bson:"isPublic" json:"isPublic"`
	CreatedAt     int64              `bson:"createdAt" json:"createdAt"`
}

type NutritionInfo struct {
	Calories float64 `bson:"calories" json:"calories"`
	Protein  float64 `bson:"protein" json:"protein"`
	Carbs    float64 `bson:"carbs" json:"carbs"`
	Fat      float64 `bson:"fat" json:"fat"`
}
