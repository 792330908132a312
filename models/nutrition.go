package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type NutritionLog struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
	Date   int64              `bson:"date" json:"date"`
	Foods  []FoodEntry        `bson:"foods" json:"foods"`
}

type FoodEntry struct {
	Name     string  `bson:"name" json:"name"`
	Calories float64 `bson:"calories" json:"calories"`
	Protein  float64 `bson:"protein" json:"protein"`
	Carbs    float64 `bson:"carbs" json:"carbs"`
	Fat      float64 `bson:"fat" json:"fat"`
	Serving  string  `bson:"serving" json:"serving"`
}
