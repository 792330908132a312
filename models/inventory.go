package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type InventoryItem struct {
	DocID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID            int                `bson:"id" json:"id"`
	Item          string             `bson:"item" json:"item"`
	Category      string             `bson:"category" json:"category"` // food, supplies, hygiene, clothing, medical
	Quantity      int                `bson:"quantity" json:"quantity"`
	Unit          string             `bson:"unit" json:"unit"`
	Threshold     int                `bson:"threshold" json:"threshold"`
	LastRestocked string             `bson:"lastRestocked" json:"lastRestocked"` // YYYY-MM-DD
}

type Distribution struct {
	DocID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID            int                `bson:"id" json:"id"`
	Date          string             `bson:"date" json:"date"` // YYYY-MM-DD
	ShelterID     int                `bson:"shelterId" json:"shelterId"`
	ShelterName   string             `bson:"shelterName" json:"shelterName"`
	Items         []DistributedItem  `bson:"items" json:"items"`
	DistributedBy string             `bson:"distributedBy" json:"distributedBy"`
	Notes         string             `bson:"notes" json:"notes"`
}

type DistributedItem struct {
	InventoryID int    `bson:"inventoryId" json:"inventoryId"`
	Item        string `bson:"item" json:"item"`
	Quantity    int    `bson:"quantity" json:"quantity"`
}
