package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nutrilife/services"
)

// Shared service handles used across handler files.
var connectionService *services.ConnectionService
var geoService *services.GeoService

// SetConnectionService wires the connection state machine into the
// connection handlers.
func SetConnectionService(svc *services.ConnectionService) {
	connectionService = svc
}

// SetGeoService wires the shelter geo index into the shelter handlers.
func SetGeoService(svc *services.GeoService) {
	geoService = svc
}

// nextSequenceID returns max(id)+1 for collections that keep the seed
// data's small numeric ids (community messages, distributions).
func nextSequenceID(ctx context.Context, coll *mongo.Collection) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})

	var last struct {
		ID int `bson:"id"`
	}
	err := coll.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return last.ID + 1, nil
}
