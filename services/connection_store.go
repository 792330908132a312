package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"nutrilife/models"
)

// MongoConnectionStore implements ConnectionStore on a Mongo collection.
type MongoConnectionStore struct {
	coll *mongo.Collection
}

func NewMongoConnectionStore(coll *mongo.Collection) *MongoConnectionStore {
	return &MongoConnectionStore{coll: coll}
}

func (s *MongoConnectionStore) FindActiveByPair(ctx context.Context, fromUserID, toUserID string) (*models.ConnectionRequest, error) {
	from, err := primitive.ObjectIDFromHex(fromUserID)
	if err != nil {
		return nil, nil
	}
	to, err := primitive.ObjectIDFromHex(toUserID)
	if err != nil {
		return nil, nil
	}

	var req models.ConnectionRequest
	err = s.coll.FindOne(ctx, bson.M{
		"fromUserId": from,
		"toUserId":   to,
		"status":     bson.M{"$in": []models.ConnectionStatus{models.ConnectionPending, models.ConnectionAccepted}},
	}).Decode(&req)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *MongoConnectionStore) Insert(ctx context.Context, req *models.ConnectionRequest) error {
	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, req)
	return err
}

func (s *MongoConnectionStore) FindByID(ctx context.Context, id string) (*models.ConnectionRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var req models.ConnectionRequest
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&req)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *MongoConnectionStore) SetStatus(ctx context.Context, id string, status models.ConnectionStatus, respondedAt int64) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrRequestNotFound
	}

	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"status": status, "respondedAt": respondedAt},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (s *MongoConnectionStore) ListInvolving(ctx context.Context, userID string) ([]models.ConnectionRequest, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, nil
	}

	cursor, err := s.coll.Find(ctx, bson.M{
		"$or": []bson.M{
			{"fromUserId": oid},
			{"toUserId": oid},
		},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []models.ConnectionRequest
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// MongoUserChecker implements UserChecker on the users collection.
type MongoUserChecker struct {
	coll *mongo.Collection
}

func NewMongoUserChecker(coll *mongo.Collection) *MongoUserChecker {
	return &MongoUserChecker{coll: coll}
}

func (c *MongoUserChecker) UserExists(ctx context.Context, userID string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return false, nil
	}
	count, err := c.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
