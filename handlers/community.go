package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nutrilife/database"
	"nutrilife/models"
)

// GetCommunityFeed returns the latest 100 community messages, newest first.
func GetCommunityFeed(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(100)
	cursor, err := database.CommunityMessages.Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	defer cursor.Close(ctx)

	var messages []models.CommunityMessage
	if err := cursor.All(ctx, &messages); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode messages"})
		return
	}
	if messages == nil {
		messages = []models.CommunityMessage{}
	}

	c.JSON(http.StatusOK, messages)
}

type PostCommunityMessageRequest struct {
	UserName string  `json:"userName" binding:"required"`
	Avatar   *string `json:"avatar"`
	Message  string  `json:"message" binding:"required"`
	Category string  `json:"category"`
}

func PostCommunityMessage(c *gin.Context) {
	var req PostCommunityMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userName and message are required"})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userName and message are required"})
		return
	}

	category := req.Category
	if category == "" {
		category = "announcement"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	nextID, err := nextSequenceID(ctx, database.CommunityMessages)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	doc := models.CommunityMessage{
		DocID:     primitive.NewObjectID(),
		ID:        nextID,
		UserID:    c.GetString("userId"),
		UserName:  strings.TrimSpace(req.UserName),
		Avatar:    req.Avatar,
		Message:   message,
		Timestamp: time.Now().Unix(),
		Likes:     0,
		Replies:   0,
		Category:  category,
	}

	if _, err := database.CommunityMessages.InsertOne(ctx, doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post message"})
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// LikeCommunityMessage increments a message's like counter.
func LikeCommunityMessage(c *gin.Context) {
	messageID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.CommunityMessage
	err = database.CommunityMessages.FindOneAndUpdate(ctx, bson.M{"id": messageID}, bson.M{"$inc": bson.M{"likes": 1}}, opts).Decode(&updated)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": messageID, "likes": updated.Likes})
}
