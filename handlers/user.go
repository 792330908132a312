package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"nutrilife/database"
	"nutrilife/models"
)

func toUserSummary(user *models.User) models.UserSummary {
	name := user.Name
	if name == "" {
		name = "Member"
	}
	role := user.Role
	if role == "" {
		role = "user"
	}
	return models.UserSummary{
		ID:       user.ID.Hex(),
		Name:     name,
		Email:    user.Email,
		Role:     role,
		Avatar:   user.Avatar,
		JoinedAt: user.JoinedAt,
	}
}

// ListUsers returns public summaries of every user, optionally excluding
// one id (the caller, typically).
func ListUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if exclude := c.Query("exclude"); exclude != "" {
		if excludeID, err := primitive.ObjectIDFromHex(exclude); err == nil {
			filter["_id"] = bson.M{"$ne": excludeID}
		}
	}

	cursor, err := database.Users.Find(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode users"})
		return
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, toUserSummary(&users[i]))
	}

	c.JSON(http.StatusOK, summaries)
}

func GetUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err = database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		log.Printf("[GetUser] Database error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

type UpdateUserRequest struct {
	Name        *string             `json:"name"`
	Avatar      *string             `json:"avatar"`
	Preferences *models.Preferences `json:"preferences"`
}

// UpdateUser patches the allowed profile fields. Preferences are replaced
// wholesale, matching how the onboarding wizard saves them.
func UpdateUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if c.GetString("userId") != userID.Hex() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot update another user's profile"})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := bson.M{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.Preferences != nil {
		updates["preferences"] = *req.Preferences
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if len(updates) > 0 {
		result, err := database.Users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": updates})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
	}

	var user models.User
	if err := database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetBookmarks returns the user's bookmarked shelter ids.
func GetBookmarks(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err = database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if user.Bookmarks == nil {
		user.Bookmarks = []int{}
	}
	c.JSON(http.StatusOK, user.Bookmarks)
}

// AddBookmark appends a shelter id to the user's bookmarks. Adding an
// existing bookmark is a no-op that still returns the full list.
func AddBookmark(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if c.GetString("userId") != userID.Hex() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot modify another user's bookmarks"})
		return
	}

	var req struct {
		ShelterID *int `json:"shelterId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shelterId is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err = database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	bookmarks := user.Bookmarks
	if bookmarks == nil {
		bookmarks = []int{}
	}
	for _, id := range bookmarks {
		if id == *req.ShelterID {
			c.JSON(http.StatusOK, bookmarks)
			return
		}
	}

	bookmarks = append(bookmarks, *req.ShelterID)
	if _, err := database.Users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": bson.M{"bookmarks": bookmarks}}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bookmarks"})
		return
	}

	c.JSON(http.StatusOK, bookmarks)
}

// RemoveBookmark deletes a shelter id from the user's bookmarks.
func RemoveBookmark(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if c.GetString("userId") != userID.Hex() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot modify another user's bookmarks"})
		return
	}

	shelterID, err := strconv.Atoi(c.Param("shelterId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shelterId"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err = database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	bookmarks := make([]int, 0, len(user.Bookmarks))
	for _, id := range user.Bookmarks {
		if id != shelterID {
			bookmarks = append(bookmarks, id)
		}
	}

	if _, err := database.Users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": bson.M{"bookmarks": bookmarks}}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bookmarks"})
		return
	}

	c.JSON(http.StatusOK, bookmarks)
}
