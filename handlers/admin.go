package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nutrilife/database"
	"nutrilife/models"
)

func GetInventory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := database.Inventory.Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
		return
	}
	defer cursor.Close(ctx)

	var items []models.InventoryItem
	if err := cursor.All(ctx, &items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode inventory"})
		return
	}
	if items == nil {
		items = []models.InventoryItem{}
	}

	c.JSON(http.StatusOK, items)
}

type UpdateInventoryRequest struct {
	Quantity      *int    `json:"quantity"`
	Threshold     *int    `json:"threshold"`
	LastRestocked *string `json:"lastRestocked"`
}

// UpdateInventoryItem patches the mutable inventory fields.
func UpdateInventoryItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}

	var req UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := bson.M{}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Threshold != nil {
		updates["threshold"] = *req.Threshold
	}
	if req.LastRestocked != nil {
		updates["lastRestocked"] = *req.LastRestocked
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No allowed fields to update"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var item models.InventoryItem
	err = database.Inventory.FindOneAndUpdate(ctx, bson.M{"id": itemID}, bson.M{"$set": updates}, opts).Decode(&item)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// GetDistributions returns the latest 100 distribution records, most
// recent date first.
func GetDistributions(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(100)
	cursor, err := database.Distributions.Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch distributions"})
		return
	}
	defer cursor.Close(ctx)

	var list []models.Distribution
	if err := cursor.All(ctx, &list); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode distributions"})
		return
	}
	if list == nil {
		list = []models.Distribution{}
	}

	c.JSON(http.StatusOK, list)
}

type CreateDistributionRequest struct {
	Date          string                   `json:"date"`
	ShelterID     *int                     `json:"shelterId"`
	ShelterName   string                   `json:"shelterName"`
	Items         []models.DistributedItem `json:"items"`
	DistributedBy string                   `json:"distributedBy"`
	Notes         string                   `json:"notes"`
}

func CreateDistribution(c *gin.Context) {
	var req CreateDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ShelterID == nil || req.Items == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shelterId and items array are required"})
		return
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	distributedBy := req.DistributedBy
	if distributedBy == "" {
		distributedBy = "Admin"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	nextID, err := nextSequenceID(ctx, database.Distributions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	doc := models.Distribution{
		DocID:         primitive.NewObjectID(),
		ID:            nextID,
		Date:          date,
		ShelterID:     *req.ShelterID,
		ShelterName:   req.ShelterName,
		Items:         req.Items,
		DistributedBy: distributedBy,
		Notes:         req.Notes,
	}

	if _, err := database.Distributions.InsertOne(ctx, doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create distribution"})
		return
	}

	c.JSON(http.StatusCreated, doc)
}
