package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nutrilife/database"
	"nutrilife/matching"
	"nutrilife/models"
)

func fetchShelters(ctx context.Context, filter bson.M) ([]models.Shelter, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := database.Shelters.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var shelters []models.Shelter
	if err := cursor.All(ctx, &shelters); err != nil {
		return nil, err
	}
	if shelters == nil {
		shelters = []models.Shelter{}
	}
	return shelters, nil
}

func ListShelters(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	shelters, err := fetchShelters(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shelters"})
		return
	}

	c.JSON(http.StatusOK, shelters)
}

// SearchShelters filters the shelter list by a case-insensitive substring
// match on name, address, or description.
func SearchShelters(c *gin.Context) {
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	shelters, err := fetchShelters(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shelters"})
		return
	}

	if q == "" {
		c.JSON(http.StatusOK, shelters)
		return
	}

	filtered := make([]models.Shelter, 0, len(shelters))
	for _, s := range shelters {
		if strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.Address), q) ||
			strings.Contains(strings.ToLower(s.Description), q) {
			filtered = append(filtered, s)
		}
	}

	c.JSON(http.StatusOK, filtered)
}

func GetShelter(c *gin.Context) {
	shelterID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shelter id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var shelter models.Shelter
	err = database.Shelters.FindOne(ctx, bson.M{"id": shelterID}).Decode(&shelter)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shelter not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, shelter)
}

// CheckIn increments a shelter's occupancy and records the visit on the
// caller's profile. The increment is a single guarded update, so two
// simultaneous check-ins cannot push occupancy past capacity.
func CheckIn(c *gin.Context) {
	shelterID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shelter id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	filter := bson.M{
		"id":    shelterID,
		"$expr": bson.M{"$lt": bson.A{"$current", "$capacity"}},
	}

	var shelter models.Shelter
	err = database.Shelters.FindOneAndUpdate(ctx, filter, bson.M{"$inc": bson.M{"current": 1}}, opts).Decode(&shelter)
	if err == mongo.ErrNoDocuments {
		// Either the shelter doesn't exist or it is full; look it up to
		// tell the two apart.
		count, countErr := database.Shelters.CountDocuments(ctx, bson.M{"id": shelterID})
		if countErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if count == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shelter not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Shelter is at capacity"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	// Record the check-in on the user. Losing this on error is tolerable;
	// the occupancy update above already committed.
	if userID, idErr := primitive.ObjectIDFromHex(c.GetString("userId")); idErr == nil {
		checkIn := models.CheckIn{ShelterID: shelterID, Date: time.Now().Unix()}
		if _, err := database.Users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$push": bson.M{"checkIns": checkIn}}); err != nil {
			log.Printf("[CheckIn] Failed to record check-in for user %s: %v", userID.Hex(), err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"shelterId": shelterID, "current": shelter.Current})
}

type shelterMatch struct {
	models.Shelter
	Score        int    `json:"score"`
	MatchVariant string `json:"matchVariant"`
	MatchLabel   string `json:"matchLabel"`
	Availability string `json:"availability"`
}

// GetMatches ranks all shelters against the caller's stored preferences,
// honoring the optional free-text query and service filter.
func GetMatches(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
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

	shelters, err := fetchShelters(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shelters"})
		return
	}

	service := c.Query("service")
	if service == "" {
		service = matching.ServiceAll
	}

	matches, err := matching.Rank(shelters, c.Query("q"), service, user.Preferences)
	if err != nil {
		log.Printf("[GetMatches] Ranking failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rank shelters"})
		return
	}

	response := make([]shelterMatch, len(matches))
	for i, m := range matches {
		response[i] = shelterMatch{
			Shelter:      m.Shelter,
			Score:        m.Score,
			MatchVariant: matching.Variant(m.Score),
			MatchLabel:   matching.MatchLabel(m.Score),
			Availability: matching.StatusLabel(m.Shelter.Current, m.Shelter.Capacity),
		}
	}

	c.JSON(http.StatusOK, response)
}

// GetNearbyShelters returns shelters within the caller's preferred radius
// of the given point, closest first.
func GetNearbyShelters(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return
	}

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng query parameters are required"})
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

	radius := user.Preferences.MaxDistance
	if radius <= 0 {
		radius = 5 // default search radius in miles
	}

	shelters, err := geoService.Nearby(ctx, lat, lng, radius)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search nearby shelters"})
		return
	}

	c.JSON(http.StatusOK, shelters)
}
