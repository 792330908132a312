// Seeds MongoDB with initial data: shelters, inventory, distributions,
// community messages, and an admin plus a demo user.
//
// Run: go run ./cmd/seed
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"nutrilife/database"
	"nutrilife/models"
)

func f64(v float64) *float64 { return &v }

var shelters = []models.Shelter{
	{ID: 1, Name: "Downtown Community Center", Address: "123 Main St, City Center", Lat: f64(44.9778), Lng: f64(-93.265), Capacity: 120, Current: 87, Rating: 4.8, Distance: 0.3, Services: []string{"meals", "beds", "showers", "medical"}, Hours: "24/7", Phone: "(555) 123-4567", Description: "Full-service emergency shelter providing meals, safe sleeping, hygiene facilities, and basic medical screening.", Tags: []string{"family-friendly", "pet-friendly", "accessible"}, LastUpdated: "2 min ago"},
	{ID: 2, Name: "Riverside Nutrition Hub", Address: "456 River Rd, Riverside", Lat: f64(44.9537), Lng: f64(-93.09), Capacity: 80, Current: 34, Rating: 4.6, Distance: 0.8, Services: []string{"meals", "groceries", "counseling"}, Hours: "7am - 9pm", Phone: "(555) 234-5678", Description: "Focused on nutrition and food security. Provides hot meals, grocery assistance, and dietary counseling.", Tags: []string{"nutrition-focused", "accessible"}, LastUpdated: "15 min ago"},
	{ID: 3, Name: "Eastside Family Shelter", Address: "789 East Ave, Eastside", Lat: f64(44.9636), Lng: f64(-93.2099), Capacity: 60, Current: 58, Rating: 4.4, Distance: 1.2, Services: []string{"beds", "meals", "childcare", "laundry"}, Hours: "6pm - 8am", Phone: "(555) 345-6789", Description: "Overnight shelter specifically for families with children.", Tags: []string{"family-friendly", "children-welcome"}, LastUpdated: "1 hr ago"},
	{ID: 4, Name: "Veterans Support Center", Address: "321 Honor Blvd, Midtown", Lat: f64(44.9411), Lng: f64(-93.2683), Capacity: 50, Current: 22, Rating: 4.9, Distance: 1.5, Services: []string{"beds", "meals", "mental-health", "job-placement"}, Hours: "24/7", Phone: "(555) 456-7890", Description: "Dedicated support center for veterans.", Tags: []string{"veterans-only", "mental-health", "accessible"}, LastUpdated: "30 min ago"},
	{ID: 5, Name: "Westside Warming Center", Address: "654 West St, Westside", Lat: f64(44.9334), Lng: f64(-93.3206), Capacity: 200, Current: 145, Rating: 4.2, Distance: 2.1, Services: []string{"warming", "meals", "clothing"}, Hours: "Nov-Mar: 8pm - 8am", Phone: "(555) 567-8901", Description: "Seasonal warming center operating during cold months.", Tags: []string{"seasonal", "large-capacity"}, LastUpdated: "45 min ago"},
}

var inventory = []models.InventoryItem{
	{ID: 1, Item: "Canned Soup", Category: "food", Quantity: 240, Unit: "cans", Threshold: 50, LastRestocked: "2025-02-15"},
	{ID: 2, Item: "Rice (5lb bags)", Category: "food", Quantity: 85, Unit: "bags", Threshold: 20, LastRestocked: "2025-02-10"},
	{ID: 3, Item: "Blankets", Category: "supplies", Quantity: 130, Unit: "units", Threshold: 30, LastRestocked: "2025-01-28"},
	{ID: 4, Item: "Hygiene Kits", Category: "hygiene", Quantity: 75, Unit: "kits", Threshold: 25, LastRestocked: "2025-02-12"},
	{ID: 5, Item: "Winter Coats", Category: "clothing", Quantity: 42, Unit: "units", Threshold: 15, LastRestocked: "2024-12-01"},
	{ID: 6, Item: "First Aid Kits", Category: "medical", Quantity: 18, Unit: "kits", Threshold: 10, LastRestocked: "2025-02-05"},
	{ID: 7, Item: "Water Bottles (24pk)", Category: "food", Quantity: 60, Unit: "cases", Threshold: 20, LastRestocked: "2025-02-18"},
	{ID: 8, Item: "Sleeping Bags", Category: "supplies", Quantity: 55, Unit: "units", Threshold: 20, LastRestocked: "2025-01-20"},
}

var distributions = []models.Distribution{
	{ID: 1, Date: "2025-02-20", ShelterID: 1, ShelterName: "Downtown Community Center", Items: []models.DistributedItem{{InventoryID: 1, Item: "Canned Soup", Quantity: 30}, {InventoryID: 4, Item: "Hygiene Kits", Quantity: 10}}, DistributedBy: "Admin", Notes: "Regular weekly distribution."},
	{ID: 2, Date: "2025-02-19", ShelterID: 3, ShelterName: "Eastside Family Shelter", Items: []models.DistributedItem{{InventoryID: 3, Item: "Blankets", Quantity: 20}, {InventoryID: 5, Item: "Winter Coats", Quantity: 10}}, DistributedBy: "Volunteer Team", Notes: "Emergency delivery due to capacity spike."},
	{ID: 3, Date: "2025-02-18", ShelterID: 5, ShelterName: "Westside Warming Center", Items: []models.DistributedItem{{InventoryID: 7, Item: "Water Bottles (24pk)", Quantity: 15}, {InventoryID: 8, Item: "Sleeping Bags", Quantity: 25}}, DistributedBy: "Admin", Notes: "Cold-weather supply drop."},
}

var communityMessages = []models.CommunityMessage{
	{ID: 1, UserID: "2", UserName: "Maria S.", Message: "The Downtown Community Center just opened a new nutrition clinic! They offer free dietary assessments every Tuesday.", Timestamp: time.Date(2025, 2, 20, 14, 30, 0, 0, time.UTC).Unix(), Likes: 24, Replies: 5, Category: "announcement"},
	{ID: 2, UserID: "3", UserName: "James R.", Message: "Looking for warm clothing donations for the Westside Warming Center. They need coats, gloves, and scarves urgently.", Timestamp: time.Date(2025, 2, 20, 11, 0, 0, 0, time.UTC).Unix(), Likes: 47, Replies: 12, Category: "request"},
	{ID: 3, UserID: "4", UserName: "Priya K.", Message: "Volunteer opportunity: Riverside Nutrition Hub needs weekend kitchen helpers this Saturday from 9am to 1pm. DM me if interested!", Timestamp: time.Date(2025, 2, 19, 16, 45, 0, 0, time.UTC).Unix(), Likes: 31, Replies: 8, Category: "volunteer"},
	{ID: 4, UserID: "5", UserName: "Carlos M.", Message: "Eastside Family Shelter has availability tonight for families. Capacity is at 90% but they still have room. Call ahead.", Timestamp: time.Date(2025, 2, 19, 9, 20, 0, 0, time.UTC).Unix(), Likes: 15, Replies: 2, Category: "availability"},
	{ID: 5, UserID: "1", UserName: "Admin", Message: "System notice: All shelter data is updated in real-time. If you notice outdated information, please use the report button.", Timestamp: time.Date(2025, 2, 18, 8, 0, 0, 0, time.UTC).Unix(), Likes: 9, Replies: 1, Category: "system"},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	if err := database.ConnectMongo(); err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	defer database.DisconnectMongo()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for _, s := range shelters {
		if err := upsertByID(ctx, database.Shelters, s.ID, s); err != nil {
			log.Fatal("Failed to seed shelter: ", err)
		}
	}
	for _, i := range inventory {
		if err := upsertByID(ctx, database.Inventory, i.ID, i); err != nil {
			log.Fatal("Failed to seed inventory: ", err)
		}
	}
	for _, d := range distributions {
		if err := upsertByID(ctx, database.Distributions, d.ID, d); err != nil {
			log.Fatal("Failed to seed distribution: ", err)
		}
	}
	for _, m := range communityMessages {
		if err := upsertByID(ctx, database.CommunityMessages, m.ID, m); err != nil {
			log.Fatal("Failed to seed community message: ", err)
		}
	}
	log.Println("Seeded: shelters, inventory, distributions, communityMessages")

	defaultPassword := os.Getenv("SEED_USER_PASSWORD")
	if defaultPassword == "" {
		defaultPassword = "test123"
	}
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash seed password: ", err)
	}
	hash := string(hashBytes)

	seedUser(ctx, models.User{
		Name:         "Admin User",
		Email:        "admin@nutrilife.app",
		PasswordHash: &hash,
		Role:         "admin",
		JoinedAt:     time.Now().Unix(),
		Preferences:  models.Preferences{NeedsMeals: true, UseGPS: true, MaxDistance: 5},
		Bookmarks:    []int{1, 2},
		CheckIns:     []models.CheckIn{},
	})
	seedUser(ctx, models.User{
		Name:         "Demo User",
		Email:        "demo@nutrilife.app",
		PasswordHash: &hash,
		Role:         "user",
		JoinedAt:     time.Now().Unix(),
		Preferences:  models.Preferences{NeedsMeals: true, NeedsShelter: true, UseGPS: true, MaxDistance: 10},
		Bookmarks:    []int{},
		CheckIns:     []models.CheckIn{},
	})

	log.Println("Seeding complete")
}

func upsertByID(ctx context.Context, coll *mongo.Collection, id int, doc interface{}) error {
	opts := options.Replace().SetUpsert(true)
	_, err := coll.ReplaceOne(ctx, bson.M{"id": id}, doc, opts)
	return err
}

func seedUser(ctx context.Context, user models.User) {
	count, err := database.Users.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		log.Fatal("Failed to check for existing user: ", err)
	}
	if count > 0 {
		log.Printf("User %s already exists, skipping", user.Email)
		return
	}
	if _, err := database.Users.InsertOne(ctx, user); err != nil {
		log.Fatal("Failed to seed user: ", err)
	}
	log.Printf("Seeded user %s", user.Email)
}
