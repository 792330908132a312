package services

import (
	"context"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"nutrilife/models"
)

const shelterGeoKey = "shelters:geo"

const milesPerKm = 0.621371

// GeoService answers "which shelters are within N miles of here". When a
// Redis address is configured the shelter coordinates are kept in a Redis
// geo set; otherwise it falls back to a haversine scan over Mongo.
type GeoService struct {
	shelters    *mongo.Collection
	RedisClient *redis.Client // nil when REDIS_ADDR is not set
}

func NewGeoService(shelters *mongo.Collection) *GeoService {
	service := &GeoService{shelters: shelters}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		log.Println("REDIS_ADDR not set, shelter geo queries will scan MongoDB")
		return service
	}

	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis ping failed (%v), falling back to MongoDB geo scan", err)
		return service
	}

	service.RedisClient = client
	log.Println("Connected to Redis")
	return service
}

// SyncShelters loads every shelter with coordinates into the Redis geo
// set. Called once at startup; a no-op without Redis.
func (s *GeoService) SyncShelters(ctx context.Context) error {
	if s.RedisClient == nil {
		return nil
	}

	shelters, err := s.loadShelters(ctx)
	if err != nil {
		return err
	}

	if err := s.RedisClient.Del(ctx, shelterGeoKey).Err(); err != nil {
		return err
	}

	added := 0
	for _, shelter := range shelters {
		if shelter.Lat == nil || shelter.Lng == nil {
			continue
		}
		err := s.RedisClient.GeoAdd(ctx, shelterGeoKey, &redis.GeoLocation{
			Name:      memberName(shelter.ID),
			Longitude: *shelter.Lng,
			Latitude:  *shelter.Lat,
		}).Err()
		if err != nil {
			log.Printf("Failed to add shelter %d to geo set: %v", shelter.ID, err)
			continue
		}
		added++
	}

	log.Printf("Indexed %d shelters in Redis geo set", added)
	return nil
}

// Nearby returns the shelters within radiusMiles of the given point,
// closest first.
func (s *GeoService) Nearby(ctx context.Context, lat, lng, radiusMiles float64) ([]models.Shelter, error) {
	if s.RedisClient != nil {
		return s.nearbyRedis(ctx, lat, lng, radiusMiles)
	}
	return s.nearbyScan(ctx, lat, lng, radiusMiles)
}

func (s *GeoService) nearbyRedis(ctx context.Context, lat, lng, radiusMiles float64) ([]models.Shelter, error) {
	locations, err := s.RedisClient.GeoSearchLocation(ctx, shelterGeoKey, &redis.GeoSearchLocationQuery{
		GeoSearchQuery: redis.GeoSearchQuery{
			Longitude:  lng,
			Latitude:   lat,
			Radius:     radiusMiles,
			RadiusUnit: "mi",
			Sort:       "ASC",
		},
		WithDist: true,
	}).Result()
	if err != nil {
		log.Printf("Redis GeoSearch error: %v", err)
		return nil, err
	}

	ids := make([]int, 0, len(locations))
	for _, loc := range locations {
		id, ok := parseMemberName(loc.Name)
		if !ok {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return []models.Shelter{}, nil
	}

	cursor, err := s.shelters.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var shelters []models.Shelter
	if err := cursor.All(ctx, &shelters); err != nil {
		return nil, err
	}

	// Restore Redis's closest-first order.
	byID := make(map[int]models.Shelter, len(shelters))
	for _, shelter := range shelters {
		byID[shelter.ID] = shelter
	}
	ordered := make([]models.Shelter, 0, len(ids))
	for _, id := range ids {
		if shelter, ok := byID[id]; ok {
			ordered = append(ordered, shelter)
		}
	}
	return ordered, nil
}

func (s *GeoService) nearbyScan(ctx context.Context, lat, lng, radiusMiles float64) ([]models.Shelter, error) {
	shelters, err := s.loadShelters(ctx)
	if err != nil {
		return nil, err
	}

	type scored struct {
		shelter models.Shelter
		dist    float64
	}
	var within []scored
	for _, shelter := range shelters {
		if shelter.Lat == nil || shelter.Lng == nil {
			continue
		}
		dist := haversineMiles(lat, lng, *shelter.Lat, *shelter.Lng)
		if dist <= radiusMiles {
			within = append(within, scored{shelter: shelter, dist: dist})
		}
	}

	// Insertion sort keeps it simple at this data size.
	for i := 1; i < len(within); i++ {
		for j := i; j > 0 && within[j].dist < within[j-1].dist; j-- {
			within[j], within[j-1] = within[j-1], within[j]
		}
	}

	result := make([]models.Shelter, len(within))
	for i, w := range within {
		result[i] = w.shelter
	}
	return result, nil
}

func (s *GeoService) loadShelters(ctx context.Context) ([]models.Shelter, error) {
	cursor, err := s.shelters.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var shelters []models.Shelter
	if err := cursor.All(ctx, &shelters); err != nil {
		return nil, err
	}
	return shelters, nil
}

func memberName(shelterID int) string {
	return "shelter:" + strconv.Itoa(shelterID)
}

func parseMemberName(name string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimPrefix(name, "shelter:"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// haversineMiles returns the great-circle distance between two points.
func haversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0

	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c * milesPerKm
}
