// Package seed loads a small demo dataset on startup when SEED_DATA=true.
package seed

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatecrm/config"
	"estatecrm/models"
	"estatecrm/utils"
)

func Run(ctx context.Context) error {
	if err := seedAdmin(ctx); err != nil {
		return err
	}
	return seedCatalog(ctx)
}

func seedAdmin(ctx context.Context) error {
	users := config.GetCollection("users")

	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@estatecrm.local"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
	}

	count, err := users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now()
	_, err = users.InsertOne(ctx, models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  hashed,
		Name:      "Administrator",
		Role:      models.RoleAdmin,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	return err
}

func seedCatalog(ctx context.Context) error {
	locations := config.GetCollection("locations")
	developers := config.GetCollection("developers")
	properties := config.GetCollection("properties")
	projects := config.GetCollection("projects")

	count, err := locations.CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return err
	}

	now := time.Now()

	location := models.Location{
		ID:          uuid.New().String(),
		Name:        "Whitefield",
		Slug:        "whitefield",
		Description: "IT corridor suburb with strong rental demand",
		Coordinates: models.Coordinates{Lat: 12.9698, Lng: 77.7500},
		Highlights:  []string{"Metro connectivity", "Tech parks"},
		Amenities:   []string{"Schools", "Hospitals", "Malls"},
		Featured:    true,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := locations.InsertOne(ctx, location); err != nil {
		return err
	}

	developer := models.Developer{
		ID:                 uuid.New().String(),
		Name:               "Greenline Estates",
		Rating:             4.3,
		Reputation:         "Established mid-market developer, 20 delivered projects",
		ESGComplianceScore: 78,
		ProjectIDs:         []string{},
		PropertyIDs:        []string{},
		Active:             true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if _, err := developers.InsertOne(ctx, developer); err != nil {
		return err
	}

	project := models.PropertyProject{
		ID:          uuid.New().String(),
		Name:        "Greenline Meadows",
		Slug:        "greenline-meadows",
		DeveloperID: developer.ID,
		LocationID:  location.ID,
		Status:      models.ProjectStatusUnderConstruction,
		Pricing: models.ProjectPricing{
			Min:      7500000,
			Max:      18500000,
			Average:  11200000,
			Currency: "INR",
			Display:  "75L - 1.85Cr",
		},
		Compliance: models.ProjectCompliance{
			ReraRegistered: true,
			ReraNumber:     "PRM/KA/RERA/1251/446/PR/2024/006789",
		},
		Amenities: models.ProjectAmenities{
			Lifestyle: []string{"Clubhouse", "Pool"},
			Sports:    []string{"Tennis court"},
		},
		TotalUnits:     240,
		AvailableUnits: 186,
		Featured:       true,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if _, err := projects.InsertOne(ctx, project); err != nil {
		return err
	}

	demo := []models.Property{
		{
			ID:           uuid.New().String(),
			ListingID:    "LST-1001",
			Title:        "3BHK Garden Apartment",
			Slug:         "3bhk-garden-apartment",
			Description:  "East-facing apartment overlooking the central park",
			Price:        9500000,
			AreaSqFt:     1650,
			LocationID:   location.ID,
			DeveloperID:  developer.ID,
			PropertyType: models.PropertyTypeApartment,
			Status:       models.PropertyStatusAvailable,
			Coordinates:  models.Coordinates{Lat: 12.9701, Lng: 77.7512},
			Amenities:    []string{"Gym", "Pool"},
			Features:     []string{"Corner unit"},
			Tags:         []string{"premium"},
			Images:       []string{},
			Featured:     true,
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.New().String(),
			ListingID:    "LST-1002",
			Title:        "Commercial Plot near Ring Road",
			Slug:         "commercial-plot-near-ring-road",
			Description:  "Corner plot zoned for retail",
			Price:        22000000,
			AreaSqFt:     4800,
			LocationID:   location.ID,
			DeveloperID:  developer.ID,
			PropertyType: models.PropertyTypePlot,
			Status:       models.PropertyStatusAvailable,
			Coordinates:  models.Coordinates{Lat: 12.9650, Lng: 77.7443},
			Amenities:    []string{},
			Features:     []string{"Corner plot"},
			Tags:         []string{"commercial"},
			Images:       []string{},
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	for i := range demo {
		if _, err := properties.InsertOne(ctx, demo[i]); err != nil {
			return err
		}
	}

	_, err = locations.UpdateOne(ctx, bson.M{"_id": location.ID},
		bson.M{"$set": bson.M{"propertyCount": int64(len(demo))}})
	return err
}
