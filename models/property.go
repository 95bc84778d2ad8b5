package models

import "time"

type PropertyType string

const (
	PropertyTypePlot       PropertyType = "PLOT"
	PropertyTypeVilla      PropertyType = "VILLA"
	PropertyTypeApartment  PropertyType = "APARTMENT"
	PropertyTypeFarmHouse  PropertyType = "FARM_HOUSE"
	PropertyTypeCommercial PropertyType = "COMMERCIAL"
)

type PropertyStatus string

const (
	PropertyStatusAvailable     PropertyStatus = "AVAILABLE"
	PropertyStatusSold          PropertyStatus = "SOLD"
	PropertyStatusReserved      PropertyStatus = "RESERVED"
	PropertyStatusUnderContract PropertyStatus = "UNDER_CONTRACT"
)

type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

type Property struct {
	ID           string         `bson:"_id" json:"id"`
	ListingID    string         `bson:"listingId" json:"listing_id"`
	Title        string         `bson:"title" json:"title"`
	Slug         string         `bson:"slug" json:"slug"`
	Description  string         `bson:"description" json:"description"`
	Price        float64        `bson:"price" json:"price"`
	AreaSqFt     float64        `bson:"areaSqFt" json:"areaSqFt"`
	LocationID   string         `bson:"locationId" json:"locationId"`
	DeveloperID  string         `bson:"developerId,omitempty" json:"developerId,omitempty"`
	PropertyType PropertyType   `bson:"propertyType" json:"propertyType"`
	Status       PropertyStatus `bson:"status" json:"status"`
	Coordinates  Coordinates    `bson:"coordinates" json:"coordinates"`
	Amenities    []string       `bson:"amenities" json:"amenities"`
	Features     []string       `bson:"features" json:"features"`
	Tags         []string       `bson:"tags" json:"tags"`
	Images       []string       `bson:"images" json:"images"`
	Featured     bool           `bson:"featured" json:"featured"`
	Active       bool           `bson:"active" json:"active"`
	Views        int64          `bson:"views" json:"views"`
	CreatedAt    time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time      `bson:"updatedAt" json:"updatedAt"`
}

type CreatePropertyRequest struct {
	ListingID    string      `json:"listing_id" validate:"required"`
	Title        string      `json:"title" validate:"required"`
	Description  string      `json:"description"`
	Price        float64     `json:"price" validate:"required,gte=0"`
	AreaSqFt     float64     `json:"areaSqFt" validate:"gte=0"`
	LocationID   string      `json:"locationId" validate:"required"`
	DeveloperID  string      `json:"developerId"`
	PropertyType string      `json:"propertyType" validate:"required,oneof=PLOT VILLA APARTMENT FARM_HOUSE COMMERCIAL"`
	Status       string      `json:"status" validate:"omitempty,oneof=AVAILABLE SOLD RESERVED UNDER_CONTRACT"`
	Coordinates  Coordinates `json:"coordinates"`
	Amenities    []string    `json:"amenities"`
	Features     []string    `json:"features"`
	Tags         []string    `json:"tags"`
	Images       []string    `json:"images"`
	Featured     bool        `json:"featured"`
}

// UpdatePropertyRequest uses pointers so absent fields stay untouched;
// updates are always a partial merge, never a full replace.
type UpdatePropertyRequest struct {
	Title        *string      `json:"title"`
	Description  *string      `json:"description"`
	Price        *float64     `json:"price" validate:"omitempty,gte=0"`
	AreaSqFt     *float64     `json:"areaSqFt" validate:"omitempty,gte=0"`
	LocationID   *string      `json:"locationId"`
	DeveloperID  *string      `json:"developerId"`
	PropertyType *string      `json:"propertyType" validate:"omitempty,oneof=PLOT VILLA APARTMENT FARM_HOUSE COMMERCIAL"`
	Status       *string      `json:"status" validate:"omitempty,oneof=AVAILABLE SOLD RESERVED UNDER_CONTRACT"`
	Coordinates  *Coordinates `json:"coordinates"`
	Amenities    []string     `json:"amenities"`
	Features     []string     `json:"features"`
	Tags         []string     `json:"tags"`
	Images       []string     `json:"images"`
	Featured     *bool        `json:"featured"`
	Active       *bool        `json:"active"`
}
