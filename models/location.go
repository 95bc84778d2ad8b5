package models

import "time"

type Location struct {
	ID            string      `bson:"_id" json:"id"`
	Name          string      `bson:"name" json:"name"`
	Slug          string      `bson:"slug" json:"slug"`
	Description   string      `bson:"description" json:"description"`
	Coordinates   Coordinates `bson:"coordinates" json:"coordinates"`
	Highlights    []string    `bson:"highlights" json:"highlights"`
	Amenities     []string    `bson:"amenities" json:"amenities"`
	Featured      bool        `bson:"featured" json:"featured"`
	PropertyCount int64       `bson:"propertyCount" json:"propertyCount"`
	Active        bool        `bson:"active" json:"active"`
	CreatedAt     time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time   `bson:"updatedAt" json:"updatedAt"`
}

type CreateLocationRequest struct {
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description"`
	Coordinates Coordinates `json:"coordinates"`
	Highlights  []string    `json:"highlights"`
	Amenities   []string    `json:"amenities"`
	Featured    bool        `json:"featured"`
}

type UpdateLocationRequest struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Coordinates *Coordinates `json:"coordinates"`
	Highlights  []string     `json:"highlights"`
	Amenities   []string     `json:"amenities"`
	Featured    *bool        `json:"featured"`
	Active      *bool        `json:"active"`
}

// LocationSearchResult is the response shape of the city search endpoint.
type LocationSearchResult struct {
	Cities     []Location `json:"cities"`
	Count      int        `json:"count"`
	SearchTerm string     `json:"search_term"`
}
