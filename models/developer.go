package models

import "time"

type Developer struct {
	ID                 string    `bson:"_id" json:"id"`
	Name               string    `bson:"developer_name" json:"developer_name"`
	Rating             float64   `bson:"developer_rating" json:"developer_rating"`
	Reputation         string    `bson:"reputation" json:"reputation"`
	ESGComplianceScore float64   `bson:"esgComplianceScore" json:"esgComplianceScore"`
	ProjectIDs         []string  `bson:"projectIds" json:"projectIds"`
	PropertyIDs        []string  `bson:"propertyIds" json:"propertyIds"`
	Active             bool      `bson:"active" json:"active"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updatedAt" json:"updatedAt"`
}

type CreateDeveloperRequest struct {
	Name               string   `json:"developer_name" validate:"required"`
	Rating             float64  `json:"developer_rating" validate:"gte=0,lte=5"`
	Reputation         string   `json:"reputation"`
	ESGComplianceScore float64  `json:"esgComplianceScore" validate:"gte=0,lte=100"`
	ProjectIDs         []string `json:"projectIds"`
	PropertyIDs        []string `json:"propertyIds"`
}

type UpdateDeveloperRequest struct {
	Name               *string  `json:"developer_name"`
	Rating             *float64 `json:"developer_rating" validate:"omitempty,gte=0,lte=5"`
	Reputation         *string  `json:"reputation"`
	ESGComplianceScore *float64 `json:"esgComplianceScore" validate:"omitempty,gte=0,lte=100"`
	ProjectIDs         []string `json:"projectIds"`
	PropertyIDs        []string `json:"propertyIds"`
	Active             *bool    `json:"active"`
}
