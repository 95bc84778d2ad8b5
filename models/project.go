package models

import "time"

type ProjectStatus string

const (
	ProjectStatusPlanning          ProjectStatus = "Planning"
	ProjectStatusUnderConstruction ProjectStatus = "Under Construction"
	ProjectStatusCompleted         ProjectStatus = "Completed"
	ProjectStatusReadyToMove       ProjectStatus = "Ready to Move"
)

type ProjectPricing struct {
	Min      float64 `bson:"min" json:"min"`
	Max      float64 `bson:"max" json:"max"`
	Average  float64 `bson:"average" json:"average"`
	Currency string  `bson:"currency" json:"currency"`
	Display  string  `bson:"display" json:"display"`
}

type ProjectCompliance struct {
	ReraRegistered         bool   `bson:"reraRegistered" json:"reraRegistered"`
	ReraNumber             string `bson:"reraNumber,omitempty" json:"reraNumber,omitempty"`
	EnvironmentalClearance bool   `bson:"environmentalClearance" json:"environmentalClearance"`
	OccupancyCertificate   bool   `bson:"occupancyCertificate" json:"occupancyCertificate"`
}

type ProjectAmenities struct {
	Lifestyle   []string `bson:"lifestyle" json:"lifestyle"`
	Sports      []string `bson:"sports" json:"sports"`
	Community   []string `bson:"community" json:"community"`
	Convenience []string `bson:"convenience" json:"convenience"`
}

type ProjectSustainability struct {
	SolarPower          bool   `bson:"solarPower" json:"solarPower"`
	RainwaterHarvesting bool   `bson:"rainwaterHarvesting" json:"rainwaterHarvesting"`
	WasteManagement     bool   `bson:"wasteManagement" json:"wasteManagement"`
	GreenCertification  string `bson:"greenCertification,omitempty" json:"greenCertification,omitempty"`
}

type ProjectInfrastructure struct {
	PowerBackup  bool     `bson:"powerBackup" json:"powerBackup"`
	WaterSupply  string   `bson:"waterSupply" json:"waterSupply"`
	RoadAccess   string   `bson:"roadAccess" json:"roadAccess"`
	Connectivity []string `bson:"connectivity" json:"connectivity"`
}

type ProjectSecurity struct {
	Gated         bool   `bson:"gated" json:"gated"`
	CCTV          bool   `bson:"cctv" json:"cctv"`
	GuardsCount   int    `bson:"guardsCount" json:"guardsCount"`
	AccessControl string `bson:"accessControl" json:"accessControl"`
}

// PropertyProject is a developer-run multi-unit development. The free-form
// maps hold per-project inventory/media/maintenance/governance documents
// whose shape varies too much between developers to pin down.
type PropertyProject struct {
	ID             string                 `bson:"_id" json:"id"`
	Name           string                 `bson:"name" json:"name"`
	Slug           string                 `bson:"slug" json:"slug"`
	DeveloperID    string                 `bson:"developerId" json:"developerId"`
	LocationID     string                 `bson:"locationId" json:"locationId"`
	Status         ProjectStatus          `bson:"project_status" json:"project_status"`
	Pricing        ProjectPricing         `bson:"pricing" json:"pricing"`
	Compliance     ProjectCompliance      `bson:"compliance" json:"compliance"`
	Amenities      ProjectAmenities       `bson:"amenities" json:"amenities"`
	Sustainability ProjectSustainability  `bson:"sustainability" json:"sustainability"`
	Infrastructure ProjectInfrastructure  `bson:"infrastructure" json:"infrastructure"`
	Security       ProjectSecurity        `bson:"security" json:"security"`
	Inventory      map[string]interface{} `bson:"inventory,omitempty" json:"inventory,omitempty"`
	Media          map[string]interface{} `bson:"media,omitempty" json:"media,omitempty"`
	Maintenance    map[string]interface{} `bson:"maintenance,omitempty" json:"maintenance,omitempty"`
	Governance     map[string]interface{} `bson:"governance,omitempty" json:"governance,omitempty"`
	TotalUnits     int                    `bson:"totalUnits" json:"totalUnits"`
	AvailableUnits int                    `bson:"availableUnits" json:"availableUnits"`
	Featured       bool                   `bson:"featured" json:"featured"`
	Active         bool                   `bson:"active" json:"active"`
	CreatedAt      time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time              `bson:"updatedAt" json:"updatedAt"`
}

type CreateProjectRequest struct {
	Name           string                 `json:"name" validate:"required"`
	DeveloperID    string                 `json:"developerId" validate:"required"`
	LocationID     string                 `json:"locationId"`
	Status         string                 `json:"project_status" validate:"required,oneof=Planning 'Under Construction' Completed 'Ready to Move'"`
	Pricing        ProjectPricing         `json:"pricing"`
	Compliance     ProjectCompliance      `json:"compliance"`
	Amenities      ProjectAmenities       `json:"amenities"`
	Sustainability ProjectSustainability  `json:"sustainability"`
	Infrastructure ProjectInfrastructure  `json:"infrastructure"`
	Security       ProjectSecurity        `json:"security"`
	Inventory      map[string]interface{} `json:"inventory"`
	Media          map[string]interface{} `json:"media"`
	Maintenance    map[string]interface{} `json:"maintenance"`
	Governance     map[string]interface{} `json:"governance"`
	TotalUnits     int                    `json:"totalUnits" validate:"gte=0"`
	AvailableUnits int                    `json:"availableUnits" validate:"gte=0"`
	Featured       bool                   `json:"featured"`
}

type UpdateProjectRequest struct {
	Name           *string                `json:"name"`
	DeveloperID    *string                `json:"developerId"`
	LocationID     *string                `json:"locationId"`
	Status         *string                `json:"project_status" validate:"omitempty,oneof=Planning 'Under Construction' Completed 'Ready to Move'"`
	Pricing        *ProjectPricing        `json:"pricing"`
	Compliance     *ProjectCompliance     `json:"compliance"`
	Amenities      *ProjectAmenities      `json:"amenities"`
	Sustainability *ProjectSustainability `json:"sustainability"`
	Infrastructure *ProjectInfrastructure `json:"infrastructure"`
	Security       *ProjectSecurity       `json:"security"`
	Inventory      map[string]interface{} `json:"inventory"`
	Media          map[string]interface{} `json:"media"`
	Maintenance    map[string]interface{} `json:"maintenance"`
	Governance     map[string]interface{} `json:"governance"`
	TotalUnits     *int                   `json:"totalUnits" validate:"omitempty,gte=0"`
	AvailableUnits *int                   `json:"availableUnits" validate:"omitempty,gte=0"`
	Featured       *bool                  `json:"featured"`
	Active         *bool                  `json:"active"`
}

type BulkCreateProjectsRequest struct {
	Projects []CreateProjectRequest `json:"projects" validate:"required,min=1,dive"`
}
