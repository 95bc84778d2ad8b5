package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "New"
	LeadStatusContacted   LeadStatus = "Contacted"
	LeadStatusQualified   LeadStatus = "Qualified"
	LeadStatusShortlisted LeadStatus = "Shortlisted"
	LeadStatusSiteVisit   LeadStatus = "SiteVisit"
	LeadStatusNegotiation LeadStatus = "Negotiation"
	LeadStatusBooked      LeadStatus = "Booked"
	LeadStatusLost        LeadStatus = "Lost"
	LeadStatusConverted   LeadStatus = "Converted"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
		LeadStatusShortlisted, LeadStatusSiteVisit, LeadStatusNegotiation,
		LeadStatusBooked, LeadStatusLost, LeadStatusConverted:
		return true
	}
	return false
}

func (s LeadStatus) Terminal() bool {
	return s == LeadStatusLost || s == LeadStatusConverted
}

type LeadIdentity struct {
	FullName   string `bson:"fullName" json:"fullName"`
	Email      string `bson:"email" json:"email"`
	Phone      string `bson:"phone" json:"phone"`
	Occupation string `bson:"occupation,omitempty" json:"occupation,omitempty"`
}

type LeadDemographics struct {
	AgeGroup   string `bson:"ageGroup,omitempty" json:"ageGroup,omitempty"`
	FamilySize int    `bson:"familySize,omitempty" json:"familySize,omitempty"`
	IncomeBand string `bson:"incomeBand,omitempty" json:"incomeBand,omitempty"`
	City       string `bson:"city,omitempty" json:"city,omitempty"`
}

type PropertyVision struct {
	PropertyType string  `bson:"propertyType,omitempty" json:"propertyType,omitempty"`
	BudgetMin    float64 `bson:"budgetMin,omitempty" json:"budgetMin,omitempty"`
	BudgetMax    float64 `bson:"budgetMax,omitempty" json:"budgetMax,omitempty"`
	Purpose      string  `bson:"purpose,omitempty" json:"purpose,omitempty"`
	TimeFrame    string  `bson:"timeFrame,omitempty" json:"timeFrame,omitempty"`
}

type InvestmentPreferences struct {
	ExpectedROI  float64 `bson:"expectedRoi,omitempty" json:"expectedRoi,omitempty"`
	RiskAppetite string  `bson:"riskAppetite,omitempty" json:"riskAppetite,omitempty"`
	HorizonYears int     `bson:"horizonYears,omitempty" json:"horizonYears,omitempty"`
}

type LocationPreferences struct {
	PreferredLocations []string `bson:"preferredLocations,omitempty" json:"preferredLocations,omitempty"`
	CommuteRadiusKm    int      `bson:"commuteRadiusKm,omitempty" json:"commuteRadiusKm,omitempty"`
	NearSchools        bool     `bson:"nearSchools,omitempty" json:"nearSchools,omitempty"`
	NearHospitals      bool     `bson:"nearHospitals,omitempty" json:"nearHospitals,omitempty"`
}

type LifestylePreferences struct {
	Amenities      []string `bson:"amenities,omitempty" json:"amenities,omitempty"`
	CommunityType  string   `bson:"communityType,omitempty" json:"communityType,omitempty"`
	VastuCompliant bool     `bson:"vastuCompliant,omitempty" json:"vastuCompliant,omitempty"`
}

type UnitPreferences struct {
	Bedrooms        int    `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms       int    `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	MinAreaSqFt     float64 `bson:"minAreaSqFt,omitempty" json:"minAreaSqFt,omitempty"`
	FloorPreference string `bson:"floorPreference,omitempty" json:"floorPreference,omitempty"`
	Facing          string `bson:"facing,omitempty" json:"facing,omitempty"`
}

type LeadSystem struct {
	Status        LeadStatus          `bson:"leadStatus" json:"leadStatus"`
	AssignedAgent *primitive.ObjectID `bson:"assignedAgent,omitempty" json:"assignedAgent,omitempty"`
	Score         float64             `bson:"score" json:"score"`
	ScoreBand     string              `bson:"scoreBand,omitempty" json:"scoreBand,omitempty"`
	Source        string              `bson:"source,omitempty" json:"source,omitempty"`
	ConvertedAt   *time.Time          `bson:"convertedAt,omitempty" json:"convertedAt,omitempty"`
}

type Lead struct {
	ID           primitive.ObjectID    `bson:"_id,omitempty" json:"id"`
	Identity     LeadIdentity          `bson:"identity" json:"identity"`
	Demographics LeadDemographics      `bson:"demographics" json:"demographics"`
	Vision       PropertyVision        `bson:"propertyVision" json:"propertyVision"`
	Investment   InvestmentPreferences `bson:"investmentPreferences" json:"investmentPreferences"`
	Location     LocationPreferences   `bson:"locationPreferences" json:"locationPreferences"`
	Lifestyle    LifestylePreferences  `bson:"lifestylePreferences" json:"lifestylePreferences"`
	Unit         UnitPreferences       `bson:"unitPreferences" json:"unitPreferences"`
	System       LeadSystem            `bson:"system" json:"system"`
	CreatedAt    time.Time             `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time             `bson:"updatedAt" json:"updatedAt"`
}

type CreateLeadRequest struct {
	Identity     LeadIdentity          `json:"identity" validate:"required"`
	Demographics LeadDemographics      `json:"demographics"`
	Vision       PropertyVision        `json:"propertyVision"`
	Investment   InvestmentPreferences `json:"investmentPreferences"`
	Location     LocationPreferences   `json:"locationPreferences"`
	Lifestyle    LifestylePreferences  `json:"lifestylePreferences"`
	Unit         UnitPreferences       `json:"unitPreferences"`
	Source       string                `json:"source"`
}

type UpdateLeadRequest struct {
	Identity     *LeadIdentity          `json:"identity"`
	Demographics *LeadDemographics      `json:"demographics"`
	Vision       *PropertyVision        `json:"propertyVision"`
	Investment   *InvestmentPreferences `json:"investmentPreferences"`
	Location     *LocationPreferences   `json:"locationPreferences"`
	Lifestyle    *LifestylePreferences  `json:"lifestylePreferences"`
	Unit         *UnitPreferences       `json:"unitPreferences"`
	Score        *float64               `json:"score"`
}

type UpdateLeadStatusRequest struct {
	Status string `json:"leadStatus" validate:"required"`
}

type AssignLeadRequest struct {
	AgentID string `json:"agentId" validate:"required"`
}
