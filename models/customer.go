package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "Active"
	CustomerStatusInactive CustomerStatus = "Inactive"
	CustomerStatusChurned  CustomerStatus = "Churned"
)

func (s CustomerStatus) Valid() bool {
	switch s {
	case CustomerStatusActive, CustomerStatusInactive, CustomerStatusChurned:
		return true
	}
	return false
}

type CustomerAddress struct {
	Line1   string `bson:"line1,omitempty" json:"line1,omitempty"`
	Line2   string `bson:"line2,omitempty" json:"line2,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	Pincode string `bson:"pincode,omitempty" json:"pincode,omitempty"`
}

type OwnershipRecord struct {
	PropertyID   string    `bson:"propertyId" json:"propertyId"`
	PurchaseDate time.Time `bson:"purchaseDate" json:"purchaseDate"`
	Price        float64   `bson:"price" json:"price"`
}

type TransactionSummary struct {
	TotalSpent        float64    `bson:"totalSpent" json:"totalSpent"`
	TransactionCount  int        `bson:"transactionCount" json:"transactionCount"`
	LastTransactionAt *time.Time `bson:"lastTransactionAt,omitempty" json:"lastTransactionAt,omitempty"`
}

type CustomerSystem struct {
	Status CustomerStatus `bson:"status" json:"status"`
}

// Customer is created exactly once per converted Lead; the unique leadId
// index enforces the one-to-one relationship.
type Customer struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LeadID       primitive.ObjectID `bson:"leadId" json:"leadId"`
	Identity     LeadIdentity       `bson:"identity" json:"identity"`
	Address      CustomerAddress    `bson:"address" json:"address"`
	Ownership    []OwnershipRecord  `bson:"ownership" json:"ownership"`
	Transactions TransactionSummary `bson:"transactions" json:"transactions"`
	System       CustomerSystem     `bson:"system" json:"system"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type UpdateCustomerStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Active Inactive Churned"`
}
