package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property is the application model for a managed property listing.
// Bedrooms, bathrooms, area and year built are optional physical
// attributes; zero means "not recorded".
type Property struct {
	ID           string       `json:"id"`
	Address      string       `json:"address"`
	Type         PropertyType `json:"type"`
	OwnerID      string       `json:"ownerId"`
	Value        float64      `json:"value"`
	PurchaseDate time.Time    `json:"purchaseDate"`
	Bedrooms     int          `json:"bedrooms,omitempty"`
	Bathrooms    float64      `json:"bathrooms,omitempty"`
	Area         float64      `json:"area,omitempty"`
	YearBuilt    int          `json:"yearBuilt,omitempty"`
	Features     []string     `json:"features"`
	IsActive     bool         `json:"isActive"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// PropertyRecord is the persisted shape of a property.
type PropertyRecord struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Address      string             `bson:"address"`
	Type         string             `bson:"type"`
	OwnerID      primitive.ObjectID `bson:"ownerId"`
	Value        float64            `bson:"value"`
	PurchaseDate time.Time          `bson:"purchaseDate"`
	Bedrooms     int                `bson:"bedrooms,omitempty"`
	Bathrooms    float64            `bson:"bathrooms,omitempty"`
	Area         float64            `bson:"area,omitempty"`
	YearBuilt    int                `bson:"yearBuilt,omitempty"`
	Features     []string           `bson:"features,omitempty"`
	IsActive     *bool              `bson:"isActive,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

// PropertyForm is the flat, all-string shape a property form submits or
// displays. Numeric fields are string-encoded for the form and parsed back
// on submission; features collapse to one comma-separated field.
type PropertyForm struct {
	Address      string `json:"address" form:"address"`
	Type         string `json:"type" form:"type"`
	OwnerID      string `json:"ownerId" form:"ownerId"`
	Value        string `json:"value" form:"value"`
	PurchaseDate string `json:"purchaseDate" form:"purchaseDate"`
	Bedrooms     string `json:"bedrooms" form:"bedrooms"`
	Bathrooms    string `json:"bathrooms" form:"bathrooms"`
	Area         string `json:"area" form:"area"`
	YearBuilt    string `json:"yearBuilt" form:"yearBuilt"`
	Features     string `json:"features" form:"features"`
}

// PropertyInput is the properties variant of the validation input union.
type PropertyInput struct {
	Address      *string  `json:"address"`
	Type         *string  `json:"type"`
	OwnerID      *string  `json:"ownerId"`
	Value        *float64 `json:"value"`
	PurchaseDate *string  `json:"purchaseDate"`
	Bedrooms     *int     `json:"bedrooms"`
	Bathrooms    *float64 `json:"bathrooms"`
	Area         *float64 `json:"area"`
	YearBuilt    *int     `json:"yearBuilt"`
	Features     []string `json:"features"`
	IsActive     *bool    `json:"isActive"`
}
