package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is the application model for a file attached to a property:
// a deed, a contract, an inspection report and so on. The bytes live in
// object storage; StoragePath points at them.
type Document struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        DocumentType `json:"type"`
	PropertyID  string       `json:"propertyId"`
	OwnerID     string       `json:"ownerId"`
	FileSize    int64        `json:"fileSize"`
	MimeType    string       `json:"mimeType"`
	StoragePath string       `json:"storagePath"`
	Description string       `json:"description,omitempty"`
	Tags        []string     `json:"tags"`
	IsActive    bool         `json:"isActive"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// DocumentRecord is the persisted shape of a document.
type DocumentRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Type        string             `bson:"type"`
	PropertyID  primitive.ObjectID `bson:"propertyId"`
	OwnerID     primitive.ObjectID `bson:"ownerId"`
	FileSize    int64              `bson:"fileSize"`
	MimeType    string             `bson:"mimeType"`
	StoragePath string             `bson:"storagePath"`
	Description string             `bson:"description,omitempty"`
	Tags        []string           `bson:"tags,omitempty"`
	IsActive    *bool              `bson:"isActive,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// DocumentForm is the flat, all-string shape the upload form submits.
// File metadata (size, mime type, storage pointer) comes from the uploaded
// file itself, not the form; FileSize appears here only for display.
type DocumentForm struct {
	Name        string `json:"name" form:"name"`
	Type        string `json:"type" form:"type"`
	PropertyID  string `json:"propertyId" form:"propertyId"`
	OwnerID     string `json:"ownerId" form:"ownerId"`
	Description string `json:"description" form:"description"`
	Tags        string `json:"tags" form:"tags"`
	FileSize    string `json:"fileSize" form:"fileSize"`
}

// DocumentInput is the documents variant of the validation input union.
type DocumentInput struct {
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	PropertyID  *string  `json:"propertyId"`
	OwnerID     *string  `json:"ownerId"`
	FileSize    *int64   `json:"fileSize"`
	MimeType    *string  `json:"mimeType"`
	StoragePath *string  `json:"storagePath"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
	IsActive    *bool    `json:"isActive"`
}
