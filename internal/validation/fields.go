package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Referential and uniqueness messages. The portal frontend matches on
// these strings, so they stay byte-identical to the original API.
const (
	msgOwnerMissing         = "Owner does not exist"
	msgOwnerCheckFailed     = "Error checking owner reference"
	msgOwnerRole            = "Owner must have owner or admin role"
	msgPropertyMissing      = "Property does not exist"
	msgPropertyCheckFailed  = "Error checking property reference"
	msgEmailTaken           = "Email already exists"
	msgEmailCheckFailed     = "Error checking email uniqueness"
	msgRecipientMissing     = "Recipient does not exist"
	msgRecipientCheckFailed = "Error checking recipient reference"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)
)

// allowed renders the fixed-set message for enum fields, e.g.
// "Role must be one of: admin, owner, tenant".
func allowed(label string, set []string) string {
	return fmt.Sprintf("%s must be one of: %s", label, strings.Join(set, ", "))
}

// fieldLabels maps wire field names to the labels messages use.
var fieldLabels = map[string]string{
	"name":            "Name",
	"email":           "Email",
	"role":            "Role",
	"phone":           "Phone",
	"isActive":        "Active flag",
	"password":        "Password",
	"confirmPassword": "Password confirmation",
	"address":         "Address",
	"type":            "Type",
	"ownerId":         "Owner",
	"value":           "Value",
	"purchaseDate":    "Purchase date",
	"bedrooms":        "Bedrooms",
	"bathrooms":       "Bathrooms",
	"area":            "Area",
	"yearBuilt":       "Year built",
	"features":        "Features",
	"propertyId":      "Property",
	"fileSize":        "File size",
	"mimeType":        "MIME type",
	"storagePath":     "Storage path",
	"description":     "Description",
	"tags":            "Tags",
	"userId":          "Recipient",
	"title":           "Title",
	"message":         "Message",
}

func fieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	if field == "" {
		return "Field"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
