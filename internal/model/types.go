// Package model contains the domain models, their stored record shapes,
// form representations, and the typed inputs accepted by validation.
package model

// Role identifies what a user is allowed to do in the portal.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleOwner  Role = "owner"
	RoleTenant Role = "tenant"
)

// Roles is the full set of allowed role identifiers.
//
// This slice is the single source of truth for validation and for the
// collection schema enums. Any new role must be added here to be valid.
var Roles = []string{
	string(RoleAdmin),
	string(RoleOwner),
	string(RoleTenant),
}

// PropertyType classifies a property listing.
type PropertyType string

const (
	PropertyResidential PropertyType = "residential"
	PropertyCommercial  PropertyType = "commercial"
)

// PropertyTypes is the full set of allowed property type identifiers.
var PropertyTypes = []string{
	string(PropertyResidential),
	string(PropertyCommercial),
}

// DocumentType classifies an uploaded property document.
type DocumentType string

const (
	DocumentDeed       DocumentType = "deed"
	DocumentContract   DocumentType = "contract"
	DocumentInspection DocumentType = "inspection"
	DocumentInsurance  DocumentType = "insurance"
	DocumentTax        DocumentType = "tax"
	DocumentOther      DocumentType = "other"
)

// DocumentTypes is the full set of allowed document type identifiers.
var DocumentTypes = []string{
	string(DocumentDeed),
	string(DocumentContract),
	string(DocumentInspection),
	string(DocumentInsurance),
	string(DocumentTax),
	string(DocumentOther),
}

// NotificationType classifies a portal notification.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationAlert   NotificationType = "alert"
)

// NotificationTypes is the full set of allowed notification type identifiers.
var NotificationTypes = []string{
	string(NotificationInfo),
	string(NotificationWarning),
	string(NotificationAlert),
}

// Collection names a group of same-shaped records in the document store.
// Only these three collections are accepted by the validation entry point.
type Collection string

const (
	CollectionUsers      Collection = "users"
	CollectionProperties Collection = "properties"
	CollectionDocuments  Collection = "documents"
)

// Collections is the set of collection names the validation entry point
// dispatches on.
var Collections = []string{
	string(CollectionUsers),
	string(CollectionProperties),
	string(CollectionDocuments),
}

// Operation tags a validation request as a create or an update. Required
// field checks apply only on create.
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
)

// Operations is the set of accepted operation tags.
var Operations = []string{
	string(OperationCreate),
	string(OperationUpdate),
}
