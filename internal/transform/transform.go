// Package transform converts between the three shapes an entity takes:
// the stored record (loose primitives, ObjectID references), the
// application model (typed enums, hex string ids) and the flat all-string
// form representation.
//
// Every function here is pure and total: malformed input degrades to a
// zero or identity value, never an error. Catching bad values is
// validation's job, upstream of these mappings.
package transform

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// dateLayouts matches what the portal submits: full timestamps or bare
// dates.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses a portal-submitted date. It accepts RFC 3339
// timestamps and bare yyyy-mm-dd dates; anything else reports false.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// oid parses a hex id, returning the zero ObjectID for malformed input.
func oid(s string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	if err != nil {
		return primitive.NilObjectID
	}
	return id
}

// hexID renders an ObjectID as the hex string models carry; the zero
// ObjectID renders as empty rather than twenty-four zeros.
func hexID(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}

// orTrue dereferences a stored active flag, defaulting absent to true:
// records written before the flag existed are live records.
func orTrue(b *bool) bool {
	if b == nil {
		return true
	}
	return *b
}

// boolPtr gives a flag an address for the record shape.
func boolPtr(b bool) *bool { return &b }

// cleanList trims the entries of a string list and drops empties. A nil
// or all-empty list comes back nil so records omit the field entirely.
func cleanList(in []string) []string {
	var out []string
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// splitList parses a comma-separated form field into a list.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return cleanList(strings.Split(s, ","))
}

// emptyIfNil replaces a nil list with an empty one so models always carry
// a sequence, matching what the frontend iterates over.
func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
