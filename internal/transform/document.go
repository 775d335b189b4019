package transform

import (
	"strconv"
	"strings"
	"time"

	"propapi/internal/model"
)

// DocumentFromRecord widens a stored document into the application model.
// A missing tags list defaults to an empty one.
func DocumentFromRecord(rec *model.DocumentRecord) *model.Document {
	return &model.Document{
		ID:          hexID(rec.ID),
		Name:        rec.Name,
		Type:        model.DocumentType(rec.Type),
		PropertyID:  hexID(rec.PropertyID),
		OwnerID:     hexID(rec.OwnerID),
		FileSize:    rec.FileSize,
		MimeType:    rec.MimeType,
		StoragePath: rec.StoragePath,
		Description: rec.Description,
		Tags:        emptyIfNil(rec.Tags),
		IsActive:    orTrue(rec.IsActive),
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

// DocumentToRecord narrows a document model back to its stored shape.
func DocumentToRecord(d *model.Document) *model.DocumentRecord {
	return &model.DocumentRecord{
		ID:          oid(d.ID),
		Name:        d.Name,
		Type:        string(d.Type),
		PropertyID:  oid(d.PropertyID),
		OwnerID:     oid(d.OwnerID),
		FileSize:    d.FileSize,
		MimeType:    d.MimeType,
		StoragePath: d.StoragePath,
		Description: d.Description,
		Tags:        cleanList(d.Tags),
		IsActive:    boolPtr(d.IsActive),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// NewDocumentRecord builds the record a document create persists.
func NewDocumentRecord(in *model.DocumentInput, now time.Time) *model.DocumentRecord {
	rec := &model.DocumentRecord{
		IsActive:  boolPtr(true),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Name != nil {
		rec.Name = strings.TrimSpace(*in.Name)
	}
	if in.Type != nil {
		rec.Type = strings.TrimSpace(*in.Type)
	}
	if in.PropertyID != nil {
		rec.PropertyID = oid(*in.PropertyID)
	}
	if in.OwnerID != nil {
		rec.OwnerID = oid(*in.OwnerID)
	}
	if in.FileSize != nil {
		rec.FileSize = *in.FileSize
	}
	if in.MimeType != nil {
		rec.MimeType = strings.TrimSpace(*in.MimeType)
	}
	if in.StoragePath != nil {
		rec.StoragePath = strings.TrimSpace(*in.StoragePath)
	}
	if in.Description != nil {
		rec.Description = strings.TrimSpace(*in.Description)
	}
	rec.Tags = cleanList(in.Tags)
	if in.IsActive != nil {
		rec.IsActive = boolPtr(*in.IsActive)
	}
	return rec
}

// DocumentFromForm parses a submitted upload form into the typed input.
// The storage pointer and mime type never come from the form; the upload
// pipeline fills them in after the file lands in object storage.
func DocumentFromForm(f *model.DocumentForm) *model.DocumentInput {
	in := &model.DocumentInput{}
	if name := strings.TrimSpace(f.Name); name != "" {
		in.Name = &name
	}
	if typ := strings.TrimSpace(f.Type); typ != "" {
		in.Type = &typ
	}
	if prop := strings.TrimSpace(f.PropertyID); prop != "" {
		in.PropertyID = &prop
	}
	if owner := strings.TrimSpace(f.OwnerID); owner != "" {
		in.OwnerID = &owner
	}
	if desc := strings.TrimSpace(f.Description); desc != "" {
		in.Description = &desc
	}
	in.Tags = splitList(f.Tags)
	if n, err := strconv.ParseInt(strings.TrimSpace(f.FileSize), 10, 64); err == nil {
		in.FileSize = &n
	}
	return in
}

// DocumentToForm renders a document for form display.
func DocumentToForm(d *model.Document) *model.DocumentForm {
	return &model.DocumentForm{
		Name:        d.Name,
		Type:        string(d.Type),
		PropertyID:  d.PropertyID,
		OwnerID:     d.OwnerID,
		Description: d.Description,
		Tags:        strings.Join(d.Tags, ", "),
		FileSize:    strconv.FormatInt(d.FileSize, 10),
	}
}
