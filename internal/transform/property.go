package transform

import (
	"strconv"
	"strings"
	"time"

	"propapi/internal/model"
)

// PropertyFromRecord widens a stored property into the application model.
// A missing features list defaults to an empty one.
func PropertyFromRecord(rec *model.PropertyRecord) *model.Property {
	return &model.Property{
		ID:           hexID(rec.ID),
		Address:      rec.Address,
		Type:         model.PropertyType(rec.Type),
		OwnerID:      hexID(rec.OwnerID),
		Value:        rec.Value,
		PurchaseDate: rec.PurchaseDate,
		Bedrooms:     rec.Bedrooms,
		Bathrooms:    rec.Bathrooms,
		Area:         rec.Area,
		YearBuilt:    rec.YearBuilt,
		Features:     emptyIfNil(rec.Features),
		IsActive:     orTrue(rec.IsActive),
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

// PropertyToRecord narrows a property model back to its stored shape.
func PropertyToRecord(p *model.Property) *model.PropertyRecord {
	return &model.PropertyRecord{
		ID:           oid(p.ID),
		Address:      p.Address,
		Type:         string(p.Type),
		OwnerID:      oid(p.OwnerID),
		Value:        p.Value,
		PurchaseDate: p.PurchaseDate,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		Area:         p.Area,
		YearBuilt:    p.YearBuilt,
		Features:     cleanList(p.Features),
		IsActive:     boolPtr(p.IsActive),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// NewPropertyRecord builds the record a property create persists. The
// purchase date was validated upstream; an unparsable one degrades to the
// zero time rather than failing.
func NewPropertyRecord(in *model.PropertyInput, now time.Time) *model.PropertyRecord {
	rec := &model.PropertyRecord{
		IsActive:  boolPtr(true),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Address != nil {
		rec.Address = strings.TrimSpace(*in.Address)
	}
	if in.Type != nil {
		rec.Type = strings.TrimSpace(*in.Type)
	}
	if in.OwnerID != nil {
		rec.OwnerID = oid(*in.OwnerID)
	}
	if in.Value != nil {
		rec.Value = *in.Value
	}
	if in.PurchaseDate != nil {
		if t, ok := ParseDate(*in.PurchaseDate); ok {
			rec.PurchaseDate = t
		}
	}
	if in.Bedrooms != nil {
		rec.Bedrooms = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		rec.Bathrooms = *in.Bathrooms
	}
	if in.Area != nil {
		rec.Area = *in.Area
	}
	if in.YearBuilt != nil {
		rec.YearBuilt = *in.YearBuilt
	}
	rec.Features = cleanList(in.Features)
	if in.IsActive != nil {
		rec.IsActive = boolPtr(*in.IsActive)
	}
	return rec
}

// PropertyFromForm parses a submitted property form into the typed input.
// Numeric fields that fail to parse come back absent, leaving validation
// to report them as missing or invalid.
func PropertyFromForm(f *model.PropertyForm) *model.PropertyInput {
	in := &model.PropertyInput{}
	if addr := strings.TrimSpace(f.Address); addr != "" {
		in.Address = &addr
	}
	if typ := strings.TrimSpace(f.Type); typ != "" {
		in.Type = &typ
	}
	if owner := strings.TrimSpace(f.OwnerID); owner != "" {
		in.OwnerID = &owner
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64); err == nil {
		in.Value = &v
	}
	if date := strings.TrimSpace(f.PurchaseDate); date != "" {
		in.PurchaseDate = &date
	}
	if n, err := strconv.Atoi(strings.TrimSpace(f.Bedrooms)); err == nil {
		in.Bedrooms = &n
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(f.Bathrooms), 64); err == nil {
		in.Bathrooms = &v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(f.Area), 64); err == nil {
		in.Area = &v
	}
	if n, err := strconv.Atoi(strings.TrimSpace(f.YearBuilt)); err == nil {
		in.YearBuilt = &n
	}
	in.Features = splitList(f.Features)
	return in
}

// PropertyToForm renders a property for form display, string-encoding the
// numeric fields. Unrecorded optional attributes render empty, not zero.
func PropertyToForm(p *model.Property) *model.PropertyForm {
	f := &model.PropertyForm{
		Address:  p.Address,
		Type:     string(p.Type),
		OwnerID:  p.OwnerID,
		Value:    strconv.FormatFloat(p.Value, 'f', -1, 64),
		Features: strings.Join(p.Features, ", "),
	}
	if !p.PurchaseDate.IsZero() {
		f.PurchaseDate = p.PurchaseDate.Format("2006-01-02")
	}
	if p.Bedrooms != 0 {
		f.Bedrooms = strconv.Itoa(p.Bedrooms)
	}
	if p.Bathrooms != 0 {
		f.Bathrooms = strconv.FormatFloat(p.Bathrooms, 'f', -1, 64)
	}
	if p.Area != 0 {
		f.Area = strconv.FormatFloat(p.Area, 'f', -1, 64)
	}
	if p.YearBuilt != 0 {
		f.YearBuilt = strconv.Itoa(p.YearBuilt)
	}
	return f
}
