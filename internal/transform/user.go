package transform

import (
	"strings"
	"time"

	"propapi/internal/model"
)

// UserFromRecord widens a stored user into the application model. The
// stored role string coerces to the typed enum; an absent active flag
// reads as active.
func UserFromRecord(rec *model.UserRecord) *model.User {
	return &model.User{
		ID:        hexID(rec.ID),
		Name:      rec.Name,
		Email:     rec.Email,
		Role:      model.Role(rec.Role),
		Phone:     rec.Phone,
		IsActive:  orTrue(rec.IsActive),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

// UserToRecord narrows a user model back to its stored shape.
func UserToRecord(u *model.User) *model.UserRecord {
	return &model.UserRecord{
		ID:        oid(u.ID),
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Phone:     u.Phone,
		IsActive:  boolPtr(u.IsActive),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewUserRecord builds the record a user create persists. Free-text
// fields are trimmed, the email is lowercased, the active flag defaults
// to true, and the password pair rides no further: credentials belong to
// the identity service, not the user record.
func NewUserRecord(in *model.UserInput, now time.Time) *model.UserRecord {
	rec := &model.UserRecord{
		IsActive:  boolPtr(true),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Name != nil {
		rec.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		rec.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Role != nil {
		rec.Role = strings.TrimSpace(*in.Role)
	}
	if in.Phone != nil {
		rec.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.IsActive != nil {
		rec.IsActive = boolPtr(*in.IsActive)
	}
	return rec
}

// UserFromForm parses a submitted profile form into the typed input.
// Empty fields come back absent; the password pair passes through
// untrimmed since whitespace may be intentional there.
func UserFromForm(f *model.UserForm) *model.UserInput {
	in := &model.UserInput{}
	if name := strings.TrimSpace(f.Name); name != "" {
		in.Name = &name
	}
	if email := strings.ToLower(strings.TrimSpace(f.Email)); email != "" {
		in.Email = &email
	}
	if role := strings.TrimSpace(f.Role); role != "" {
		in.Role = &role
	}
	if phone := strings.TrimSpace(f.Phone); phone != "" {
		in.Phone = &phone
	}
	if f.Password != "" {
		in.Password = &f.Password
	}
	if f.ConfirmPassword != "" {
		in.ConfirmPassword = &f.ConfirmPassword
	}
	return in
}

// UserToForm renders a user for form display. Credentials never travel
// back to the client.
func UserToForm(u *model.User) *model.UserForm {
	return &model.UserForm{
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
		Phone: u.Phone,
	}
}
