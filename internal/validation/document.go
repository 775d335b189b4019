package validation

import (
	"context"
	"errors"
	"slices"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"propapi/internal/model"
	"propapi/internal/repository"
)

// DocumentFieldErrors checks the field-level rules for a document input.
// File metadata (size, mime type, storage pointer) is required on create
// because the upload pipeline always has it; a validate call without it
// is a client that skipped the upload.
func DocumentFieldErrors(in *model.DocumentInput, op model.Operation) []FieldError {
	var errs []FieldError

	switch {
	case in.Name == nil:
		if op == model.OperationCreate {
			errs = append(errs, fieldErr("name", CodeRequired, "Name is required"))
		}
	case strings.TrimSpace(*in.Name) == "":
		errs = append(errs, fieldErr("name", CodeRequired, "Name is required"))
	default:
		if utf8.RuneCountInString(*in.Name) > 100 {
			errs = append(errs, fieldErr("name", CodeOutOfRange, "Name must be between 1 and 100 characters"))
		}
	}

	switch {
	case in.Type == nil:
		if op == model.OperationCreate {
			errs = append(errs, fieldErr("type", CodeRequired, "Type is required"))
		}
	case *in.Type == "":
		errs = append(errs, fieldErr("type", CodeRequired, "Type is required"))
	default:
		if !slices.Contains(model.DocumentTypes, *in.Type) {
			errs = append(errs, fieldErr("type", CodeInvalidValue, allowed("Type", model.DocumentTypes)))
		}
	}

	if in.PropertyID == nil {
		if op == model.OperationCreate {
			errs = append(errs, fieldErr("propertyId", CodeRequired, "Property is required"))
		}
	} else if strings.TrimSpace(*in.PropertyID) == "" {
		errs = append(errs, fieldErr("propertyId", CodeRequired, "Property is required"))
	}

	if in.OwnerID == nil {
		if op == model.OperationCreate {
			errs = append(errs, fieldErr("ownerId", CodeRequired, "Owner is required"))
		}
	} else if strings.TrimSpace(*in.OwnerID) == "" {
		errs = append(errs, fieldErr("ownerId", CodeRequired, "Owner is required"))
	}

	if in.FileSize == nil {
		if op == model.OperationCreate {
			errs = append(errs, fieldErr("fileSize", CodeRequired, "File size must be a positive number"))
		}
	} else if *in.FileSize <= 0 {
		errs = append(errs, fieldErr("fileSize", CodeNotPositive, "File size must be a positive number"))
	}

	if in.MimeType == nil {
		if op == model.OperationCreate {
			errs = append(errs, fieldErr("mimeType", CodeRequired, "MIME type is required"))
		}
	} else if strings.TrimSpace(*in.MimeType) == "" {
		errs = append(errs, fieldErr("mimeType", CodeRequired, "MIME type is required"))
	}

	if in.StoragePath == nil {
		if op == model.OperationCreate {
			errs = append(errs, fieldErr("storagePath", CodeRequired, "Storage path is required"))
		}
	} else if strings.TrimSpace(*in.StoragePath) == "" {
		errs = append(errs, fieldErr("storagePath", CodeRequired, "Storage path is required"))
	}

	if in.Description != nil && utf8.RuneCountInString(*in.Description) > 500 {
		errs = append(errs, fieldErr("description", CodeTooLong, "Description must be at most 500 characters"))
	}

	return errs
}

// ValidateDocument runs the documents validator set: field rules plus the
// property and owner existence checks. The two lookups are independent
// and run concurrently; both must resolve before a create may proceed.
func (v *Validator) ValidateDocument(ctx context.Context, in *model.DocumentInput, op model.Operation) *Result {
	errs := DocumentFieldErrors(in, op)

	var checks []refCheck
	if in.PropertyID != nil && strings.TrimSpace(*in.PropertyID) != "" {
		checks = append(checks, v.propertyExistsCheck(strings.TrimSpace(*in.PropertyID)))
	}
	if in.OwnerID != nil && strings.TrimSpace(*in.OwnerID) != "" {
		checks = append(checks, v.userExistsCheck("ownerId", strings.TrimSpace(*in.OwnerID), msgOwnerMissing, msgOwnerCheckFailed))
	}
	errs = append(errs, v.runChecks(ctx, checks)...)
	return resultFrom(errs)
}

// userExistsCheck confirms a user reference resolves; which field and
// messages it reports depends on what the reference means to the caller.
func (v *Validator) userExistsCheck(field, id, missing, failed string) refCheck {
	return func(ctx context.Context) *FieldError {
		_, err := v.users.FindByID(ctx, id)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, repository.ErrNotFound):
			fe := fieldErr(field, CodeNotFound, missing)
			return &fe
		default:
			v.log.Warn("user reference lookup failed",
				zap.String("field", field), zap.String("id", id), zap.Error(err))
			fe := fieldErr(field, CodeLookupFailed, failed)
			return &fe
		}
	}
}

// propertyExistsCheck confirms a property reference resolves.
func (v *Validator) propertyExistsCheck(id string) refCheck {
	return func(ctx context.Context) *FieldError {
		_, err := v.properties.FindByID(ctx, id)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, repository.ErrNotFound):
			fe := fieldErr("propertyId", CodeNotFound, msgPropertyMissing)
			return &fe
		default:
			v.log.Warn("property reference lookup failed",
				zap.String("propertyId", id), zap.Error(err))
			fe := fieldErr("propertyId", CodeLookupFailed, msgPropertyCheckFailed)
			return &fe
		}
	}
}
