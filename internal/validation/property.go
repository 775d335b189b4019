package validation

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"propapi/internal/model"
	"propapi/internal/repository"
	"propapi/internal/transform"
)

// PropertyFieldErrors checks the field-level rules for a property input.
// The future-date rule compares against the clock at evaluation time.
func PropertyFieldErrors(in *model.PropertyInput, op model.Operation) []FieldError {
	var errs []FieldError

	switch {
	case in.Address == nil:
		if op == model.OperationCreate {
			errs = append(errs, fieldErr("address", CodeRequired, "Address is required"))
		}
	case strings.TrimSpace(*in.Address) == "":
		errs = append(errs, fieldErr("address", CodeRequired, "Address is required"))
	default:
		if n := utf8.RuneCountInString(*in.Address); n < 5 || n > 200 {
			errs = append(errs, fieldErr("address", CodeOutOfRange, "Address must be between 5 and 200 characters"))
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
		if !slices.Contains(model.PropertyTypes, *in.Type) {
			errs = append(errs, fieldErr("type", CodeInvalidValue, allowed("Type", model.PropertyTypes)))
		}
	}

	if in.OwnerID == nil {
		if op == model.OperationCreate {
			errs = append(errs, fieldErr("ownerId", CodeRequired, "Owner is required"))
		}
	} else if strings.TrimSpace(*in.OwnerID) == "" {
		errs = append(errs, fieldErr("ownerId", CodeRequired, "Owner is required"))
	}

	// Missing and non-positive values share one message; the code tells
	// the two cases apart.
	if in.Value == nil {
		if op == model.OperationCreate {
			errs = append(errs, fieldErr("value", CodeRequired, "Value must be a positive number"))
		}
	} else if *in.Value <= 0 {
		errs = append(errs, fieldErr("value", CodeNotPositive, "Value must be a positive number"))
	}

	switch {
	case in.PurchaseDate == nil:
		if op == model.OperationCreate {
			errs = append(errs, fieldErr("purchaseDate", CodeRequired, "Purchase date is required"))
		}
	case strings.TrimSpace(*in.PurchaseDate) == "":
		errs = append(errs, fieldErr("purchaseDate", CodeRequired, "Purchase date is required"))
	default:
		if t, ok := transform.ParseDate(*in.PurchaseDate); !ok {
			errs = append(errs, fieldErr("purchaseDate", CodeInvalidFormat, "Purchase date has invalid format"))
		} else if t.After(time.Now()) {
			errs = append(errs, fieldErr("purchaseDate", CodeInFuture, "Purchase date cannot be in the future"))
		}
	}

	return errs
}

// ValidateProperty runs the properties validator set: field rules plus
// the owner referential check whenever an owner reference is present,
// i.e. on create and on owner change.
func (v *Validator) ValidateProperty(ctx context.Context, in *model.PropertyInput, op model.Operation) *Result {
	errs := PropertyFieldErrors(in, op)

	var checks []refCheck
	if in.OwnerID != nil && strings.TrimSpace(*in.OwnerID) != "" {
		checks = append(checks, v.ownerRoleCheck(strings.TrimSpace(*in.OwnerID)))
	}
	errs = append(errs, v.runChecks(ctx, checks)...)
	return resultFrom(errs)
}

// ownerRoleCheck confirms the owner reference resolves to a user allowed
// to own property. The role rule only applies once existence passes.
func (v *Validator) ownerRoleCheck(id string) refCheck {
	return func(ctx context.Context) *FieldError {
		owner, err := v.users.FindByID(ctx, id)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			fe := fieldErr("ownerId", CodeNotFound, msgOwnerMissing)
			return &fe
		case err != nil:
			v.log.Warn("owner lookup failed", zap.String("ownerId", id), zap.Error(err))
			fe := fieldErr("ownerId", CodeLookupFailed, msgOwnerCheckFailed)
			return &fe
		case owner.Role != model.RoleOwner && owner.Role != model.RoleAdmin:
			fe := fieldErr("ownerId", CodeInvalidRole, msgOwnerRole)
			return &fe
		}
		return nil
	}
}
