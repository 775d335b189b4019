package validation

import (
	"context"
	"errors"
	"slices"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"propapi/internal/identity"
	"propapi/internal/model"
)

// UserFieldErrors checks the field-level rules for a user input. Required
// checks apply only on create; length, format and enum rules apply
// whenever the field is present. Pure; referential rules live on the
// Validator.
func UserFieldErrors(in *model.UserInput, op model.Operation) []FieldError {
	var errs []FieldError

	switch {
	case in.Name == nil:
		if op == model.OperationCreate {
			errs = append(errs, fieldErr("name", CodeRequired, "Name is required"))
		}
	case strings.TrimSpace(*in.Name) == "":
		errs = append(errs, fieldErr("name", CodeRequired, "Name is required"))
	default:
		if n := utf8.RuneCountInString(*in.Name); n < 2 || n > 100 {
			errs = append(errs, fieldErr("name", CodeOutOfRange, "Name must be between 2 and 100 characters"))
		}
	}

	switch {
	case in.Email == nil:
		if op == model.OperationCreate {
			errs = append(errs, fieldErr("email", CodeRequired, "Email is required"))
		}
	case strings.TrimSpace(*in.Email) == "":
		errs = append(errs, fieldErr("email", CodeRequired, "Email is required"))
	default:
		if !emailPattern.MatchString(strings.TrimSpace(*in.Email)) {
			errs = append(errs, fieldErr("email", CodeInvalidFormat, "Invalid email format"))
		}
	}

	switch {
	case in.Role == nil:
		if op == model.OperationCreate {
			errs = append(errs, fieldErr("role", CodeRequired, "Role is required"))
		}
	case *in.Role == "":
		errs = append(errs, fieldErr("role", CodeRequired, "Role is required"))
	default:
		if !slices.Contains(model.Roles, *in.Role) {
			errs = append(errs, fieldErr("role", CodeInvalidValue, allowed("Role", model.Roles)))
		}
	}

	// Phone is optional on both operations; an empty value clears it.
	if in.Phone != nil && *in.Phone != "" && !phonePattern.MatchString(*in.Phone) {
		errs = append(errs, fieldErr("phone", CodeInvalidFormat, "Phone must be in format (XXX) XXX-XXXX"))
	}

	return errs
}

// ValidateUser runs the users validator set: field rules plus, on create,
// the email-uniqueness lookup against the identity service.
func (v *Validator) ValidateUser(ctx context.Context, in *model.UserInput, op model.Operation) *Result {
	errs := UserFieldErrors(in, op)

	var checks []refCheck
	if op == model.OperationCreate && in.Email != nil && strings.TrimSpace(*in.Email) != "" {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		checks = append(checks, v.emailUniqueCheck(email))
	}
	errs = append(errs, v.runChecks(ctx, checks)...)
	return resultFrom(errs)
}

// DuplicateEmailError reports a uniqueness conflict caught outside the
// validator, e.g. by the store's unique index when two creates race past
// the directory lookup.
func DuplicateEmailError() error {
	return &ValidationError{Result: resultFrom([]FieldError{
		fieldErr("email", CodeDuplicate, msgEmailTaken),
	})}
}

// emailUniqueCheck looks the email up in the identity service. A match is
// the failure; not-found is the success. Any other outcome fails closed
// as a lookup error so a flaky identity service cannot wave duplicates
// through.
func (v *Validator) emailUniqueCheck(email string) refCheck {
	return func(ctx context.Context) *FieldError {
		_, err := v.emails.GetByEmail(ctx, email)
		switch {
		case err == nil:
			fe := fieldErr("email", CodeDuplicate, msgEmailTaken)
			return &fe
		case errors.Is(err, identity.ErrNotFound):
			return nil
		default:
			v.log.Warn("email uniqueness lookup failed",
				zap.String("email", email), zap.Error(err))
			fe := fieldErr("email", CodeLookupFailed, msgEmailCheckFailed)
			return &fe
		}
	}
}
