package validation

import (
	"context"
	"slices"
	"strings"

	"propapi/internal/model"
)

// NotificationFieldErrors checks a notification send request. Sends are
// always creates, so there is no operation parameter: recipient, title
// and message are required; type is optional and enum-checked when
// present (the sender defaults it to info).
func NotificationFieldErrors(in *model.NotificationInput) []FieldError {
	var errs []FieldError

	if in.UserID == nil || strings.TrimSpace(*in.UserID) == "" {
		errs = append(errs, fieldErr("userId", CodeRequired, "Recipient is required"))
	}
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		errs = append(errs, fieldErr("title", CodeRequired, "Title is required"))
	}
	if in.Message == nil || strings.TrimSpace(*in.Message) == "" {
		errs = append(errs, fieldErr("message", CodeRequired, "Message is required"))
	}
	if in.Type != nil && *in.Type != "" && !slices.Contains(model.NotificationTypes, *in.Type) {
		errs = append(errs, fieldErr("type", CodeInvalidValue, allowed("Type", model.NotificationTypes)))
	}

	return errs
}

// ValidateNotification runs the notification validator set: field rules
// plus the recipient existence check.
func (v *Validator) ValidateNotification(ctx context.Context, in *model.NotificationInput) *Result {
	errs := NotificationFieldErrors(in)

	var checks []refCheck
	if in.UserID != nil && strings.TrimSpace(*in.UserID) != "" {
		checks = append(checks, v.userExistsCheck("userId", strings.TrimSpace(*in.UserID), msgRecipientMissing, msgRecipientCheckFailed))
	}
	errs = append(errs, v.runChecks(ctx, checks)...)
	return resultFrom(errs)
}
