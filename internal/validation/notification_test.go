package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"propapi/internal/model"
	"propapi/internal/repository"
)

func TestNotificationFieldErrors(t *testing.T) {
	tests := []struct {
		name     string
		in       *model.NotificationInput
		messages []string
	}{
		{
			name: "valid",
			in: &model.NotificationInput{
				UserID:  ptr("64f1c0ffee0000000000aaaa"),
				Title:   ptr("Inspection due"),
				Message: ptr("Annual inspection is due next week"),
				Type:    ptr("warning"),
			},
		},
		{
			name: "type is optional",
			in: &model.NotificationInput{
				UserID:  ptr("64f1c0ffee0000000000aaaa"),
				Title:   ptr("Inspection due"),
				Message: ptr("Annual inspection is due next week"),
			},
		},
		{
			name: "empty input reports the three required fields",
			in:   &model.NotificationInput{},
			messages: []string{
				"Recipient is required",
				"Title is required",
				"Message is required",
			},
		},
		{
			name: "unknown type lists the allowed set",
			in: &model.NotificationInput{
				UserID:  ptr("64f1c0ffee0000000000aaaa"),
				Title:   ptr("Inspection due"),
				Message: ptr("Annual inspection is due next week"),
				Type:    ptr("reminder"),
			},
			messages: []string{"Type must be one of: info, warning, alert"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := resultFrom(NotificationFieldErrors(tt.in))
			assert.Equal(t, len(tt.messages) == 0, res.Valid)
			assert.Equal(t, tt.messages, res.Messages())
		})
	}
}

func TestValidateNotificationRecipient(t *testing.T) {
	userID := "64f1c0ffee0000000000aaaa"
	in := func() *model.NotificationInput {
		return &model.NotificationInput{
			UserID:  ptr(userID),
			Title:   ptr("Inspection due"),
			Message: ptr("Annual inspection is due next week"),
		}
	}

	t.Run("recipient exists", func(t *testing.T) {
		v, users, _, _ := newTestValidator(t)
		users.On("FindByID", mock.Anything, userID).
			Return(&model.User{ID: userID, Role: model.RoleTenant}, nil).Once()

		res := v.ValidateNotification(authCtx(), in())

		assert.True(t, res.Valid)
		users.AssertExpectations(t)
	})

	t.Run("recipient missing", func(t *testing.T) {
		v, users, _, _ := newTestValidator(t)
		users.On("FindByID", mock.Anything, userID).
			Return(nil, repository.ErrNotFound).Once()

		res := v.ValidateNotification(authCtx(), in())

		assert.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "Recipient does not exist", res.Errors[0].Message)
	})

	t.Run("recipient lookup failure fails closed", func(t *testing.T) {
		v, users, _, _ := newTestValidator(t)
		users.On("FindByID", mock.Anything, userID).
			Return(nil, assert.AnError).Once()

		res := v.ValidateNotification(authCtx(), in())

		assert.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, CodeLookupFailed, res.Errors[0].Code)
		assert.Equal(t, "Error checking recipient reference", res.Errors[0].Message)
	})
}
